package differentiate

import "calculus/term"

// DiffVector differentiates every element of v with respect to wrt,
// distributing element-wise over the vector. It stops at the first
// element that fails to differentiate and returns that error.
func DiffVector(v term.Vector, wrt string, n int) (term.Vector, error) {
	var firstErr error
	result := v.Map(func(t *term.Term) *term.Term {
		if firstErr != nil {
			return t
		}
		d, err := Diff(t, wrt, n)
		if err != nil {
			firstErr = err
			return t
		}
		return d
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

// DiffMatrix differentiates every entry of m with respect to wrt.
func DiffMatrix(m term.Matrix, wrt string, n int) (term.Matrix, error) {
	var firstErr error
	result := m.Map(func(t *term.Term) *term.Term {
		if firstErr != nil {
			return t
		}
		d, err := Diff(t, wrt, n)
		if err != nil {
			firstErr = err
			return t
		}
		return d
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

// DiffEquation differentiates both sides of eq with respect to wrt, e.g.
// diff(LHS: y, RHS: x^2) yields (diff(y,x), 2*x).
func DiffEquation(eq term.Equation, wrt string, n int) (term.Equation, error) {
	var firstErr error
	result := eq.Map(func(t *term.Term) *term.Term {
		if firstErr != nil {
			return t
		}
		d, err := Diff(t, wrt, n)
		if err != nil {
			firstErr = err
			return t
		}
		return d
	})
	if firstErr != nil {
		return term.Equation{}, firstErr
	}
	return result, nil
}
