package integrate

import "calculus/term"

// IntegrateVector antidifferentiates every element of v with respect to
// dt, the integration half of the element-wise rule differentiate.DiffVector
// implements.
func IntegrateVector(v term.Vector, dt string) (term.Vector, error) {
	var firstErr error
	result := v.Map(func(t *term.Term) *term.Term {
		if firstErr != nil {
			return t
		}
		r, err := Integrate(t, dt)
		if err != nil {
			firstErr = err
			return t
		}
		return r
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

// IntegrateMatrix antidifferentiates every entry of m with respect to dt.
func IntegrateMatrix(m term.Matrix, dt string) (term.Matrix, error) {
	var firstErr error
	result := m.Map(func(t *term.Term) *term.Term {
		if firstErr != nil {
			return t
		}
		r, err := Integrate(t, dt)
		if err != nil {
			firstErr = err
			return t
		}
		return r
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

// IntegrateEquation antidifferentiates both sides of eq with respect to dt.
func IntegrateEquation(eq term.Equation, dt string) (term.Equation, error) {
	var firstErr error
	result := eq.Map(func(t *term.Term) *term.Term {
		if firstErr != nil {
			return t
		}
		r, err := Integrate(t, dt)
		if err != nil {
			firstErr = err
			return t
		}
		return r
	})
	if firstErr != nil {
		return term.Equation{}, firstErr
	}
	return result, nil
}
