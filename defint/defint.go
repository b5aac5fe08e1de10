// Package defint computes definite integrals: find an antiderivative and
// evaluate it at both bounds, falling back to a limit-aware boundary
// evaluation and finally to numeric quadrature.
package defint

import (
	"calculus/integrate"
	"calculus/kernel"
	"calculus/limit"
	"calculus/term"
)

// Defint computes the definite integral of f with respect to dx from
// 'from' to 'to'.
func Defint(f *term.Term, from, to *term.Term, dx string) (*term.Term, error) {
	anti, err := integrate.Integrate(f, dx)
	if err == nil {
		upper, uErr := evaluateBound(anti, dx, to)
		lower, lErr := evaluateBound(anti, dx, from)
		if uErr == nil && lErr == nil {
			return kernel.Subtract(upper, lower), nil
		}
	} else if !kernel.IsGaveUp(err) {
		return nil, err
	}

	if from.Group == term.N && !from.IsInfinity && to.Group == term.N && !to.IsInfinity {
		numeric, nErr := kernel.Build(f, dx)
		if nErr == nil {
			a, b := from.Mult.Float64(), to.Mult.Float64()
			return term.NewNumber(term.RatFloat(kernel.NumIntegrate(numeric, a, b))), nil
		}
	}

	return term.NewFunction("defint", f, from, to), nil
}

// evaluateBound substitutes x = bound into the antiderivative, falling
// back to limit.Limit at the bound when the bound is infinite or the
// substitution doesn't collapse to a finite value.
func evaluateBound(anti *term.Term, dx string, bound *term.Term) (*term.Term, error) {
	if bound.Group == term.N && bound.IsInfinity {
		r, err := limit.Limit(anti, dx, bound, 0)
		if err != nil {
			return nil, err
		}
		if !limit.IsConvergent(r) {
			return nil, kernel.Stop("defint: boundary limit did not converge")
		}
		return r, nil
	}
	substituted := kernel.Simplify(anti.SubVar(dx, bound))
	if substituted.Group == term.N && !substituted.IsInfinity {
		return substituted, nil
	}
	r, err := limit.Limit(anti, dx, bound, 0)
	if err != nil {
		return nil, err
	}
	if !limit.IsConvergent(r) {
		return nil, kernel.Stop("defint: boundary limit did not converge")
	}
	return r, nil
}
