// Package integrate implements indefinite symbolic integration: a
// strategy dispatcher keyed on the integrand's group, grounded on the
// teacher's core/compile.go head-dispatch switch, generalized from
// S-expression evaluation to antiderivative search. Each strategy may
// fail with a GaveUp-kind error (kernel.Stop), which the caller either
// tries another strategy for or propagates.
package integrate

import (
	"errors"

	"calculus/guard"
	"calculus/kernel"
	"calculus/term"
)

// cycleDetected signals that integrateByParts's fixed-point cycle
// detector found an integral already in flight; the enclosing
// integrateByParts call catches it and resolves the algebraic fixed point
// instead of recursing forever, e.g. for integral of e^x*sin(x).
var cycleDetected = errors.New("integrate: by-parts cycle detected")

// Integrate returns an antiderivative of t with respect to dt, or a
// GaveUp-kind error if no strategy converges.
func Integrate(t *term.Term, dt string) (*term.Term, error) {
	if err := guard.IntegrationDepth.Enter(); err != nil {
		return nil, kernel.DepthExceeded("integrate", guard.IntegrationDepth.Depth())
	}
	defer guard.IntegrationDepth.Leave()

	result, err := kernel.Block(kernel.ModeExact, func() (interface{}, error) {
		return integrateDispatch(t, dt)
	})
	if err != nil {
		return nil, err
	}
	return result.(*term.Term), nil
}

func integrateDispatch(t *term.Term, dt string) (*term.Term, error) {
	if t == nil {
		return term.NewInt(0), nil
	}
	if !t.Contains(dt, true) {
		// Constant rule: integral of c dx = c*x.
		return kernel.Multiply(t, term.NewSymbol(dt)), nil
	}
	switch t.Group {
	case term.S:
		return integratePowerOfVar(t, dt)
	case term.CP, term.PL:
		if !t.PowR.IsOne() {
			return integrateCPPower(t, dt)
		}
		return integrateSum(t, dt)
	case term.CB:
		return integrateProduct(t, dt)
	case term.FN:
		return integrateFunction(t, dt)
	case term.EX:
		return integrateExponential(t, dt)
	default:
		return nil, kernel.Stop("integrate: no strategy for group " + t.Group.String())
	}
}

func integratePowerOfVar(t *term.Term, dt string) (*term.Term, error) {
	if t.Val != dt {
		return kernel.Multiply(t, term.NewSymbol(dt)), nil
	}
	p := t.PowR
	if p.IsNegOne() {
		return kernel.Multiply(term.NewNumber(t.Mult), term.NewFunction(term.LOG, t.Abs())), nil
	}
	newPow := p.Add(term.One())
	result := term.NewSymbolPow(dt, newPow)
	result.Mult = t.Mult.Div(newPow)
	return result, nil
}

func integrateSum(t *term.Term, dt string) (*term.Term, error) {
	acc := term.NewInt(0)
	for _, c := range t.Children {
		scaled := c.Clone()
		scaled.Mult = scaled.Mult.Mul(t.Mult)
		r, err := integrateDispatch(scaled, dt)
		if err != nil {
			return nil, err
		}
		acc = kernel.Add(acc, r)
	}
	return acc, nil
}
