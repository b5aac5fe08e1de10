package integrate

import (
	"errors"

	"calculus/differentiate"
	"calculus/guard"
	"calculus/kernel"
	"calculus/pattern"
	"calculus/term"
)

// integrateProduct handles a CB (product) integrand: pull out the
// dt-independent scalar factor, then try partial fractions and
// u-substitution before falling back to LIATE-ordered integration by
// parts.
func integrateProduct(t *term.Term, dt string) (*term.Term, error) {
	indep, dep := term.SplitByVar(t, dt)
	if dep.Group != term.CB {
		r, err := integrateDispatch(dep, dt)
		if err != nil {
			return nil, err
		}
		return kernel.Multiply(indep, r), nil
	}

	if result, ok := tryCPLeadingFactor(dep, dt); ok {
		return kernel.Multiply(indep, result), nil
	}

	if result, ok := tryPartialFractions(dep, dt); ok {
		return kernel.Multiply(indep, result), nil
	}

	if result, ok := tryUSub(dep, dt); ok {
		return kernel.Multiply(indep, result), nil
	}

	if result, ok := tryTrigProductSameArg(dep.Children, dt); ok {
		return kernel.Multiply(indep, result), nil
	}

	if result, ok := tryTrigProductToSum(dep.Children, dt); ok {
		return kernel.Multiply(indep, result), nil
	}

	if result, ok := tryAllFnTransform(dep, dt); ok {
		return kernel.Multiply(indep, result), nil
	}

	result, err := integrateByPartsEntry(dep, dt)
	if err != nil {
		if r, ok := tryTrigTransformFallback(dep, dt); ok {
			return kernel.Multiply(indep, r), nil
		}
		return nil, err
	}
	return kernel.Multiply(indep, result), nil
}

// tryUSub looks for a factor f(u(x)) whose inner argument's derivative is a
// constant multiple of the product of the remaining factors; on a match it
// integrates the bare f(u) with respect to a fresh dummy variable and
// back-substitutes.
func tryUSub(dep *term.Term, dt string) (*term.Term, bool) {
	factors := dep.Children
	for i, f := range factors {
		inner, synth, ok := innerArgAndSynthetic(f)
		if !ok || !inner.Contains(dt, true) {
			continue
		}
		innerDeriv, err := differentiate.Diff(inner, dt, 1)
		if err != nil || (innerDeriv.Group == term.N && innerDeriv.Mult.IsZero()) {
			continue
		}
		rest := otherFactors(factors, i)
		restTerm := factorsToProduct(rest)
		if restTerm.ToUnitMultiplier().Fingerprint() != innerDeriv.ToUnitMultiplier().Fingerprint() {
			continue
		}
		c := restTerm.Multiplier().Div(innerDeriv.Multiplier())

		uName := guard.GetU()
		uSym := term.NewSymbol(uName)
		uForm := substituteInner(synth, inner, uSym)
		antiU, err := integrateDispatch(uForm, uName)
		if err != nil {
			continue
		}
		result := antiU.SubVar(uName, inner)
		return kernel.Multiply(term.NewNumber(c), result), true
	}
	return nil, false
}

// tryPartialFractions recognizes a product of negative-power CP/S factors
// as a rational function's denominator and decomposes 1/den via
// kernel.PartFrac before integrating each cover-up term. The denominator
// factors are multiplied out first, so any product of distinct linear
// denominators whose expansion is a quadratic is handled.
func tryPartialFractions(dep *term.Term, dt string) (*term.Term, bool) {
	for _, f := range dep.Children {
		if f.PowR.Sign() >= 0 {
			return nil, false
		}
	}
	den := term.NewInt(1)
	for _, f := range dep.Children {
		inv := f.Clone()
		inv.PowR = inv.PowR.Neg()
		den = kernel.Multiply(den, inv)
	}
	den = kernel.Expand(den)
	if den.Group != term.CP || kernel.Degree(den, dt) < 2 {
		return nil, false
	}
	parts, ok := kernel.PartFrac(term.NewInt(1), den, dt)
	if !ok {
		return nil, false
	}
	acc := term.NewInt(0)
	for _, part := range parts {
		r, err := integrateDispatch(part, dt)
		if err != nil {
			return nil, false
		}
		acc = kernel.Add(acc, r)
	}
	return acc, true
}

func otherFactors(factors []*term.Term, skip int) []*term.Term {
	out := make([]*term.Term, 0, len(factors)-1)
	for i, f := range factors {
		if i != skip {
			out = append(out, f.Clone())
		}
	}
	return out
}

func factorsToProduct(factors []*term.Term) *term.Term {
	switch len(factors) {
	case 0:
		return term.NewInt(1)
	case 1:
		return factors[0]
	default:
		return term.NewCB(factors...)
	}
}

// innerArgAndSynthetic returns the inner argument of a composed factor
// (an FN's sole argument, or an EX's exponent when the base is e) along
// with a clone of the factor suitable for later argument substitution.
func innerArgAndSynthetic(f *term.Term) (inner, synth *term.Term, ok bool) {
	switch f.Group {
	case term.FN:
		if len(f.Args) != 1 {
			return nil, nil, false
		}
		return f.Args[0], f.Clone(), true
	case term.EX:
		if !f.BaseT.IsE() {
			return nil, nil, false
		}
		return f.PowT, f.Clone(), true
	default:
		return nil, nil, false
	}
}

func substituteInner(synth, inner, u *term.Term) *term.Term {
	c := synth.Clone()
	switch c.Group {
	case term.FN:
		c.Args = []*term.Term{u}
	case term.EX:
		c.PowT = u
	}
	c.UpdateHash()
	return c
}

var errNoLiateSplit = errors.New("integrate: no LIATE split available")

// byPartsStack is shared by every by-parts step nested under the outermost
// one, so a repeated integrand is seen no matter how deep the repeat occurs.
var byPartsStack *guard.ByPartsStack

func integrateByPartsEntry(t *term.Term, dt string) (*term.Term, error) {
	if byPartsStack == nil {
		byPartsStack = guard.NewByPartsStack()
		defer func() { byPartsStack = nil }()
	}
	return integrateByParts(t, dt, byPartsStack)
}

func integrateByParts(t *term.Term, dt string, stack *guard.ByPartsStack) (*term.Term, error) {
	factors := t.Children
	if t.Group != term.CB {
		factors = []*term.Term{t}
	}
	u, dv, ok := pickLIATE(factors)
	if !ok {
		return nil, kernel.Stop(errNoLiateSplit.Error())
	}

	fp := t.BareFingerprint()
	if !stack.Push(fp) {
		return nil, cycleDetected
	}
	defer stack.Pop()

	du, err := differentiate.Diff(u, dt, 1)
	if err != nil {
		return nil, err
	}
	v, err := integrateDispatch(dv, dt)
	if err != nil {
		return nil, err
	}
	uv := kernel.Multiply(u, v)
	remaining := kernel.Multiply(du, v)

	remAnti, err := integrateDispatch(remaining, dt)
	if err != nil {
		if errors.Is(err, cycleDetected) {
			return resolveByPartsCycle(t, uv, remaining, dt)
		}
		return nil, err
	}
	return kernel.Multiply(term.NewNumber(t.Mult), kernel.Subtract(uv, remAnti)), nil
}

// resolveByPartsCycle closes the fixed-point loop for integrals like
// e^x*sin(x) dx: one more manual by-parts pass on `remaining` should land
// back on a constant multiple of the original integrand t, letting us solve
// I = uv - uv2 + c*I algebraically for I.
func resolveByPartsCycle(t, uv, remaining *term.Term, dt string) (*term.Term, error) {
	factors := remaining.Children
	if remaining.Group != term.CB {
		factors = []*term.Term{remaining}
	}
	u2, dv2, ok := pickLIATE(factors)
	if !ok {
		return nil, kernel.Stop("integrate: by-parts cycle did not resolve (no further LIATE split)")
	}
	du2, err := differentiate.Diff(u2, dt, 1)
	if err != nil {
		return nil, err
	}
	v2, err := integrateDispatch(dv2, dt)
	if err != nil {
		return nil, err
	}
	uv2 := kernel.Multiply(term.NewNumber(remaining.Mult), kernel.Multiply(u2, v2))
	remaining2 := kernel.Multiply(term.NewNumber(remaining.Mult), kernel.Multiply(du2, v2))

	bareT := t.ToUnitMultiplier()
	bareRemaining2 := remaining2.ToUnitMultiplier()
	if bareRemaining2.Fingerprint() != bareT.Fingerprint() {
		return nil, kernel.Stop("integrate: by-parts cycle did not close after one more pass")
	}
	c := remaining2.Multiplier().Div(t.Multiplier())
	coeff := term.One().Sub(c)
	if coeff.IsZero() {
		return nil, kernel.Stop("integrate: degenerate by-parts cycle (coefficient 1)")
	}
	numerator := kernel.Subtract(uv, uv2)
	return kernel.Multiply(term.NewNumber(t.Mult), kernel.Multiply(numerator, term.NewNumber(coeff.Invert()))), nil
}

// pickLIATE chooses which factor to differentiate (u) by Log > Inverse
// trig > Algebraic > Trig > Exponential priority, multiplying every other
// factor together as dv.
func pickLIATE(factors []*term.Term) (u, dv *term.Term, ok bool) {
	if len(factors) < 2 {
		return nil, nil, false
	}
	bestIdx, bestRank := 0, liateRank(factors[0])
	for i := 1; i < len(factors); i++ {
		if r := liateRank(factors[i]); r < bestRank {
			bestIdx, bestRank = i, r
		}
	}
	u = factors[bestIdx]
	rest := otherFactors(factors, bestIdx)
	return u, factorsToProduct(rest), true
}

func liateRank(f *term.Term) int {
	switch {
	case f.Group == term.FN && f.Fname == term.LOG:
		return 0
	case f.Group == term.FN && (pattern.InInverseTrig(f.Fname) || pattern.InInverseHTrig(f.Fname)):
		return 1
	case f.Group == term.S || f.Group == term.CP || f.Group == term.PL:
		return 2
	case f.Group == term.FN && (pattern.InTrig(f.Fname) || pattern.InHTrig(f.Fname)):
		return 3
	case f.Group == term.EX && f.BaseT.IsE():
		return 4
	default:
		return 5
	}
}
