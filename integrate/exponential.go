package integrate

import (
	"calculus/kernel"
	"calculus/pattern"
	"calculus/term"
)

// integrateExponential handles EX terms: e^(linear in dt) via the standard
// exponential rule, the one-off e^(e^x) closed in terms of Ei, the
// Gaussian k*e^(alpha*x^2) closed in terms of erf, and the general-base
// a^(linear in x) rule that divides through by ln(a).
func integrateExponential(t *term.Term, dt string) (*term.Term, error) {
	exp := t.PowT

	if t.BaseT.IsE() {
		if exp.Group == term.EX && exp.BaseT.IsE() && exp.PowR.IsOne() {
			ei := term.NewFunction("Ei", exp.Clone())
			return kernel.Multiply(term.NewNumber(t.Mult), ei), nil
		}
		if exp.Group == term.S && exp.Val == dt && exp.PowR.Equal(term.RatInt(2)) {
			return integrateGaussian(t, exp.Mult, dt)
		}
		a, _, _, _, ok := pattern.DecomposeArg(exp, dt)
		if !ok {
			return nil, kernel.Stop("integrate: exponent isn't linear in " + dt)
		}
		result := term.NewEX(term.NewSymbol("e"), exp)
		coeff := kernel.Pow(a, term.MinusOne())
		return kernel.Multiply(term.NewNumber(t.Mult), kernel.Multiply(coeff, result)), nil
	}

	if t.BaseT.Contains(dt, true) {
		return nil, kernel.Stop("integrate: exponential with a base depending on " + dt + " has no general elementary antiderivative")
	}
	a, _, _, _, ok := pattern.DecomposeArg(exp, dt)
	if !ok {
		return nil, kernel.Stop("integrate: exponent isn't linear in " + dt)
	}
	result := term.NewEX(t.BaseT.Clone(), exp)
	lnBase := term.NewFunction(term.LOG, t.BaseT.Clone())
	coeff := kernel.Pow(kernel.Multiply(a, lnBase), term.MinusOne())
	return kernel.Multiply(term.NewNumber(t.Mult), kernel.Multiply(coeff, result)), nil
}

// integrateGaussian closes k*e^(alpha*x^2) via
// k*sqrt(pi)*erf(sqrt(-alpha)*x) / (2*sqrt(-alpha)), valid for alpha < 0
// (the decaying case); alpha >= 0 has no real erf closed form here.
func integrateGaussian(t *term.Term, alpha term.Rational, dt string) (*term.Term, error) {
	if alpha.Sign() >= 0 {
		return nil, kernel.Stop("integrate: Gaussian closed form requires a negative exponent coefficient")
	}
	negAlpha := alpha.Neg()
	sqrtNegAlpha := term.NewFunction("sqrt", term.NewNumber(negAlpha))
	x := term.NewSymbol(dt)
	erf := term.NewFunction("erf", kernel.Multiply(sqrtNegAlpha, x))
	sqrtPi := term.NewFunction("sqrt", term.NewSymbol("pi"))
	numerator := kernel.Multiply(sqrtPi, erf)
	denom := kernel.Multiply(term.NewInt(2), sqrtNegAlpha)
	result := kernel.Multiply(kernel.Pow(denom, term.MinusOne()), numerator)
	return kernel.Multiply(term.NewNumber(t.Mult), result), nil
}
