package integrate

import (
	"calculus/guard"
	"calculus/kernel"
	"calculus/term"
)

// integrateCPPower handles a sum (CP) or partial-fraction list (PL) raised
// to a power other than 1: integer powers expand and integrate termwise,
// -1 on a quadratic or quartic denominator factors and closes via log or
// arctan forms, -1/2 on a quadratic dispatches the asinh/asin/acosh table,
// +1/2 (a bare square root) is left as an explicit strategy failure, and
// any other negative integer power reduces via the tan-substitution
// power-reduction formula.
func integrateCPPower(t *term.Term, dt string) (*term.Term, error) {
	p := t.PowR

	if p.IsInt() && p.Sign() > 0 {
		expanded := kernel.Expand(t)
		if expanded.Group != t.Group || !expanded.PowR.IsOne() {
			return integrateDispatch(expanded, dt)
		}
	}

	if p.IsNegOne() {
		return integrateInverseQuadratic(t, dt)
	}

	if t.Group == term.CP && degreeTwoIn(t, dt) {
		if p.Equal(term.RatFrac(-1, 2)) {
			return integrateSqrtQuadraticInverse(t, dt)
		}
		if p.Equal(term.RatFrac(1, 2)) {
			return nil, kernel.Stop("integrate: sqrt(quadratic) has no closed-form elementary antiderivative in this strategy table")
		}
		if p.IsInt() && p.Sign() < 0 {
			return integrateQuadraticPowerReduction(t, dt)
		}
	}

	return nil, kernel.Stop("integrate: unsupported power of a composite sum")
}

func degreeTwoIn(t *term.Term, dt string) bool {
	return kernel.Degree(t, dt) == 2
}

// integrateInverseQuadratic handles 1/(ax^2+bx+c) and the biquadratic
// 1/(ax^4+b): partial fractions into linear roots when the denominator
// factors over the rationals, the quartic split when it's a pure
// biquadratic with fourth-power coefficients, else complete the square and
// close with the arctan formula.
func integrateInverseQuadratic(t *term.Term, dt string) (*term.Term, error) {
	if kernel.Degree(t, dt) == 1 {
		// 1/(ax+b): plain log rule, lead coefficient divided out.
		bare := t.Clone()
		bare.Mult = term.One()
		bare.PowR = term.One()
		lead := term.Zero()
		for _, c := range bare.Children {
			if c.Group == term.S && c.Val == dt && c.PowR.IsOne() {
				lead = lead.Add(c.Mult)
			}
		}
		if lead.IsZero() {
			return nil, kernel.Stop("integrate: inverse of a linear sum with no plain dt term")
		}
		return kernel.Multiply(term.NewNumber(t.Mult), kernel.Multiply(term.NewNumber(lead.Invert()), term.NewFunction(term.LOG, bare.Abs()))), nil
	}

	if kernel.Degree(t, dt) == 4 && t.Group == term.CP {
		if result, ok := tryQuarticFactor(t, dt); ok {
			return result, nil
		}
	}

	if kernel.Degree(t, dt) != 2 || t.Group != term.CP {
		return nil, kernel.Stop("integrate: inverse of a non-quadratic, non-linear sum")
	}

	parts, ok := kernel.PartFrac(term.NewInt(1), t, dt)
	if ok {
		acc := term.NewInt(0)
		for _, part := range parts {
			r, err := integrateDispatch(part, dt)
			if err != nil {
				return nil, err
			}
			acc = kernel.Add(acc, r)
		}
		return kernel.Multiply(term.NewNumber(t.Mult), acc), nil
	}

	a, b, c, err := quadraticABC(t, dt)
	if err != nil {
		return nil, err
	}
	h, k := kernel.SqComplete(a, b, c)
	kOverA := k.Div(a)
	if kOverA.Sign() <= 0 {
		return nil, kernel.Stop("integrate: non-factoring quadratic with non-positive completed-square constant")
	}
	sqrtKA := term.NewFunction("sqrt", term.NewNumber(kOverA))
	shifted := kernel.Add(term.NewSymbol(dt), term.NewNumber(h.Neg()))
	arg := kernel.Multiply(shifted, kernel.Pow(sqrtKA, term.MinusOne()))
	coeff := kernel.Multiply(kernel.Pow(term.NewNumber(a), term.MinusOne()), kernel.Pow(sqrtKA, term.MinusOne()))
	result := kernel.Multiply(coeff, term.NewFunction("atan", arg))
	return kernel.Multiply(term.NewNumber(t.Mult), result), nil
}

// biquadraticAB extracts (a, b) from a*x^4+b: a degree-4 CP whose only
// addends are the x^4 term and a constant (no x^3, x^2, or x^1 term). ok is
// false for any other shape.
func biquadraticAB(t *term.Term, dt string) (a, b term.Rational, ok bool) {
	a, b = term.Zero(), term.Zero()
	bare := stripPower(t)
	for _, child := range bare.Children {
		ch := child.Clone()
		ch.Mult = ch.Mult.Mul(bare.Mult)
		switch {
		case ch.Group == term.S && ch.Val == dt && ch.PowR.Equal(term.RatInt(4)):
			a = a.Add(ch.Mult)
		case !ch.Contains(dt, true):
			b = b.Add(ch.Mult)
		default:
			return a, b, false
		}
	}
	if a.IsZero() {
		return a, b, false
	}
	return a, b, true
}

// tryQuarticFactor splits 1/(a*x^4+b) via
// a*x^4+b == (p*x^2+L*x+q)(p*x^2-L*x+q), where p = sqrt(a), q = sqrt(b),
// and L = sqrt(2)*fourthroot(a)*fourthroot(b), then integrates the
// resulting partial-fraction decomposition over the two irreducible
// quadratic factors directly (the log/arctan coefficients collapse to
// 1/(4qL) and 1/(4q) respectively; see DESIGN.md for the derivation).
// Applies only when a and b are both positive perfect fourth powers of
// rationals.
func tryQuarticFactor(t *term.Term, dt string) (*term.Term, bool) {
	a, b, ok := biquadraticAB(t, dt)
	if !ok || a.Sign() <= 0 || b.Sign() <= 0 {
		return nil, false
	}
	fourthA, ok := kernel.ExactRationalFourthRoot(a)
	if !ok {
		return nil, false
	}
	fourthB, ok := kernel.ExactRationalFourthRoot(b)
	if !ok {
		return nil, false
	}
	leadP, _ := kernel.ExactRationalSqrt(a)
	constQ, _ := kernel.ExactRationalSqrt(b)

	sqrt2 := term.NewFunction("sqrt", term.NewInt(2))
	crossCoeff := kernel.Multiply(sqrt2, term.NewNumber(fourthA.Mul(fourthB)))

	x := term.NewSymbol(dt)
	xSqTerm := term.NewSymbolPow(dt, term.RatInt(2))
	xSqTerm.Mult = leadP
	linTerm := kernel.Multiply(crossCoeff, x)
	constTerm := term.NewNumber(constQ)

	factorPlus := kernel.Add(kernel.Add(xSqTerm, linTerm), constTerm)
	factorMinus := kernel.Add(kernel.Subtract(xSqTerm, linTerm), constTerm)

	kConst := constQ.Div(term.RatInt(2))
	twiceP := leadP.Mul(term.RatInt(2))
	shiftPlus := kernel.Multiply(crossCoeff, kernel.Pow(term.NewNumber(twiceP), term.MinusOne())).Negate()
	shiftMinus := shiftPlus.Negate()

	atanPlus := arctanOverQuadratic(leadP, shiftPlus, kConst, dt)
	atanMinus := arctanOverQuadratic(leadP, shiftMinus, kConst, dt)

	logPlus := term.NewFunction(term.LOG, factorPlus.Abs())
	logMinus := term.NewFunction(term.LOG, factorMinus.Abs())

	fourQ := constQ.Mul(term.RatInt(4))
	logCoeff := kernel.Pow(kernel.Multiply(term.NewNumber(fourQ), crossCoeff), term.MinusOne())
	atanCoeff := term.NewNumber(term.One().Div(fourQ))

	logPart := kernel.Multiply(logCoeff, kernel.Subtract(logPlus, logMinus))
	atanPart := kernel.Multiply(atanCoeff, kernel.Add(atanPlus, atanMinus))

	result := kernel.Add(logPart, atanPart)
	return kernel.Multiply(term.NewNumber(t.Mult), result), true
}

// arctanOverQuadratic returns the antiderivative of
// 1/(leadP*(x-shift)^2+k), for positive leadP and k; shift may itself be
// an irrational term, as it is for the quartic split's two factors.
func arctanOverQuadratic(leadP term.Rational, shift *term.Term, k term.Rational, dt string) *term.Term {
	kOverA := k.Div(leadP)
	sqrtKA := term.NewFunction("sqrt", term.NewNumber(kOverA))
	x := term.NewSymbol(dt)
	shifted := kernel.Subtract(x, shift)
	arg := kernel.Multiply(shifted, kernel.Pow(sqrtKA, term.MinusOne()))
	coeff := kernel.Multiply(kernel.Pow(term.NewNumber(leadP), term.MinusOne()), kernel.Pow(sqrtKA, term.MinusOne()))
	return kernel.Multiply(coeff, term.NewFunction("atan", arg))
}

func quadraticABC(t *term.Term, dt string) (a, b, c term.Rational, err error) {
	a, b, c = term.Zero(), term.Zero(), term.Zero()
	for _, child := range t.Children {
		ch := child.Clone()
		ch.Mult = ch.Mult.Mul(t.Mult)
		switch {
		case ch.Group == term.S && ch.Val == dt && ch.PowR.Equal(term.RatInt(2)):
			a = a.Add(ch.Mult)
		case ch.Group == term.S && ch.Val == dt && ch.PowR.IsOne():
			b = b.Add(ch.Mult)
		case !ch.Contains(dt, true):
			c = c.Add(ch.Mult)
		default:
			return a, b, c, kernel.Stop("integrate: not a simple quadratic in " + dt)
		}
	}
	if a.IsZero() {
		return a, b, c, kernel.Stop("integrate: degenerate quadratic (zero leading coefficient)")
	}
	return a, b, c, nil
}

// integrateSqrtQuadraticInverse handles 1/sqrt(ax^2+bx+c): complete the
// square to a*(x-h)^2+k, then dispatch on the signs of a and k to the
// asinh (a>0,k>0), asin (a<0,k>0), or acosh (a>0,k<0) closed form. a<0,k<0
// has no real domain.
func integrateSqrtQuadraticInverse(t *term.Term, dt string) (*term.Term, error) {
	a, b, c, err := quadraticABC(stripPower(t), dt)
	if err != nil {
		return nil, err
	}
	h, k := kernel.SqComplete(a, b, c)
	shifted := kernel.Add(term.NewSymbol(dt), term.NewNumber(h.Neg()))

	switch {
	case a.Sign() > 0 && k.Sign() > 0:
		sqrtKA := term.NewFunction("sqrt", term.NewNumber(k.Div(a)))
		arg := kernel.Multiply(shifted, kernel.Pow(sqrtKA, term.MinusOne()))
		result := term.NewFunction("asinh", arg)
		coeff := kernel.Pow(term.NewNumber(a), term.RatFrac(-1, 2))
		return kernel.Multiply(term.NewNumber(t.Mult), kernel.Multiply(coeff, result)), nil
	case a.Sign() < 0 && k.Sign() > 0:
		negA := a.Neg()
		sqrtKA := term.NewFunction("sqrt", term.NewNumber(k.Div(negA)))
		arg := kernel.Multiply(shifted, kernel.Pow(sqrtKA, term.MinusOne()))
		result := term.NewFunction("asin", arg)
		coeff := kernel.Pow(term.NewNumber(negA), term.RatFrac(-1, 2))
		return kernel.Multiply(term.NewNumber(t.Mult), kernel.Multiply(coeff, result)), nil
	case a.Sign() > 0 && k.Sign() < 0:
		negK := k.Neg()
		sqrtNegKA := term.NewFunction("sqrt", term.NewNumber(negK.Div(a)))
		arg := kernel.Multiply(shifted, kernel.Pow(sqrtNegKA, term.MinusOne()))
		result := term.NewFunction("acosh", arg)
		coeff := kernel.Pow(term.NewNumber(a), term.RatFrac(-1, 2))
		return kernel.Multiply(term.NewNumber(t.Mult), kernel.Multiply(coeff, result)), nil
	default:
		return nil, kernel.Stop("integrate: sqrt(quadratic) has no real domain for this sign combination")
	}
}

// integrateQuadraticPowerReduction handles 1/(ax^2+bx+c)^m for integer
// m > 1 via the shifted-variable = sqrt(k/a)*tan(u) substitution (after
// completing the square to a*(x-h)^2+k), which reduces the integral to a
// multiple of cos(u)^(2(m-1)), closed by the existing sin/cos
// power-reduction formula. Requires k/a > 0; the opposite-sign case is not
// implemented.
func integrateQuadraticPowerReduction(t *term.Term, dt string) (*term.Term, error) {
	m := -t.PowR.Int64()
	a, b, c, err := quadraticABC(stripPower(t), dt)
	if err != nil {
		return nil, err
	}
	h, k := kernel.SqComplete(a, b, c)
	kOverA := k.Div(a)
	if kOverA.Sign() <= 0 {
		return nil, kernel.Stop("integrate: tan-substitution reduction requires a positive completed-square ratio")
	}

	u := guard.GetU()
	anti, err := reduceSinCos(false, 2*(m-1), u)
	if err != nil {
		return nil, err
	}
	scalar := kernel.Multiply(term.NewFunction("sqrt", term.NewNumber(kOverA)), kernel.Pow(term.NewNumber(k), term.RatInt(-m)))
	scaled := kernel.Multiply(scalar, anti)

	shifted := kernel.Add(term.NewSymbol(dt), term.NewNumber(h.Neg()))
	sqrtAK := term.NewFunction("sqrt", term.NewNumber(kOverA.Invert()))
	uValue := term.NewFunction("atan", kernel.Multiply(shifted, sqrtAK))
	back := scaled.SubVar(u, uValue)
	return kernel.Multiply(term.NewNumber(t.Mult), back), nil
}

func stripPower(t *term.Term) *term.Term {
	bare := t.Clone()
	bare.PowR = term.One()
	return bare
}
