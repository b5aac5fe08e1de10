package integrate

import (
	"calculus/guard"
	"calculus/kernel"
	"calculus/pattern"
	"calculus/term"
)

// sinCosExponents rewrites a single-argument circular-trig factor raised
// to an integer power into its combined (sin exponent, cos exponent) form
// via the reciprocal identities: tan^p is (sin^p, cos^-p), cot^p is
// (sin^-p, cos^p), sec^p is (cos^-p), csc^p is (sin^-p). ok is false for
// anything else (non-circular, multi-arg, or non-integer power).
func sinCosExponents(f *term.Term) (m, n int64, ok bool) {
	if f.Group != term.FN || len(f.Args) != 1 || !f.PowR.IsInt() {
		return 0, 0, false
	}
	p := f.PowR.Int64()
	switch f.Fname {
	case "sin":
		return p, 0, true
	case "cos":
		return 0, p, true
	case "tan":
		return p, -p, true
	case "cot":
		return -p, p, true
	case "sec":
		return 0, -p, true
	case "csc":
		return -p, 0, true
	default:
		return 0, 0, false
	}
}

// algebraicTrigPair closes the four unit-power algebraic-simplification
// combinations directly: tan*sec reduces to d/dx[sec], and sec*cos,
// sin*csc cancel to the constant 1.
func algebraicTrigPair(f1, f2 *term.Term, arg *term.Term, coeff *term.Term, dt string) (*term.Term, bool) {
	if !f1.PowR.IsOne() || !f2.PowR.IsOne() {
		return nil, false
	}
	pair := [2]string{f1.Fname, f2.Fname}
	switch pair {
	case [2]string{"tan", "sec"}, [2]string{"sec", "tan"}:
		sec := term.NewFunction("sec", arg)
		return kernel.Multiply(sec, kernel.Pow(coeff, term.MinusOne())), true
	case [2]string{"sec", "cos"}, [2]string{"cos", "sec"}, [2]string{"sin", "csc"}, [2]string{"csc", "sin"}:
		return term.NewSymbol(dt), true
	default:
		return nil, false
	}
}

// tryTrigProductSameArg handles a two-factor product of circular trig
// functions sharing one linear argument: the four algebraic
// simplifications (tan*sec, sec*cos, sin*csc and their reverses), then the
// general sin^m(arg)*cos^n(arg) parity dispatch (odd power peels via
// u-substitution, both-even expands via the half-angle identity).
func tryTrigProductSameArg(factors []*term.Term, dt string) (*term.Term, bool) {
	if len(factors) != 2 {
		return nil, false
	}
	f1, f2 := factors[0], factors[1]
	if f1.Group != term.FN || f2.Group != term.FN || f1.Fname == f2.Fname {
		return nil, false
	}
	if len(f1.Args) != 1 || len(f2.Args) != 1 || !pattern.InTrig(f1.Fname) || !pattern.InTrig(f2.Fname) {
		return nil, false
	}
	if !f1.Args[0].Equals(f2.Args[0]) {
		return nil, false
	}
	arg := f1.Args[0]
	a, _, _, _, ok := pattern.DecomposeArg(arg, dt)
	if !ok {
		return nil, false
	}

	scalar := f1.Multiplier().Mul(f2.Multiplier())

	if result, ok := algebraicTrigPair(f1, f2, arg, a, dt); ok {
		return kernel.Multiply(term.NewNumber(scalar), result), true
	}

	m1, n1, ok1 := sinCosExponents(f1)
	m2, n2, ok2 := sinCosExponents(f2)
	if !ok1 || !ok2 {
		return nil, false
	}
	m, n := m1+m2, n1+n2

	if m+n == 0 {
		if m == 0 {
			return kernel.Multiply(term.NewNumber(scalar), term.NewSymbol(dt)), true
		}
		tanPow := term.NewFunction("tan", arg)
		tanPow.PowR = term.RatInt(m)
		r, err := integrateFunction(tanPow, dt)
		if err != nil {
			return nil, false
		}
		return kernel.Multiply(term.NewNumber(scalar), r), true
	}
	if m < 0 || n < 0 {
		return nil, false
	}

	switch {
	case m%2 != 0:
		r, ok := integrateOddSinTimesCos(arg, m, n, a, dt)
		if !ok {
			return nil, false
		}
		return kernel.Multiply(term.NewNumber(scalar), r), true
	case n%2 != 0:
		r, ok := integrateOddCosTimesSin(arg, m, n, a, dt)
		if !ok {
			return nil, false
		}
		return kernel.Multiply(term.NewNumber(scalar), r), true
	default:
		r, ok := integrateBothEvenSinCos(arg, m, n, dt)
		if !ok {
			return nil, false
		}
		return kernel.Multiply(term.NewNumber(scalar), r), true
	}
}

// integrateOddSinTimesCos integrates sin(arg)^m*cos(arg)^n dx for odd m via
// u = cos(arg): peel one sin factor to pair with d(cos), expand the
// remaining even power of sin as a polynomial in u, and integrate
// termwise.
func integrateOddSinTimesCos(arg *term.Term, m, n int64, coeff *term.Term, dt string) (*term.Term, bool) {
	u := guard.GetU()
	uSym := term.NewSymbol(u)
	base := kernel.Subtract(term.NewInt(1), kernel.Pow(uSym, term.RatInt(2)))
	reduced := kernel.Expand(kernel.Pow(base, term.RatInt((m-1)/2)))
	withCos := kernel.Expand(kernel.Multiply(reduced, kernel.Pow(uSym, term.RatInt(n))))
	anti, err := integrateDispatch(withCos, u)
	if err != nil {
		return nil, false
	}
	back := anti.SubVar(u, term.NewFunction("cos", arg))
	result := kernel.Multiply(kernel.Pow(coeff, term.MinusOne()).Negate(), back)
	return result, true
}

// integrateOddCosTimesSin is the symmetric case for odd n, substituting
// u = sin(arg).
func integrateOddCosTimesSin(arg *term.Term, m, n int64, coeff *term.Term, dt string) (*term.Term, bool) {
	u := guard.GetU()
	uSym := term.NewSymbol(u)
	base := kernel.Subtract(term.NewInt(1), kernel.Pow(uSym, term.RatInt(2)))
	reduced := kernel.Expand(kernel.Pow(base, term.RatInt((n-1)/2)))
	withSin := kernel.Expand(kernel.Multiply(reduced, kernel.Pow(uSym, term.RatInt(m))))
	anti, err := integrateDispatch(withSin, u)
	if err != nil {
		return nil, false
	}
	back := anti.SubVar(u, term.NewFunction("sin", arg))
	result := kernel.Multiply(kernel.Pow(coeff, term.MinusOne()), back)
	return result, true
}

// integrateBothEvenSinCos handles sin(arg)^m*cos(arg)^n for both exponents
// even (m,n >= 0) via the half-angle identities sin^2, cos^2 = (1 ∓
// cos(2*arg))/2, expanding the resulting polynomial in cos(2*arg) and
// integrating it directly (2*arg is still linear in dt, so the existing
// DecomposeArg-based function dispatch closes it without further help).
func integrateBothEvenSinCos(arg *term.Term, m, n int64, dt string) (*term.Term, bool) {
	half := term.RatFrac(1, 2)
	sinPart := term.NewInt(1)
	if m > 0 {
		sinSq := pattern.SinSquaredHalfAngle(arg, half)
		sinPart = kernel.Expand(kernel.Pow(sinSq, term.RatInt(m/2)))
	}
	cosPart := term.NewInt(1)
	if n > 0 {
		cosSq := pattern.CosSquaredHalfAngle(arg, half)
		cosPart = kernel.Expand(kernel.Pow(cosSq, term.RatInt(n/2)))
	}
	product := kernel.Expand(kernel.Multiply(sinPart, cosPart))
	r, err := integrateDispatch(product, dt)
	if err != nil {
		return nil, false
	}
	return r, true
}

// tryTrigProductToSum handles a two-factor circular-trig product via the
// product-to-sum identity, which covers both differing linear arguments
// and the same-argument sin*sin/cos*cos case (tryTrigProductSameArg
// handles same-argument mixed pairs instead).
func tryTrigProductToSum(factors []*term.Term, dt string) (*term.Term, bool) {
	rewritten, ok := pattern.TrigTransform(factors)
	if !ok {
		return nil, false
	}
	r, err := integrateDispatch(rewritten, dt)
	if err != nil {
		return nil, false
	}
	return r, true
}

// tryCPLeadingFactor implements the CP-leading-factor rows of the product
// table: a product of two or more factors where at least one is a CP
// (composite sum) raised to a positive integer power expands that factor
// and distributes the remaining factors across its addends before
// recursing. This covers both the three-or-more-factor case and the
// CP,CP-both-powers-positive row; a CP factor with a negative or
// fractional power is left alone here since expanding it does not
// distribute the way a positive integer power does, so those shapes fall
// through to tryPartialFractions, tryUSub, or by-parts instead.
func tryCPLeadingFactor(dep *term.Term, dt string) (*term.Term, bool) {
	factors := dep.Children
	if len(factors) < 2 {
		return nil, false
	}
	cpIdx := -1
	for i, f := range factors {
		if f.Group == term.CP && f.PowR.IsInt() && f.PowR.Sign() > 0 {
			cpIdx = i
			break
		}
	}
	if cpIdx < 0 {
		return nil, false
	}
	rest := otherFactors(factors, cpIdx)
	restTerm := factorsToProduct(rest)
	expanded := kernel.Expand(kernel.Multiply(factors[cpIdx], restTerm))
	r, err := integrateDispatch(expanded, dt)
	if err != nil {
		return nil, false
	}
	return r, true
}

// tryAllFnTransform implements the all-function factor-list case: when
// every factor in the product is a function application, rewrite each
// through FnTransform (tan/cot/sec/csc and their hyperbolic analogues,
// which have a simpler sin/cos or sinh/cosh ratio form), re-multiply,
// expand, and recurse.
func tryAllFnTransform(dep *term.Term, dt string) (*term.Term, bool) {
	factors := dep.Children
	for _, f := range factors {
		if f.Group != term.FN {
			return nil, false
		}
	}
	changed := false
	acc := term.NewInt(1)
	for _, f := range factors {
		if rewritten, ok := pattern.FnTransform(f); ok {
			acc = kernel.Multiply(acc, rewritten)
			changed = true
			continue
		}
		acc = kernel.Multiply(acc, f)
	}
	if !changed {
		return nil, false
	}
	expanded := kernel.Expand(acc)
	r, err := integrateDispatch(expanded, dt)
	if err != nil {
		return nil, false
	}
	return r, true
}

// tryTrigTransformFallback is the default last resort: find any two
// circular-trig FN factors in the product, fold them through TrigTransform,
// multiply the rewritten pair back into whatever factors remain, expand,
// and recurse. Tried only after partial fractions, u-substitution, the
// dedicated trig-product rules, and LIATE by-parts have all failed.
func tryTrigTransformFallback(dep *term.Term, dt string) (*term.Term, bool) {
	factors := dep.Children
	for i := 0; i < len(factors); i++ {
		for j := i + 1; j < len(factors); j++ {
			if factors[i].Group != term.FN || factors[j].Group != term.FN {
				continue
			}
			pair := []*term.Term{factors[i], factors[j]}
			rewritten, ok := pattern.TrigTransform(pair)
			if !ok {
				continue
			}
			rest := make([]*term.Term, 0, len(factors)-2)
			for k, f := range factors {
				if k != i && k != j {
					rest = append(rest, f.Clone())
				}
			}
			restTerm := factorsToProduct(rest)
			expanded := kernel.Expand(kernel.Multiply(rewritten, restTerm))
			r, err := integrateDispatch(expanded, dt)
			if err != nil {
				continue
			}
			return r, true
		}
	}
	return nil, false
}
