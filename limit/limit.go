// Package limit computes symbolic limits via direct substitution,
// L'Hopital's rule, and a catalogue of boundary-case rules.
package limit

import (
	"calculus/differentiate"
	"calculus/guard"
	"calculus/kernel"
	"calculus/term"
)

const maxDivideIterations = 10

// Diverges returns the "full-infinity interval" result, represented as an
// interval(...) function application since Limit's signature returns a
// single *term.Term rather than a term.Vector (see DESIGN.md).
func Diverges() *term.Term {
	return Interval(term.Infinity(-1), term.Infinity(1))
}

// Interval builds a two-endpoint interval result term.
func Interval(lo, hi *term.Term) *term.Term {
	return term.NewFunction("interval", lo, hi)
}

func isInterval(t *term.Term) bool {
	return t != nil && t.Group == term.FN && t.Fname == "interval" && len(t.Args) == 2
}

func intervalBounds(t *term.Term) (lo, hi *term.Term) {
	return t.Args[0], t.Args[1]
}

// IsConvergent reports whether v is a definite value rather than the full
// divergent interval or an unresolved limit placeholder.
func IsConvergent(v *term.Term) bool {
	if v == nil {
		return false
	}
	if isInterval(v) {
		lo, hi := intervalBounds(v)
		return !(lo.IsInfinity && lo.InfSign < 0 && hi.IsInfinity && hi.InfSign > 0)
	}
	return !v.ContainsFunction("limit")
}

func isZero(t *term.Term) bool {
	return t != nil && t.Group == term.N && !t.IsInfinity && t.Mult.IsZero()
}

func isFiniteConstant(t *term.Term) bool {
	return t != nil && t.Group == term.N && !t.IsInfinity
}

func isInfiniteSigned(t *term.Term) bool {
	return t != nil && t.Group == term.N && t.IsInfinity && t.InfSign != 0
}

func signedInfinity(sign int) *term.Term {
	return term.Infinity(sign)
}

// Limit computes lim[x -> c] t, distributing over sums, trying direct
// substitution, then falling through to the numerator/denominator split
// and group-specific boundary rules. depth is the caller's recursion
// depth, purely advisory (the real bound is guard.LimitDepth).
func Limit(t *term.Term, x string, c *term.Term, depth int) (*term.Term, error) {
	if err := guard.LimitDepth.Enter(); err != nil {
		return Diverges(), nil
	}
	defer guard.LimitDepth.Leave()

	if t == nil {
		return term.NewInt(0), nil
	}
	if !t.Contains(x, true) {
		return t.Clone(), nil
	}

	if (t.Group == term.CP || t.Group == term.PL) && t.PowR.IsOne() {
		return limitAdditive(t, x, c, depth)
	}

	mult := t.Mult
	bare := t.ToUnitMultiplier()

	substituted := kernel.Simplify(bare.SubVar(x, c))
	if isFiniteConstant(substituted) {
		return kernel.Multiply(term.NewNumber(mult), substituted), nil
	}
	if isInfiniteSigned(substituted) {
		return scaleResult(substituted, mult), nil
	}

	num, den := bare.GetNum(), bare.GetDenom()
	if !den.Contains(x, true) {
		r, err := limitByGroup(num, x, c, depth)
		if err != nil {
			return nil, err
		}
		if isInfiniteSigned(r) || isInterval(r) {
			return scaleResult(r, mult), nil
		}
		if !IsConvergent(r) {
			return r, nil
		}
		denVal := kernel.Simplify(den)
		full, err := kernel.Divide(r, denVal)
		if err != nil {
			return nil, err
		}
		return kernel.Multiply(term.NewNumber(mult), full), nil
	}

	r, err := Divide(num, den, x, c, depth)
	if err != nil {
		return nil, err
	}
	if isInfiniteSigned(r) || isInterval(r) {
		return scaleResult(r, mult), nil
	}
	if !IsConvergent(r) {
		return r, nil
	}
	return kernel.Multiply(term.NewNumber(mult), r), nil
}

// scaleResult rescales an infinite or interval limit result by mult,
// bypassing kernel.Multiply (which operates on the Mult field and doesn't
// understand the IsInfinity flag).
func scaleResult(r *term.Term, mult term.Rational) *term.Term {
	if mult.Sign() == 0 {
		return term.NewInt(0)
	}
	if isInterval(r) {
		lo, hi := intervalBounds(r)
		if mult.Sign() < 0 {
			return Interval(scaleResult(hi, mult), scaleResult(lo, mult))
		}
		return Interval(scaleResult(lo, mult), scaleResult(hi, mult))
	}
	if r.Group == term.N && r.IsInfinity {
		return term.Infinity(r.InfSign * mult.Sign())
	}
	return kernel.Multiply(term.NewNumber(mult), r)
}

func limitByGroup(t *term.Term, x string, c *term.Term, depth int) (*term.Term, error) {
	switch t.Group {
	case term.EX:
		return limitEX(t, x, c, depth)
	case term.FN:
		return limitFN(t, x, c, depth)
	case term.S:
		return limitS(t, x, c), nil
	case term.CB:
		return limitCB(t, x, c, depth)
	case term.CP, term.PL:
		return limitAdditive(t, x, c, depth)
	default:
		return kernel.Simplify(t.SubVar(x, c)), nil
	}
}

func limitAdditive(t *term.Term, x string, c *term.Term, depth int) (*term.Term, error) {
	acc := term.NewInt(0)
	sawPosInf, sawNegInf := false, false
	for _, child := range t.Children {
		scaled := child.Clone()
		scaled.Mult = scaled.Mult.Mul(t.Mult)
		r, err := Limit(scaled, x, c, depth+1)
		if err != nil {
			return nil, err
		}
		if isInfiniteSigned(r) {
			if r.InfSign > 0 {
				sawPosInf = true
			} else {
				sawNegInf = true
			}
		}
		acc = kernel.Add(acc, r)
	}
	if sawPosInf && sawNegInf {
		// Indeterminate infinity - infinity: differentiate the whole
		// additive expression once and retry.
		d, err := differentiate.Diff(t, x, 1)
		if err != nil {
			return nil, err
		}
		return Limit(d, x, c, depth+1)
	}
	return acc, nil
}

func limitS(t *term.Term, x string, c *term.Term) *term.Term {
	if t.Val != x {
		return kernel.Simplify(t.SubVar(x, c))
	}
	p := t.PowR
	if p.Sign() > 0 {
		return kernel.Simplify(t.SubVar(x, c))
	}
	if isZero(c) {
		n := p.Neg()
		if n.IsInt() && n.Int64()%2 == 0 {
			return term.Infinity(1)
		}
		return Diverges()
	}
	return kernel.Simplify(t.SubVar(x, c))
}

func limitEX(t *term.Term, x string, c *term.Term, depth int) (*term.Term, error) {
	baseLim, err := Limit(t.BaseT, x, c, depth+1)
	if err != nil {
		return nil, err
	}
	expLim, err := Limit(t.PowT, x, c, depth+1)
	if err != nil {
		return nil, err
	}
	if !IsConvergent(baseLim) || !IsConvergent(expLim) {
		return Diverges(), nil
	}
	if isFiniteConstant(baseLim) && isFiniteConstant(expLim) {
		return kernel.Pow(baseLim, expLim.Mult), nil
	}
	// (1+k/x)^x -> e^k shaped limits: detect a base that substitutes to
	// exactly 1 with an exponent diverging to infinity.
	if isFiniteConstant(baseLim) && baseLim.Mult.IsOne() && isInfiniteSigned(expLim) {
		return term.NewInt(1), nil
	}
	return term.NewEX(baseLim, expLim), nil
}

func limitFN(t *term.Term, x string, c *term.Term, depth int) (*term.Term, error) {
	if len(t.Args) != 1 {
		return Diverges(), nil
	}
	argLim, err := Limit(t.Args[0], x, c, depth+1)
	if err != nil {
		return nil, err
	}
	if isInterval(argLim) {
		lo, hi := intervalBounds(argLim)
		return Interval(term.NewFunction(t.Fname, lo), term.NewFunction(t.Fname, hi)), nil
	}
	if isFiniteConstant(argLim) {
		return kernel.Pow(term.NewFunction(t.Fname, argLim), t.PowR), nil
	}
	if isInfiniteSigned(argLim) {
		return boundaryCase(t.Fname, argLim.InfSign), nil
	}
	return Diverges(), nil
}

func boundaryCase(fname string, sign int) *term.Term {
	switch fname {
	case term.LOG:
		if sign > 0 {
			return term.Infinity(1)
		}
		return Diverges()
	case "sin", "cos":
		return Interval(term.NewNumber(term.RatInt(-1)), term.NewNumber(term.RatInt(1)))
	case "factorial":
		if sign > 0 {
			return term.Infinity(1)
		}
		return Diverges()
	default:
		return Diverges()
	}
}

func limitCB(t *term.Term, x string, c *term.Term, depth int) (*term.Term, error) {
	factors := append([]*term.Term(nil), t.Children...)
	term.SortFactors(factors)

	acc, err := Limit(factors[0], x, c, depth+1)
	if err != nil {
		return nil, err
	}
	for _, f := range factors[1:] {
		next, err := Limit(f, x, c, depth+1)
		if err != nil {
			return nil, err
		}
		acc, err = combineProductLimits(acc, next, x, c, depth)
		if err != nil {
			return nil, err
		}
		if !IsConvergent(acc) {
			return acc, nil
		}
	}
	return acc, nil
}

func combineProductLimits(a, b *term.Term, x string, c *term.Term, depth int) (*term.Term, error) {
	aZero, bZero := isZero(a), isZero(b)
	aInf, bInf := isInfiniteSigned(a), isInfiniteSigned(b)
	switch {
	case aInf && bInf:
		return term.Infinity(a.InfSign * b.InfSign), nil
	case aZero && bInf:
		// 0*infinity: invert the simpler (zero) factor and defer to
		// L'Hopital via Divide.
		return Divide(term.NewInt(1), a.Invert(), x, c, depth)
	case bZero && aInf:
		return Divide(term.NewInt(1), b.Invert(), x, c, depth)
	default:
		return kernel.Multiply(a, b), nil
	}
}

// Divide computes lim[x->c] f/g via L'Hopital's rule when f/g is
// indeterminate (0/0 or infinity/infinity), capped at maxDivideIterations
// applications.
func Divide(f, g *term.Term, x string, c *term.Term, depth int) (*term.Term, error) {
	if err := guard.LimitDepth.Enter(); err != nil {
		return Diverges(), nil
	}
	defer guard.LimitDepth.Leave()

	if shortcut, ok := absDenomShortcut(f, g, x, c); ok {
		return shortcut, nil
	}

	curF, curG := f, g
	for i := 0; i < maxDivideIterations; i++ {
		limF, err := Limit(curF, x, c, depth+1)
		if err != nil {
			return nil, err
		}
		limG, err := Limit(curG, x, c, depth+1)
		if err != nil {
			return nil, err
		}
		if isIndeterminate(limF, limG) {
			fPrime, err := differentiate.Diff(curF, x, 1)
			if err != nil {
				return nil, err
			}
			gPrime, err := differentiate.Diff(curG, x, 1)
			if err != nil {
				return nil, err
			}
			curF, curG = fPrime, gPrime
			continue
		}
		if isZero(limG) {
			if isFiniteConstant(limF) && limF.Mult.Sign() < 0 {
				return signedInfinity(-1), nil
			}
			return Diverges(), nil
		}
		if !IsConvergent(limF) || !IsConvergent(limG) {
			return Diverges(), nil
		}
		return kernel.Divide(limF, limG)
	}
	return Diverges(), nil
}

func isIndeterminate(f, g *term.Term) bool {
	if isZero(f) && isZero(g) {
		return true
	}
	if isInfiniteSigned(f) && isInfiniteSigned(g) {
		return true
	}
	return false
}

func absDenomShortcut(f, g *term.Term, x string, c *term.Term) (*term.Term, bool) {
	if f.Group != term.S || f.Val != x || g.Group != term.FN || g.Fname != "abs" || len(g.Args) != 1 {
		return nil, false
	}
	inner := g.Args[0]
	if inner.Group != term.S || inner.Val != x {
		return nil, false
	}
	if c.Group == term.N && c.IsInfinity {
		return signedInfinity(c.InfSign), true
	}
	if isZero(c) {
		return Interval(term.NewNumber(term.RatInt(-1)), term.NewNumber(term.RatInt(1))), true
	}
	return nil, false
}
