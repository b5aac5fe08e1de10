package kernel

import "calculus/term"

// CoeffFactor splits t into (scalar, structural-part-with-Mult=1), the
// service the integrator's "pull the constant out front" step needs.
func CoeffFactor(t *term.Term) (term.Rational, *term.Term) {
	return t.Multiplier(), t.ToUnitMultiplier()
}

// Degree returns the highest integer power of dt in t's symbol, sum and
// product structure; function arguments, exponents and a sum's own power
// contribute nothing. CB contributes the sum of its factors' degrees
// (x * x^2 has degree 3).
func Degree(t *term.Term, dt string) int {
	if t == nil {
		return 0
	}
	switch t.Group {
	case term.S:
		if t.Val == dt && t.PowR.IsInt() {
			return int(t.PowR.Int64())
		}
		return 0
	case term.CP, term.PL:
		best := 0
		for _, c := range t.Children {
			if d := Degree(c, dt); d > best {
				best = d
			}
		}
		return best
	case term.CB:
		sum := 0
		for _, c := range t.Children {
			sum += Degree(c, dt)
		}
		return sum
	default:
		return 0
	}
}

// SqComplete completes the square of a*x^2+b*x+c, returning (h, k) such
// that a*x^2+b*x+c == a*(x-h)^2+k. Used by the CP quadratic integration
// rule for a non-perfect-square quadratic, ahead of a trig or hyperbolic
// substitution.
func SqComplete(a, b, c term.Rational) (h, k term.Rational) {
	two := term.RatInt(2)
	four := term.RatInt(4)
	h = b.Neg().Div(a.Mul(two))
	k = c.Sub(b.Mul(b).Div(a.Mul(four)))
	return h, k
}

// FactorInner attempts to factor a degree-2 single-variable CP
// (a*x^2+b*x+c) into two linear CP factors when the discriminant is a
// perfect-square rational. Returns the single unfactored input term when
// it cannot factor (higher degree, multivariate, or irrational roots);
// callers use len(result) == 1 to detect "doesn't factor".
func FactorInner(t *term.Term, dt string) []*term.Term {
	if t.Group != term.CP || Degree(t, dt) != 2 {
		return []*term.Term{t}
	}
	a, b, c, ok := quadraticCoeffs(t, dt)
	if !ok {
		return []*term.Term{t}
	}
	disc := b.Mul(b).Sub(term.RatInt(4).Mul(a).Mul(c))
	root, ok := exactSqrt(disc)
	if !ok {
		return []*term.Term{t}
	}
	two := term.RatInt(2)
	r1 := b.Neg().Add(root).Div(two.Mul(a))
	r2 := b.Neg().Sub(root).Div(two.Mul(a))
	x := term.NewSymbol(dt)
	f1 := Add(x, term.NewNumber(r1.Neg()))
	f2 := Add(x, term.NewNumber(r2.Neg()))
	lead := term.NewNumber(a)
	return []*term.Term{lead, f1, f2}
}

// quadraticCoeffs extracts (a, b, c) from a CP known to have degree 2 in
// dt; ok is false if t has a shape this simple extractor doesn't handle
// (e.g. an extra unrelated variable).
func quadraticCoeffs(t *term.Term, dt string) (a, b, c term.Rational, ok bool) {
	a, b, c = term.Zero(), term.Zero(), term.Zero()
	for _, addend := range t.Children {
		scaled := addend.Clone()
		scaled.Mult = scaled.Mult.Mul(t.Mult)
		switch scaled.Group {
		case term.N:
			c = c.Add(scaled.Mult)
		case term.S:
			if scaled.Val != dt {
				return a, b, c, false
			}
			switch {
			case scaled.PowR.IsOne():
				b = b.Add(scaled.Mult)
			case scaled.PowR.Equal(term.RatInt(2)):
				a = a.Add(scaled.Mult)
			default:
				return a, b, c, false
			}
		default:
			return a, b, c, false
		}
	}
	if a.IsZero() {
		return a, b, c, false
	}
	return a, b, c, true
}

// exactSqrt returns the exact rational square root of r when it is a
// perfect square of rationals, else ok is false.
func exactSqrt(r term.Rational) (term.Rational, bool) {
	if r.Sign() < 0 {
		return term.Zero(), false
	}
	n := r.Num()
	d := r.Den()
	sn := isqrt(n.Int64())
	sd := isqrt(d.Int64())
	if sn < 0 || sd < 0 {
		return term.Zero(), false
	}
	if sn*sn != n.Int64() || sd*sd != d.Int64() {
		return term.Zero(), false
	}
	return term.RatFrac(sn, sd), true
}

// ExactRationalSqrt is the exported form of exactSqrt, for strategies
// outside this package that need to test whether a rational is a perfect
// square (e.g. the quartic factorization's repeated square root).
func ExactRationalSqrt(r term.Rational) (term.Rational, bool) {
	return exactSqrt(r)
}

// ExactRationalFourthRoot reports whether r is a perfect fourth power of a
// rational, returning that root.
func ExactRationalFourthRoot(r term.Rational) (term.Rational, bool) {
	sq, ok := exactSqrt(r)
	if !ok {
		return term.Zero(), false
	}
	return exactSqrt(sq)
}

func isqrt(n int64) int64 {
	if n < 0 {
		return -1
	}
	if n == 0 {
		return 0
	}
	lo, hi := int64(0), n
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if mid <= n/mid {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// PartFrac decomposes num/den into partial fractions by the cover-up
// (residue) method, valid whenever den's factors are n distinct linear
// roots of dt: A_i = num(r_i) / prod_{j != i}(r_i - r_j). Returns the
// single unsplit ratio when den doesn't factor into distinct linear roots
// (irreducible quadratic factors, repeated roots); callers fall through to
// another strategy in that case.
func PartFrac(num, den *term.Term, dt string) ([]*term.Term, bool) {
	factors := FactorInner(den, dt)
	if len(factors) < 3 {
		return nil, false
	}
	lead := factors[0]
	roots := make([]term.Rational, 0, len(factors)-1)
	for _, f := range factors[1:] {
		r, ok := linearRoot(f, dt)
		if !ok {
			return nil, false
		}
		roots = append(roots, r)
	}
	numFn := func(x term.Rational) term.Rational {
		v := num.SubVar(dt, term.NewNumber(x))
		s := Simplify(v)
		if s.Group != term.N {
			return term.Zero()
		}
		return s.Mult
	}
	var out []*term.Term
	for i, ri := range roots {
		denomProd := term.One()
		for j, rj := range roots {
			if i == j {
				continue
			}
			denomProd = denomProd.Mul(ri.Sub(rj))
		}
		coeff := numFn(ri).Div(denomProd.Mul(lead.Mult))
		x := term.NewSymbol(dt)
		linear := Add(x, term.NewNumber(ri.Neg()))
		out = append(out, Multiply(term.NewNumber(coeff), linear.Invert()))
	}
	return out, true
}

// linearRoot extracts r such that f == x - r for a CP factor x + k.
func linearRoot(f *term.Term, dt string) (term.Rational, bool) {
	if f.Group == term.S && f.Val == dt && f.PowR.IsOne() {
		return term.Zero(), true
	}
	if f.Group != term.CP {
		return term.Zero(), false
	}
	k := term.Zero()
	sawVar := false
	for _, c := range f.Children {
		scaled := c.Clone()
		scaled.Mult = scaled.Mult.Mul(f.Mult)
		switch {
		case scaled.Group == term.N:
			k = k.Add(scaled.Mult)
		case scaled.Group == term.S && scaled.Val == dt && scaled.PowR.IsOne() && scaled.Mult.IsOne():
			sawVar = true
		default:
			return term.Zero(), false
		}
	}
	if !sawVar {
		return term.Zero(), false
	}
	return k.Neg(), true
}

// Simplify recursively rebuilds t through Add/Multiply/Pow so structurally
// equal subterms merge and numeric subexpressions combine: the general
// re-normalize-after-substitution entry point, used by limit's
// direct-substitution step among others.
func Simplify(t *term.Term) *term.Term {
	if t == nil {
		return nil
	}
	switch t.Group {
	case term.N, term.S, term.P:
		return t.Clone()
	case term.FN:
		args := make([]*term.Term, len(t.Args))
		for i, a := range t.Args {
			args[i] = Simplify(a)
		}
		c := t.Clone()
		c.Args = args
		c.UpdateHash()
		return c
	case term.EX:
		base := Simplify(t.BaseT)
		exp := Simplify(t.PowT)
		if exp.Group == term.N {
			return Multiply(term.NewNumber(t.Mult), Pow(base, exp.Mult))
		}
		c := t.Clone()
		c.BaseT = base
		c.PowT = exp
		c.UpdateHash()
		return c
	case term.CP, term.PL:
		acc := term.NewInt(0)
		for _, c := range t.Children {
			acc = Add(acc, Simplify(c))
		}
		acc = Multiply(term.NewNumber(t.Mult), acc)
		if !t.PowR.IsOne() {
			acc = Pow(acc, t.PowR)
		}
		return acc
	case term.CB:
		acc := term.NewNumber(t.Mult)
		for _, c := range t.Children {
			acc = Multiply(acc, Simplify(c))
		}
		if !t.PowR.IsOne() {
			acc = Pow(acc, t.PowR)
		}
		return acc
	default:
		return t.Clone()
	}
}

// Factors returns t's simplified factor list (delegating to
// term.CollectSymbols after Simplify so like factors have already merged).
func Factors(t *term.Term) []*term.Term {
	return Simplify(t).CollectSymbols()
}
