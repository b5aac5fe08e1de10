package kernel

import (
	"calculus/term"
)

// Add returns a + b, flattening nested sums and merging like addends by
// structural fingerprint (ignoring multiplier).
func Add(a, b *term.Term) *term.Term {
	addends := append(flattenAddends(a), flattenAddends(b)...)
	order := make([]string, 0, len(addends))
	sums := make(map[string]*term.Term, len(addends))
	for _, t := range addends {
		if t.Group == term.N && t.Multiplier().IsZero() {
			continue
		}
		key := t.BareFingerprint()
		if existing, ok := sums[key]; ok {
			existing.Mult = existing.Mult.Add(t.Mult)
		} else {
			bare := t.Clone()
			sums[key] = bare
			order = append(order, key)
		}
	}
	var kept []*term.Term
	for _, key := range order {
		t := sums[key]
		if t.Mult.IsZero() {
			continue
		}
		kept = append(kept, t)
	}
	switch len(kept) {
	case 0:
		return term.NewInt(0)
	case 1:
		return kept[0]
	default:
		term.SortFactors(kept)
		return term.NewCP(kept...)
	}
}

// flattenAddends expands a into its list of addends, distributing a CP's
// global multiplier into each child so two sums can be merged term-by-term.
func flattenAddends(t *term.Term) []*term.Term {
	if t.Group == term.CP && t.PowR.IsOne() {
		var out []*term.Term
		for _, c := range t.Children {
			cc := c.Clone()
			cc.Mult = cc.Mult.Mul(t.Mult)
			out = append(out, flattenAddends(cc)...)
		}
		return out
	}
	if t.Group == term.N && t.Mult.IsZero() {
		return nil
	}
	return []*term.Term{t.Clone()}
}

// Subtract returns a - b.
func Subtract(a, b *term.Term) *term.Term {
	return Add(a, b.Negate())
}

// Multiply returns a * b, flattening nested products, pulling every
// factor's own multiplier out into one global scalar, and combining
// factors that share a structural base by adding their exponents (the
// core/eval_arith.go EvalTimes combine-like-bases step).
func Multiply(a, b *term.Term) *term.Term {
	factors := append(flattenFactors(a), flattenFactors(b)...)
	scalar := term.One()

	type entry struct {
		base *term.Term
		pow  term.Rational
		expT *term.Term
		isEX bool
	}
	order := make([]string, 0, len(factors))
	entries := make(map[string]*entry, len(factors))

	for _, f := range factors {
		if f.Group == term.N {
			if f.Mult.IsZero() {
				return term.NewInt(0)
			}
			scalar = scalar.Mul(f.Mult)
			continue
		}
		scalar = scalar.Mul(f.Mult)
		key := combinableKey(f)
		if e, ok := entries[key]; ok {
			if e.isEX {
				e.expT = Add(e.expT, f.PowT)
			} else {
				p, _ := f.Power()
				e.pow = e.pow.Add(p)
			}
			continue
		}
		bare := f.ToUnitMultiplier()
		if f.Group == term.EX {
			entries[key] = &entry{base: bare.BaseT.Clone(), expT: bare.PowT.Clone(), isEX: true}
		} else {
			p, _ := f.Power()
			bare.PowR = term.One()
			entries[key] = &entry{base: bare, pow: p}
		}
		order = append(order, key)
	}

	var structural []*term.Term
	for _, key := range order {
		e := entries[key]
		if e.isEX {
			if isZeroTerm(e.expT) {
				continue
			}
			structural = append(structural, term.NewEX(e.base, e.expT))
			continue
		}
		if e.pow.IsZero() {
			continue
		}
		built := e.base.Clone()
		built.PowR = e.pow
		structural = append(structural, built)
	}

	if len(structural) == 0 {
		return term.NewNumber(scalar)
	}
	term.SortFactors(structural)
	var result *term.Term
	if len(structural) == 1 {
		result = structural[0]
	} else {
		result = term.NewCB(structural...)
	}
	result.Mult = result.Mult.Mul(scalar)
	result.UpdateHash()
	return result
}

// flattenFactors expands t into its factor list, pulling a CB's own
// multiplier out as a standalone numeric factor.
func flattenFactors(t *term.Term) []*term.Term {
	if t.Group == term.CB && t.PowR.IsOne() {
		var out []*term.Term
		scalar := t.Mult
		for _, c := range t.Children {
			out = append(out, flattenFactors(c)...)
		}
		if !scalar.IsOne() {
			out = append([]*term.Term{term.NewNumber(scalar)}, out...)
		}
		return out
	}
	return []*term.Term{t.Clone()}
}

// combinableKey identifies factors sharing a base so Multiply can combine
// their exponents: for EX it is the base's fingerprint (exponents are what
// get added); for everything else it is the bare (Mult=1, power=1)
// structural fingerprint.
func combinableKey(f *term.Term) string {
	if f.Group == term.EX {
		return "EX:" + f.BaseT.Fingerprint()
	}
	bare := f.ToUnitMultiplier()
	bare.PowR = term.One()
	return bare.Fingerprint()
}

func isZeroTerm(t *term.Term) bool {
	return t != nil && t.Group == term.N && t.Mult.IsZero()
}

// Divide returns a / b. Returns ErrDivisionByZero if b is exactly zero.
func Divide(a, b *term.Term) (*term.Term, error) {
	if b.Group == term.N && b.Mult.IsZero() {
		return nil, ErrDivisionByZero
	}
	return Multiply(a, b.Invert()), nil
}

// ratPowInt raises r to the integer power n (n may be negative).
func ratPowInt(r term.Rational, n int64) term.Rational {
	neg := n < 0
	if neg {
		n = -n
	}
	result := term.One()
	for i := int64(0); i < n; i++ {
		result = result.Mul(r)
	}
	if neg {
		result = result.Invert()
	}
	return result
}

// Pow raises a to the rational power p, combining exponents on the
// structural part and, for integer p, computing the multiplier's power
// exactly; a non-integer power applied to a non-unit multiplier splits off
// a numeric surd/EX factor for the multiplier (core/eval_arith.go EvalPower).
func Pow(a *term.Term, p term.Rational) *term.Term {
	if p.IsZero() {
		return term.NewInt(1)
	}
	if p.IsOne() {
		return a.Clone()
	}
	if a.Group == term.N {
		return numPow(a.Mult, p)
	}
	if a.Group == term.EX {
		c := a.Clone()
		newExp := Multiply(c.PowT, term.NewNumber(p))
		c.PowT = newExp
		if p.IsInt() {
			c.Mult = ratPowInt(c.Mult, p.Int64())
			c.UpdateHash()
			return c
		}
		bare := a.ToUnitMultiplier()
		bare.PowT = newExp
		if a.Mult.IsOne() {
			return bare
		}
		return Multiply(numPow(a.Mult, p), bare)
	}

	if p.IsInt() {
		n := p.Int64()
		c := a.Clone()
		c.Mult = ratPowInt(a.Mult, n)
		c.PowR = c.PowR.Mul(p)
		c.UpdateHash()
		return c
	}
	bare := a.ToUnitMultiplier()
	bare.PowR = bare.PowR.Mul(p)
	if a.Mult.IsOne() {
		return bare
	}
	return Multiply(numPow(a.Mult, p), bare)
}

// numPow raises the numeric scalar r to power p, producing a group-N result
// for an integer power, or falling back to an EX wrapper (exact rational
// base, symbolic fractional power) otherwise. The kernel does not attempt
// general surd extraction (e.g. reducing sqrt(8) to 2*sqrt(2)).
func numPow(r term.Rational, p term.Rational) *term.Term {
	if p.IsInt() {
		n := p.Int64()
		if r.IsZero() && n < 0 {
			// Sign is ambiguous without knowing which side zero is
			// approached from; callers that care (limit's parity rule
			// for odd/even negative powers) re-derive it themselves.
			return term.Infinity(0)
		}
		return term.NewNumber(ratPowInt(r, n))
	}
	return term.NewEX(term.NewNumber(r), term.NewNumber(p))
}

// Expand distributes products over sums and expands integer powers of
// sums, recursively, mirroring core/eval_expand.go's worklist expansion.
func Expand(t *term.Term) *term.Term {
	if t == nil {
		return nil
	}
	switch t.Group {
	case term.CP, term.PL:
		if t.PowR.IsInt() && t.PowR.Sign() > 0 && !t.PowR.IsOne() {
			n := t.PowR.Int64()
			base := t.ToUnitMultiplier()
			base.PowR = term.One()
			addends := flattenAddends(Expand(base))
			acc := term.NewInt(1)
			for i := int64(0); i < n; i++ {
				// Distribute addend by addend: Multiply on the whole sum
				// would merge the repeated base back into base^k.
				next := term.NewInt(0)
				for _, a := range flattenAddends(acc) {
					for _, b := range addends {
						next = Add(next, Multiply(a, b))
					}
				}
				acc = next
			}
			return Expand(Multiply(numPow(t.Mult, t.PowR), acc))
		}
		acc := term.NewInt(0)
		for _, c := range t.Children {
			acc = Add(acc, Expand(c))
		}
		acc = Multiply(term.NewNumber(t.Mult), acc)
		if !t.PowR.IsOne() {
			acc = Pow(acc, t.PowR)
		}
		return acc
	case term.CB:
		for i, c := range t.Children {
			ec := Expand(c)
			if ec.Group == term.CP || ec.Group == term.PL {
				rest := make([]*term.Term, 0, len(t.Children)-1)
				for j, cc := range t.Children {
					if j != i {
						rest = append(rest, Expand(cc))
					}
				}
				var restTerm *term.Term
				if len(rest) == 0 {
					restTerm = term.NewInt(1)
				} else {
					restTerm = term.NewCB(rest...)
				}
				acc := term.NewInt(0)
				for _, addend := range ec.Children {
					scaled := addend.Clone()
					scaled.Mult = scaled.Mult.Mul(ec.Mult)
					acc = Add(acc, Multiply(scaled, restTerm))
				}
				result := Multiply(term.NewNumber(t.Mult), acc)
				if !t.PowR.IsOne() {
					result = Pow(result, t.PowR)
				}
				return Expand(result)
			}
		}
		acc := term.NewNumber(t.Mult)
		for _, c := range t.Children {
			acc = Multiply(acc, Expand(c))
		}
		if !t.PowR.IsOne() {
			acc = Pow(acc, t.PowR)
		}
		return acc
	case term.FN:
		args := make([]*term.Term, len(t.Args))
		for i, a := range t.Args {
			args[i] = Expand(a)
		}
		c := t.Clone()
		c.Args = args
		c.UpdateHash()
		return c
	case term.EX:
		c := t.Clone()
		c.BaseT = Expand(c.BaseT)
		c.PowT = Expand(c.PowT)
		c.UpdateHash()
		return c
	default:
		return t.Clone()
	}
}

// SymFunction builds an uninterpreted function application fname(args...),
// used by strategies that need to emit e.g. a Fresnel or erf symbol without
// importing those packages (avoids an import cycle with package pattern).
func SymFunction(fname string, args ...*term.Term) *term.Term {
	return term.NewFunction(fname, args...)
}

// Sqrt builds sqrt(a).
func Sqrt(a *term.Term) *term.Term {
	return term.NewFunction("sqrt", a)
}

// Clone is a re-export of (*term.Term).Clone for callers that only import
// package kernel.
func Clone(t *term.Term) *term.Term {
	return t.Clone()
}
