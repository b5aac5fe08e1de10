package term

// CollectSymbols flattens a CB (product) into its ordered factor list. For
// any other group it returns a single-element slice containing t itself.
func (t *Term) CollectSymbols() []*Term {
	if t.Group == CB {
		out := make([]*Term, len(t.Children))
		copy(out, t.Children)
		return out
	}
	return []*Term{t}
}

// Each iterates over t's immediate children (CP/PL/CB) or FN args, calling
// fn on each. flat additionally recurses into any CB/CP/PL child so fn
// sees only non-composite leaves.
func (t *Term) Each(fn func(*Term), flat bool) {
	if t == nil {
		return
	}
	var kids []*Term
	switch t.Group {
	case CP, PL, CB:
		kids = t.Children
	case FN:
		kids = t.Args
	case EX:
		kids = []*Term{t.BaseT, t.PowT}
	default:
		return
	}
	for _, c := range kids {
		if flat && c.IsComposite() {
			c.Each(fn, flat)
		} else {
			fn(c)
		}
	}
}

// Sub performs capture-safe *structural* substitution: every subtree of t
// that is structurally equal (by fingerprint) to old is replaced by a
// clone of replacement, with t's own multiplier folded in. Because this
// representation has no binding constructs (lambda/quantifiers),
// substitution can never capture a variable, so a plain tree rewrite is
// safe. This is the operation u-substitution uses to swap a matched
// subterm for the dummy u and, later, back-substitute u for its defining
// expression.
func (t *Term) Sub(old, replacement *Term) *Term {
	if t == nil {
		return nil
	}
	if t.Equals(old) {
		r := replacement.Clone()
		r.Mult = r.Mult.Mul(t.Mult)
		r.fpSet = false
		return r
	}
	c := t.Clone()
	switch c.Group {
	case FN:
		for i, a := range c.Args {
			c.Args[i] = a.Sub(old, replacement)
		}
	case EX:
		c.BaseT = c.BaseT.Sub(old, replacement)
		c.PowT = c.PowT.Sub(old, replacement)
	case CP, PL, CB:
		for i, ch := range c.Children {
			c.Children[i] = ch.Sub(old, replacement)
		}
	}
	c.fpSet = false
	return c
}

// SubVar replaces every free occurrence of the bare variable varName with
// a clone of replacement, regardless of what local rational power that
// occurrence carries (x^3 with x -> replacement yields an EX node
// replacement^3, not a literal match-by-fingerprint). The result may be
// structurally unsimplified (e.g. a numeric base raised to a numeric
// power still wrapped as EX): callers that need a fully reduced value,
// such as limit's direct-substitution step, run the result through
// kernel.Simplify afterwards.
func (t *Term) SubVar(varName string, replacement *Term) *Term {
	if t == nil {
		return nil
	}
	switch t.Group {
	case N, P:
		return t.Clone()
	case S:
		if t.Val != varName {
			return t.Clone()
		}
		out := raiseToPower(replacement.Clone(), t.PowR)
		out.Mult = out.Mult.Mul(t.Mult)
		out.fpSet = false
		return out
	case FN:
		c := t.Clone()
		for i, a := range c.Args {
			c.Args[i] = a.SubVar(varName, replacement)
		}
		c.fpSet = false
		return c
	case EX:
		c := t.Clone()
		c.BaseT = c.BaseT.SubVar(varName, replacement)
		c.PowT = c.PowT.SubVar(varName, replacement)
		c.fpSet = false
		return c
	case CP, PL, CB:
		c := t.Clone()
		for i, ch := range c.Children {
			c.Children[i] = ch.SubVar(varName, replacement)
		}
		c.fpSet = false
		return c
	}
	return t.Clone()
}

// raiseToPower wraps base^p symbolically, short-circuiting the p == 1
// case. Full numeric/structural reduction (e.g. collapsing a numeric base
// raised to a numeric power back down to group N) is the arithmetic
// kernel's job (kernel.Pow), since this package has no arithmetic.
func raiseToPower(base *Term, p Rational) *Term {
	if p.IsOne() {
		return base
	}
	return &Term{Group: EX, Mult: One(), BaseT: base, PowT: NewNumber(p)}
}
