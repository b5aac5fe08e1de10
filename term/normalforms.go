package term

// ToUnitMultiplier returns a bare structural copy of t with Mult == 1; the
// caller is responsible for re-multiplying the original scalar back in
// after transforming the result.
func (t *Term) ToUnitMultiplier() *Term {
	c := t.Clone()
	c.Mult = One()
	c.fpSet = false
	return c
}

// ToLinear returns a copy of t with its power set to 1 (EX's exponent
// replaced by the constant 1), used when a rule needs to operate on "the
// base" and re-raise the result afterwards.
func (t *Term) ToLinear() *Term {
	c := t.Clone()
	if c.Group == EX {
		c.PowT = NewInt(1)
	} else {
		c.PowR = One()
	}
	c.fpSet = false
	return c
}

// Negate returns -t (flips the global multiplier; always valid since Mult
// is a global scalar factor in every group).
func (t *Term) Negate() *Term {
	c := t.Clone()
	c.Mult = c.Mult.Neg()
	c.fpSet = false
	return c
}

// Sign returns -1, 0, or +1 for terms whose sign is structurally known
// (numeric constants and anything with a positive-definite structural
// part); returns 0 ("unknown / depends on x") otherwise. Anything harder
// is left to the arithmetic kernel.
func (t *Term) Sign() int {
	if t == nil {
		return 0
	}
	if t.Group == N {
		if t.IsInfinity {
			return t.InfSign
		}
		return t.Mult.Sign()
	}
	return t.Mult.Sign()
}

// Abs returns |t| when the sign is structurally known; otherwise wraps t
// in an abs(...) function application.
func (t *Term) Abs() *Term {
	if t.Group == N {
		return NewNumber(t.Mult.Abs())
	}
	if t.Mult.Sign() < 0 {
		return NewFunction("abs", t.Negate())
	}
	return NewFunction("abs", t.Clone())
}

// Invert returns 1/t. Panics if t's multiplier is exactly zero; callers in
// package kernel must check IsZero first.
func (t *Term) Invert() *Term {
	c := t.Clone()
	c.Mult = c.Mult.Invert()
	switch c.Group {
	case S, P, FN, CP, PL, CB:
		c.PowR = c.PowR.Neg()
	case EX:
		c.PowT = c.PowT.Negate()
	}
	c.fpSet = false
	return c
}

// StripVar returns the factor of t that is independent of varName: for a
// CB (product) that is the subproduct of factors not containing varName;
// for anything else, 1 if t depends on varName, or t itself if it does
// not.
func (t *Term) StripVar(varName string) *Term {
	indep, _ := SplitByVar(t, varName)
	return indep
}

// SplitByVar partitions t into (independent-of-varName, dependent-on-varName)
// factors, used by the integrator to pull a constant multiple out of a
// product before recursing.
func SplitByVar(t *Term, varName string) (indep, dep *Term) {
	if !t.Contains(varName, true) {
		return t.Clone(), NewInt(1)
	}
	if t.Group != CB {
		return NewInt(1), t.Clone()
	}
	var indepFactors, depFactors []*Term
	for _, c := range t.Children {
		if c.Contains(varName, true) {
			depFactors = append(depFactors, c.Clone())
		} else {
			indepFactors = append(indepFactors, c.Clone())
		}
	}
	indepTerm := factorsToTerm(indepFactors)
	indepTerm.Mult = t.Mult
	depTerm := factorsToTerm(depFactors)
	return indepTerm, depTerm
}

func factorsToTerm(factors []*Term) *Term {
	switch len(factors) {
	case 0:
		return NewInt(1)
	case 1:
		return factors[0]
	default:
		return NewCB(factors...)
	}
}

// GetNum returns the numerator: the global multiplier's numerator combined
// with every structural factor raised to a non-negative power.
func (t *Term) GetNum() *Term {
	num, _ := splitNumDenom(t)
	return num
}

// GetDenom returns the denominator: the global multiplier's denominator
// combined with every structural factor raised to a negative power
// (inverted to positive).
func (t *Term) GetDenom() *Term {
	_, den := splitNumDenom(t)
	return den
}

func splitNumDenom(t *Term) (num, den *Term) {
	numMult := NewNumber(RatInt(t.Mult.Num().Int64()))
	denMult := NewNumber(RatInt(t.Mult.Den().Int64()))
	switch t.Group {
	case N:
		return numMult, denMult
	case S, P, FN:
		if t.PowR.Sign() < 0 {
			bare := t.ToUnitMultiplier()
			bare.Mult = One()
			bare.PowR = bare.PowR.Neg()
			return numMult, multiplyBare(denMult, bare)
		}
		bare := t.ToUnitMultiplier()
		return multiplyBare(numMult, bare), denMult
	case CP, PL:
		if t.PowR.Sign() < 0 {
			bare := t.ToUnitMultiplier()
			bare.PowR = bare.PowR.Neg()
			return numMult, multiplyBare(denMult, bare)
		}
		return multiplyBare(numMult, t.ToUnitMultiplier()), denMult
	case CB:
		var nums, dens []*Term
		for _, c := range t.Children {
			p, _ := c.Power()
			if p.Sign() < 0 {
				inv := c.Clone()
				inv.PowR = inv.PowR.Neg()
				dens = append(dens, inv)
			} else {
				nums = append(nums, c.Clone())
			}
		}
		return multiplyBare(numMult, factorsToTerm(nums)), multiplyBare(denMult, factorsToTerm(dens))
	default:
		return multiplyBare(numMult, t.ToUnitMultiplier()), denMult
	}
}

func multiplyBare(scalarAndOne, bare *Term) *Term {
	if bare == nil {
		return scalarAndOne
	}
	if bare.Group == N {
		if bare.Mult.IsOne() {
			return scalarAndOne
		}
	}
	if scalarAndOne.Group == N && scalarAndOne.Mult.IsOne() {
		return bare
	}
	return NewCB(scalarAndOne, bare)
}

// UnwrapSqrt rewrites sqrt(x)^p to x^(p/2), recording the original group so
// the transform is informational/reversible. Only FN applications named
// "sqrt" with exactly one argument are rewritten.
func UnwrapSqrt(t *Term) *Term {
	if t == nil || t.Group != FN || t.Fname != "sqrt" || len(t.Args) != 1 {
		return t
	}
	half := RatFrac(1, 2)
	newPow := t.PowR.Mul(half)
	out := t.Args[0].Clone()
	out.PowR = newPow
	out.Mult = t.Mult
	out.PrevGroup = FN
	out.fpSet = false
	return out
}
