package term

// Contains reports whether varName appears free in t. deep also looks
// inside function arguments and exponents; shallow only checks the
// immediate base/value.
func (t *Term) Contains(varName string, deep bool) bool {
	if t == nil {
		return false
	}
	switch t.Group {
	case N:
		return false
	case S, P:
		return t.Val == varName
	case FN:
		if !t.PowR.IsOne() {
			// power itself never contains a symbol (it's rational), fine
		}
		for _, a := range t.Args {
			if a.Contains(varName, deep) {
				return true
			}
		}
		return false
	case EX:
		if t.BaseT.Contains(varName, deep) {
			return true
		}
		return t.PowT.Contains(varName, deep)
	case CP, PL, CB:
		for _, c := range t.Children {
			if c.Contains(varName, deep) {
				return true
			}
		}
		return false
	}
	return false
}

// ContainsFunction reports whether fname appears anywhere in t's tree.
func (t *Term) ContainsFunction(fname string) bool {
	if t == nil {
		return false
	}
	if t.Group == FN && t.Fname == fname {
		return true
	}
	found := false
	t.Each(func(c *Term) {
		if c.ContainsFunction(fname) {
			found = true
		}
	}, false)
	if t.Group == EX {
		if t.BaseT.ContainsFunction(fname) || t.PowT.ContainsFunction(fname) {
			found = true
		}
	}
	if t.Group == FN {
		for _, a := range t.Args {
			if a.ContainsFunction(fname) {
				found = true
			}
		}
	}
	return found
}

// HasFunc reports whether t contains any FN application anywhere.
func (t *Term) HasFunc() bool {
	if t == nil {
		return false
	}
	if t.Group == FN {
		return true
	}
	switch t.Group {
	case EX:
		return t.BaseT.HasFunc() || t.PowT.HasFunc()
	case CP, PL, CB:
		for _, c := range t.Children {
			if c.HasFunc() {
				return true
			}
		}
	}
	return false
}

var trigFnNames = map[string]bool{
	"sin": true, "cos": true, "tan": true, "sec": true, "csc": true, "cot": true,
	"asin": true, "acos": true, "atan": true, "asec": true, "acsc": true, "acot": true,
}

// HasTrig reports whether t contains a circular trig function anywhere.
func (t *Term) HasTrig() bool {
	if t == nil {
		return false
	}
	if t.Group == FN && trigFnNames[t.Fname] {
		return true
	}
	switch t.Group {
	case FN:
		for _, a := range t.Args {
			if a.HasTrig() {
				return true
			}
		}
	case EX:
		return t.BaseT.HasTrig() || t.PowT.HasTrig()
	case CP, PL, CB:
		for _, c := range t.Children {
			if c.HasTrig() {
				return true
			}
		}
	}
	return false
}

// HasIntegral reports whether t still contains an unresolved symbolic
// integrate(...)/defint(...) placeholder (group FN with that Fname).
func (t *Term) HasIntegral() bool {
	return t.ContainsFunction("integrate") || t.ContainsFunction("defint")
}

// IsConstant reports whether t is free of every variable. deep also checks
// nested function arguments/exponents (shallow just checks this node).
func (t *Term) IsConstant(deep bool) bool {
	if t == nil {
		return true
	}
	switch t.Group {
	case N, P:
		return true
	case S:
		return false
	case FN:
		for _, a := range t.Args {
			if !a.IsConstant(deep) {
				return false
			}
		}
		return true
	case EX:
		return t.BaseT.IsConstant(deep) && t.PowT.IsConstant(deep)
	case CP, PL, CB:
		for _, c := range t.Children {
			if !c.IsConstant(deep) {
				return false
			}
		}
		return true
	}
	return true
}

// IsComposite reports whether t is a CP, PL, or CB (has Children).
func (t *Term) IsComposite() bool {
	return t.Group == CP || t.Group == PL || t.Group == CB
}

// IsLinear reports whether t is degree-1 (and no higher) with respect to
// wrt (the first free variable if wrt is empty).
func (t *Term) IsLinear(wrt ...string) bool {
	v := firstOf(wrt)
	if v == "" {
		v = FirstFreeVariable(t)
	}
	if !t.Contains(v, true) {
		return true
	}
	switch t.Group {
	case S:
		return t.Val == v && t.PowR.Equal(One())
	case CP, PL:
		for _, c := range t.Children {
			if !c.IsLinear(v) {
				return false
			}
		}
		return true
	case CB:
		found := false
		for _, c := range t.Children {
			if c.Contains(v, true) {
				if found || !c.IsLinear(v) {
					return false
				}
				found = true
			}
		}
		return true
	default:
		return false
	}
}

func firstOf(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return ss[0]
}

// IsE reports whether t is exactly the symbol "e" (Euler's number, used to
// detect bare e^x before EX-group dispatch).
func (t *Term) IsE() bool {
	return t.Group == S && t.Val == "e" && t.PowR.IsOne()
}

// IsPoly reports whether t is a polynomial in its free variables: sums and
// products of non-negative-integer powers of symbols. deep also descends
// into CB factors.
func (t *Term) IsPoly(deep bool) bool {
	switch t.Group {
	case N:
		return true
	case S:
		return t.PowR.IsInt() && t.PowR.Sign() >= 0
	case CP, PL:
		for _, c := range t.Children {
			if !c.IsPoly(deep) {
				return false
			}
		}
		return true
	case CB:
		if !deep {
			return false
		}
		for _, c := range t.Children {
			if !c.IsPoly(deep) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// FirstFreeVariable returns the first (lexicographically smallest) free
// variable name found in t, or "" if t is constant.
func FirstFreeVariable(t *Term) string {
	vars := map[string]bool{}
	collectVars(t, vars)
	best := ""
	for v := range vars {
		if best == "" || v < best {
			best = v
		}
	}
	return best
}

func collectVars(t *Term, out map[string]bool) {
	if t == nil {
		return
	}
	switch t.Group {
	case S:
		out[t.Val] = true
	case FN:
		for _, a := range t.Args {
			collectVars(a, out)
		}
	case EX:
		collectVars(t.BaseT, out)
		collectVars(t.PowT, out)
	case CP, PL, CB:
		for _, c := range t.Children {
			collectVars(c, out)
		}
	}
}
