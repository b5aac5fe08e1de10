// Package pattern implements the closed-set function-name classifications
// and trigonometric/hyperbolic identity rewrites that the integrator
// consults.
package pattern

import "calculus/term"

var circularSet = map[string]bool{
	"sin": true, "cos": true, "tan": true, "sec": true, "csc": true, "cot": true,
}

var inverseCircularSet = map[string]bool{
	"asin": true, "acos": true, "atan": true, "asec": true, "acsc": true, "acot": true,
}

// hyperbolicSet is deliberately NOT the clean {sinh, cosh, tanh, sech,
// csch, coth} set: {acsch, asech, acoth} are misfiled here, in the plain
// (non-inverse) hyperbolic table, instead of a separate inverse-hyperbolic
// one. A handful of integration rules key off InHTrig and, with this
// table, misclassify those three inverse names as plain hyperbolic
// functions.
var hyperbolicSet = map[string]bool{
	"sinh": true, "cosh": true, "tanh": true,
	"acsch": true, "asech": true, "acoth": true,
}

var inverseHyperbolicSet = map[string]bool{
	"asinh": true, "acosh": true, "atanh": true, "asech": true, "acsch": true, "acoth": true,
}

// InTrig reports whether name is one of the six circular trig functions.
func InTrig(name string) bool { return circularSet[name] }

// InInverseTrig reports whether name is one of the six inverse circular
// trig functions.
func InInverseTrig(name string) bool { return inverseCircularSet[name] }

// InHTrig reports whether name is classified as hyperbolic by the
// (buggy, preserved) hyperbolicSet table above.
func InHTrig(name string) bool { return hyperbolicSet[name] }

// InInverseHTrig reports whether name is one of the six inverse
// hyperbolic functions (this table has no bug; InHTrig is the one callers
// must be careful with).
func InInverseHTrig(name string) bool { return inverseHyperbolicSet[name] }

// AllFunctions returns the Fname of every top-level FN element of arr, in
// order, skipping non-function elements.
func AllFunctions(arr []*term.Term) []string {
	var names []string
	for _, t := range arr {
		if t.Group == term.FN {
			names = append(names, t.Fname)
		}
	}
	return names
}

// DecomposeArg splits a linear argument expression t = a*x + b (x == dx)
// into its coefficient a, the bare variable x, the product a*x, and the
// remaining constant b. Used by the integrator's linear-argument rules
// (f(ax+b), e^(ax+b), same-argument trig products) to recognize
// sin(ax+b)-shaped arguments. ok is false if t is
// not exactly this shape (not linear in dx, or has some other structure
// entangled with dx).
func DecomposeArg(t *term.Term, dx string) (a, x, ax, b *term.Term, ok bool) {
	if !t.IsLinear(dx) || !t.Contains(dx, true) {
		return nil, nil, nil, nil, false
	}
	switch t.Group {
	case term.S:
		if t.Val != dx || !t.PowR.IsOne() {
			return nil, nil, nil, nil, false
		}
		return term.NewNumber(t.Multiplier()), term.NewSymbol(dx), t.Clone(), term.NewInt(0), true
	case term.CP:
		var constAddends, varAddends []*term.Term
		for _, c := range t.Children {
			scaled := c.Clone()
			scaled.Mult = scaled.Mult.Mul(t.Mult)
			if scaled.Contains(dx, true) {
				varAddends = append(varAddends, scaled)
			} else {
				constAddends = append(constAddends, scaled)
			}
		}
		if len(varAddends) != 1 {
			return nil, nil, nil, nil, false
		}
		axTerm := varAddends[0]
		if axTerm.Group != term.S || axTerm.Val != dx || !axTerm.PowR.IsOne() {
			return nil, nil, nil, nil, false
		}
		var bTerm *term.Term
		switch len(constAddends) {
		case 0:
			bTerm = term.NewInt(0)
		case 1:
			bTerm = constAddends[0]
		default:
			bTerm = term.NewCP(constAddends...)
		}
		return term.NewNumber(axTerm.Multiplier()), term.NewSymbol(dx), axTerm, bTerm, true
	default:
		return nil, nil, nil, nil, false
	}
}
