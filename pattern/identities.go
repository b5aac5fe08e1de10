package pattern

import (
	"calculus/kernel"
	"calculus/term"
)

// TrigTransform recognizes a two-factor product of circular trig
// functions and rewrites it via a product-to-sum (or, when both factors
// share the same argument, a double-angle) identity. ok is false when
// factors isn't exactly two single-argument trig FN terms, or isn't one
// of the sin*cos, sin*sin, cos*cos shapes this table covers.
//
// Per the decided ambiguity (DESIGN.md "Open Question decisions"): a
// shared argument always takes the double-angle branch, not the
// sum/difference one (which would degenerate to a trivial A+A, A-A=0
// identity anyway).
func TrigTransform(factors []*term.Term) (*term.Term, bool) {
	if len(factors) != 2 {
		return nil, false
	}
	f1, f2 := factors[0], factors[1]
	if f1.Group != term.FN || f2.Group != term.FN {
		return nil, false
	}
	if len(f1.Args) != 1 || len(f2.Args) != 1 {
		return nil, false
	}
	if !InTrig(f1.Fname) || !InTrig(f2.Fname) {
		return nil, false
	}
	scalar := f1.Multiplier().Mul(f2.Multiplier()).Mul(term.RatFrac(1, 2))
	same := f1.Args[0].Equals(f2.Args[0])

	switch {
	case (f1.Fname == "cos" && f2.Fname == "sin") || (f1.Fname == "sin" && f2.Fname == "cos"):
		var cosArg, sinArg *term.Term
		if f1.Fname == "cos" {
			cosArg, sinArg = f1.Args[0], f2.Args[0]
		} else {
			cosArg, sinArg = f2.Args[0], f1.Args[0]
		}
		if same {
			twoArg := kernel.Multiply(term.NewInt(2), sinArg)
			return kernel.Multiply(term.NewNumber(scalar), term.NewFunction("sin", twoArg)), true
		}
		apb := kernel.Add(cosArg, sinArg)
		amb := kernel.Subtract(cosArg, sinArg)
		inner := kernel.Subtract(term.NewFunction("sin", apb), term.NewFunction("sin", amb))
		return kernel.Multiply(term.NewNumber(scalar), inner), true

	case f1.Fname == "sin" && f2.Fname == "sin":
		a, b := f1.Args[0], f2.Args[0]
		if same {
			return SinSquaredHalfAngle(a, scalar), true
		}
		apb := kernel.Add(a, b)
		amb := kernel.Subtract(a, b)
		inner := kernel.Subtract(term.NewFunction("cos", amb), term.NewFunction("cos", apb))
		return kernel.Multiply(term.NewNumber(scalar), inner), true

	case f1.Fname == "cos" && f2.Fname == "cos":
		a, b := f1.Args[0], f2.Args[0]
		if same {
			return CosSquaredHalfAngle(a, scalar), true
		}
		apb := kernel.Add(a, b)
		amb := kernel.Subtract(a, b)
		inner := kernel.Add(term.NewFunction("cos", amb), term.NewFunction("cos", apb))
		return kernel.Multiply(term.NewNumber(scalar), inner), true

	default:
		return nil, false
	}
}

// SinSquaredHalfAngle returns scalar * (1 - cos(2*arg)); with scalar = 1/2
// this is the power-reduction identity for sin(arg)^2.
func SinSquaredHalfAngle(arg *term.Term, scalar term.Rational) *term.Term {
	twoArg := kernel.Multiply(term.NewInt(2), arg)
	inner := kernel.Subtract(term.NewInt(1), term.NewFunction("cos", twoArg))
	return kernel.Multiply(term.NewNumber(scalar), inner)
}

// CosSquaredHalfAngle returns scalar * (1 + cos(2*arg)); with scalar = 1/2
// this is the power-reduction identity for cos(arg)^2.
func CosSquaredHalfAngle(arg *term.Term, scalar term.Rational) *term.Term {
	twoArg := kernel.Multiply(term.NewInt(2), arg)
	inner := kernel.Add(term.NewInt(1), term.NewFunction("cos", twoArg))
	return kernel.Multiply(term.NewNumber(scalar), inner)
}

// FnTransform rewrites a single trig/hyperbolic function application into
// its sin/cos (or sinh/cosh) ratio form: tan -> sin/cos, cot -> cos/sin,
// sec -> 1/cos, csc -> 1/sin, and the hyperbolic analogues. Any power on
// t is preserved on the rewritten ratio. ok is false for any other
// function name (including sin/cos/sinh/cosh themselves, which have no
// simpler ratio form).
func FnTransform(t *term.Term) (*term.Term, bool) {
	if t.Group != term.FN || len(t.Args) != 1 {
		return nil, false
	}
	arg := t.Args[0]
	var num, den *term.Term
	switch t.Fname {
	case "tan":
		num, den = term.NewFunction("sin", arg), term.NewFunction("cos", arg)
	case "cot":
		num, den = term.NewFunction("cos", arg), term.NewFunction("sin", arg)
	case "sec":
		num, den = term.NewInt(1), term.NewFunction("cos", arg)
	case "csc":
		num, den = term.NewInt(1), term.NewFunction("sin", arg)
	case "tanh":
		num, den = term.NewFunction("sinh", arg), term.NewFunction("cosh", arg)
	case "coth":
		num, den = term.NewFunction("cosh", arg), term.NewFunction("sinh", arg)
	case "sech":
		num, den = term.NewInt(1), term.NewFunction("cosh", arg)
	case "csch":
		num, den = term.NewInt(1), term.NewFunction("sinh", arg)
	default:
		return nil, false
	}
	q, err := kernel.Divide(num, den)
	if err != nil {
		return nil, false
	}
	if !t.PowR.IsOne() {
		q = kernel.Pow(q, t.PowR)
	}
	return kernel.Multiply(term.NewNumber(t.Multiplier()), q), true
}
