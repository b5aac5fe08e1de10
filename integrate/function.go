package integrate

import (
	"calculus/guard"
	"calculus/kernel"
	"calculus/pattern"
	"calculus/term"
)

// directTable holds closed-form antiderivatives (argument == bare dt,
// power == 1) for functions too common to route through reduction
// formulas or by-parts every time.
var directTable = map[string]func(x *term.Term) *term.Term{
	term.LOG: func(x *term.Term) *term.Term {
		return kernel.Subtract(kernel.Multiply(x, term.NewFunction(term.LOG, x)), x)
	},
	"sin": func(x *term.Term) *term.Term { return term.NewFunction("cos", x).Negate() },
	"cos": func(x *term.Term) *term.Term { return term.NewFunction("sin", x) },
	"sinh": func(x *term.Term) *term.Term { return term.NewFunction("cosh", x) },
	"cosh": func(x *term.Term) *term.Term { return term.NewFunction("sinh", x) },
	"asin": func(x *term.Term) *term.Term {
		return kernel.Add(kernel.Multiply(x, term.NewFunction("asin", x)), term.NewFunction("sqrt", kernel.Subtract(term.NewInt(1), kernel.Pow(x, term.RatInt(2)))))
	},
	"acos": func(x *term.Term) *term.Term {
		return kernel.Subtract(kernel.Multiply(x, term.NewFunction("acos", x)), term.NewFunction("sqrt", kernel.Subtract(term.NewInt(1), kernel.Pow(x, term.RatInt(2)))))
	},
	"atan": func(x *term.Term) *term.Term {
		half := term.NewFunction(term.LOG, kernel.Add(term.NewInt(1), kernel.Pow(x, term.RatInt(2))))
		half.Mult = term.RatFrac(1, 2)
		return kernel.Subtract(kernel.Multiply(x, term.NewFunction("atan", x)), half)
	},
}

// integrateFunction dispatches a single named function application,
// reversing a linear argument via DecomposeArg when it isn't the bare
// integration variable, then delegating to the direct table or a
// power-reduction formula.
func integrateFunction(t *term.Term, dt string) (*term.Term, error) {
	if len(t.Args) != 1 {
		return nil, kernel.Stop("integrate: no strategy for multi-argument function " + t.Fname)
	}
	arg := t.Args[0]
	if !(arg.Group == term.S && arg.Val == dt && arg.PowR.IsOne()) {
		a, _, _, _, ok := pattern.DecomposeArg(arg, dt)
		if !ok {
			return nil, kernel.Stop("integrate: function argument isn't linear in " + dt)
		}
		synthetic := t.Clone()
		synthetic.Mult = term.One()
		synthetic.Args = []*term.Term{term.NewSymbol(dt)}
		bareAnti, err := integrateFunctionBare(synthetic, dt)
		if err != nil {
			return nil, err
		}
		back := bareAnti.SubVar(dt, arg)
		coeff := kernel.Pow(a, term.MinusOne())
		return kernel.Multiply(term.NewNumber(t.Mult), kernel.Multiply(coeff, back)), nil
	}
	return integrateFunctionBare(t, dt)
}

func integrateFunctionBare(t *term.Term, dt string) (*term.Term, error) {
	x := term.NewSymbol(dt)
	n := t.PowR

	if n.IsOne() {
		if rule, ok := directTable[t.Fname]; ok {
			return kernel.Multiply(term.NewNumber(t.Mult), rule(x)), nil
		}
	}

	if !n.IsInt() {
		return nil, kernel.Stop("integrate: non-integer power of " + t.Fname + " has no reduction formula")
	}
	nInt := n.Int64()

	switch t.Fname {
	case "sin":
		r, err := reduceSinCos(true, nInt, dt)
		if err != nil {
			return nil, err
		}
		return kernel.Multiply(term.NewNumber(t.Mult), r), nil
	case "cos":
		r, err := reduceSinCos(false, nInt, dt)
		if err != nil {
			return nil, err
		}
		return kernel.Multiply(term.NewNumber(t.Mult), r), nil
	case "tan":
		r, err := reduceTan(nInt, dt)
		if err != nil {
			return nil, err
		}
		return kernel.Multiply(term.NewNumber(t.Mult), r), nil
	case "cot":
		r, err := reduceCot(nInt, dt)
		if err != nil {
			return nil, err
		}
		return kernel.Multiply(term.NewNumber(t.Mult), r), nil
	case "sec":
		r, err := reduceSec(nInt, dt)
		if err != nil {
			return nil, err
		}
		return kernel.Multiply(term.NewNumber(t.Mult), r), nil
	case "csc":
		r, err := reduceCsc(nInt, dt)
		if err != nil {
			return nil, err
		}
		return kernel.Multiply(term.NewNumber(t.Mult), r), nil
	case "sinh":
		if nInt == 2 {
			return kernel.Multiply(term.NewNumber(t.Mult), sinhSquaredAntiderivative(x)), nil
		}
	case "cosh":
		if nInt == 2 {
			return kernel.Multiply(term.NewNumber(t.Mult), coshSquaredAntiderivative(x)), nil
		}
	}

	if rule, ok := directTable[t.Fname]; ok && nInt == 1 {
		return kernel.Multiply(term.NewNumber(t.Mult), rule(x)), nil
	}
	return nil, kernel.Stop("integrate: no antiderivative strategy for " + t.Fname)
}

// sinhSquaredAntiderivative and coshSquaredAntiderivative implement the
// cosh^2/sinh^2 case via the double-argument identities
// sinh^2(x) = (cosh(2x)-1)/2 and cosh^2(x) = (cosh(2x)+1)/2.
func sinhSquaredAntiderivative(x *term.Term) *term.Term {
	twoX := kernel.Multiply(term.NewInt(2), x)
	sinh2 := term.NewFunction("sinh", twoX)
	sinh2.Mult = term.RatFrac(1, 4)
	linear := x.Clone()
	linear.Mult = term.RatFrac(-1, 2)
	return kernel.Add(sinh2, linear)
}

func coshSquaredAntiderivative(x *term.Term) *term.Term {
	twoX := kernel.Multiply(term.NewInt(2), x)
	sinh2 := term.NewFunction("sinh", twoX)
	sinh2.Mult = term.RatFrac(1, 4)
	linear := x.Clone()
	linear.Mult = term.RatFrac(1, 2)
	return kernel.Add(sinh2, linear)
}

// reduceSinCos implements the classic power-reduction formula for sin^n or
// cos^n, recursing on n-2 with a strictly decreasing exponent (always
// terminating, but still guarded for safety).
func reduceSinCos(isSin bool, n int64, dt string) (*term.Term, error) {
	if err := guard.IntegrationDepth.Enter(); err != nil {
		return nil, kernel.DepthExceeded("integrate", guard.IntegrationDepth.Depth())
	}
	defer guard.IntegrationDepth.Leave()

	if n < 0 {
		return nil, kernel.Stop("integrate: negative power of sin/cos not supported")
	}
	x := term.NewSymbol(dt)
	if n == 0 {
		return x, nil
	}
	if n == 1 {
		if isSin {
			return term.NewFunction("cos", x).Negate(), nil
		}
		return term.NewFunction("sin", x), nil
	}
	fname, other := "sin", "cos"
	if !isSin {
		fname, other = "cos", "sin"
	}
	sign := term.One()
	if isSin {
		sign = term.MinusOne()
	}
	lead := term.NewFunction(fname, x)
	lead.PowR = term.RatInt(n - 1)
	lead = kernel.Multiply(lead, term.NewFunction(other, x))
	lead.Mult = sign.Div(term.RatInt(n))

	rest, err := reduceSinCos(isSin, n-2, dt)
	if err != nil {
		return nil, err
	}
	coeff := term.RatInt(n - 1).Div(term.RatInt(n))
	return kernel.Add(lead, kernel.Multiply(term.NewNumber(coeff), rest)), nil
}

// reduceTan implements the tan^n reduction formula, bottoming out at
// tan^0 = 1 (antiderivative x) and tan^1 (antiderivative -ln|cos(x)|).
func reduceTan(n int64, dt string) (*term.Term, error) {
	if n < 0 {
		return reduceCot(-n, dt)
	}
	x := term.NewSymbol(dt)
	if n == 0 {
		return x, nil
	}
	if n == 1 {
		return term.NewFunction(term.LOG, term.NewFunction("cos", x).Abs()).Negate(), nil
	}
	lead := term.NewFunction("tan", x)
	lead.PowR = term.RatInt(n - 1)
	lead.Mult = term.One().Div(term.RatInt(n - 1))
	rest, err := reduceTan(n-2, dt)
	if err != nil {
		return nil, err
	}
	return kernel.Subtract(lead, rest), nil
}

func reduceCot(n int64, dt string) (*term.Term, error) {
	if n < 0 {
		return reduceTan(-n, dt)
	}
	x := term.NewSymbol(dt)
	if n == 0 {
		return x, nil
	}
	if n == 1 {
		return term.NewFunction(term.LOG, term.NewFunction("sin", x).Abs()), nil
	}
	lead := term.NewFunction("cot", x)
	lead.PowR = term.RatInt(n - 1)
	lead.Mult = term.MinusOne().Div(term.RatInt(n - 1))
	rest, err := reduceCot(n-2, dt)
	if err != nil {
		return nil, err
	}
	return kernel.Subtract(lead, rest), nil
}

func reduceSec(n int64, dt string) (*term.Term, error) {
	if n < 0 {
		return nil, kernel.Stop("integrate: negative power of sec not supported")
	}
	x := term.NewSymbol(dt)
	if n == 0 {
		return x, nil
	}
	if n == 1 {
		sum := kernel.Add(term.NewFunction("sec", x), term.NewFunction("tan", x))
		return term.NewFunction(term.LOG, sum.Abs()), nil
	}
	secPow := term.NewFunction("sec", x)
	secPow.PowR = term.RatInt(n - 2)
	lead := kernel.Multiply(secPow, term.NewFunction("tan", x))
	lead.Mult = term.One().Div(term.RatInt(n - 1))
	rest, err := reduceSec(n-2, dt)
	if err != nil {
		return nil, err
	}
	coeff := term.RatInt(n - 2).Div(term.RatInt(n - 1))
	return kernel.Add(lead, kernel.Multiply(term.NewNumber(coeff), rest)), nil
}

func reduceCsc(n int64, dt string) (*term.Term, error) {
	if n < 0 {
		return nil, kernel.Stop("integrate: negative power of csc not supported")
	}
	x := term.NewSymbol(dt)
	if n == 0 {
		return x, nil
	}
	if n == 1 {
		diff := kernel.Subtract(term.NewFunction("csc", x), term.NewFunction("cot", x))
		return term.NewFunction(term.LOG, diff.Abs()), nil
	}
	cscPow := term.NewFunction("csc", x)
	cscPow.PowR = term.RatInt(n - 2)
	lead := kernel.Multiply(cscPow, term.NewFunction("cot", x))
	lead.Mult = term.MinusOne().Div(term.RatInt(n - 1))
	rest, err := reduceCsc(n-2, dt)
	if err != nil {
		return nil, err
	}
	coeff := term.RatInt(n - 2).Div(term.RatInt(n - 1))
	return kernel.Add(lead, kernel.Multiply(term.NewNumber(coeff), rest)), nil
}
