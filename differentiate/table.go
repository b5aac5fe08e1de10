package differentiate

import (
	"calculus/kernel"
	"calculus/term"
)

// quot builds num * den^-1 without going through kernel.Divide's
// division-by-zero check: every denominator built by this table is a
// symbolic expression in arg, never the literal zero term.
func quot(num, den *term.Term) *term.Term {
	return kernel.Multiply(num, kernel.Pow(den, term.MinusOne()))
}

func sqrtOf(t *term.Term) *term.Term { return term.NewFunction("sqrt", t) }

func sq(t *term.Term) *term.Term { return kernel.Pow(t, term.RatInt(2)) }

func piTerm() *term.Term { return term.NewSymbol("pi") }

func expOf(t *term.Term) *term.Term { return term.NewEX(term.NewSymbol("e"), t) }

// unaryDerivTable maps a single-argument function name to d(outer)/d(arg),
// expressed purely in terms of arg; diffFunction chain-multiplies the
// result by arg's own derivative.
var unaryDerivTable = map[string]func(arg *term.Term) *term.Term{
	term.LOG:   func(a *term.Term) *term.Term { return kernel.Pow(a, term.MinusOne()) },
	term.LOG10: func(a *term.Term) *term.Term { return quot(term.NewInt(1), kernel.Multiply(a, term.NewFunction(term.LOG, term.NewInt(10)))) },

	"sin": func(a *term.Term) *term.Term { return term.NewFunction("cos", a) },
	"cos": func(a *term.Term) *term.Term { return term.NewFunction("sin", a).Negate() },
	"tan": func(a *term.Term) *term.Term { s := term.NewFunction("sec", a); s.PowR = term.RatInt(2); return s },
	"sec": func(a *term.Term) *term.Term {
		return kernel.Multiply(term.NewFunction("sec", a), term.NewFunction("tan", a))
	},
	"csc": func(a *term.Term) *term.Term {
		return kernel.Multiply(term.NewFunction("csc", a), term.NewFunction("cot", a)).Negate()
	},
	"cot": func(a *term.Term) *term.Term { s := term.NewFunction("csc", a); s.PowR = term.RatInt(2); return s.Negate() },

	"asin": func(a *term.Term) *term.Term { return quot(term.NewInt(1), sqrtOf(kernel.Subtract(term.NewInt(1), sq(a)))) },
	"acos": func(a *term.Term) *term.Term {
		return quot(term.NewInt(1), sqrtOf(kernel.Subtract(term.NewInt(1), sq(a)))).Negate()
	},
	"atan": func(a *term.Term) *term.Term { return quot(term.NewInt(1), kernel.Add(term.NewInt(1), sq(a))) },
	"asec": func(a *term.Term) *term.Term {
		return quot(term.NewInt(1), kernel.Multiply(a.Abs(), sqrtOf(kernel.Subtract(sq(a), term.NewInt(1)))))
	},
	"acsc": func(a *term.Term) *term.Term {
		return quot(term.NewInt(1), kernel.Multiply(a.Abs(), sqrtOf(kernel.Subtract(sq(a), term.NewInt(1))))).Negate()
	},
	"acot": func(a *term.Term) *term.Term { return quot(term.NewInt(1), kernel.Add(term.NewInt(1), sq(a))).Negate() },

	"abs":  func(a *term.Term) *term.Term { return term.NewFunction("sign", a) },
	"sign": func(a *term.Term) *term.Term { return term.NewInt(0) },

	"sinh": func(a *term.Term) *term.Term { return term.NewFunction("cosh", a) },
	"cosh": func(a *term.Term) *term.Term { return term.NewFunction("sinh", a) },
	"tanh": func(a *term.Term) *term.Term { s := term.NewFunction("sech", a); s.PowR = term.RatInt(2); return s },
	"sech": func(a *term.Term) *term.Term {
		return kernel.Multiply(term.NewFunction("sech", a), term.NewFunction("tanh", a)).Negate()
	},
	"csch": func(a *term.Term) *term.Term {
		return kernel.Multiply(term.NewFunction("csch", a), term.NewFunction("coth", a)).Negate()
	},
	"coth": func(a *term.Term) *term.Term { s := term.NewFunction("csch", a); s.PowR = term.RatInt(2); return s.Negate() },

	"asinh": func(a *term.Term) *term.Term { return quot(term.NewInt(1), sqrtOf(kernel.Add(sq(a), term.NewInt(1)))) },
	"acosh": func(a *term.Term) *term.Term { return quot(term.NewInt(1), sqrtOf(kernel.Subtract(sq(a), term.NewInt(1)))) },
	"atanh": func(a *term.Term) *term.Term { return quot(term.NewInt(1), kernel.Subtract(term.NewInt(1), sq(a))) },
	"asech": func(a *term.Term) *term.Term {
		return quot(term.NewInt(1), kernel.Multiply(a, sqrtOf(kernel.Subtract(term.NewInt(1), sq(a))))).Negate()
	},
	"acsch": func(a *term.Term) *term.Term {
		return quot(term.NewInt(1), kernel.Multiply(a.Abs(), sqrtOf(kernel.Add(term.NewInt(1), sq(a))))).Negate()
	},
	// acoth shares atanh's derivative formula (both branches of the
	// inverse-hyperbolic-tangent family give 1/(1-x^2)).
	"acoth": func(a *term.Term) *term.Term { return quot(term.NewInt(1), kernel.Subtract(term.NewInt(1), sq(a))) },

	"sinc": func(a *term.Term) *term.Term {
		num := kernel.Subtract(kernel.Multiply(a, term.NewFunction("cos", a)), term.NewFunction("sin", a))
		return quot(num, sq(a))
	},
	"erf": func(a *term.Term) *term.Term {
		coeff := quot(term.NewInt(2), sqrtOf(piTerm()))
		return kernel.Multiply(coeff, expOf(sq(a).Negate()))
	},

	"Ei": func(a *term.Term) *term.Term { return quot(expOf(a), a) },
	"Li": func(a *term.Term) *term.Term { return quot(term.NewInt(1), term.NewFunction(term.LOG, a)) },
	"Si": func(a *term.Term) *term.Term { return quot(term.NewFunction("sin", a), a) },
	"Ci": func(a *term.Term) *term.Term { return quot(term.NewFunction("cos", a), a) },
	"Shi": func(a *term.Term) *term.Term { return quot(term.NewFunction("sinh", a), a) },
	"Chi": func(a *term.Term) *term.Term { return quot(term.NewFunction("cosh", a), a) },

	"S": func(a *term.Term) *term.Term {
		return term.NewFunction("sin", kernel.Multiply(quot(piTerm(), term.NewInt(2)), sq(a)))
	},
	"C": func(a *term.Term) *term.Term {
		return term.NewFunction("cos", kernel.Multiply(quot(piTerm(), term.NewInt(2)), sq(a)))
	},
}
