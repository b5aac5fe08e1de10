package kernel

import (
	"fmt"
	"math"
	"strconv"

	"calculus/term"

	"gonum.org/v1/gonum/integrate/quad"
)

// eulerGamma is the Euler-Mascheroni constant, used by the removable-
// singularity series for Ei/Ci/Chi below.
const eulerGamma = 0.5772156649015328606

// NumIntegrate evaluates the definite integral of f over [a, b] by
// fixed-order Gauss-Legendre quadrature, the numeric fallback used when no
// antiderivative strategy converges.
func NumIntegrate(f func(float64) float64, a, b float64) float64 {
	if a == b {
		return 0
	}
	sign := 1.0
	if a > b {
		a, b = b, a
		sign = -1.0
	}
	return sign * quad.Fixed(f, a, b, 64, quad.Legendre{}, nil)
}

// Build compiles t into a float64 evaluator in the single free variable
// dt, for defint's numeric-quadrature fallback and sumprod's bulk-count
// numeric mode. Returns GaveUp if t contains a free variable other than
// dt, an unresolved symbolic integral, or an infinite term, since none of
// those can be compiled to a float64 closure.
func Build(t *term.Term, dt string) (func(float64) float64, error) {
	if t == nil {
		return func(float64) float64 { return 0 }, nil
	}
	switch t.Group {
	case term.N:
		if t.IsInfinity {
			return nil, Stop("cannot build a numeric evaluator for an infinite term")
		}
		v := t.Mult.Float64()
		return func(float64) float64 { return v }, nil
	case term.S:
		mul := t.Mult.Float64()
		pr := t.PowR.Float64()
		if t.Val != dt {
			return nil, Stop(fmt.Sprintf("numeric build: free variable %q present besides %q", t.Val, dt))
		}
		return func(x float64) float64 { return mul * math.Pow(x, pr) }, nil
	case term.P:
		base, err := strconv.ParseFloat(t.Val, 64)
		if err != nil {
			return nil, Stop("numeric build: non-numeric surd base " + t.Val)
		}
		mul := t.Mult.Float64()
		pr := t.PowR.Float64()
		return func(float64) float64 { return mul * math.Pow(base, pr) }, nil
	case term.FN:
		return buildFunc(t, dt)
	case term.EX:
		baseFn, err := Build(t.BaseT, dt)
		if err != nil {
			return nil, err
		}
		expFn, err := Build(t.PowT, dt)
		if err != nil {
			return nil, err
		}
		mul := t.Mult.Float64()
		return func(x float64) float64 { return mul * math.Pow(baseFn(x), expFn(x)) }, nil
	case term.CP, term.PL:
		fns := make([]func(float64) float64, len(t.Children))
		for i, c := range t.Children {
			fn, err := Build(c, dt)
			if err != nil {
				return nil, err
			}
			fns[i] = fn
		}
		mul := t.Mult.Float64()
		pr := t.PowR.Float64()
		return func(x float64) float64 {
			sum := 0.0
			for _, fn := range fns {
				sum += fn(x)
			}
			return mul * math.Pow(sum, pr)
		}, nil
	case term.CB:
		fns := make([]func(float64) float64, len(t.Children))
		for i, c := range t.Children {
			fn, err := Build(c, dt)
			if err != nil {
				return nil, err
			}
			fns[i] = fn
		}
		mul := t.Mult.Float64()
		pr := t.PowR.Float64()
		return func(x float64) float64 {
			prod := 1.0
			for _, fn := range fns {
				prod *= fn(x)
			}
			return mul * math.Pow(prod, pr)
		}, nil
	default:
		return nil, Stop("numeric build: unsupported group " + t.Group.String())
	}
}

func buildFunc(t *term.Term, dt string) (func(float64) float64, error) {
	argFns := make([]func(float64) float64, len(t.Args))
	for i, a := range t.Args {
		fn, err := Build(a, dt)
		if err != nil {
			return nil, err
		}
		argFns[i] = fn
	}
	unary, ok := unaryNumeric[t.Fname]
	if !ok {
		return nil, Stop("numeric build: no evaluator for function " + t.Fname)
	}
	if len(argFns) == 1 {
		mul := t.Mult.Float64()
		pr := t.PowR.Float64()
		arg := argFns[0]
		return func(x float64) float64 { return mul * math.Pow(unary(arg(x)), pr) }, nil
	}
	if t.Fname == "atan2" && len(argFns) == 2 {
		mul := t.Mult.Float64()
		y, x := argFns[0], argFns[1]
		return func(v float64) float64 { return mul * math.Atan2(y(v), x(v)) }, nil
	}
	return nil, Stop("numeric build: wrong arity for function " + t.Fname)
}

var unaryNumeric = map[string]func(float64) float64{
	"sin": math.Sin, "cos": math.Cos, "tan": math.Tan,
	"sec": func(x float64) float64 { return 1 / math.Cos(x) },
	"csc": func(x float64) float64 { return 1 / math.Sin(x) },
	"cot": func(x float64) float64 { return 1 / math.Tan(x) },
	"asin": math.Asin, "acos": math.Acos, "atan": math.Atan,
	"asec": func(x float64) float64 { return math.Acos(1 / x) },
	"acsc": func(x float64) float64 { return math.Asin(1 / x) },
	"acot": func(x float64) float64 { return math.Atan(1 / x) },
	"sinh": math.Sinh, "cosh": math.Cosh, "tanh": math.Tanh,
	"sech": func(x float64) float64 { return 1 / math.Cosh(x) },
	"csch": func(x float64) float64 { return 1 / math.Sinh(x) },
	"coth": func(x float64) float64 { return 1 / math.Tanh(x) },
	"asinh": math.Asinh, "acosh": math.Acosh, "atanh": math.Atanh,
	"asech": func(x float64) float64 { return math.Acosh(1 / x) },
	"acsch": func(x float64) float64 { return math.Asinh(1 / x) },
	"acoth": func(x float64) float64 { return math.Atanh(1 / x) },
	"log":   math.Log,
	"log10": math.Log10,
	"abs":   math.Abs,
	"sqrt":  math.Sqrt,
	"parens": func(x float64) float64 { return x },
	"sign": func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	},
	"sinc": func(x float64) float64 {
		if x == 0 {
			return 1
		}
		return math.Sin(x) / x
	},
	"erf":      math.Erf,
	"factorial": func(x float64) float64 { return math.Gamma(x + 1) },
	"S":        FresnelS,
	"C":        FresnelC,
	"Si":       Si,
	"Ci":       Ci,
	"Shi":      Shi,
	"Chi":      Chi,
	"Ei":       Ei,
	"Li":       Li,
}

// FresnelS and FresnelC are the numeric Fresnel sine/cosine integrals,
// S(x) = int_0^x sin(pi/2 t^2) dt and C(x) = int_0^x cos(pi/2 t^2) dt.
func FresnelS(x float64) float64 {
	return NumIntegrate(func(t float64) float64 { return math.Sin(math.Pi / 2 * t * t) }, 0, x)
}

func FresnelC(x float64) float64 {
	return NumIntegrate(func(t float64) float64 { return math.Cos(math.Pi / 2 * t * t) }, 0, x)
}

// Si and Shi are the sine/hyperbolic-sine integrals; their integrands have
// a removable singularity at 0, which quad.Legendre's open interior nodes
// never sample directly.
func Si(x float64) float64 {
	return NumIntegrate(func(t float64) float64 {
		if t == 0 {
			return 1
		}
		return math.Sin(t) / t
	}, 0, x)
}

func Shi(x float64) float64 {
	return NumIntegrate(func(t float64) float64 {
		if t == 0 {
			return 1
		}
		return math.Sinh(t) / t
	}, 0, x)
}

// Ci, Chi, and Ei use the standard gamma + ln|x| + (removable-singularity
// integral) expansion, valid for x != 0 (Ci/Chi) or x > 0 (Ei).
func Ci(x float64) float64 {
	return eulerGamma + math.Log(math.Abs(x)) + NumIntegrate(func(t float64) float64 {
		if t == 0 {
			return 0
		}
		return (math.Cos(t) - 1) / t
	}, 0, x)
}

func Chi(x float64) float64 {
	return eulerGamma + math.Log(math.Abs(x)) + NumIntegrate(func(t float64) float64 {
		if t == 0 {
			return 0
		}
		return (math.Cosh(t) - 1) / t
	}, 0, x)
}

func Ei(x float64) float64 {
	return eulerGamma + math.Log(math.Abs(x)) + NumIntegrate(func(t float64) float64 {
		if t == 0 {
			return 1
		}
		return (math.Exp(t) - 1) / t
	}, 0, x)
}

// Li is the logarithmic integral, Li(x) = Ei(ln x), defined for x > 1.
func Li(x float64) float64 {
	return Ei(math.Log(x))
}
