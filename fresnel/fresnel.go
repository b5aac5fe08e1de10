// Package fresnel implements the Fresnel S and C special functions by thin
// delegation to package defint: a function symbol that, once its argument
// is known, rewrites itself into a call on a more primitive collaborator
// rather than carrying its own evaluation logic.
package fresnel

import (
	"math"

	"calculus/defint"
	"calculus/kernel"
	"calculus/term"
)

const fresnelVar = "t"

// S returns the Fresnel sine integral S(arg) = int_0^arg sin(pi/2 u^2) du.
func S(arg *term.Term) (*term.Term, error) {
	return reduce("sin", "S", arg)
}

// C returns the Fresnel cosine integral C(arg) = int_0^arg cos(pi/2 u^2) du.
func C(arg *term.Term) (*term.Term, error) {
	return reduce("cos", "C", arg)
}

// reduce evaluates the Fresnel integral for a constant argument via
// defint.Defint on the standard integrand, since S and C have no
// elementary closed-form antiderivative and must ultimately fall through
// to defint's numeric-quadrature fallback anyway; pi is supplied as a
// numeric constant (not the symbolic "pi" differentiate's table uses) so
// kernel.Build can compile the integrand to a float64 evaluator. A
// non-constant argument is left as an uninterpreted symbolic call.
func reduce(fname, exported string, arg *term.Term) (*term.Term, error) {
	if !arg.IsConstant(true) {
		return term.NewFunction(exported, arg), nil
	}
	u := term.NewSymbol(fresnelVar)
	uSquared := u.Clone()
	uSquared.PowR = term.RatInt(2)
	pi := term.NewNumber(term.RatFloat(math.Pi))
	half := term.NewNumber(term.RatFrac(1, 2))
	arg2 := kernel.Multiply(kernel.Multiply(half, pi), uSquared)
	integrand := term.NewFunction(fname, arg2)
	return defint.Defint(integrand, term.NewInt(0), arg, fresnelVar)
}
