package defint

import (
	"testing"

	"calculus/kernel"
	"calculus/term"
)

func TestDefiniteIntegralOfPolynomial(t *testing.T) {
	// integral of x^2 dx from 0 to 3 = 9
	x2 := term.NewSymbolPow("x", term.RatInt(2))
	got, err := Defint(x2, term.NewInt(0), term.NewInt(3), "x")
	if err != nil {
		t.Fatalf("Defint error: %v", err)
	}
	if got.Group != term.N || !got.Mult.Equal(term.RatInt(9)) {
		t.Errorf("defint(x^2,0,3) = %s, want 9", got)
	}
}

func TestDefiniteIntegralOfTrigPower(t *testing.T) {
	// integral of sin(x)^3 dx from 0 to 1: exercises the antiderivative
	// (reduction formula) plus the literal-bound evaluation path, which
	// leaves sin(1)/sin(0) unevaluated symbolically (no numeric evaluator
	// runs unless the antiderivative strategy itself gives up).
	x := term.NewSymbol("x")
	sinCubed := term.NewFunction("sin", x)
	sinCubed.PowR = term.RatInt(3)
	got, err := Defint(sinCubed, term.NewInt(0), term.NewInt(1), "x")
	if err != nil {
		t.Fatalf("Defint error: %v", err)
	}
	if !got.ContainsFunction("sin") && !got.ContainsFunction("cos") {
		t.Errorf("defint(sin(x)^3,0,1) = %s, want a sin/cos-bearing symbolic bound evaluation", got)
	}
}

func TestDefiniteIntegralFallsBackToNumericQuadrature(t *testing.T) {
	// An integrand with no antiderivative strategy (bare sqrt of a
	// quadratic) should fall through to gonum quadrature.
	x := term.NewSymbol("x")
	quad := term.NewCP(kernel.Pow(x, term.RatInt(2)), term.NewInt(1))
	quad.PowR = term.RatFrac(1, 2)
	got, err := Defint(quad, term.NewInt(0), term.NewInt(1), "x")
	if err != nil {
		t.Fatalf("Defint error: %v", err)
	}
	if got.Group != term.N {
		t.Errorf("defint(sqrt(x^2+1),0,1) = %s, want a numeric quadrature result", got)
	}
}
