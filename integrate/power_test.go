package integrate

import (
	"testing"

	"calculus/kernel"
	"calculus/term"
)

func TestSqrtQuadraticInverseArcsin(t *testing.T) {
	// integral of 1/sqrt(1-x^2) dx = asin(x)
	x := term.NewSymbol("x")
	x2 := kernel.Pow(x, term.RatInt(2))
	quad := kernel.Subtract(term.NewInt(1), x2)
	quad.PowR = term.RatFrac(-1, 2)
	got := mustIntegrate(t, quad, "x")
	if !got.ContainsFunction("asin") {
		t.Errorf("integral(1/sqrt(1-x^2)) = %s, expected an asin term", got)
	}
}

func TestSqrtQuadraticInverseArcsinh(t *testing.T) {
	// integral of 1/sqrt(x^2+1) dx = asinh(x)
	x := term.NewSymbol("x")
	x2 := kernel.Pow(x, term.RatInt(2))
	quad := term.NewCP(x2, term.NewInt(1))
	quad.PowR = term.RatFrac(-1, 2)
	got := mustIntegrate(t, quad, "x")
	if !got.ContainsFunction("asinh") {
		t.Errorf("integral(1/sqrt(x^2+1)) = %s, expected an asinh term", got)
	}
}

func TestSqrtQuadraticInverseArccosh(t *testing.T) {
	// integral of 1/sqrt(x^2-1) dx = acosh(x)
	x := term.NewSymbol("x")
	x2 := kernel.Pow(x, term.RatInt(2))
	quad := kernel.Subtract(x2, term.NewInt(1))
	quad.PowR = term.RatFrac(-1, 2)
	got := mustIntegrate(t, quad, "x")
	if !got.ContainsFunction("acosh") {
		t.Errorf("integral(1/sqrt(x^2-1)) = %s, expected an acosh term", got)
	}
}

func TestQuadraticPowerReduction(t *testing.T) {
	// integral of 1/(x^2+1)^2 dx = x/(2*(x^2+1)) + atan(x)/2
	x := term.NewSymbol("x")
	x2 := kernel.Pow(x, term.RatInt(2))
	quad := term.NewCP(x2, term.NewInt(1))
	quad.PowR = term.RatInt(-2)
	got := mustIntegrate(t, quad, "x")
	if !got.ContainsFunction("atan") {
		t.Errorf("integral(1/(x^2+1)^2) = %s, expected an atan term", got)
	}
}

func TestQuarticFactor(t *testing.T) {
	// integral of 1/(x^4+1) dx closes via the conjugate-quadratic split
	x := term.NewSymbol("x")
	x4 := kernel.Pow(x, term.RatInt(4))
	quad := term.NewCP(x4, term.NewInt(1))
	quad.PowR = term.MinusOne()
	got, err := Integrate(quad, "x")
	if err != nil {
		t.Fatalf("Integrate error: %v", err)
	}
	if !got.ContainsFunction(term.LOG) || !got.ContainsFunction("atan") {
		t.Errorf("integral(1/(x^4+1)) = %s, expected both a log and an atan term", got)
	}
}
