package differentiate

import (
	"testing"

	"calculus/kernel"
	"calculus/term"
)

func diffStr(t *testing.T, expr *term.Term, wrt string, n int) string {
	t.Helper()
	d, err := Diff(expr, wrt, n)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	return d.String()
}

func TestPowerRule(t *testing.T) {
	// d/dx[x^3] = 3x^2
	x3 := term.NewSymbolPow("x", term.RatInt(3))
	got, err := Diff(x3, "x", 1)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	if got.Group != term.S || got.Multiplier().Int64() != 3 || got.PowR.Int64() != 2 {
		t.Errorf("Diff(x^3) = %s, want 3*x^2", got)
	}
}

func TestConstantDerivativeIsZero(t *testing.T) {
	five := term.NewInt(5)
	got, err := Diff(five, "x", 1)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	if !got.Multiplier().IsZero() {
		t.Errorf("Diff(5) = %s, want 0", got)
	}
}

func TestChainRuleOnTrig(t *testing.T) {
	// d/dx[sin(2x)] = 2*cos(2x)
	x := term.NewSymbol("x")
	twoX := x.Clone()
	twoX.Mult = term.RatInt(2)
	expr := term.NewFunction("sin", twoX)
	got, err := Diff(expr, "x", 1)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	want := kernel.Multiply(term.NewInt(2), term.NewFunction("cos", twoX))
	if got.Fingerprint() != want.Fingerprint() {
		t.Errorf("Diff(sin(2x)) = %s, want 2*cos(2x)", got)
	}
}

func TestProductRule(t *testing.T) {
	// d/dx[x * sin(x)] = sin(x) + x*cos(x)
	x := term.NewSymbol("x")
	sinX := term.NewFunction("sin", x)
	expr := term.NewCB(x, sinX)
	got, err := Diff(expr, "x", 1)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	want := kernel.Add(sinX, kernel.Multiply(x, term.NewFunction("cos", x)))
	if got.Fingerprint() != want.Fingerprint() {
		t.Errorf("Diff(x*sin(x)) = %s, want sin(x)+x*cos(x)", got)
	}
}

func TestSecondDerivative(t *testing.T) {
	// d2/dx2[x^4] = 12x^2
	x4 := term.NewSymbolPow("x", term.RatInt(4))
	got, err := Diff(x4, "x", 2)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	if got.Multiplier().Int64() != 12 || got.PowR.Int64() != 2 {
		t.Errorf("d2/dx2[x^4] = %s, want 12*x^2", got)
	}
}

func TestExponentialRule(t *testing.T) {
	// d/dx[e^x] = e^x
	ex := term.NewEX(term.NewSymbol("e"), term.NewSymbol("x"))
	got, err := Diff(ex, "x", 1)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	if got.Fingerprint() != ex.Fingerprint() {
		t.Errorf("Diff(e^x) = %s, want e^x", got)
	}
}

func TestUnknownFunctionFallsBackToArgDerivative(t *testing.T) {
	x2 := term.NewSymbolPow("x", term.RatInt(2))
	expr := term.NewFunction("gamma", x2)
	got := diffStr(t, expr, "x", 1)
	want := diffStr(t, x2, "x", 1)
	if got != want {
		t.Errorf("Diff(gamma(x^2)) = %s, want the argument's own derivative %s", got, want)
	}
}
