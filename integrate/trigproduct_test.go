package integrate

import (
	"testing"

	"calculus/term"
)

func TestTrigProductTanSecAlgebraic(t *testing.T) {
	// integral of tan(x)*sec(x) dx = sec(x)
	x := term.NewSymbol("x")
	expr := term.NewCB(term.NewFunction("tan", x), term.NewFunction("sec", x))
	got := mustIntegrate(t, expr, "x")
	want := term.NewFunction("sec", x)
	if got.Fingerprint() != want.Fingerprint() {
		t.Errorf("integral(tan(x)*sec(x)) = %s, want sec(x)", got)
	}
}

func TestTrigProductSecCosAlgebraic(t *testing.T) {
	// integral of sec(x)*cos(x) dx = x
	x := term.NewSymbol("x")
	expr := term.NewCB(term.NewFunction("sec", x), term.NewFunction("cos", x))
	got := mustIntegrate(t, expr, "x")
	if got.Group != term.S || got.Val != "x" || !got.PowR.IsOne() {
		t.Errorf("integral(sec(x)*cos(x)) = %s, want x", got)
	}
}

func TestTrigProductSameArgOddPower(t *testing.T) {
	// integral of sin(x)*cos(x)^2 dx = -cos(x)^3/3
	x := term.NewSymbol("x")
	cosSq := term.NewFunction("cos", x)
	cosSq.PowR = term.RatInt(2)
	expr := term.NewCB(term.NewFunction("sin", x), cosSq)
	got, err := Integrate(expr, "x")
	if err != nil {
		t.Fatalf("Integrate error: %v", err)
	}
	if !got.ContainsFunction("cos") {
		t.Errorf("integral(sin(x)*cos(x)^2) = %s, expected a cos term", got)
	}
}

func TestTrigProductBothEvenHalfAngle(t *testing.T) {
	// integral of sin(x)^2*cos(x)^2 dx, both exponents even, half-angle expansion
	x := term.NewSymbol("x")
	sinSq := term.NewFunction("sin", x)
	sinSq.PowR = term.RatInt(2)
	cosSq := term.NewFunction("cos", x)
	cosSq.PowR = term.RatInt(2)
	expr := term.NewCB(sinSq, cosSq)
	got, err := Integrate(expr, "x")
	if err != nil {
		t.Fatalf("Integrate error: %v", err)
	}
	if !got.Contains("x", true) {
		t.Errorf("integral(sin(x)^2*cos(x)^2) = %s, expected an x-dependent result", got)
	}
}

func TestTrigProductDifferentArgsProductToSum(t *testing.T) {
	// integral of cos(x)*sin(2x) dx via the product-to-sum identity
	x := term.NewSymbol("x")
	twoX := x.Clone()
	twoX.Mult = term.RatInt(2)
	expr := term.NewCB(term.NewFunction("cos", x), term.NewFunction("sin", twoX))
	got, err := Integrate(expr, "x")
	if err != nil {
		t.Fatalf("Integrate error: %v", err)
	}
	if !got.ContainsFunction("cos") {
		t.Errorf("integral(cos(x)*sin(2x)) = %s, expected a cos term", got)
	}
}

func TestTrigProductTanTimesCotZeroSum(t *testing.T) {
	// integral of tan(x)*cot(x) dx = x (combined exponents sum to zero)
	x := term.NewSymbol("x")
	expr := term.NewCB(term.NewFunction("tan", x), term.NewFunction("cot", x))
	got, err := Integrate(expr, "x")
	if err != nil {
		t.Fatalf("Integrate error: %v", err)
	}
	if got.Group != term.S || got.Val != "x" || !got.PowR.IsOne() {
		t.Errorf("integral(tan(x)*cot(x)) = %s, want x", got)
	}
}
