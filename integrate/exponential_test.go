package integrate

import (
	"testing"

	"calculus/kernel"
	"calculus/term"
)

func TestGeneralBaseExponential(t *testing.T) {
	// integral of 2^(3x) dx = 2^(3x)/(3*ln(2))
	base := term.NewNumber(term.RatInt(2))
	threeX := term.NewSymbol("x")
	threeX.Mult = term.RatInt(3)
	expr := term.NewEX(base, threeX)
	got := mustIntegrate(t, expr, "x")
	if got.Group != term.CB && got.Group != term.EX {
		t.Fatalf("integral(2^(3x)) = %s, expected an EX or scaled-EX result", got)
	}
	if !got.ContainsFunction(term.LOG) {
		t.Errorf("integral(2^(3x)) = %s, expected a log(2) coefficient", got)
	}
}

func TestGaussianIntegral(t *testing.T) {
	// integral of e^(-x^2) dx = sqrt(pi)*erf(x)/2
	x := term.NewSymbol("x")
	negX2 := kernel.Pow(x, term.RatInt(2))
	negX2.Mult = term.MinusOne()
	expr := term.NewEX(term.NewSymbol("e"), negX2)
	got := mustIntegrate(t, expr, "x")
	if !got.ContainsFunction("erf") {
		t.Errorf("integral(e^(-x^2)) = %s, expected an erf term", got)
	}
}

func TestGaussianIntegralPositiveAlphaGivesUp(t *testing.T) {
	// integral of e^(x^2) dx has no erf closed form in this direction
	x := term.NewSymbol("x")
	x2 := kernel.Pow(x, term.RatInt(2))
	expr := term.NewEX(term.NewSymbol("e"), x2)
	_, err := Integrate(expr, "x")
	if !kernel.IsGaveUp(err) {
		t.Errorf("integral(e^(x^2)) should give up, got %v", err)
	}
}

func TestEiIntegral(t *testing.T) {
	// integral of e^(e^x) dx = Ei(e^x)
	x := term.NewSymbol("x")
	ex := term.NewEX(term.NewSymbol("e"), x)
	expr := term.NewEX(term.NewSymbol("e"), ex)
	got := mustIntegrate(t, expr, "x")
	if !got.ContainsFunction("Ei") {
		t.Errorf("integral(e^(e^x)) = %s, expected Ei(e^x)", got)
	}
	if got.Group == term.CB {
		t.Errorf("integral(e^(e^x)) = %s, expected bare Ei(e^x), not a product", got)
	}
}
