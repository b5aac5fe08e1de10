package kernel

import (
	"testing"

	"calculus/term"
)

func TestAddMergesLikeTerms(t *testing.T) {
	x := term.NewSymbol("x")
	two_x := x.Clone()
	two_x.Mult = term.RatInt(2)
	sum := Add(x, two_x)
	if sum.Group != term.S || sum.Multiplier().Int64() != 3 {
		t.Errorf("Add(x, 2x) = %s, want 3*x", sum)
	}
}

func TestAddCancelsToZero(t *testing.T) {
	x := term.NewSymbol("x")
	negX := x.Negate()
	sum := Add(x, negX)
	if sum.Group != term.N || !sum.Multiplier().IsZero() {
		t.Errorf("Add(x, -x) = %s, want 0", sum)
	}
}

func TestMultiplyCombinesExponents(t *testing.T) {
	x2 := term.NewSymbolPow("x", term.RatInt(2))
	x3 := term.NewSymbolPow("x", term.RatInt(3))
	prod := Multiply(x2, x3)
	if prod.Group != term.S || prod.PowR.Int64() != 5 {
		t.Errorf("Multiply(x^2, x^3) = %s, want x^5", prod)
	}
}

func TestMultiplyByZero(t *testing.T) {
	x := term.NewSymbol("x")
	prod := Multiply(x, term.NewInt(0))
	if !prod.Multiplier().IsZero() {
		t.Errorf("Multiply(x, 0) = %s, want 0", prod)
	}
}

func TestDivideByZeroErrors(t *testing.T) {
	x := term.NewSymbol("x")
	_, err := Divide(x, term.NewInt(0))
	if err != ErrDivisionByZero {
		t.Errorf("Divide by zero: got %v, want ErrDivisionByZero", err)
	}
}

func TestPowIntegerRaisesMultAndPower(t *testing.T) {
	x := term.NewSymbol("x")
	x.Mult = term.RatInt(2)
	cubed := Pow(x, term.RatInt(3))
	if cubed.Multiplier().Int64() != 8 || cubed.PowR.Int64() != 3 {
		t.Errorf("Pow(2x, 3) = %s, want 8*x^3", cubed)
	}
}

func TestExpandDistributesProductOverSum(t *testing.T) {
	x := term.NewSymbol("x")
	sum := term.NewCP(x, term.NewInt(1))
	prod := term.NewCB(x, sum)
	expanded := Expand(prod)
	got := Simplify(expanded)
	want := Add(Multiply(x, x), x)
	if got.Fingerprint() != want.Fingerprint() {
		t.Errorf("Expand(x*(x+1)) = %s, want x^2+x", got)
	}
}

func TestExpandBinomialSquare(t *testing.T) {
	x := term.NewSymbol("x")
	sum := term.NewCP(x, term.NewInt(1))
	sum.PowR = term.RatInt(2)
	expanded := Expand(sum)
	want := Add(Add(Multiply(x, x), Multiply(term.NewInt(2), x)), term.NewInt(1))
	if expanded.Fingerprint() != want.Fingerprint() {
		t.Errorf("Expand((x+1)^2) = %s, want x^2+2x+1", expanded)
	}
}
