package kernel

import (
	"testing"

	"calculus/term"
)

func TestFactorInnerFactorsPerfectSquareDiscriminant(t *testing.T) {
	x := term.NewSymbol("x")
	x2 := term.NewSymbolPow("x", term.RatInt(2))
	// x^2 - 5x + 6 = (x-2)(x-3)
	minus5x := x.Clone()
	minus5x.Mult = term.RatInt(-5)
	quad := term.NewCP(x2, minus5x, term.NewInt(6))
	factors := FactorInner(quad, "x")
	if len(factors) != 3 {
		t.Fatalf("FactorInner(x^2-5x+6) returned %d factors, want 3", len(factors))
	}
}

func TestFactorInnerLeavesIrreducibleAlone(t *testing.T) {
	x2 := term.NewSymbolPow("x", term.RatInt(2))
	quad := term.NewCP(x2, term.NewInt(1)) // x^2 + 1, no real roots
	factors := FactorInner(quad, "x")
	if len(factors) != 1 {
		t.Errorf("FactorInner(x^2+1) returned %d factors, want 1 (unfactored)", len(factors))
	}
}

func TestDegreeCountsHighestPower(t *testing.T) {
	x := term.NewSymbol("x")
	x3 := term.NewSymbolPow("x", term.RatInt(3))
	poly := term.NewCP(x3, x)
	if d := Degree(poly, "x"); d != 3 {
		t.Errorf("Degree(x^3+x) = %d, want 3", d)
	}
}

func TestPartFracCoverUp(t *testing.T) {
	// 1 / ((x-2)(x-3)) = -1/(x-2) + 1/(x-3)
	x2 := term.NewSymbolPow("x", term.RatInt(2))
	minus5x := term.NewSymbol("x")
	minus5x.Mult = term.RatInt(-5)
	den := term.NewCP(x2, minus5x, term.NewInt(6))
	num := term.NewInt(1)
	parts, ok := PartFrac(num, den, "x")
	if !ok || len(parts) != 2 {
		t.Fatalf("PartFrac(1/(x^2-5x+6)) ok=%v parts=%d, want ok=true parts=2", ok, len(parts))
	}
}

func TestSimplifyCombinesNumericExponent(t *testing.T) {
	base := term.NewInt(2)
	exp := term.NewInt(3)
	ex := term.NewEX(base, exp)
	got := Simplify(ex)
	if got.Group != term.N || got.Multiplier().Int64() != 8 {
		t.Errorf("Simplify(2^3) = %s, want 8", got)
	}
}
