package differentiate

import (
	"testing"

	"calculus/term"
)

func TestDiffVectorDistributesElementWise(t *testing.T) {
	x := term.NewSymbol("x")
	x2 := x.Clone()
	x2.PowR = term.RatInt(2)
	v := term.Vector{x2, x.Clone()}
	got, err := DiffVector(v, "x", 1)
	if err != nil {
		t.Fatalf("DiffVector error: %v", err)
	}
	if len(got) != 2 || got[0].Mult.Int64() != 2 || got[1].Group != term.N || got[1].Mult.Int64() != 1 {
		t.Errorf("DiffVector([x^2,x]) = %v, want [2*x, 1]", got)
	}
}

func TestDiffEquationDistributesOverBothSides(t *testing.T) {
	// diff(LHS: y, RHS: x^2) yields (diff(y,x), 2*x).
	y := term.NewSymbol("y")
	x2 := term.NewSymbolPow("x", term.RatInt(2))
	eq := term.Equation{LHS: y, RHS: x2}
	got, err := DiffEquation(eq, "x", 1)
	if err != nil {
		t.Fatalf("DiffEquation error: %v", err)
	}
	if got.LHS.Group != term.N || got.LHS.Mult.Int64() != 0 {
		t.Errorf("diff(y,x) = %s, want 0 (y has no x-dependence)", got.LHS)
	}
	if got.RHS.Mult.Int64() != 2 || got.RHS.Val != "x" {
		t.Errorf("diff(x^2,x) = %s, want 2*x", got.RHS)
	}
}
