package integrate

import (
	"testing"

	"calculus/term"
)

func TestIntegrateVectorDistributesElementWise(t *testing.T) {
	x := term.NewSymbol("x")
	v := term.Vector{x.Clone(), term.NewInt(2)}
	got, err := IntegrateVector(v, "x")
	if err != nil {
		t.Fatalf("IntegrateVector error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("IntegrateVector returned %d elements, want 2", len(got))
	}
	if got[0].PowR.Int64() != 2 || !got[0].Mult.Equal(term.RatFrac(1, 2)) {
		t.Errorf("integrate(x,x) = %s, want x^2/2", got[0])
	}
	if got[1].Group != term.S || got[1].Mult.Int64() != 2 || got[1].Val != "x" {
		t.Errorf("integrate(2,x) = %s, want 2*x", got[1])
	}
}

func TestIntegrateEquationDistributesOverBothSides(t *testing.T) {
	x := term.NewSymbol("x")
	eq := term.Equation{LHS: term.NewInt(1), RHS: x.Clone()}
	got, err := IntegrateEquation(eq, "x")
	if err != nil {
		t.Fatalf("IntegrateEquation error: %v", err)
	}
	if got.LHS.Group != term.S || got.LHS.Val != "x" {
		t.Errorf("integrate(1,x) = %s, want x", got.LHS)
	}
	if got.RHS.PowR.Int64() != 2 {
		t.Errorf("integrate(x,x) = %s, want x^2/2", got.RHS)
	}
}
