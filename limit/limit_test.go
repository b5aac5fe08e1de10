package limit

import (
	"testing"

	"calculus/term"
)

func TestDirectSubstitution(t *testing.T) {
	// limit(x+1, x, 2) = 3
	x := term.NewSymbol("x")
	expr := term.NewCP(x, term.NewInt(1))
	got, err := Limit(expr, "x", term.NewInt(2), 0)
	if err != nil {
		t.Fatalf("Limit error: %v", err)
	}
	if got.Group != term.N || got.Mult.Int64() != 3 {
		t.Errorf("limit(x+1,2) = %s, want 3", got)
	}
}

func TestLHopitalSinOverX(t *testing.T) {
	// limit(sin(x)/x, x, 0) = 1
	x := term.NewSymbol("x")
	sinX := term.NewFunction("sin", x)
	xInv := x.Clone()
	xInv.PowR = term.MinusOne()
	expr := term.NewCB(sinX, xInv)
	got, err := Limit(expr, "x", term.NewInt(0), 0)
	if err != nil {
		t.Fatalf("Limit error: %v", err)
	}
	if got.Group != term.N || got.Mult.Int64() != 1 {
		t.Errorf("limit(sin(x)/x,0) = %s, want 1", got)
	}
}

func TestLimitOfOddNegativePowerAtZeroDiverges(t *testing.T) {
	// limit(1/x, x, 0) diverges.
	x := term.NewSymbol("x")
	inv := x.Clone()
	inv.PowR = term.MinusOne()
	got, err := Limit(inv, "x", term.NewInt(0), 0)
	if err != nil {
		t.Fatalf("Limit error: %v", err)
	}
	if IsConvergent(got) {
		t.Errorf("limit(1/x,0) = %s, want divergent interval", got)
	}
}

func TestLimitEvenNegativePowerAtZeroIsInfinity(t *testing.T) {
	// limit(1/x^2, x, 0) = +infinity.
	x := term.NewSymbol("x")
	invSq := x.Clone()
	invSq.PowR = term.RatInt(-2)
	got, err := Limit(invSq, "x", term.NewInt(0), 0)
	if err != nil {
		t.Fatalf("Limit error: %v", err)
	}
	if got.Group != term.N || !got.IsInfinity || got.InfSign != 1 {
		t.Errorf("limit(1/x^2,0) = %s, want +infinity", got)
	}
}
