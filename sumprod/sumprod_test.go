package sumprod

import (
	"testing"

	"calculus/kernel"
	"calculus/term"
)

func TestSumOfIndex(t *testing.T) {
	// sum(i, i, 1, 10) = 55
	i := term.NewSymbol("i")
	got, err := Sum(i, "i", term.NewInt(1), term.NewInt(10))
	if err != nil {
		t.Fatalf("Sum error: %v", err)
	}
	if got.Group != term.N || got.Mult.Int64() != 55 {
		t.Errorf("sum(i,1,10) = %s, want 55", got)
	}
}

func TestProductOfIndex(t *testing.T) {
	// product(i, i, 1, 5) = 120
	i := term.NewSymbol("i")
	got, err := Product(i, "i", term.NewInt(1), term.NewInt(5))
	if err != nil {
		t.Fatalf("Product error: %v", err)
	}
	if got.Group != term.N || got.Mult.Int64() != 120 {
		t.Errorf("product(i,1,5) = %s, want 120", got)
	}
}

func TestSumEmptyRangeIsZero(t *testing.T) {
	i := term.NewSymbol("i")
	got, err := Sum(i, "i", term.NewInt(5), term.NewInt(1))
	if err != nil {
		t.Fatalf("Sum error: %v", err)
	}
	if got.Group != term.N || !got.Mult.IsZero() {
		t.Errorf("sum(i,5,1) = %s, want 0", got)
	}
}

func TestSumIndexMustBeSymbol(t *testing.T) {
	i := term.NewSymbol("i")
	_, err := Sum(i, "", term.NewInt(1), term.NewInt(10))
	if err != kernel.ErrIndexNotSymbol {
		t.Errorf("Sum with empty index = %v, want ErrIndexNotSymbol", err)
	}
}

func TestSumSymbolicBoundsGivesPlaceholder(t *testing.T) {
	i := term.NewSymbol("i")
	n := term.NewSymbol("n")
	got, err := Sum(i, "i", term.NewInt(1), n)
	if err != nil {
		t.Fatalf("Sum error: %v", err)
	}
	if got.Group != term.FN || !got.ContainsFunction("sum") {
		t.Errorf("sum(i,1,n) = %s, want symbolic sum(...) placeholder", got)
	}
}

// TestProductEndExtractionAsymmetry documents the preserved defect: for a
// bare numeric end bound (PowR == 1) Multiplier() and the direct value
// agree, so this does not change Product's observable result for the
// common case, but the asymmetric extraction itself is intentional.
func TestProductEndExtractionAsymmetry(t *testing.T) {
	i := term.NewSymbol("i")
	got, err := Product(i, "i", term.NewInt(1), term.NewInt(3))
	if err != nil {
		t.Fatalf("Product error: %v", err)
	}
	if got.Group != term.N || got.Mult.Int64() != 6 {
		t.Errorf("product(i,1,3) = %s, want 6", got)
	}
}

func TestWideRangeNumericFallback(t *testing.T) {
	// sum(1, i, 1, 300) = 300: wide enough to trigger the numeric path.
	one := term.NewInt(1)
	got, err := Sum(one, "i", term.NewInt(1), term.NewInt(300))
	if err != nil {
		t.Fatalf("Sum error: %v", err)
	}
	if got.Group != term.N {
		t.Errorf("sum(1,1,300) = %s, want a numeric result", got)
	}
	if diff := got.Mult.Float64() - 300.0; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("sum(1,1,300) = %v, want 300", got.Mult.Float64())
	}
}
