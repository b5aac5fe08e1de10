package term

import "testing"

func TestRationalArithmetic(t *testing.T) {
	a := RatFrac(1, 2)
	b := RatFrac(1, 3)
	if got := a.Add(b).String(); got != "5/6" {
		t.Errorf("Add: got %s, want 5/6", got)
	}
	if got := a.Mul(b).String(); got != "1/6" {
		t.Errorf("Mul: got %s, want 1/6", got)
	}
	if !RatInt(4).IsInt() {
		t.Errorf("RatInt(4).IsInt() = false, want true")
	}
	if RatFrac(1, 2).IsInt() {
		t.Errorf("RatFrac(1,2).IsInt() = true, want false")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	x := NewSymbol("x")
	sum := NewCP(x, NewInt(1))
	clone := sum.Clone()
	clone.Children[0].Val = "y"
	if sum.Children[0].Val != "x" {
		t.Errorf("mutating a clone's child mutated the original: got %s", sum.Children[0].Val)
	}
}

func TestFingerprintMergesLikeTerms(t *testing.T) {
	x1 := NewSymbol("x")
	x2 := NewSymbol("x")
	if x1.Fingerprint() != x2.Fingerprint() {
		t.Errorf("two identical symbols fingerprinted differently: %s vs %s", x1.Fingerprint(), x2.Fingerprint())
	}
	y := NewSymbolPow("x", RatInt(2))
	if x1.Fingerprint() == y.Fingerprint() {
		t.Errorf("x and x^2 fingerprinted the same")
	}
}

func TestContainsAndIsConstant(t *testing.T) {
	x := NewSymbol("x")
	expr := NewFunction("sin", NewCP(x, NewInt(1)))
	if !expr.Contains("x", true) {
		t.Errorf("expected sin(x+1) to contain x")
	}
	if expr.IsConstant(true) {
		t.Errorf("expected sin(x+1) to not be constant")
	}
	c := NewFunction("sin", NewInt(1))
	if !c.IsConstant(true) {
		t.Errorf("expected sin(1) to be constant")
	}
}

func TestToUnitMultiplierAndToLinear(t *testing.T) {
	x := NewSymbolPow("x", RatInt(3))
	x.Mult = RatInt(5)
	bare := x.ToUnitMultiplier()
	if !bare.Mult.IsOne() {
		t.Errorf("ToUnitMultiplier left Mult = %s, want 1", bare.Mult)
	}
	if x.Mult.Int64() != 5 {
		t.Errorf("ToUnitMultiplier mutated the receiver")
	}
	lin := x.ToLinear()
	if !lin.PowR.IsOne() {
		t.Errorf("ToLinear left power = %s, want 1", lin.PowR)
	}
}

func TestInvert(t *testing.T) {
	x := NewSymbolPow("x", RatInt(2))
	x.Mult = RatFrac(3, 1)
	inv := x.Invert()
	if inv.Mult.String() != "1/3" {
		t.Errorf("Invert Mult = %s, want 1/3", inv.Mult)
	}
	if inv.PowR.Int64() != -2 {
		t.Errorf("Invert power = %s, want -2", inv.PowR)
	}
}

func TestSplitByVar(t *testing.T) {
	x := NewSymbol("x")
	y := NewSymbol("y")
	prod := NewCB(NewInt(3), y, x)
	indep, dep := SplitByVar(prod, "x")
	if !indep.Contains("y", true) {
		t.Errorf("expected independent factor to retain y")
	}
	if indep.Contains("x", true) {
		t.Errorf("expected independent factor to drop x")
	}
	if !dep.Equals(x) {
		t.Errorf("expected dependent factor to be x, got %s", dep)
	}
}

func TestUnwrapSqrt(t *testing.T) {
	x := NewSymbol("x")
	sq := NewFunction("sqrt", x)
	sq.PowR = RatInt(3)
	unwrapped := UnwrapSqrt(sq)
	if unwrapped.Group != S {
		t.Errorf("expected unwrap to produce group S, got %s", unwrapped.Group)
	}
	if unwrapped.PowR.String() != "3/2" {
		t.Errorf("expected power 3/2, got %s", unwrapped.PowR)
	}
}

func TestSubVarRaisesPower(t *testing.T) {
	expr := NewSymbolPow("x", RatInt(3))
	repl := NewInt(2)
	got := expr.SubVar("x", repl)
	if got.Group != EX {
		t.Errorf("expected SubVar to produce an EX wrapper for non-unit power, got %s", got.Group)
	}
}

func TestLessThanOrdersByGroupThenPower(t *testing.T) {
	factors := []*Term{
		NewSymbol("x"),
		NewFunction("sin", NewSymbol("x")),
		NewSymbolPow("x", RatInt(2)),
	}
	SortFactors(factors)
	if factors[0].Group != FN {
		t.Errorf("expected FN to sort first (descending group), got %s", factors[0].Group)
	}
}
