package pattern

import (
	"testing"

	"calculus/term"
)

func TestInTrigMembership(t *testing.T) {
	if !InTrig("sin") || !InTrig("sec") {
		t.Errorf("expected sin and sec to be circular trig functions")
	}
	if InTrig("sinh") {
		t.Errorf("sinh must not classify as circular trig")
	}
}

func TestInInverseTrigMembership(t *testing.T) {
	if !InInverseTrig("atan") {
		t.Errorf("expected atan to be an inverse circular trig function")
	}
	if InInverseTrig("tan") {
		t.Errorf("tan must not classify as inverse trig")
	}
}

// TestInHTrigMisclassifiesInverseHyperbolicNames documents a known,
// intentionally preserved defect: acsch/asech/acoth were added to the
// plain hyperbolic membership table instead of a separate inverse table,
// so InHTrig reports true for all three even though they are inverse
// functions. A caller that branches solely on InHTrig (rather than also
// checking InInverseHTrig) will misapply a plain-hyperbolic rule to one
// of these three names.
func TestInHTrigMisclassifiesInverseHyperbolicNames(t *testing.T) {
	for _, name := range []string{"acsch", "asech", "acoth"} {
		if !InHTrig(name) {
			t.Errorf("expected InHTrig(%q) = true (preserved defect), got false", name)
		}
	}
	for _, name := range []string{"sinh", "cosh", "tanh"} {
		if !InHTrig(name) {
			t.Errorf("expected InHTrig(%q) = true, got false", name)
		}
	}
	for _, name := range []string{"asinh", "acosh", "atanh"} {
		if InHTrig(name) {
			t.Errorf("expected InHTrig(%q) = false, got true", name)
		}
	}
}

func TestDecomposeArgLinear(t *testing.T) {
	x := term.NewSymbol("x")
	two_x := x.Clone()
	two_x.Mult = term.RatInt(2)
	expr := term.NewCP(two_x, term.NewInt(3)) // 2x + 3
	a, _, ax, b, ok := DecomposeArg(expr, "x")
	if !ok {
		t.Fatalf("DecomposeArg(2x+3) ok=false")
	}
	if a.Multiplier().Int64() != 2 {
		t.Errorf("DecomposeArg coefficient = %s, want 2", a)
	}
	if !ax.Contains("x", true) {
		t.Errorf("DecomposeArg ax term doesn't contain x")
	}
	if b.Multiplier().Int64() != 3 {
		t.Errorf("DecomposeArg constant = %s, want 3", b)
	}
}

func TestFnTransformTan(t *testing.T) {
	x := term.NewSymbol("x")
	tanX := term.NewFunction("tan", x)
	got, ok := FnTransform(tanX)
	if !ok {
		t.Fatalf("FnTransform(tan(x)) ok=false")
	}
	if got.Group != term.CB {
		t.Errorf("FnTransform(tan(x)) = %s, want a sin(x)*cos(x)^-1 product", got)
	}
}

func TestTrigTransformSameArgDoubleAngle(t *testing.T) {
	x := term.NewSymbol("x")
	sinX := term.NewFunction("sin", x)
	cosX := term.NewFunction("cos", x)
	got, ok := TrigTransform([]*term.Term{sinX, cosX})
	if !ok {
		t.Fatalf("TrigTransform(sin(x), cos(x)) ok=false")
	}
	if got.Group != term.FN || got.Fname != "sin" {
		t.Errorf("TrigTransform(sin(x)*cos(x)) = %s, want scalar*sin(2x)", got)
	}
}
