package exprparse

import (
	"testing"

	"calculus/term"
)

func TestParseSimpleSum(t *testing.T) {
	got, err := Parse("2 + 3")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got.Group != term.N || got.Mult.Int64() != 5 {
		t.Errorf("Parse(2+3) = %s, want 5", got)
	}
}

func TestParsePrecedence(t *testing.T) {
	// 2 + 3*4 = 14, not 20
	got, err := Parse("2 + 3*4")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got.Group != term.N || got.Mult.Int64() != 14 {
		t.Errorf("Parse(2+3*4) = %s, want 14", got)
	}
}

func TestParseParentheses(t *testing.T) {
	got, err := Parse("(2 + 3) * 4")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got.Group != term.N || got.Mult.Int64() != 20 {
		t.Errorf("Parse((2+3)*4) = %s, want 20", got)
	}
}

func TestParseRightAssociativePower(t *testing.T) {
	// 2^3^2 = 2^(3^2) = 2^9 = 512
	got, err := Parse("2^3^2")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got.Group != term.N || got.Mult.Int64() != 512 {
		t.Errorf("Parse(2^3^2) = %s, want 512", got)
	}
}

func TestParseUnaryMinusBindsLooserThanPower(t *testing.T) {
	// -2^2 = -(2^2) = -4
	got, err := Parse("-2^2")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got.Group != term.N || got.Mult.Int64() != -4 {
		t.Errorf("Parse(-2^2) = %s, want -4", got)
	}
}

func TestParseSymbolAndFunctionCall(t *testing.T) {
	got, err := Parse("sin(x) + x^2")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got.Group != term.CP {
		t.Errorf("Parse(sin(x)+x^2) = %s, want a sum", got)
	}
}

func TestParseSymbolicExponentYieldsEX(t *testing.T) {
	got, err := Parse("2^x")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got.Group != term.EX {
		t.Errorf("Parse(2^x) = %s, want an EX term", got)
	}
}

func TestParseUnclosedParenIsError(t *testing.T) {
	if _, err := Parse("(2 + 3"); err == nil {
		t.Errorf("Parse(unclosed) expected an error")
	}
}

func TestParseMultiArgFunction(t *testing.T) {
	got, err := Parse("diff(x^2, x)")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got.Group != term.FN || got.Fname != "diff" || len(got.Args) != 2 {
		t.Errorf("Parse(diff(x^2,x)) = %s, want a 2-arg diff call", got)
	}
}
