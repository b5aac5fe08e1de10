package guard

import (
	"errors"
	"testing"
)

func TestDepthGuardCapsRecursion(t *testing.T) {
	g := NewDepthGuard(2)
	if err := g.Enter(); err != nil {
		t.Fatalf("first Enter: %v", err)
	}
	if err := g.Enter(); err != nil {
		t.Fatalf("second Enter: %v", err)
	}
	if err := g.Enter(); !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("third Enter should exceed depth 2, got %v", err)
	}
	g.Leave()
	if err := g.Enter(); err != nil {
		t.Errorf("Enter after Leave should succeed, got %v", err)
	}
}

func TestByPartsStackDetectsCycle(t *testing.T) {
	s := NewByPartsStack()
	if !s.Push("sin(x)*exp(x)") {
		t.Fatalf("first push should succeed")
	}
	if !s.Push("cos(x)*exp(x)") {
		t.Fatalf("second distinct push should succeed")
	}
	if s.Push("sin(x)*exp(x)") {
		t.Errorf("re-pushing the same fingerprint should report a cycle")
	}
}

func TestGetUProducesFreshNames(t *testing.T) {
	ClearU()
	a := GetU()
	b := GetU()
	if a == b {
		t.Errorf("GetU produced the same name twice: %s", a)
	}
}
