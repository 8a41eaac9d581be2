package store

import "testing"

func TestInlineFixedCapacity(t *testing.T) {
	b := NewInline[int](5)
	if b.Cap() != 5 {
		t.Errorf("expected capacity 5, got %d", b.Cap())
	}
	b.Set(0, 42)
	if b.Get(0) != 42 {
		t.Errorf("expected element 42 at cell 0, got %d", b.Get(0))
	}
	if got := b.Take(0); got != 42 {
		t.Errorf("expected taken element 42, got %d", got)
	}
	if b.Get(0) != 0 {
		t.Errorf("expected taken cell to be cleared")
	}
}

func TestInlineZeroCapacity(t *testing.T) {
	b := NewInline[string](0)
	if b.Cap() != 0 {
		t.Errorf("expected capacity 0, got %d", b.Cap())
	}
	if len(b.Cells()) != 0 {
		t.Errorf("expected empty cell run")
	}
}

func TestStateString(t *testing.T) {
	if StateInline.String() != "Inline" || StateSpilled.String() != "Spilled" {
		t.Errorf("unexpected state names: %s, %s", StateInline, StateSpilled)
	}
}
