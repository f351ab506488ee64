package filter

import (
	"errors"
	"testing"
)

func TestCombineAnd_SingleUnwrapped(t *testing.T) {
	m := NewMatch("ticker", "NVDA")
	f, err := CombineAnd([]Filter{m})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != Filter(m) {
		t.Errorf("expected the sole filter returned as-is, got %v", f)
	}
}

func TestCombineAnd_Empty(t *testing.T) {
	_, err := CombineAnd(nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestCombineAnd_Multiple(t *testing.T) {
	f, err := CombineAnd([]Filter{
		NewMatch("a", 1),
		NewMatch("b", 2),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	and, ok := f.(*And)
	if !ok {
		t.Fatalf("expected *And, got %T", f)
	}
	if len(and.Must) != 2 {
		t.Errorf("expected 2 children, got %d", len(and.Must))
	}
}

func TestCombineOr_SingleUnwrapped(t *testing.T) {
	m := NewMatch("city", "London")
	f, err := CombineOr([]Filter{m})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != Filter(m) {
		t.Errorf("expected the sole filter returned as-is, got %v", f)
	}
}

func TestCombineOr_Empty(t *testing.T) {
	_, err := CombineOr([]Filter{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestCombineOr_Multiple(t *testing.T) {
	f, err := CombineOr([]Filter{
		NewMatch("city", "London"),
		NewMatch("city", "Berlin"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	or, ok := f.(*Or)
	if !ok {
		t.Fatalf("expected *Or, got %T", f)
	}
	if len(or.Should) != 2 {
		t.Errorf("expected 2 children, got %d", len(or.Should))
	}
}

func TestNewRangeFilter(t *testing.T) {
	f, err := NewRangeFilter("price", Bound(100), Bound(200))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, ok := f.(*Range)
	if !ok {
		t.Fatalf("expected *Range, got %T", f)
	}
	if r.GTE == nil || *r.GTE != 100 || r.LTE == nil || *r.LTE != 200 {
		t.Errorf("unexpected bounds: gte=%v lte=%v", r.GTE, r.LTE)
	}
}

func TestNewRangeFilter_SingleBound(t *testing.T) {
	f, err := NewRangeFilter("price", Bound(100), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := f.(*Range)
	if r.LTE != nil {
		t.Errorf("expected lte unset, got %v", r.LTE)
	}
}

func TestNewRangeFilter_NoBounds(t *testing.T) {
	_, err := NewRangeFilter("price", nil, nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Field != "price" {
		t.Errorf("expected field context, got %q", verr.Field)
	}
}

func TestNegate_AlwaysWraps(t *testing.T) {
	inner := Negate(NewMatch("deleted", true))
	outer := Negate(inner)

	not, ok := outer.(*Not)
	if !ok {
		t.Fatalf("expected *Not, got %T", outer)
	}
	if len(not.MustNot) != 1 {
		t.Fatalf("expected 1 child, got %d", len(not.MustNot))
	}
	// No double-negation simplification: the child is still a Not.
	if _, ok := not.MustNot[0].(*Not); !ok {
		t.Errorf("expected nested *Not preserved, got %T", not.MustNot[0])
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		f    Filter
		want bool
	}{
		{"nil filter", nil, true},
		{"empty and", &And{}, true},
		{"empty or", &Or{}, true},
		{"empty not", &Not{}, true},
		{"populated and", &And{Must: []Filter{NewMatch("x", 1)}}, false},
		{"leaf match", NewMatch("x", 1), false},
		{"vacuous leaf", &Match{}, false},
		{"leaf range", &Range{Key: "price", GTE: Bound(1)}, false},
	}

	for _, tt := range tests {
		if got := IsEmpty(tt.f); got != tt.want {
			t.Errorf("%s: IsEmpty = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNewEqualityFilter(t *testing.T) {
	f := NewEqualityFilter("ticker", "NVDA")
	m, ok := f.(*Match)
	if !ok {
		t.Fatalf("expected *Match, got %T", f)
	}
	if m.Key != "ticker" || m.Value != "NVDA" {
		t.Errorf("unexpected match: key=%q value=%v", m.Key, m.Value)
	}
}
