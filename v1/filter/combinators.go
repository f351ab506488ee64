package filter

// Stateless helpers for building and manipulating Filter values without
// the Builder. They follow the same collapsing rules: single elements are
// returned unwrapped and empty inputs are rejected.

// NewEqualityFilter creates an exact-match filter on a payload field.
func NewEqualityFilter(field string, value any) Filter {
	return &Match{Key: field, Value: value}
}

// NewRangeFilter creates an inclusive range filter. Either bound may be
// nil, but at least one must be set.
func NewRangeFilter(field string, min, max *float64) (Filter, error) {
	if min == nil && max == nil {
		return nil, newValidationError("range requires at least one bound", "range", field)
	}
	return &Range{Key: field, GTE: min, LTE: max}, nil
}

// CombineAnd joins filters under AND semantics. An empty input is an
// error; a single filter is returned unwrapped.
func CombineAnd(filters []Filter) (Filter, error) {
	if len(filters) == 0 {
		return nil, newValidationError("cannot combine an empty filter list", "", "")
	}
	if len(filters) == 1 {
		return filters[0], nil
	}
	return &And{Must: filters}, nil
}

// CombineOr joins filters under OR semantics. An empty input is an error;
// a single filter is returned unwrapped.
func CombineOr(filters []Filter) (Filter, error) {
	if len(filters) == 0 {
		return nil, newValidationError("cannot combine an empty filter list", "", "")
	}
	if len(filters) == 1 {
		return filters[0], nil
	}
	return &Or{Should: filters}, nil
}

// Negate wraps a filter in a Not composite. It always wraps, even when f
// is itself a Not; double negation is not simplified.
func Negate(f Filter) Filter {
	return &Not{MustNot: []Filter{f}}
}

// IsEmpty reports whether a filter matches nothing worth sending: nil, or
// a composite with no children. A leaf condition is never empty, even a
// semantically vacuous one; leaf semantics are not inspected.
func IsEmpty(f Filter) bool {
	switch v := f.(type) {
	case nil:
		return true
	case *And:
		return v == nil || len(v.Must) == 0
	case *Or:
		return v == nil || len(v.Should) == 0
	case *Not:
		return v == nil || len(v.MustNot) == 0
	default:
		return false
	}
}
