package filter

import "slices"

// Mode is the builder's logical combination mode. It governs how the
// accumulated conditions are wrapped when Build is called.
type Mode int

const (
	// ModeAnd wraps conditions in an And composite (default).
	ModeAnd Mode = iota
	// ModeOr wraps conditions in an Or composite.
	ModeOr
	// ModeNot wraps conditions in a Not composite.
	ModeNot
)

// Builder accumulates filter conditions and collapses them into a single
// Filter value under an explicit, late-bound logical mode.
//
// The mode is applied at Build time to the entire accumulated list, not
// per condition at append time. Interleaving And()/Or() calls between
// Where() calls does not partition conditions into sub-groups; only the
// mode active when Build is invoked determines the wrapper:
//
//	f, _ := filter.NewBuilder().
//	    Where("city").Equals("London").
//	    Or().
//	    Where("city").Equals("Berlin").
//	    Build()
//	// f is Or{Should: [Match(city,London), Match(city,Berlin)]}
//
// A Builder is not safe for concurrent use; construct one per query.
type Builder struct {
	conditions []Filter
	mode       Mode
	err        error
}

// NewBuilder creates an empty builder in ModeAnd.
func NewBuilder() *Builder {
	return &Builder{mode: ModeAnd}
}

// And switches the builder to AND mode. It affects nothing already
// appended, only future Build calls.
func (b *Builder) And() *Builder {
	b.mode = ModeAnd
	return b
}

// Or switches the builder to OR mode.
func (b *Builder) Or() *Builder {
	b.mode = ModeOr
	return b
}

// Not switches the builder to NOT mode.
func (b *Builder) Not() *Builder {
	b.mode = ModeNot
	return b
}

// Where starts a predicate on the given payload field. The returned
// FieldFilter is transient; each of its terminal methods appends exactly
// one condition and hands back this builder.
func (b *Builder) Where(key string) *FieldFilter {
	return &FieldFilter{builder: b, key: key}
}

// AddCondition appends a pre-built filter as a single entry in the
// builder's condition list. Nil filters are ignored.
func (b *Builder) AddCondition(f Filter) *Builder {
	if f != nil {
		b.conditions = append(b.conditions, f)
	}
	return b
}

// AndAll builds each sub-builder and appends every non-nil result as one
// opaque pre-grouped child. Sub-builders that yield no filter are dropped.
func (b *Builder) AndAll(subs ...*Builder) *Builder {
	for _, sub := range subs {
		built, err := sub.Build()
		if err != nil {
			b.fail(err)
			continue
		}
		if built == nil {
			continue
		}
		b.conditions = append(b.conditions, built)
	}
	return b
}

// OrAny builds each sub-builder, collects the non-nil results and, if
// any survive, appends them wrapped together as a single Or child.
func (b *Builder) OrAny(subs ...*Builder) *Builder {
	var collected []Filter
	for _, sub := range subs {
		built, err := sub.Build()
		if err != nil {
			b.fail(err)
			continue
		}
		if built == nil {
			continue
		}
		collected = append(collected, built)
	}
	if len(collected) > 0 {
		b.conditions = append(b.conditions, &Or{Should: collected})
	}
	return b
}

// Build collapses the accumulated conditions into one Filter value:
//
//   - 0 conditions → (nil, nil); the caller should omit the filter downstream
//   - 1 condition  → that condition unwrapped, never a single-child composite
//   - ≥2 conditions → the entire list wrapped in a composite keyed by the
//     mode active right now, regardless of which mode was active when each
//     condition was appended
//
// Build is non-destructive and idempotent: the builder keeps its state and
// can be extended and rebuilt. If an eager validation failure occurred
// earlier in the chain (see FieldFilter.InRange, FieldFilter.WithinRadius),
// Build returns that error instead of a filter.
func (b *Builder) Build() (Filter, error) {
	if b.err != nil {
		return nil, b.err
	}

	switch len(b.conditions) {
	case 0:
		return nil, nil
	case 1:
		return b.conditions[0], nil
	}

	// Clone so later appends to the builder cannot reach into the
	// returned tree.
	children := slices.Clone(b.conditions)

	switch b.mode {
	case ModeOr:
		return &Or{Should: children}, nil
	case ModeNot:
		return &Not{MustNot: children}, nil
	default:
		return &And{Must: children}, nil
	}
}

// Validate runs the deferred structural checks on the accumulated
// conditions, failing fast on the first violation. An empty builder is a
// validation error. Entries that are pre-combined sub-filters (from
// AndAll, OrAny, or NotEquals) are treated as opaque and are not recursed
// into; only flat leaf conditions are checked, matching ValidateCondition's
// single-condition scope.
//
// Validate is opt-in: Build never calls it, so a caller that skips it can
// build and ship a structurally malformed filter.
func (b *Builder) Validate() error {
	if b.err != nil {
		return b.err
	}
	if len(b.conditions) == 0 {
		return newValidationError("builder has no conditions to validate", "", "")
	}
	for _, c := range b.conditions {
		leaf, ok := c.(Condition)
		if !ok {
			// Opaque pre-grouped sub-tree; not deeply validated.
			continue
		}
		if err := ValidateCondition(leaf); err != nil {
			return err
		}
	}
	return nil
}

// Err reports the first eager validation failure recorded by the fluent
// chain, if any.
func (b *Builder) Err() error {
	return b.err
}

// Len reports how many conditions have been appended so far.
func (b *Builder) Len() int {
	return len(b.conditions)
}

// fail records the first error; later errors are dropped.
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
