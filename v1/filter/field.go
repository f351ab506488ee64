package filter

// FieldFilter is a transient, field-scoped predicate constructor produced
// by Builder.Where. Every terminal method synthesizes exactly one
// condition, appends it to the owning builder, and returns the builder to
// continue the fluent chain. A FieldFilter holds nothing beyond the field
// name and is not meant to be retained after one call.
type FieldFilter struct {
	builder *Builder
	key     string
}

// Equals appends an exact-match condition on the field.
func (f *FieldFilter) Equals(value any) *Builder {
	return f.builder.AddCondition(&Match{Key: f.key, Value: value})
}

// Matches appends an exact-match condition on text content.
func (f *FieldFilter) Matches(text string) *Builder {
	return f.builder.AddCondition(&Match{Key: f.key, Value: text})
}

// Contains appends an exact-match condition. For payload list fields the
// store treats a match against any element as a hit.
func (f *FieldFilter) Contains(value any) *Builder {
	return f.builder.AddCondition(&Match{Key: f.key, Value: value})
}

// NotEquals appends the structural inversion of an exact match: a Not
// composite around a single Match. There is no distinct leaf kind for
// inequality.
func (f *FieldFilter) NotEquals(value any) *Builder {
	return f.builder.AddCondition(&Not{
		MustNot: []Filter{&Match{Key: f.key, Value: value}},
	})
}

// GreaterThan appends an exclusive lower-bound range condition.
func (f *FieldFilter) GreaterThan(n float64) *Builder {
	return f.builder.AddCondition(&Range{Key: f.key, GT: f64(n)})
}

// GreaterThanOrEqual appends an inclusive lower-bound range condition.
func (f *FieldFilter) GreaterThanOrEqual(n float64) *Builder {
	return f.builder.AddCondition(&Range{Key: f.key, GTE: f64(n)})
}

// LessThan appends an exclusive upper-bound range condition.
func (f *FieldFilter) LessThan(n float64) *Builder {
	return f.builder.AddCondition(&Range{Key: f.key, LT: f64(n)})
}

// LessThanOrEqual appends an inclusive upper-bound range condition.
func (f *FieldFilter) LessThanOrEqual(n float64) *Builder {
	return f.builder.AddCondition(&Range{Key: f.key, LTE: f64(n)})
}

// InRange appends an inclusive [min, max] range condition. The bounds are
// checked eagerly: when min > max nothing is appended and the failure is
// recorded on the builder, surfacing from Build or Err.
func (f *FieldFilter) InRange(min, max float64) *Builder {
	if min > max {
		f.builder.fail(newValidationError("range lower bound exceeds upper bound", "range", f.key))
		return f.builder
	}
	return f.builder.AddCondition(&Range{Key: f.key, GTE: f64(min), LTE: f64(max)})
}

// InBoundingBox appends a geo bounding-box condition. Coordinate bounds
// are not checked here; they are deferred to ValidateCondition.
func (f *FieldFilter) InBoundingBox(topLeft, bottomRight GeoPoint) *Builder {
	return f.builder.AddCondition(&GeoBoundingBox{
		Key:         f.key,
		TopLeft:     topLeft,
		BottomRight: bottomRight,
	})
}

// WithinRadius appends a geo radius condition. The radius (meters) is
// checked eagerly: when it is not positive nothing is appended and the
// failure is recorded on the builder.
func (f *FieldFilter) WithinRadius(center GeoPoint, radiusMeters float64) *Builder {
	if radiusMeters <= 0 {
		f.builder.fail(newValidationError("radius must be greater than zero", "geo_radius", f.key))
		return f.builder
	}
	return f.builder.AddCondition(&GeoRadius{Key: f.key, Center: center, Radius: radiusMeters})
}
