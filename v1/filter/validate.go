package filter

import "math"

// ValidateCondition structurally verifies a single leaf condition. It is
// the deferred half of the validation split: nothing calls it implicitly,
// so a caller that skips it can build and send a malformed filter; that
// permissiveness is part of the contract, not an oversight.
//
// ValidateCondition deliberately does not recurse into composite Filter
// trees; a caller validating a full tree must walk it and invoke
// ValidateCondition on each leaf itself.
func ValidateCondition(c Condition) error {
	switch v := c.(type) {
	case *Match:
		return validateMatch(v)
	case *Range:
		return validateRange(v)
	case *GeoBoundingBox:
		return validateGeoBoundingBox(v)
	case *GeoRadius:
		return validateGeoRadius(v)
	default:
		return newValidationError("unknown condition type", "", "")
	}
}

func validateMatch(m *Match) error {
	if m.Key == "" {
		return newValidationError("match key must be a non-empty string", "match", m.Key)
	}
	if m.Value == nil {
		return newValidationError("match value must be defined", "match", m.Key)
	}
	switch m.Value.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return nil
	default:
		return newValidationError("match value must be a string, number, or boolean", "match", m.Key)
	}
}

func validateRange(r *Range) error {
	if r.Key == "" {
		return newValidationError("range key must be a non-empty string", "range", r.Key)
	}
	bounds := []*float64{r.GTE, r.LTE, r.GT, r.LT}
	defined := false
	for _, b := range bounds {
		if b == nil {
			continue
		}
		defined = true
		if !isFinite(*b) {
			return newValidationError("range bounds must be finite numbers", "range", r.Key)
		}
	}
	if !defined {
		return newValidationError("range requires at least one bound", "range", r.Key)
	}
	return nil
}

func validateGeoBoundingBox(g *GeoBoundingBox) error {
	if g.Key == "" {
		return newValidationError("geo bounding box key must be a non-empty string", "geo_bounding_box", g.Key)
	}
	if err := validateGeoPoint(g.TopLeft, "geo_bounding_box", g.Key); err != nil {
		return err
	}
	return validateGeoPoint(g.BottomRight, "geo_bounding_box", g.Key)
}

func validateGeoRadius(g *GeoRadius) error {
	if g.Key == "" {
		return newValidationError("geo radius key must be a non-empty string", "geo_radius", g.Key)
	}
	if err := validateGeoPoint(g.Center, "geo_radius", g.Key); err != nil {
		return err
	}
	if !isFinite(g.Radius) || g.Radius <= 0 {
		return newValidationError("radius must be a positive finite number", "geo_radius", g.Key)
	}
	return nil
}

func validateGeoPoint(p GeoPoint, kind, field string) error {
	if !isFinite(p.Lat) || p.Lat < -90 || p.Lat > 90 {
		return newValidationError("latitude must be a finite number in [-90, 90]", kind, field)
	}
	if !isFinite(p.Lon) || p.Lon < -180 || p.Lon > 180 {
		return newValidationError("longitude must be a finite number in [-180, 180]", kind, field)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
