package filter

// Filter is a boolean predicate tree over a stored record's payload fields.
// A Filter value is either a single leaf Condition or a composite
// (And / Or / Not) over child filters. Once constructed, directly or via
// Builder.Build, a Filter tree is never mutated.
type Filter interface {
	// isFilter is a marker method to keep the union closed
	isFilter()
}

// Condition is a leaf predicate on a single payload field.
// Every Condition is also a valid Filter.
type Condition interface {
	Filter
	// isCondition is a marker method to ensure type safety
	isCondition()
}

// GeoPoint is a geographic coordinate.
// Lat must be within [-90, 90] and Lon within [-180, 180];
// bounds are enforced by ValidateCondition, not at construction.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Match represents an exact match on a payload field (WHERE field = value).
// Supports string, bool, and numeric values.
type Match struct {
	Key   string
	Value any
}

func (*Match) isFilter()    {}
func (*Match) isCondition() {}

// Range filters by numeric range. At least one bound must be set;
// unset bounds are nil pointers and are omitted on the wire.
type Range struct {
	Key string
	GTE *float64 // inclusive lower bound
	LTE *float64 // inclusive upper bound
	GT  *float64 // exclusive lower bound
	LT  *float64 // exclusive upper bound
}

func (*Range) isFilter()    {}
func (*Range) isCondition() {}

// GeoBoundingBox matches points inside a rectangle spanned by the
// top-left and bottom-right corners.
type GeoBoundingBox struct {
	Key         string
	TopLeft     GeoPoint
	BottomRight GeoPoint
}

func (*GeoBoundingBox) isFilter()    {}
func (*GeoBoundingBox) isCondition() {}

// GeoRadius matches points within Radius meters of Center.
type GeoRadius struct {
	Key    string
	Center GeoPoint
	// Radius is in meters and must be > 0.
	Radius float64
}

func (*GeoRadius) isFilter()    {}
func (*GeoRadius) isCondition() {}

// And matches when all child filters match.
type And struct {
	Must []Filter
}

func (*And) isFilter() {}

// Or matches when at least one child filter matches.
type Or struct {
	Should []Filter
}

func (*Or) isFilter() {}

// Not matches when none of the child filters match.
type Not struct {
	MustNot []Filter
}

func (*Not) isFilter() {}

// NewMatch creates an exact-match condition.
func NewMatch(key string, value any) *Match {
	return &Match{Key: key, Value: value}
}

// NewGeoBoundingBox creates a bounding-box condition.
func NewGeoBoundingBox(key string, topLeft, bottomRight GeoPoint) *GeoBoundingBox {
	return &GeoBoundingBox{Key: key, TopLeft: topLeft, BottomRight: bottomRight}
}

// NewGeoRadius creates a radius condition. Radius is in meters.
func NewGeoRadius(key string, center GeoPoint, radiusMeters float64) *GeoRadius {
	return &GeoRadius{Key: key, Center: center, Radius: radiusMeters}
}

// f64 returns a pointer to v, for optional range bounds.
func f64(v float64) *float64 {
	return &v
}

// Bound returns a pointer to v for use as an optional Range bound.
//
// Example:
//
//	r := &filter.Range{Key: "price", GTE: filter.Bound(100)}
func Bound(v float64) *float64 {
	return f64(v)
}
