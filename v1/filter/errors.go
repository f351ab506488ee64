package filter

import "fmt"

// ValidationError is the single error kind raised by this package.
// It carries a human-readable message plus optional filter-kind and
// field-name context for diagnostics.
//
// Use errors.As to inspect it:
//
//	var verr *filter.ValidationError
//	if errors.As(err, &verr) {
//	    log.Printf("invalid %s filter on field %q: %s", verr.FilterKind, verr.Field, verr.Message)
//	}
type ValidationError struct {
	// Message describes the violation.
	Message string

	// FilterKind is the wire tag of the offending condition
	// (e.g. "match", "range", "geo_radius"), when known.
	FilterKind string

	// Field is the payload field the condition targets, when known.
	Field string
}

func (e *ValidationError) Error() string {
	switch {
	case e.FilterKind != "" && e.Field != "":
		return fmt.Sprintf("filter: %s (kind=%s, field=%s)", e.Message, e.FilterKind, e.Field)
	case e.FilterKind != "":
		return fmt.Sprintf("filter: %s (kind=%s)", e.Message, e.FilterKind)
	default:
		return fmt.Sprintf("filter: %s", e.Message)
	}
}

// newValidationError builds a ValidationError with optional context.
func newValidationError(message, filterKind, field string) *ValidationError {
	return &ValidationError{Message: message, FilterKind: filterKind, Field: field}
}
