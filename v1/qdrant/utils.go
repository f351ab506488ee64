package qdrant

import (
	"fmt"
	"strconv"
)

const (
	// defaultBatchSize is the chunk size for batch upserts.
	defaultBatchSize = 200
)

// validateSearchInput validates common search parameters.
func validateSearchInput(collection string, vector []float32, limit int) error {
	if collection == "" {
		return fmt.Errorf("qdrant: collection name cannot be empty")
	}
	if len(vector) == 0 {
		return fmt.Errorf("qdrant: vector cannot be empty")
	}
	if limit <= 0 {
		return fmt.Errorf("qdrant: limit must be greater than 0")
	}
	return nil
}

// pointIDString normalizes a REST point ID, which arrives as either a
// JSON number or a UUID string.
func pointIDString(id any) (string, error) {
	switch v := id.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatUint(uint64(v), 10), nil
	default:
		return "", fmt.Errorf("unexpected point ID type: %T", v)
	}
}
