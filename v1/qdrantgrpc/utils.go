package qdrantgrpc

import (
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// validateSearchInput validates common search parameters.
func validateSearchInput(collection string, vector []float32, limit int) error {
	if collection == "" {
		return fmt.Errorf("qdrantgrpc: collection name cannot be empty")
	}
	if len(vector) == 0 {
		return fmt.Errorf("qdrantgrpc: vector cannot be empty")
	}
	if limit <= 0 {
		return fmt.Errorf("qdrantgrpc: limit must be greater than 0")
	}
	return nil
}

// distanceFromString maps a configured metric name to the protobuf
// enum, defaulting to cosine similarity.
func distanceFromString(name string) qdrant.Distance {
	switch name {
	case "Dot":
		return qdrant.Distance_Dot
	case "Euclid":
		return qdrant.Distance_Euclid
	case "Manhattan":
		return qdrant.Distance_Manhattan
	default:
		return qdrant.Distance_Cosine
	}
}

// extractVectorDetails safely extracts the vector size and distance
// metric from a CollectionInfo. Qdrant represents vector configuration
// with nested oneof wrappers; this navigates that hierarchy and guards
// against nil dereferences, returning (0, "") when anything is missing.
func extractVectorDetails(info *qdrant.CollectionInfo) (int, string) {
	if info == nil ||
		info.Config == nil ||
		info.Config.Params == nil ||
		info.Config.Params.VectorsConfig == nil ||
		info.Config.Params.VectorsConfig.Config == nil {
		return 0, ""
	}

	if cfg, ok := info.Config.Params.VectorsConfig.Config.(*qdrant.VectorsConfig_Params); ok {
		return int(cfg.Params.Size), cfg.Params.Distance.String()
	}

	return 0, ""
}

// derefUint64 safely dereferences a *uint64 pointer.
func derefUint64(v *uint64) uint64 {
	if v != nil {
		return *v
	}
	return 0
}
