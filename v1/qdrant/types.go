package qdrant

import (
	"encoding/json"

	"github.com/mindkeep-ai/mindkeep/v1/filter"
)

// Wire shapes of the Qdrant REST API. Completed filter values serialize
// verbatim into the "filter" field of a request body; the mapping from
// builder naming to snake_case wire keys lives entirely in the filter
// package.

// apiResponse is the envelope every REST endpoint answers with.
type apiResponse struct {
	Result json.RawMessage `json:"result"`
	Status json.RawMessage `json:"status"`
	Time   float64         `json:"time"`
}

// apiError is the shape of a non-ok status field.
type apiError struct {
	Error string `json:"error"`
}

type searchBody struct {
	Vector         []float32     `json:"vector"`
	Limit          int           `json:"limit"`
	Filter         filter.Filter `json:"filter,omitempty"`
	WithPayload    bool          `json:"with_payload"`
	WithVector     bool          `json:"with_vector"`
	ScoreThreshold *float32      `json:"score_threshold,omitempty"`
}

type countBody struct {
	Filter filter.Filter `json:"filter,omitempty"`
	Exact  bool          `json:"exact"`
}

type countResult struct {
	Count uint64 `json:"count"`
}

type upsertBody struct {
	Points []wirePoint `json:"points"`
}

type wirePoint struct {
	ID      string         `json:"id"`
	Vector  []float32      `json:"vector"`
	Payload map[string]any `json:"payload,omitempty"`
}

type deleteByIDsBody struct {
	Points []string `json:"points"`
}

type deleteByFilterBody struct {
	Filter filter.Filter `json:"filter"`
}

// scoredPoint is a single search hit. The ID comes back as either an
// unsigned number or a UUID string.
type scoredPoint struct {
	ID      any            `json:"id"`
	Score   float32        `json:"score"`
	Payload map[string]any `json:"payload"`
	Vector  []float32      `json:"vector,omitempty"`
}

type createCollectionBody struct {
	Vectors vectorParams `json:"vectors"`
}

type vectorParams struct {
	Size     uint64 `json:"size"`
	Distance string `json:"distance"`
}

type collectionInfo struct {
	Status      string `json:"status"`
	PointsCount uint64 `json:"points_count"`
	Config      struct {
		Params struct {
			Vectors vectorParams `json:"vectors"`
		} `json:"params"`
	} `json:"config"`
}

type collectionsList struct {
	Collections []struct {
		Name string `json:"name"`
	} `json:"collections"`
}
