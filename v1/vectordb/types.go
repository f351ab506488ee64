package vectordb

import "github.com/mindkeep-ai/mindkeep/v1/filter"

// SearchRequest represents a single similarity search query.
type SearchRequest struct {
	// Collection is the target collection to search in
	Collection string `json:"collection"`

	// Vector is the query embedding to find similar vectors for
	Vector []float32 `json:"vector"`

	// Limit is the maximum number of results to return
	Limit int `json:"limit"`

	// Filter optionally narrows the search to matching payloads.
	// A nil filter is omitted from the request entirely.
	Filter filter.Filter `json:"filter,omitempty"`

	// WithVectors requests the stored embeddings alongside payloads
	WithVectors bool `json:"withVectors,omitempty"`

	// ScoreThreshold drops results scoring below it when > 0
	ScoreThreshold float32 `json:"scoreThreshold,omitempty"`
}

// SearchResult is a single search hit. It is database-agnostic; the
// payload is converted to a plain map.
type SearchResult struct {
	// ID is the unique identifier of the matched point
	ID string `json:"id"`

	// Score is the similarity score (higher = more similar for cosine)
	Score float32 `json:"score"`

	// Payload contains the metadata stored with the vector
	Payload map[string]any `json:"payload"`

	// Vector is the stored embedding (only populated if requested)
	Vector []float32 `json:"vector,omitempty"`

	// Collection identifies which collection this result came from
	Collection string `json:"collection,omitempty"`
}

// PointInput is the input for inserting vectors into a collection.
type PointInput struct {
	// ID is the unique identifier for this point
	ID string `json:"id"`

	// Vector is the dense embedding representation
	Vector []float32 `json:"vector"`

	// Payload is optional metadata to store with the vector
	Payload map[string]any `json:"payload,omitempty"`
}

// Collection contains metadata about a vector collection.
type Collection struct {
	// Name is the unique identifier of the collection
	Name string `json:"name"`

	// Status indicates the operational state (e.g., "green", "yellow")
	Status string `json:"status"`

	// VectorSize is the dimension of vectors in this collection
	VectorSize int `json:"vectorSize"`

	// Distance is the similarity metric (e.g., "Cosine", "Dot", "Euclid")
	Distance string `json:"distance"`

	// Points is the number of stored points
	Points uint64 `json:"points"`
}
