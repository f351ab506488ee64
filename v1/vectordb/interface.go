package vectordb

import (
	"context"

	"github.com/mindkeep-ai/mindkeep/v1/filter"
)

// Service is the common interface for all vector store backends. It
// provides a backend-agnostic abstraction over similarity search,
// allowing the memory layer to switch between transports (REST, gRPC)
// without changing application code.
//
// Filters are accepted as completed filter.Filter values and forwarded
// to the store verbatim; implementations never construct or validate
// filters themselves.
type Service interface {
	// Search performs a similarity search. A nil request filter means
	// no payload filtering.
	Search(ctx context.Context, req SearchRequest) ([]SearchResult, error)

	// Count returns how many points in the collection match the filter.
	// A nil filter counts every point.
	Count(ctx context.Context, collection string, f filter.Filter) (uint64, error)

	// Upsert inserts or replaces points in a collection.
	Upsert(ctx context.Context, collection string, points []PointInput) error

	// Delete removes points by their IDs.
	Delete(ctx context.Context, collection string, ids []string) error

	// DeleteByFilter removes every point matching the filter.
	DeleteByFilter(ctx context.Context, collection string, f filter.Filter) error

	// EnsureCollection creates a collection if it doesn't exist.
	// Safe to call multiple times; no-op when the collection is present.
	EnsureCollection(ctx context.Context, name string, vectorSize uint64) error

	// GetCollection retrieves metadata about a collection.
	GetCollection(ctx context.Context, name string) (*Collection, error)

	// ListCollections returns the names of all collections.
	ListCollections(ctx context.Context) ([]string, error)
}
