package qdrant

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"

	"github.com/mindkeep-ai/mindkeep/v1/filter"
	"github.com/mindkeep-ai/mindkeep/v1/vectordb"
)

// Search performs a similarity search. The request filter, when present,
// is serialized verbatim into the request body.
func (c *Client) Search(ctx context.Context, req vectordb.SearchRequest) ([]vectordb.SearchResult, error) {
	if err := validateSearchInput(req.Collection, req.Vector, req.Limit); err != nil {
		return nil, err
	}

	body := searchBody{
		Vector:      req.Vector,
		Limit:       req.Limit,
		Filter:      req.Filter,
		WithPayload: true,
		WithVector:  req.WithVectors,
	}
	if req.ScoreThreshold > 0 {
		threshold := req.ScoreThreshold
		body.ScoreThreshold = &threshold
	}

	var hits []scoredPoint
	path := "/collections/" + url.PathEscape(req.Collection) + "/points/search"
	if err := c.doJSON(ctx, "search", http.MethodPost, path, body, &hits); err != nil {
		return nil, fmt.Errorf("qdrant: search failed: %w", err)
	}

	results := make([]vectordb.SearchResult, 0, len(hits))
	for _, hit := range hits {
		id, err := pointIDString(hit.ID)
		if err != nil {
			return nil, fmt.Errorf("qdrant: %w", err)
		}
		results = append(results, vectordb.SearchResult{
			ID:         id,
			Score:      hit.Score,
			Payload:    hit.Payload,
			Vector:     hit.Vector,
			Collection: req.Collection,
		})
	}

	c.log.DebugCtx(ctx, "qdrant search finished", nil, map[string]interface{}{
		"collection": req.Collection,
		"hits":       len(results),
	})
	return results, nil
}

// Count returns how many points match the filter; a nil filter counts
// all points.
func (c *Client) Count(ctx context.Context, collection string, f filter.Filter) (uint64, error) {
	if collection == "" {
		return 0, fmt.Errorf("qdrant: collection name cannot be empty")
	}

	var result countResult
	path := "/collections/" + url.PathEscape(collection) + "/points/count"
	if err := c.doJSON(ctx, "count", http.MethodPost, path, countBody{Filter: f, Exact: true}, &result); err != nil {
		return 0, fmt.Errorf("qdrant: count failed: %w", err)
	}
	return result.Count, nil
}

// Upsert inserts or replaces points, splitting large inputs into batches
// to reduce request sizes and avoid timeouts.
func (c *Client) Upsert(ctx context.Context, collection string, points []vectordb.PointInput) error {
	if collection == "" {
		return fmt.Errorf("qdrant: collection name cannot be empty")
	}
	if len(points) == 0 {
		return nil
	}

	path := "/collections/" + url.PathEscape(collection) + "/points" + c.waitQuery()
	for start := 0; start < len(points); start += defaultBatchSize {
		end := min(start+defaultBatchSize, len(points))
		batch := make([]wirePoint, 0, end-start)
		for _, p := range points[start:end] {
			batch = append(batch, wirePoint{ID: p.ID, Vector: p.Vector, Payload: p.Payload})
		}

		if err := c.doJSON(ctx, "upsert", http.MethodPut, path, upsertBody{Points: batch}, nil); err != nil {
			return fmt.Errorf("qdrant: batch upsert failed at [%d:%d]: %w", start, end, err)
		}
		c.log.DebugCtx(ctx, "qdrant batch upserted", nil, map[string]interface{}{
			"collection": collection,
			"from":       start,
			"to":         end,
		})
	}
	return nil
}

// Delete removes points by their IDs.
func (c *Client) Delete(ctx context.Context, collection string, ids []string) error {
	if collection == "" {
		return fmt.Errorf("qdrant: collection name cannot be empty")
	}
	if len(ids) == 0 {
		return nil
	}

	path := "/collections/" + url.PathEscape(collection) + "/points/delete" + c.waitQuery()
	if err := c.doJSON(ctx, "delete", http.MethodPost, path, deleteByIDsBody{Points: ids}, nil); err != nil {
		return fmt.Errorf("qdrant: delete failed: %w", err)
	}
	return nil
}

// DeleteByFilter removes every point matching the filter. A nil filter
// is rejected so a forgotten filter cannot wipe a collection.
func (c *Client) DeleteByFilter(ctx context.Context, collection string, f filter.Filter) error {
	if collection == "" {
		return fmt.Errorf("qdrant: collection name cannot be empty")
	}
	if filter.IsEmpty(f) {
		return fmt.Errorf("qdrant: refusing to delete with an empty filter")
	}

	path := "/collections/" + url.PathEscape(collection) + "/points/delete" + c.waitQuery()
	if err := c.doJSON(ctx, "delete_by_filter", http.MethodPost, path, deleteByFilterBody{Filter: f}, nil); err != nil {
		return fmt.Errorf("qdrant: delete by filter failed: %w", err)
	}
	return nil
}

// EnsureCollection creates a collection if it doesn't exist. Safe to
// call multiple times.
func (c *Client) EnsureCollection(ctx context.Context, name string, vectorSize uint64) error {
	if name == "" {
		return fmt.Errorf("qdrant: collection name cannot be empty")
	}

	names, err := c.ListCollections(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(names, name) {
		return nil
	}

	body := createCollectionBody{Vectors: vectorParams{Size: vectorSize, Distance: c.cfg.Distance}}
	path := "/collections/" + url.PathEscape(name)
	if err := c.doJSON(ctx, "create_collection", http.MethodPut, path, body, nil); err != nil {
		return fmt.Errorf("qdrant: failed to create collection %q: %w", name, err)
	}

	c.log.Info("qdrant collection created", nil, map[string]interface{}{
		"collection":  name,
		"vector_size": vectorSize,
	})
	return nil
}

// GetCollection retrieves metadata about a collection, decoupled from
// the wire representation.
func (c *Client) GetCollection(ctx context.Context, name string) (*vectordb.Collection, error) {
	if name == "" {
		return nil, fmt.Errorf("qdrant: collection name cannot be empty")
	}

	var info collectionInfo
	path := "/collections/" + url.PathEscape(name)
	if err := c.doJSON(ctx, "get_collection", http.MethodGet, path, nil, &info); err != nil {
		return nil, fmt.Errorf("qdrant: failed to get collection %q: %w", name, err)
	}

	return &vectordb.Collection{
		Name:       name,
		Status:     info.Status,
		VectorSize: int(info.Config.Params.Vectors.Size),
		Distance:   info.Config.Params.Vectors.Distance,
		Points:     info.PointsCount,
	}, nil
}

// ListCollections returns the names of all collections.
func (c *Client) ListCollections(ctx context.Context) ([]string, error) {
	var list collectionsList
	if err := c.doJSON(ctx, "list_collections", http.MethodGet, "/collections", nil, &list); err != nil {
		return nil, fmt.Errorf("qdrant: failed to list collections: %w", err)
	}

	names := make([]string, 0, len(list.Collections))
	for _, col := range list.Collections {
		names = append(names, col.Name)
	}
	return names, nil
}
