package qdrantgrpc

import (
	"context"
	"fmt"
	"slices"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/mindkeep-ai/mindkeep/v1/filter"
	"github.com/mindkeep-ai/mindkeep/v1/vectordb"
)

const defaultBatchSize = 200

// Search performs a similarity search. The request filter, when
// present, is converted into the SDK's protobuf filter.
func (c *Client) Search(ctx context.Context, req vectordb.SearchRequest) ([]vectordb.SearchResult, error) {
	if err := validateSearchInput(req.Collection, req.Vector, req.Limit); err != nil {
		return nil, err
	}

	qf, err := toQdrantFilter(req.Filter)
	if err != nil {
		return nil, fmt.Errorf("qdrantgrpc: %w", err)
	}

	limit := uint64(req.Limit)
	query := &qdrant.QueryPoints{
		CollectionName: req.Collection,
		Query:          qdrant.NewQuery(req.Vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
		Filter:         qf,
	}
	if req.WithVectors {
		query.WithVectors = qdrant.NewWithVectors(true)
	}
	if req.ScoreThreshold > 0 {
		threshold := req.ScoreThreshold
		query.ScoreThreshold = &threshold
	}

	resp, err := c.api.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("qdrantgrpc: search failed: %w", err)
	}

	results := make([]vectordb.SearchResult, 0, len(resp))
	for _, hit := range resp {
		id, err := extractPointID(hit.Id)
		if err != nil {
			return nil, fmt.Errorf("qdrantgrpc: %w", err)
		}
		result := vectordb.SearchResult{
			ID:         id,
			Score:      hit.Score,
			Payload:    convertPayload(hit.Payload),
			Collection: req.Collection,
		}
		if vec := hit.Vectors.GetVector(); vec != nil {
			result.Vector = vec.Data
		}
		results = append(results, result)
	}

	c.log.DebugCtx(ctx, "qdrant grpc search finished", nil, map[string]interface{}{
		"collection": req.Collection,
		"hits":       len(results),
	})
	return results, nil
}

// Count returns how many points match the filter; a nil filter counts
// all points.
func (c *Client) Count(ctx context.Context, collection string, f filter.Filter) (uint64, error) {
	if collection == "" {
		return 0, fmt.Errorf("qdrantgrpc: collection name cannot be empty")
	}

	qf, err := toQdrantFilter(f)
	if err != nil {
		return 0, fmt.Errorf("qdrantgrpc: %w", err)
	}

	exact := true
	count, err := c.api.Count(ctx, &qdrant.CountPoints{
		CollectionName: collection,
		Filter:         qf,
		Exact:          &exact,
	})
	if err != nil {
		return 0, fmt.Errorf("qdrantgrpc: count failed: %w", err)
	}
	return count, nil
}

// Upsert inserts or replaces points, splitting large inputs into
// batches to reduce request sizes and avoid timeouts.
func (c *Client) Upsert(ctx context.Context, collection string, points []vectordb.PointInput) error {
	if collection == "" {
		return fmt.Errorf("qdrantgrpc: collection name cannot be empty")
	}
	if len(points) == 0 {
		return nil
	}

	for start := 0; start < len(points); start += defaultBatchSize {
		end := min(start+defaultBatchSize, len(points))
		batch := make([]*qdrant.PointStruct, 0, end-start)
		for _, p := range points[start:end] {
			batch = append(batch, &qdrant.PointStruct{
				Id:      qdrant.NewID(p.ID),
				Vectors: qdrant.NewVectors(p.Vector...),
				Payload: qdrant.NewValueMap(p.Payload),
			})
		}

		wait := true
		if _, err := c.api.Upsert(ctx, &qdrant.UpsertPoints{
			CollectionName: collection,
			Points:         batch,
			Wait:           &wait,
		}); err != nil {
			return fmt.Errorf("qdrantgrpc: batch upsert failed at [%d:%d]: %w", start, end, err)
		}
		c.log.DebugCtx(ctx, "qdrant grpc batch upserted", nil, map[string]interface{}{
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
		return fmt.Errorf("qdrantgrpc: collection name cannot be empty")
	}
	if len(ids) == 0 {
		return nil
	}

	qdrantIDs := make([]*qdrant.PointId, 0, len(ids))
	for _, id := range ids {
		qdrantIDs = append(qdrantIDs, qdrant.NewID(id))
	}

	wait := true
	if _, err := c.api.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: collection,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Points{
				Points: &qdrant.PointsIdsList{Ids: qdrantIDs},
			},
		},
		Wait: &wait,
	}); err != nil {
		return fmt.Errorf("qdrantgrpc: delete failed: %w", err)
	}
	return nil
}

// DeleteByFilter removes every point matching the filter. An empty
// filter is rejected so a forgotten filter cannot wipe a collection.
func (c *Client) DeleteByFilter(ctx context.Context, collection string, f filter.Filter) error {
	if collection == "" {
		return fmt.Errorf("qdrantgrpc: collection name cannot be empty")
	}
	if filter.IsEmpty(f) {
		return fmt.Errorf("qdrantgrpc: refusing to delete with an empty filter")
	}

	qf, err := toQdrantFilter(f)
	if err != nil {
		return fmt.Errorf("qdrantgrpc: %w", err)
	}

	wait := true
	if _, err := c.api.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: collection,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{Filter: qf},
		},
		Wait: &wait,
	}); err != nil {
		return fmt.Errorf("qdrantgrpc: delete by filter failed: %w", err)
	}
	return nil
}

// EnsureCollection creates a collection if it doesn't exist. Safe to
// call multiple times.
func (c *Client) EnsureCollection(ctx context.Context, name string, vectorSize uint64) error {
	if name == "" {
		return fmt.Errorf("qdrantgrpc: collection name cannot be empty")
	}

	names, err := c.ListCollections(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(names, name) {
		return nil
	}

	req := &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     vectorSize,
			Distance: distanceFromString(c.cfg.Distance),
		}),
	}
	if err := c.api.CreateCollection(ctx, req); err != nil {
		return fmt.Errorf("qdrantgrpc: failed to create collection %q: %w", name, err)
	}

	c.log.Info("qdrant grpc collection created", nil, map[string]interface{}{
		"collection":  name,
		"vector_size": vectorSize,
	})
	return nil
}

// GetCollection retrieves metadata about a collection, decoupled from
// the SDK's protobuf types.
func (c *Client) GetCollection(ctx context.Context, name string) (*vectordb.Collection, error) {
	if name == "" {
		return nil, fmt.Errorf("qdrantgrpc: collection name cannot be empty")
	}

	info, err := c.api.GetCollectionInfo(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("qdrantgrpc: failed to get collection %q: %w", name, err)
	}

	size, distance := extractVectorDetails(info)
	return &vectordb.Collection{
		Name:       name,
		Status:     info.Status.String(),
		VectorSize: size,
		Distance:   distance,
		Points:     derefUint64(info.PointsCount),
	}, nil
}

// ListCollections returns the names of all collections.
func (c *Client) ListCollections(ctx context.Context) ([]string, error) {
	names, err := c.api.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("qdrantgrpc: failed to list collections: %w", err)
	}
	return names, nil
}
