package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"

	"github.com/mindkeep-ai/mindkeep/v1/filter"
	"github.com/mindkeep-ai/mindkeep/v1/logger"
	"github.com/mindkeep-ai/mindkeep/v1/vectordb"
)

// Embedder produces vectors for memory content and recall queries.
// *embedding.Client satisfies it.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	EmbedOne(ctx context.Context, text string) ([]float32, error)
}

// Service is the high-level memory facade: it embeds content, stores it
// in the vector database, and recalls it by semantic similarity with
// optional payload filters. Filters are treated as opaque values and
// passed through to the store untouched.
type Service struct {
	embedder Embedder
	store    vectordb.Service
	cfg      *Config
	log      *logger.Logger
	tracer   trace.Tracer
}

// Params groups the dependencies for NewService. Logger is optional.
type Params struct {
	fx.In

	Embedder Embedder
	Store    vectordb.Service
	Config   *Config
	Logger   *logger.Logger `optional:"true"`
}

// NewService wires a memory service. Call Init before first use to
// make sure the backing collection exists.
func NewService(p Params) (*Service, error) {
	if p.Embedder == nil {
		return nil, fmt.Errorf("memory: embedder is required")
	}
	if p.Store == nil {
		return nil, fmt.Errorf("memory: vector store is required")
	}

	cfg := p.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}

	return &Service{
		embedder: p.Embedder,
		store:    p.Store,
		cfg:      cfg,
		log:      log,
		tracer:   otel.Tracer("mindkeep/memory"),
	}, nil
}

// Init creates the backing collection if it doesn't exist. Safe to call
// multiple times.
func (s *Service) Init(ctx context.Context) error {
	return s.store.EnsureCollection(ctx, s.cfg.Collection, s.cfg.VectorSize)
}

// Save embeds and stores a single memory, returning it with its
// assigned ID and timestamp.
func (s *Service) Save(ctx context.Context, input SaveInput) (*Memory, error) {
	ctx, span := s.tracer.Start(ctx, "memory.save")
	defer span.End()

	if input.Content == "" {
		return nil, s.fail(span, fmt.Errorf("memory: content cannot be empty"))
	}

	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}
	span.SetAttributes(attribute.String("memory.id", id))

	vector, err := s.embedder.EmbedOne(ctx, input.Content)
	if err != nil {
		return nil, s.fail(span, fmt.Errorf("memory: embedding failed: %w", err))
	}

	createdAt := time.Now().UTC()
	point := vectordb.PointInput{
		ID:      id,
		Vector:  vector,
		Payload: buildPayload(input.Content, createdAt, input.Metadata),
	}
	if err := s.store.Upsert(ctx, s.cfg.Collection, []vectordb.PointInput{point}); err != nil {
		return nil, s.fail(span, fmt.Errorf("memory: store failed: %w", err))
	}

	s.log.DebugCtx(ctx, "memory saved", nil, map[string]interface{}{
		"id":         id,
		"collection": s.cfg.Collection,
	})
	return &Memory{
		ID:        id,
		Content:   input.Content,
		Metadata:  input.Metadata,
		CreatedAt: createdAt,
	}, nil
}

// SaveBatch embeds and stores several memories in one embedding request
// and one upsert per storage batch.
func (s *Service) SaveBatch(ctx context.Context, inputs []SaveInput) ([]Memory, error) {
	ctx, span := s.tracer.Start(ctx, "memory.save_batch",
		trace.WithAttributes(attribute.Int("memory.count", len(inputs))))
	defer span.End()

	if len(inputs) == 0 {
		return nil, nil
	}

	texts := make([]string, len(inputs))
	for i, in := range inputs {
		if in.Content == "" {
			return nil, s.fail(span, fmt.Errorf("memory: content cannot be empty at index %d", i))
		}
		texts[i] = in.Content
	}

	vectors, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, s.fail(span, fmt.Errorf("memory: embedding failed: %w", err))
	}
	if len(vectors) != len(inputs) {
		return nil, s.fail(span, fmt.Errorf("memory: expected %d vectors, got %d", len(inputs), len(vectors)))
	}

	createdAt := time.Now().UTC()
	memories := make([]Memory, len(inputs))
	points := make([]vectordb.PointInput, len(inputs))
	for i, in := range inputs {
		id := in.ID
		if id == "" {
			id = uuid.NewString()
		}
		memories[i] = Memory{ID: id, Content: in.Content, Metadata: in.Metadata, CreatedAt: createdAt}
		points[i] = vectordb.PointInput{
			ID:      id,
			Vector:  vectors[i],
			Payload: buildPayload(in.Content, createdAt, in.Metadata),
		}
	}

	if err := s.store.Upsert(ctx, s.cfg.Collection, points); err != nil {
		return nil, s.fail(span, fmt.Errorf("memory: store failed: %w", err))
	}
	return memories, nil
}

// Recall embeds the query and returns the most similar memories. The
// options filter narrows results by payload fields.
func (s *Service) Recall(ctx context.Context, query string, opts RecallOptions) ([]Memory, error) {
	ctx, span := s.tracer.Start(ctx, "memory.recall")
	defer span.End()

	if query == "" {
		return nil, s.fail(span, fmt.Errorf("memory: query cannot be empty"))
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}

	vector, err := s.embedder.EmbedOne(ctx, query)
	if err != nil {
		return nil, s.fail(span, fmt.Errorf("memory: embedding failed: %w", err))
	}

	results, err := s.store.Search(ctx, vectordb.SearchRequest{
		Collection:     s.cfg.Collection,
		Vector:         vector,
		Limit:          limit,
		Filter:         opts.Filter,
		ScoreThreshold: opts.ScoreThreshold,
	})
	if err != nil {
		return nil, s.fail(span, fmt.Errorf("memory: search failed: %w", err))
	}

	span.SetAttributes(attribute.Int("memory.hits", len(results)))
	memories := make([]Memory, 0, len(results))
	for _, r := range results {
		memories = append(memories, memoryFromResult(r))
	}
	return memories, nil
}

// Forget removes every memory matching the filter. An empty filter is
// rejected by the underlying store.
func (s *Service) Forget(ctx context.Context, f filter.Filter) error {
	ctx, span := s.tracer.Start(ctx, "memory.forget")
	defer span.End()

	if err := s.store.DeleteByFilter(ctx, s.cfg.Collection, f); err != nil {
		return s.fail(span, fmt.Errorf("memory: forget failed: %w", err))
	}
	return nil
}

// ForgetByID removes memories by their IDs.
func (s *Service) ForgetByID(ctx context.Context, ids ...string) error {
	ctx, span := s.tracer.Start(ctx, "memory.forget_by_id",
		trace.WithAttributes(attribute.Int("memory.count", len(ids))))
	defer span.End()

	if err := s.store.Delete(ctx, s.cfg.Collection, ids); err != nil {
		return s.fail(span, fmt.Errorf("memory: forget failed: %w", err))
	}
	return nil
}

// Count returns how many memories match the filter; a nil filter counts
// everything.
func (s *Service) Count(ctx context.Context, f filter.Filter) (uint64, error) {
	ctx, span := s.tracer.Start(ctx, "memory.count")
	defer span.End()

	count, err := s.store.Count(ctx, s.cfg.Collection, f)
	if err != nil {
		return 0, s.fail(span, fmt.Errorf("memory: count failed: %w", err))
	}
	return count, nil
}

func (s *Service) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// buildPayload lays out the stored payload: reserved keys win over
// colliding metadata keys.
func buildPayload(content string, createdAt time.Time, metadata map[string]any) map[string]any {
	payload := make(map[string]any, len(metadata)+2)
	for k, v := range metadata {
		payload[k] = v
	}
	payload[payloadContent] = content
	payload[payloadCreatedAt] = createdAt.Format(time.RFC3339)
	return payload
}

func memoryFromResult(r vectordb.SearchResult) Memory {
	m := Memory{ID: r.ID, Score: r.Score}

	metadata := make(map[string]any, len(r.Payload))
	for k, v := range r.Payload {
		switch k {
		case payloadContent:
			if s, ok := v.(string); ok {
				m.Content = s
			}
		case payloadCreatedAt:
			if s, ok := v.(string); ok {
				if ts, err := time.Parse(time.RFC3339, s); err == nil {
					m.CreatedAt = ts
				}
			}
		default:
			metadata[k] = v
		}
	}
	if len(metadata) > 0 {
		m.Metadata = metadata
	}
	return m
}
