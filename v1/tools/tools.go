package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mindkeep-ai/mindkeep/v1/filter"
	"github.com/mindkeep-ai/mindkeep/v1/logger"
	"github.com/mindkeep-ai/mindkeep/v1/memory"
)

// MemoryService is the slice of the memory facade the tools need.
// *memory.Service satisfies it.
type MemoryService interface {
	Save(ctx context.Context, input memory.SaveInput) (*memory.Memory, error)
	Recall(ctx context.Context, query string, opts memory.RecallOptions) ([]memory.Memory, error)
	Forget(ctx context.Context, f filter.Filter) error
	Count(ctx context.Context, f filter.Filter) (uint64, error)
}

// Tools exposes the memory service as MCP tools.
type Tools struct {
	svc MemoryService
	log *logger.Logger
}

// NewTools wires the handlers. Logger is optional.
func NewTools(svc MemoryService, log *logger.Logger) *Tools {
	if log == nil {
		log = logger.NewNop()
	}
	return &Tools{svc: svc, log: log}
}

// Register attaches the memory_* tools to the supplied MCP server
// instance.
func (t *Tools) Register(srv *server.MCPServer) {
	srv.AddTool(buildMemorySaveTool(), t.handleMemorySave)
	srv.AddTool(buildMemoryRecallTool(), t.handleMemoryRecall)
	srv.AddTool(buildMemoryForgetTool(), t.handleMemoryForget)
	srv.AddTool(buildMemoryCountTool(), t.handleMemoryCount)
}

// ---------------------------------------------------------------------------
// Tool builders (schema only, no execution logic)
// ---------------------------------------------------------------------------

func buildMemorySaveTool() mcp.Tool {
	return mcp.NewTool(
		"memory_save",
		mcp.WithDescription("Stores a piece of text as a semantic memory and returns the generated memory ID."),
		mcp.WithString("content",
			mcp.Description("Textual content to remember"),
			mcp.Required(),
		),
		mcp.WithObject("metadata",
			mcp.Description("Arbitrary JSON metadata to attach; keys become filterable payload fields"),
		),
	)
}

func buildMemoryRecallTool() mcp.Tool {
	return mcp.NewTool(
		"memory_recall",
		mcp.WithDescription("Finds stored memories semantically similar to the query, optionally narrowed by a payload filter."),
		mcp.WithString("query",
			mcp.Description("Natural-language query to search for"),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of memories to return (default 10)"),
		),
		mcp.WithObject("filter",
			mcp.Description("Filter expression in wire format, e.g. {\"match\":{\"key\":\"category\",\"value\":\"preference\"}}"),
		),
	)
}

func buildMemoryForgetTool() mcp.Tool {
	return mcp.NewTool(
		"memory_forget",
		mcp.WithDescription("Deletes every memory matching the filter. The filter is mandatory; an empty one is rejected."),
		mcp.WithObject("filter",
			mcp.Description("Filter expression in wire format selecting the memories to delete"),
			mcp.Required(),
		),
	)
}

func buildMemoryCountTool() mcp.Tool {
	return mcp.NewTool(
		"memory_count",
		mcp.WithDescription("Counts stored memories, optionally narrowed by a payload filter."),
		mcp.WithObject("filter",
			mcp.Description("Filter expression in wire format; omit to count everything"),
		),
	)
}

// ---------------------------------------------------------------------------
// Tool handlers
// ---------------------------------------------------------------------------

type savedResult struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type recalledMemory struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	Score     float32        `json:"score"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func (t *Tools) handleMemorySave(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	content, _ := args["content"].(string)
	if content == "" {
		return nil, fmt.Errorf("content parameter is required")
	}

	// Metadata may be passed as a map OR as a JSON-encoded string,
	// depending on how the caller constructed the argument object.
	var meta map[string]any
	if raw, ok := args["metadata"]; ok {
		switch v := raw.(type) {
		case map[string]any:
			meta = v
		case string:
			_ = json.Unmarshal([]byte(v), &meta) // meta stays nil on failure
		}
	}

	saved, err := t.svc.Save(ctx, memory.SaveInput{Content: content, Metadata: meta})
	if err != nil {
		return nil, err
	}

	b, _ := json.Marshal(savedResult{ID: saved.ID, CreatedAt: saved.CreatedAt})
	return mcp.NewToolResultText(string(b)), nil
}

func (t *Tools) handleMemoryRecall(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	query, _ := args["query"].(string)
	if query == "" {
		return nil, fmt.Errorf("query parameter is required")
	}

	f, err := decodeFilterArg(args["filter"])
	if err != nil {
		return nil, err
	}

	var limit int
	if v, ok := args["limit"].(float64); ok {
		limit = int(v)
	}

	memories, err := t.svc.Recall(ctx, query, memory.RecallOptions{Filter: f, Limit: limit})
	if err != nil {
		return nil, err
	}

	out := make([]recalledMemory, 0, len(memories))
	for _, m := range memories {
		out = append(out, recalledMemory{
			ID:        m.ID,
			Content:   m.Content,
			Score:     m.Score,
			Metadata:  m.Metadata,
			CreatedAt: m.CreatedAt,
		})
	}

	b, _ := json.Marshal(out)
	return mcp.NewToolResultText(string(b)), nil
}

func (t *Tools) handleMemoryForget(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := req.GetArguments()["filter"]
	if !ok {
		return nil, fmt.Errorf("filter parameter is required")
	}

	f, err := decodeFilterArg(raw)
	if err != nil {
		return nil, err
	}

	if err := t.svc.Forget(ctx, f); err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(`{"status":"ok"}`), nil
}

func (t *Tools) handleMemoryCount(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f, err := decodeFilterArg(req.GetArguments()["filter"])
	if err != nil {
		return nil, err
	}

	count, err := t.svc.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(fmt.Sprintf(`{"count":%d}`, count)), nil
}

// decodeFilterArg accepts a filter either as a JSON object or as a
// JSON-encoded string and parses it through the filter package, so the
// wire format is the single source of truth.
func decodeFilterArg(raw any) (filter.Filter, error) {
	if raw == nil {
		return nil, nil
	}

	var data []byte
	switch v := raw.(type) {
	case map[string]any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("invalid filter: %w", err)
		}
		data = encoded
	case string:
		data = []byte(v)
	default:
		return nil, fmt.Errorf("filter must be a JSON object or string, got %T", raw)
	}

	f, err := filter.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	return f, nil
}
