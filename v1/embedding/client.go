package embedding

import (
	"context"
	"fmt"
)

// Client is the public entrypoint for computing embeddings.
//
// It hides all provider details (inference endpoints, HTTP, etc.)
// from the application layer.
type Client struct {
	provider Provider
}

// NewClient constructs a Client from Config.
// It validates the config and internally constructs the inference provider.
// Application code should depend on *Client, not on Provider or
// inferenceProvider.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedding: invalid config: %w", err)
	}

	p, err := newInferenceProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("embedding: failed to create provider: %w", err)
	}

	return &Client{provider: p}, nil
}

// NewClientWithProvider wraps an existing provider. Useful for tests
// and for callers that bring their own inference backend.
func NewClientWithProvider(p Provider) *Client {
	return &Client{provider: p}
}

// Embed executes a single embedding request for all texts at once.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return c.provider.Embed(ctx, texts)
}

// EmbedOne is a convenience wrapper for embedding a single text.
func (c *Client) EmbedOne(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.provider.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embedding: expected 1 vector, got %d", len(vectors))
	}
	return vectors[0], nil
}

// Close allows the client to release any internal resources used by the
// provider. Currently this is a no-op unless the provider implements
// Close().
func (c *Client) Close() error {
	if closer, ok := c.provider.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
