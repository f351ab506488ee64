package qdrantgrpc

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
	"go.uber.org/fx"

	"github.com/mindkeep-ai/mindkeep/v1/logger"
)

// Client wraps the official Qdrant Go client and implements the
// vectordb.Service interface over gRPC. It mirrors the REST client in
// v1/qdrant; pick this one when the deployment exposes the gRPC port.
type Client struct {
	api *qdrant.Client
	cfg *Config
	log *logger.Logger
}

// Params groups the dependencies for NewClient. Logger is optional; a
// nop logger is substituted when absent.
type Params struct {
	fx.In

	Config *Config
	Logger *logger.Logger `optional:"true"`
}

// NewClient constructs a gRPC client and validates connectivity with an
// immediate health check, failing fast if the service is unreachable.
func NewClient(p Params) (*Client, error) {
	cfg := p.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}

	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}

	port := cfg.Port
	if port == 0 {
		port = 6334
	}

	api, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Endpoint,
		Port:                   port,
		APIKey:                 cfg.ApiKey,
		SkipCompatibilityCheck: !cfg.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("qdrantgrpc: failed to initialize client: %w", err)
	}

	c := &Client{api: api, cfg: cfg, log: log}
	if err := c.healthCheck(); err != nil {
		return nil, fmt.Errorf("qdrantgrpc: health check failed: %w", err)
	}

	log.Info("qdrant grpc client connected", nil, map[string]interface{}{
		"endpoint": cfg.Endpoint,
		"port":     port,
	})
	return c, nil
}

// healthCheck probes the service through the SDK. It is lightweight and
// fast, suitable for startup and readiness probes.
func (c *Client) healthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := c.api.HealthCheck(ctx); err != nil {
		return err
	}
	return nil
}

// API returns the underlying Qdrant SDK client for direct access to
// low-level operations.
func (c *Client) API() *qdrant.Client {
	return c.api
}

// Close shuts down the underlying gRPC connection.
func (c *Client) Close() error {
	return c.api.Close()
}
