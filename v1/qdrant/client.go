package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/mindkeep-ai/mindkeep/v1/logger"
)

// Client is a thin wrapper around the Qdrant REST API implementing the
// vectordb.Service interface. It owns no state beyond the HTTP client
// and is safe for concurrent use.
type Client struct {
	baseURL string
	cfg     *Config
	http    *http.Client
	log     *logger.Logger
	metrics *observer
}

// Params groups the dependencies for NewClient. Logger and Registerer
// are optional; a nop logger and disabled metrics are substituted when
// absent.
type Params struct {
	fx.In

	Config     *Config
	Logger     *logger.Logger        `optional:"true"`
	Registerer prometheus.Registerer `optional:"true"`
}

// NewClient constructs a REST client and validates connectivity with an
// immediate health check, failing fast if the service is unreachable.
func NewClient(p Params) (*Client, error) {
	cfg := p.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("qdrant: base URL is required")
	}

	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		cfg:     cfg,
		http:    &http.Client{Timeout: timeout},
		log:     log,
		metrics: newObserver(p.Registerer),
	}

	if err := c.healthCheck(); err != nil {
		return nil, fmt.Errorf("qdrant: health check failed: %w", err)
	}

	log.Info("qdrant client connected", nil, map[string]interface{}{"base_url": c.baseURL})
	return c, nil
}

// healthCheck probes the /healthz endpoint. It is lightweight and fast,
// suitable for startup and readiness probes.
func (c *Client) healthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

// Close exists for lifecycle symmetry; the REST client holds no
// persistent connections.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.cfg.APIKey != "" {
		req.Header.Set("api-key", c.cfg.APIKey)
	}
}

// doJSON sends one REST request and decodes the result field of the
// response envelope into out (when out is non-nil). Every call is
// observed for metrics under the given operation name.
func (c *Client) doJSON(ctx context.Context, operation, method, path string, body, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, method, path, body, out)
	c.metrics.observe(operation, time.Since(start), err)
	if err != nil {
		c.log.ErrorCtx(ctx, "qdrant request failed", err, map[string]interface{}{
			"operation": operation,
			"path":      path,
		})
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var envelope apiResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(envelope.Status, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out != nil && len(envelope.Result) > 0 {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("decode result: %w", err)
		}
	}
	return nil
}

// waitQuery returns the query string for write endpoints honoring
// Config.Wait.
func (c *Client) waitQuery() string {
	if c.cfg.Wait {
		return "?wait=true"
	}
	return ""
}
