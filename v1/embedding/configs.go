package embedding

import (
	"fmt"
	"time"
)

// Config holds connection settings for the embedding provider.
//
// Endpoint must point to the root of an OpenAI-compatible inference
// service (no /embeddings appended). The provider appends paths
// automatically, so callers only need to supply the host base URL.
type Config struct {
	// Base URL of the inference API, e.g. "https://api.openai.com/v1".
	Endpoint string `yaml:"endpoint" env:"EMBEDDING_ENDPOINT"`

	// Bearer token for the inference API.
	APIKey string `yaml:"api_key" env:"EMBEDDING_API_KEY"`

	// Model identifier, e.g. "text-embedding-3-small".
	Model string `yaml:"model" env:"EMBEDDING_MODEL"`

	// Maximum request duration before timing out.
	Timeout time.Duration `yaml:"timeout" env:"EMBEDDING_TIMEOUT"`
}

// DefaultConfig provides sensible defaults; Endpoint and APIKey must
// still be supplied by the caller.
func DefaultConfig() *Config {
	return &Config{
		Model:   "text-embedding-3-small",
		Timeout: 30 * time.Second,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("embedding: missing endpoint")
	}
	if c.Model == "" {
		return fmt.Errorf("embedding: missing model")
	}
	return nil
}
