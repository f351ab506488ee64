package qdrant

import "time"

// Config holds connection and behavior settings for the Qdrant REST
// client.
//
// It is intentionally minimal, readable, and easy to override from
// environment variables, YAML, or programmatically via helper methods.
//
// Example (builder style):
//
//	cfg := qdrant.FromBaseURL("http://localhost:6333").
//	    WithAPIKey(os.Getenv("QDRANT_API_KEY")).
//	    WithTimeout(10 * time.Second)
type Config struct {
	// BaseURL of the Qdrant REST endpoint, e.g. "http://localhost:6333".
	BaseURL string `yaml:"base_url" env:"QDRANT_BASE_URL"`

	// Optional authentication token for secured deployments.
	APIKey string `yaml:"api_key" env:"QDRANT_API_KEY"`

	// Maximum request duration before timing out.
	Timeout time.Duration `yaml:"timeout" env:"QDRANT_TIMEOUT"`

	// Wait makes write operations block until changes are persisted.
	Wait bool `yaml:"wait" env:"QDRANT_WAIT"`

	// Distance metric used when creating collections.
	Distance string `yaml:"distance" env:"QDRANT_DISTANCE"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:  "http://localhost:6333",
		Timeout:  5 * time.Second,
		Wait:     true,
		Distance: "Cosine",
	}
}

// FromBaseURL returns a default config pre-filled with a specific endpoint.
func FromBaseURL(url string) *Config {
	cfg := DefaultConfig()
	cfg.BaseURL = url
	return cfg
}

// Builder-style helpers (optional, ergonomic)
func (c *Config) WithAPIKey(key string) *Config {
	c.APIKey = key
	return c
}

func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}

func (c *Config) WithWait(wait bool) *Config {
	c.Wait = wait
	return c
}

func (c *Config) WithDistance(distance string) *Config {
	c.Distance = distance
	return c
}
