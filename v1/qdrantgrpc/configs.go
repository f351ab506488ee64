package qdrantgrpc

import "time"

// Config holds connection and behavior settings for the Qdrant gRPC
// client.
//
// It is intentionally minimal, readable, and easy to override from
// environment variables, YAML, or programmatically via helper methods.
//
// Example (builder style):
//
//	cfg := qdrantgrpc.FromEndpoint("localhost").
//	    WithApiKey(os.Getenv("QDRANT_API_KEY")).
//	    WithTimeout(10 * time.Second)
type Config struct {
	// Hostname of the Qdrant server, e.g. "localhost".
	Endpoint string `yaml:"endpoint" env:"QDRANT_GRPC_ENDPOINT"`

	// gRPC port of the Qdrant server. Defaults to 6334.
	Port int `yaml:"port" env:"QDRANT_GRPC_PORT"`

	// Optional authentication token for secured deployments.
	ApiKey string `yaml:"api_key" env:"QDRANT_GRPC_API_KEY"`

	// Maximum request duration before timing out.
	Timeout time.Duration `yaml:"timeout" env:"QDRANT_GRPC_TIMEOUT"`

	// Whether to perform version compatibility checks between client
	// and server.
	CheckCompatibility bool `yaml:"check_compatibility" env:"QDRANT_GRPC_CHECK_COMPATIBILITY"`

	// Distance metric used when creating collections.
	Distance string `yaml:"distance" env:"QDRANT_GRPC_DISTANCE"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:           "localhost",
		Port:               6334,
		Timeout:            5 * time.Second,
		CheckCompatibility: true,
		Distance:           "Cosine",
	}
}

// FromEndpoint returns a default config pre-filled with a specific endpoint.
func FromEndpoint(host string) *Config {
	cfg := DefaultConfig()
	cfg.Endpoint = host
	return cfg
}

// Builder-style helpers (optional, ergonomic)
func (c *Config) WithApiKey(key string) *Config {
	c.ApiKey = key
	return c
}

func (c *Config) WithPort(port int) *Config {
	c.Port = port
	return c
}

func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}

func (c *Config) WithCompatibilityCheck(enabled bool) *Config {
	c.CheckCompatibility = enabled
	return c
}
