package metrics

// Config holds the settings for the Prometheus metrics server.
type Config struct {
	// Address is the listen address for the /metrics endpoint.
	Address string `yaml:"address" env:"METRICS_ADDRESS"`

	// ServiceName is added as a constant `service` label to every metric
	// registered through this package.
	ServiceName string `yaml:"service_name" env:"METRICS_SERVICE_NAME"`

	// EnableDefaultCollectors registers the Go runtime, process and build
	// info collectors alongside the application metrics.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"METRICS_ENABLE_DEFAULT_COLLECTORS"`
}

// DefaultConfig returns a Config suitable for local development.
func DefaultConfig() Config {
	return Config{
		Address:                 ":9090",
		ServiceName:             "mindkeep",
		EnableDefaultCollectors: true,
	}
}
