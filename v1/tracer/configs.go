package tracer

// Config holds settings for the OTLP trace exporter.
type Config struct {
	// Logical name of the service emitting spans.
	ServiceName string `yaml:"service_name" env:"TRACER_SERVICE_NAME"`

	// OTLP/HTTP collector endpoint, host:port without scheme,
	// e.g. "localhost:4318".
	Endpoint string `yaml:"endpoint" env:"TRACER_ENDPOINT"`

	// Insecure disables TLS towards the collector.
	Insecure bool `yaml:"insecure" env:"TRACER_INSECURE"`

	// SampleRatio in [0, 1]; 1 traces every request.
	SampleRatio float64 `yaml:"sample_ratio" env:"TRACER_SAMPLE_RATIO"`

	// Enabled turns span export on. When false a no-op provider is
	// installed and spans cost nothing.
	Enabled bool `yaml:"enabled" env:"TRACER_ENABLED"`
}

// DefaultConfig provides sensible defaults for local development.
func DefaultConfig() *Config {
	return &Config{
		ServiceName: "mindkeep",
		Endpoint:    "localhost:4318",
		Insecure:    true,
		SampleRatio: 1,
		Enabled:     false,
	}
}
