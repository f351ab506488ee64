package logger

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum level that gets emitted. Defaults to info.
	Level string `yaml:"level" env:"MINDKEEP_LOG_LEVEL"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" env:"MINDKEEP_SERVICE_NAME"`

	// EnableTracing makes context-aware log methods attach the active
	// trace and span IDs to each entry.
	EnableTracing bool `yaml:"enable_tracing" env:"MINDKEEP_LOG_TRACING"`
}

// DefaultConfig returns a production-leaning logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:       Info,
		ServiceName: "mindkeep",
	}
}
