// Package logger provides the structured Zap logger used across the SDK.
//
// It wraps go.uber.org/zap with a small method surface (Info, Debug,
// Warn, Error plus context-aware variants) that accepts an optional error
// and free-form field maps:
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info, ServiceName: "mindkeep"})
//	log.Info("memory saved", nil, map[string]interface{}{"collection": "memories"})
//
// When Config.EnableTracing is set, the *Ctx methods attach the active
// OpenTelemetry trace and span IDs to every entry.
package logger
