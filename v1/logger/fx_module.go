package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the logger into Fx.
//
// It provides *Logger (NewLoggerClient) and registers a shutdown hook
// that flushes buffered log entries. A logger.Config instance must be
// available in the dependency injection container.
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle flushes the Zap logger on application shutdown.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Zap.Sync()
		},
	})
}
