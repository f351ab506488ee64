// Package tracer configures OpenTelemetry tracing with an OTLP/HTTP
// exporter and registers the provider globally via otel.SetTracerProvider.
//
// Tracing is disabled by default; set TRACER_ENABLED=true (or
// Config.Enabled) to export spans. When disabled, components that call
// otel.Tracer still work against the no-op global provider.
package tracer
