// Package metrics provides Prometheus-based monitoring for mindkeep
// services.
//
// The package exposes a configurable /metrics HTTP endpoint, registers
// automatic runtime instrumentation, and integrates with the Fx
// dependency injection framework.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Collector interface: Defines the contract for metrics operations
//   - Metrics struct: Concrete implementation of the Collector interface
//   - NewMetrics constructor: Returns *Metrics (concrete type)
//   - FX module: Provides *Metrics, Collector and the service-labeled
//     prometheus.Registerer for dependency injection
//
// Core features:
//   - Exposes a configurable /metrics endpoint for Prometheus scraping
//   - Integration with go.uber.org/fx for automatic lifecycle management
//   - Automatic registration of Go runtime and process-level metrics
//   - Support for custom metric registration (counters, gauges, histograms)
//   - A constant `service` label on all metrics for multi-service observability
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create metrics directly:
//
//	cfg := metrics.Config{
//		Address:                 ":9090",
//		ServiceName:             "mindkeep",
//		EnableDefaultCollectors: true,
//	}
//
//	m := metrics.NewMetrics(cfg)
//	go m.Server.ListenAndServe()
//
//	m.IncrementOperations("recall", "success")
//	defer m.RecordOperationDuration(time.Now(), "recall")
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule,
//		fx.Provide(metrics.DefaultConfig),
//		qdrant.FXModule, // consumes the provided prometheus.Registerer
//	)
//	app.Run()
//
// The module also provides the wrapped prometheus.Registerer, so the
// vector store clients export their per-operation collectors into the
// same registry automatically.
//
// # Configuration
//
// The metrics server can be configured via environment variables:
//
//	METRICS_ADDRESS=:9090                      # Port and address for /metrics endpoint
//	METRICS_SERVICE_NAME=mindkeep              # Adds service label to all metrics
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true     # Enable runtime and process metrics
//
// # Custom Metrics
//
// Applications can register additional Prometheus metrics through the
// factory methods:
//
//	recallLatency := m.CreateHistogram(
//	    "recall_latency_seconds",
//	    "Histogram of recall latencies.",
//	    []string{"collection"},
//	    prometheus.DefBuckets,
//	)
//
// All methods on the Metrics struct and Prometheus collectors are safe
// for concurrent use by multiple goroutines.
package metrics
