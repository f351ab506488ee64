package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing application metrics.
//
// Each instance maintains its own isolated registry to prevent metric name
// collisions when multiple services run in the same process. All metrics
// registered through this instance carry a constant `service` label.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	Registry *prometheus.Registry

	// registerer wraps Registry with the constant service label.
	registerer prometheus.Registerer

	// Core built-in metrics
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	collectionPoints  *prometheus.GaugeVec
}

// NewMetrics initializes and returns a new Metrics instance.
//
// It sets up a dedicated Prometheus registry, registers default system
// collectors when enabled, wraps all metrics with a constant `service`
// label, and creates an HTTP server exposing the /metrics endpoint.
//
// Example:
//
//	cfg := metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "mindkeep",
//	    EnableDefaultCollectors: true,
//	}
//	m := metrics.NewMetrics(cfg)
//	go m.Server.ListenAndServe()
//
// Access metrics at: http://localhost:9090/metrics
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// All metrics emitted by this instance automatically include the
	// label service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		registerer: wrappedRegistry,
	}

	m.operationsTotal = createCounterVec("memory_operations_total", "Total number of memory operations by outcome", []string{"operation", "status"})
	m.operationDuration = createHistogramVec("memory_operation_duration_seconds", "Duration of memory operations in seconds", []string{"operation"}, prometheus.DefBuckets)
	m.collectionPoints = createGaugeVec("collection_points", "Number of points stored per collection", []string{"collection"})

	wrappedRegistry.MustRegister(
		m.operationsTotal,
		m.operationDuration,
		m.collectionPoints,
	)

	// GoCollector: memory usage, goroutines, GC stats.
	// ProcessCollector: CPU, file descriptors, memory stats.
	// BuildInfoCollector: binary version and build info.
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	return m
}

// Registerer returns the service-labeled registerer backed by this
// instance's registry. Components that export their own collectors,
// such as the vector store clients, register through it.
func (m *Metrics) Registerer() prometheus.Registerer {
	return m.registerer
}
