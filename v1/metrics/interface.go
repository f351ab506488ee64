package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector provides an interface for collecting and exposing application
// metrics. It abstracts Prometheus metric operations with support for
// counters, histograms, and gauges.
//
// This interface is implemented by the concrete *Metrics type.
type Collector interface {
	// Default metric methods

	// IncrementOperations increments the operation counter for a given
	// operation and outcome.
	IncrementOperations(operation, status string)

	// RecordOperationDuration records the duration (in seconds) for an
	// operation.
	RecordOperationDuration(start time.Time, operation string)

	// SetCollectionPoints sets the point-count gauge for a collection.
	SetCollectionPoints(value float64, collection string)

	// Dynamic metric factories

	// CreateCounter creates a new CounterVec metric and registers it.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram creates a new HistogramVec metric and registers it.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec

	// CreateGauge creates a new GaugeVec metric and registers it.
	CreateGauge(name, help string, labels []string) *prometheus.GaugeVec
}
