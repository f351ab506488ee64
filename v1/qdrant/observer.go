package qdrant

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// observer tracks per-operation request counts and latencies. It is nil
// when no Prometheus registerer is configured, and all methods are
// nil-safe so callers never branch.
type observer struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newObserver(reg prometheus.Registerer) *observer {
	if reg == nil {
		return nil
	}

	o := &observer{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mindkeep",
			Subsystem: "qdrant",
			Name:      "requests_total",
			Help:      "Total number of Qdrant REST requests by operation and outcome.",
		}, []string{"operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mindkeep",
			Subsystem: "qdrant",
			Name:      "request_duration_seconds",
			Help:      "Duration of Qdrant REST requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	reg.MustRegister(o.requests, o.duration)
	return o
}

func (o *observer) observe(operation string, d time.Duration, err error) {
	if o == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	o.requests.WithLabelValues(operation, status).Inc()
	o.duration.WithLabelValues(operation).Observe(d.Seconds())
}
