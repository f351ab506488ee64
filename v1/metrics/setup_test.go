package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics() *Metrics {
	return NewMetrics(Config{
		Address:     ":0",
		ServiceName: "mindkeep-test",
	})
}

func gatherNames(t *testing.T, m *Metrics) map[string]bool {
	t.Helper()

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	return names
}

func TestNewMetrics_RegistersCoreMetrics(t *testing.T) {
	m := newTestMetrics()

	m.IncrementOperations("recall", "success")
	m.RecordOperationDuration(time.Now(), "save")
	m.SetCollectionPoints(42, "memories")

	names := gatherNames(t, m)
	assert.True(t, names["memory_operations_total"])
	assert.True(t, names["memory_operation_duration_seconds"])
	assert.True(t, names["collection_points"])
}

func TestNewMetrics_ServiceLabel(t *testing.T) {
	m := newTestMetrics()
	m.IncrementOperations("count", "success")

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() != "memory_operations_total" {
			continue
		}
		require.Len(t, f.GetMetric(), 1)

		labels := map[string]string{}
		for _, pair := range f.GetMetric()[0].GetLabel() {
			labels[pair.GetName()] = pair.GetValue()
		}
		assert.Equal(t, "mindkeep-test", labels["service"])
		assert.Equal(t, "count", labels["operation"])
		assert.Equal(t, "success", labels["status"])
		return
	}
	t.Error("memory_operations_total not found in gathered metrics")
}

func TestCreateCounter_SharesRegistry(t *testing.T) {
	m := newTestMetrics()

	counter := m.CreateCounter("recall_cache_hits_total", "Cache hits during recall", []string{"collection"})
	counter.WithLabelValues("memories").Inc()

	names := gatherNames(t, m)
	assert.True(t, names["recall_cache_hits_total"])
}

func TestDefaultCollectors(t *testing.T) {
	m := NewMetrics(Config{
		Address:                 ":0",
		ServiceName:             "mindkeep-test",
		EnableDefaultCollectors: true,
	})

	names := gatherNames(t, m)
	assert.True(t, names["go_goroutines"])
}
