package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestProbeMetrics(t *testing.T) {
	metrics := NewProbeMetrics()

	t.Run("Record probe requests", func(t *testing.T) {
		metrics.RecordProbe("readiness", "ready")
		metrics.RecordProbe("readiness", "ready")
		metrics.RecordProbe("readiness", "not_ready")

		ready := testutil.ToFloat64(metrics.collector.Requests.WithLabelValues("readiness", "ready"))
		notReady := testutil.ToFloat64(metrics.collector.Requests.WithLabelValues("readiness", "not_ready"))
		assert.Equal(t, 2.0, ready)
		assert.Equal(t, 1.0, notReady)
	})

	t.Run("Record ready state", func(t *testing.T) {
		metrics.RecordReadyState(true)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.collector.Ready))

		metrics.RecordReadyState(false)
		assert.Equal(t, 0.0, testutil.ToFloat64(metrics.collector.Ready))
	})

	t.Run("Record latency", func(t *testing.T) {
		metrics.RecordLatency("liveness", 0.001)
		metrics.RecordLatency("health", 0.002)
	})

	t.Run("Collector is shared", func(t *testing.T) {
		other := NewProbeMetrics()
		assert.Same(t, metrics.collector, other.collector)
	})
}
