package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type ProbeMetricsCollector struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
	Ready    prometheus.Gauge
}

var globalCollector *ProbeMetricsCollector

func getCollector() *ProbeMetricsCollector {
	if globalCollector == nil {
		globalCollector = &ProbeMetricsCollector{
			Requests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "aiengine_probe_requests_total",
					Help: "The total number of probe requests by probe and reported status",
				},
				[]string{"probe", "status"},
			),
			Latency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "aiengine_probe_duration_seconds",
					Help:    "Probe evaluation duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"probe"},
			),
			Ready: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "aiengine_ready",
					Help: "Whether the last readiness evaluation passed (1) or failed (0)",
				},
			),
		}
	}
	return globalCollector
}

// ProbeMetrics records probe outcomes for one service instance.
type ProbeMetrics struct {
	collector *ProbeMetricsCollector
}

func NewProbeMetrics() *ProbeMetrics {
	return &ProbeMetrics{
		collector: getCollector(),
	}
}

// RecordProbe counts one probe request with the status it reported.
func (m *ProbeMetrics) RecordProbe(probe, status string) {
	m.collector.Requests.WithLabelValues(probe, status).Inc()
}

// RecordLatency observes how long one probe evaluation took.
func (m *ProbeMetrics) RecordLatency(probe string, duration float64) {
	m.collector.Latency.WithLabelValues(probe).Observe(duration)
}

// RecordReadyState mirrors the latest readiness aggregate into a gauge so
// dashboards can see flaps between scrapes of the probe endpoint.
func (m *ProbeMetrics) RecordReadyState(ready bool) {
	if ready {
		m.collector.Ready.Set(1)
	} else {
		m.collector.Ready.Set(0)
	}
}
