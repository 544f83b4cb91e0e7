package tango

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tangobridge/tangobridge/pkg/log"
)

// Metrics collects proxy call counts and latencies.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the proxy metrics and registers them with reg.
// A nil reg leaves the collectors unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "tangobridge",
				Subsystem: "proxy",
				Name:      "calls_total",
				Help:      "Total number of proxy calls by operation and status",
			},
			[]string{"operation", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "tangobridge",
				Subsystem: "proxy",
				Name:      "call_duration_seconds",
				Help:      "Proxy call round-trip time",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"operation"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.calls, m.duration)
	}
	return m
}

func (m *Metrics) observe(op log.Operation, err error, elapsed time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.calls.WithLabelValues(op.String(), status).Inc()
	m.duration.WithLabelValues(op.String()).Observe(elapsed.Seconds())
}
