// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics groups the service's collectors.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	UpstreamCalls       *prometheus.CounterVec
	UpstreamDuration    *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "flightbridge",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled",
			},
			[]string{"method", "route", "status"},
		),

		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "flightbridge",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		UpstreamCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "flightbridge",
				Subsystem: "upstream",
				Name:      "calls_total",
				Help:      "Total number of calls to the flight provider, by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),

		UpstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "flightbridge",
				Subsystem: "upstream",
				Name:      "call_duration_seconds",
				Help:      "Flight provider call duration in seconds",
				Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
			},
			[]string{"mode"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.UpstreamCalls,
		m.UpstreamDuration,
	)
	return m
}

// Registry is what promhttp serves.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveUpstream records one provider call. Safe on a nil receiver.
func (m *Metrics) ObserveUpstream(mode, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.UpstreamCalls.WithLabelValues(mode, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(mode).Observe(seconds)
}
