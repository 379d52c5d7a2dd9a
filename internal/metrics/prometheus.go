// Package metrics defines the Prometheus collectors exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all the prometheus collectors for the service.
type Metrics struct {
	HTTPRequestLatency *prometheus.HistogramVec
	ErrorRates         *prometheus.CounterVec
	SearchLatency      *prometheus.HistogramVec
	SeedsScanned       prometheus.Counter
	MatchesFound       prometheus.Counter
	ActiveScans        prometheus.Gauge
	RateLimitRejected  *prometheus.CounterVec
}

// NewMetrics initializes and returns a new Metrics struct.
func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		}, []string{"method", "path", "status"}),
		ErrorRates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "error_rate_total",
			Help: "Total number of errors",
		}, []string{"endpoint", "error_type"}),
		SearchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "seed_search_duration_seconds",
			Help:    "Wall-clock duration of a seed search",
			Buckets: []float64{0.01, 0.05, 0.25, 1, 5, 15, 60},
		}, []string{"mode"}), // batched, stream
		SeedsScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "seed_search_scanned_total",
			Help: "Total number of seeds scanned across all searches",
		}),
		MatchesFound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "seed_search_matches_total",
			Help: "Total number of matching seeds returned across all searches",
		}),
		ActiveScans: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "seed_search_active",
			Help: "Number of searches currently in progress",
		}),
		RateLimitRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rate_limit_rejected_total",
			Help: "Total number of requests rejected by the rate limiter",
		}, []string{"endpoint"}),
	}
}

// Register registers all metrics with the provided registry.
func (m *Metrics) Register(reg prometheus.Registerer) {
	reg.MustRegister(
		m.HTTPRequestLatency,
		m.ErrorRates,
		m.SearchLatency,
		m.SeedsScanned,
		m.MatchesFound,
		m.ActiveScans,
		m.RateLimitRejected,
	)
}
