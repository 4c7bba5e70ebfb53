// Package metrics defines the Prometheus collectors for the service and
// exposes the scrape handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the service.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	PostsListedTotal     prometheus.Counter
	PostsIngestedTotal   *prometheus.CounterVec
}

// New creates and registers all collectors on the default registry. Call
// once per process.
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "verba_http_requests_total",
				Help: "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "verba_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "verba_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed.",
			},
		),
		PostsListedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "verba_posts_listed_total",
				Help: "Total posts returned by list responses.",
			},
		),
		PostsIngestedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "verba_posts_ingested_total",
				Help: "Total posts ingested by the worker, by status.",
			},
			[]string{"status"},
		),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.PostsListedTotal,
		m.PostsIngestedTotal,
	)
	return m
}

// Handler returns the Prometheus scrape HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
