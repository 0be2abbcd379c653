// Package httpapi exposes the solver over HTTP: a fiber app, request
// validation, request-id correlation, and Prometheus instrumentation.
// Adapted from noah-isme-sma-adp-api's MetricsService (same registry +
// histogram/counter shape) and siakad-poc's fiber wiring.
package httpapi

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the solver's Prometheus collectors.
type Metrics struct {
	registry      *prometheus.Registry
	solveDuration *prometheus.HistogramVec
	solvesTotal   *prometheus.CounterVec
	sessionsRatio prometheus.Histogram
	requestsTotal *prometheus.CounterVec
}

// NewMetrics registers the scheduler's collectors on a private registry,
// the way MetricsService avoids polluting the default global registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	solveDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "timetable_solve_duration_seconds",
		Help:    "Wall-clock duration of a solve call.",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"})

	solvesTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_solves_total",
		Help: "Total solve calls by mode and outcome.",
	}, []string{"mode", "outcome"})

	sessionsRatio := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_sessions_assigned_ratio",
		Help:    "Fraction of generated sessions successfully assigned per solve.",
		Buckets: []float64{0, 0.25, 0.5, 0.75, 0.9, 0.99, 1.0},
	})

	requestsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_http_requests_total",
		Help: "Total HTTP requests by route and status.",
	}, []string{"route", "status"})

	registry.MustRegister(solveDuration, solvesTotal, sessionsRatio, requestsTotal)

	return &Metrics{
		registry:      registry,
		solveDuration: solveDuration,
		solvesTotal:   solvesTotal,
		sessionsRatio: sessionsRatio,
		requestsTotal: requestsTotal,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeSolve(mode string, outcome string, duration time.Duration, assignedRatio float64) {
	m.solveDuration.WithLabelValues(mode).Observe(duration.Seconds())
	m.solvesTotal.WithLabelValues(mode, outcome).Inc()
	m.sessionsRatio.Observe(assignedRatio)
}

func (m *Metrics) observeRequest(route string, status int) {
	m.requestsTotal.WithLabelValues(route, http.StatusText(status)).Inc()
}
