// Package monitoring exposes Prometheus metrics for the blueprint engine.
package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors. Each set carries its own
// registry, so independent instances never collide.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP surface
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Engine
	BlueprintsTotal   *prometheus.CounterVec
	BlueprintDuration prometheus.Histogram
	GateFallbacks     prometheus.Counter

	// Ephemeris upstream
	EphemerisRequests *prometheus.CounterVec
	EphemerisDuration prometheus.Histogram
	TokenRefreshes    *prometheus.CounterVec
}

// New creates the metrics collectors on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blueprint_http_requests_total",
				Help: "Total HTTP requests served",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blueprint_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		BlueprintsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blueprint_computations_total",
				Help: "Blueprint computations by outcome",
			},
			[]string{"status"},
		),
		BlueprintDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "blueprint_computation_duration_seconds",
				Help:    "End-to-end blueprint computation duration",
				Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
		),
		GateFallbacks: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "blueprint_gate_table_fallbacks_total",
				Help: "Gate resolutions that fell back to the uniform formula",
			},
		),
		EphemerisRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blueprint_ephemeris_requests_total",
				Help: "Ephemeris upstream requests by outcome",
			},
			[]string{"status"},
		),
		EphemerisDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "blueprint_ephemeris_request_duration_seconds",
				Help:    "Ephemeris upstream request duration",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
			},
		),
		TokenRefreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blueprint_token_refreshes_total",
				Help: "Ephemeris credential refreshes by outcome",
			},
			[]string{"status"},
		),
	}
}

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveBlueprint records one blueprint computation.
func (m *Metrics) ObserveBlueprint(status string, d time.Duration) {
	m.BlueprintsTotal.WithLabelValues(status).Inc()
	m.BlueprintDuration.Observe(d.Seconds())
}

// ObserveEphemeris records one upstream call.
func (m *Metrics) ObserveEphemeris(status string, d time.Duration) {
	m.EphemerisRequests.WithLabelValues(status).Inc()
	m.EphemerisDuration.Observe(d.Seconds())
}

// ObserveTokenRefresh records one credential refresh attempt.
func (m *Metrics) ObserveTokenRefresh(status string) {
	m.TokenRefreshes.WithLabelValues(status).Inc()
}
