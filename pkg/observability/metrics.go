// Package observability holds the Prometheus metrics collector.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Business metrics
	SituationsViewed prometheus.Counter
	FavoritesToggled prometheus.Counter
	PassageLookups   *prometheus.CounterVec
	SearchQueries    prometheus.Counter
}

// NewCollector creates a metrics collector with its own registry, so tests
// can create collectors freely without duplicate-registration panics.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	situationsViewed := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "situations_viewed_total",
			Help:      "Total number of situation detail views recorded",
		},
	)

	favoritesToggled := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "favorites_toggled_total",
			Help:      "Total number of favorite toggles",
		},
	)

	passageLookups := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passage_lookups_total",
			Help:      "Total number of Bible passage lookups",
		},
		[]string{"status"},
	)

	searchQueries := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_queries_total",
			Help:      "Total number of Bible search queries",
		},
	)

	registry.MustRegister(
		httpRequests,
		httpDuration,
		situationsViewed,
		favoritesToggled,
		passageLookups,
		searchQueries,
	)

	return &Collector{
		registry:         registry,
		HTTPRequests:     httpRequests,
		HTTPDuration:     httpDuration,
		SituationsViewed: situationsViewed,
		FavoritesToggled: favoritesToggled,
		PassageLookups:   passageLookups,
		SearchQueries:    searchQueries,
	}
}

// Handler returns the /metrics endpoint handler for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
