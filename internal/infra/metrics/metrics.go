// Package metrics exposes Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics bundles the service's Prometheus collectors. The registry is
// handed to the HTTP delivery for the /metrics endpoint.
type Metrics struct {
	Registry *prometheus.Registry

	// ConnectionOps counts connect/disconnect operations by action and result.
	ConnectionOps *prometheus.CounterVec

	// ProximitySearches counts proximity searches by result.
	ProximitySearches *prometheus.CounterVec

	// ProximityMatches observes how many retailers each search returned.
	ProximityMatches prometheus.Histogram

	// CacheHits counts query cache lookups by outcome.
	CacheHits *prometheus.CounterVec
}

// New builds the metrics registry with all collectors registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		Registry: registry,
		ConnectionOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "guildhall",
			Subsystem: "connections",
			Name:      "operations_total",
			Help:      "Connect and disconnect operations by action and result.",
		}, []string{"action", "result"}),
		ProximitySearches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "guildhall",
			Subsystem: "proximity",
			Name:      "searches_total",
			Help:      "Proximity searches by result.",
		}, []string{"result"}),
		ProximityMatches: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "guildhall",
			Subsystem: "proximity",
			Name:      "matches_per_search",
			Help:      "Number of retailers returned per proximity search.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		CacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "guildhall",
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Query cache lookups by outcome.",
		}, []string{"outcome"}),
	}

	registry.MustRegister(
		m.ConnectionOps,
		m.ProximitySearches,
		m.ProximityMatches,
		m.CacheHits,
	)

	return m
}
