// Package metrics provides Prometheus metrics for case orchestration.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains the orchestration counters and histograms.
type Metrics struct {
	LookupsTotal         *prometheus.CounterVec   // Lookups by method (id, uprn, ref) and outcome
	LookupDuration       *prometheus.HistogramVec // Directory round trip by method
	EventsPublishedTotal *prometheus.CounterVec   // Published events by type
	FulfilmentsTotal     *prometheus.CounterVec   // Fulfilments by channel and whether an individual case was minted
	CacheFallbacksTotal  *prometheus.CounterVec   // Lookups answered from the case cache by method
}

// New registers the metrics with reg. Pass prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		LookupsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "contactcentre_case_lookups_total",
			Help: "Total number of case lookups by method and outcome",
		}, []string{"method", "outcome"}),

		LookupDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "contactcentre_case_lookup_duration_seconds",
			Help:    "Duration of case directory lookups by method",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method"}),

		EventsPublishedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "contactcentre_events_published_total",
			Help: "Total number of domain events published by type",
		}, []string{"type"}),

		FulfilmentsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "contactcentre_fulfilments_total",
			Help: "Total number of fulfilment requests by delivery channel and individual flag",
		}, []string{"channel", "individual"}),

		CacheFallbacksTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "contactcentre_case_cache_fallbacks_total",
			Help: "Total number of lookups answered from the case cache by method",
		}, []string{"method"}),
	}
}

// Lookup outcomes.
const (
	OutcomeFound     = "found"
	OutcomeForbidden = "forbidden"
	OutcomeNotFound  = "not_found"
	OutcomeError     = "error"
)

func (m *Metrics) RecordLookup(method, outcome string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.LookupsTotal.WithLabelValues(method, outcome).Inc()
	m.LookupDuration.WithLabelValues(method).Observe(durationSeconds)
}

func (m *Metrics) RecordEventPublished(eventType string) {
	if m == nil {
		return
	}
	m.EventsPublishedTotal.WithLabelValues(eventType).Inc()
}

func (m *Metrics) RecordFulfilment(channel string, individual bool) {
	if m == nil {
		return
	}
	label := "false"
	if individual {
		label = "true"
	}
	m.FulfilmentsTotal.WithLabelValues(channel, label).Inc()
}

func (m *Metrics) RecordCacheFallback(method string) {
	if m == nil {
		return
	}
	m.CacheFallbacksTotal.WithLabelValues(method).Inc()
}
