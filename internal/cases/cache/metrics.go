package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts case cache hits, misses and write contention.
type Metrics struct {
	HitsTotal       *prometheus.CounterVec
	MissesTotal     *prometheus.CounterVec
	ContentionTotal prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HitsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "contactcentre_case_cache_hits_total",
			Help: "Total number of case cache hits by key type",
		}, []string{"key"}),
		MissesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "contactcentre_case_cache_misses_total",
			Help: "Total number of case cache misses by key type",
		}, []string{"key"}),
		ContentionTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "contactcentre_case_cache_write_retries_total",
			Help: "Total number of cache writes retried after losing a WATCH race",
		}),
	}
}

func (m *Metrics) recordHit(key string) {
	if m == nil {
		return
	}
	m.HitsTotal.WithLabelValues(key).Inc()
}

func (m *Metrics) recordMiss(key string) {
	if m == nil {
		return
	}
	m.MissesTotal.WithLabelValues(key).Inc()
}

func (m *Metrics) recordContention(retries int) {
	if m == nil {
		return
	}
	m.ContentionTotal.Add(float64(retries))
}
