package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorders(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordLookup("id", OutcomeFound, 0.01)
	m.RecordLookup("id", OutcomeFound, 0.02)
	m.RecordEventPublished("FULFILMENT_REQUESTED")
	m.RecordFulfilment("POST", true)
	m.RecordCacheFallback("uprn")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.LookupsTotal.WithLabelValues("id", OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublishedTotal.WithLabelValues("FULFILMENT_REQUESTED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FulfilmentsTotal.WithLabelValues("POST", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheFallbacksTotal.WithLabelValues("uprn")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordLookup("id", OutcomeError, 0)
		m.RecordEventPublished("X")
		m.RecordFulfilment("SMS", false)
		m.RecordCacheFallback("id")
	})
}
