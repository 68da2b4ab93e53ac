package request

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	EndpointLatency *prometheus.HistogramVec
}

// NewMetrics registers the HTTP metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		EndpointLatency: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "contactcentre_http_request_duration_seconds",
			Help:    "Latency of operator API endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
}

func (m *Metrics) ObserveEndpointLatency(route, method string, status int, durationSeconds float64) {
	m.EndpointLatency.WithLabelValues(route, method, strconv.Itoa(status)).Observe(durationSeconds)
}
