package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RequestsTotal          *prometheus.CounterVec
	UpstreamErrors         *prometheus.CounterVec
	UpstreamRequestSeconds *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RequestsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "weather_requests_total",
			Help: "Total number of handled weather requests.",
		}, []string{"outcome"}),
		UpstreamErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "weather_upstream_errors_total",
			Help: "Total number of errors received from the upstream provider APIs.",
		}, []string{"provider"}),
		UpstreamRequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "weather_upstream_request_duration_seconds",
			Help:    "Duration of requests to the upstream provider APIs.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
	}
}
