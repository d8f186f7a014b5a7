package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics содержит Prometheus-коллекторы сервиса.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	rateLimitDenied  *prometheus.CounterVec
	upstreamRequests *prometheus.CounterVec
	upstreamDuration prometheus.Histogram
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nanogen_http_requests_total",
				Help: "Total number of handled HTTP requests",
			},
			[]string{"path", "status"},
		),

		rateLimitDenied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nanogen_ratelimit_denied_total",
				Help: "Total number of requests rejected by rate limiting",
			},
			[]string{"policy"},
		),

		upstreamRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nanogen_upstream_requests_total",
				Help: "Total number of completion calls to the upstream service",
			},
			[]string{"outcome"},
		),

		upstreamDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "nanogen_upstream_request_duration_seconds",
				Help:    "Latency of upstream completion calls",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *Metrics) ObserveRequest(path string, status int) {
	m.httpRequests.WithLabelValues(path, strconv.Itoa(status)).Inc()
}

func (m *Metrics) RateLimitDenied(policy string) {
	m.rateLimitDenied.WithLabelValues(policy).Inc()
}

// ObserveUpstream фиксирует исход и длительность одного вызова upstream.
func (m *Metrics) ObserveUpstream(err error, duration time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.upstreamRequests.WithLabelValues(outcome).Inc()
	m.upstreamDuration.Observe(duration.Seconds())
}

// Handler отдаёт метрики в формате Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
