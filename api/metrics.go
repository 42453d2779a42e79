package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	outcomeOK      = "ok"
	outcomeInvalid = "invalid"
	outcomeError   = "error"
)

type metrics struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	duration    prometheus.Histogram
	evaluations prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "valuation_requests_total",
			Help: "Total valuation requests by outcome",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "valuation_duration_seconds",
			Help:    "Valuation and sensitivity computation time in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sensitivity_evaluations_total",
			Help: "Total lattice evaluations run by sensitivity analysis",
		}),
	}
	m.registry.MustRegister(m.requests, m.duration, m.evaluations)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
