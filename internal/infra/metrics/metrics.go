// Package metrics exposes Prometheus collectors for calculations and the
// HTTP API. Each Metrics owns its registry so tests and servers never share
// global state.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/ports"
)

const (
	namespace = "calckit"

	CalculationsCollectorName = "calculations_total"
	RequestsCollectorName     = "http_requests_total"
	LatencyCollectorName      = "http_request_duration_milliseconds"
)

var latencyBuckets = []float64{1, 5, 25, 100, 500, 1000}

type Metrics struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	requests     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.calculations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      CalculationsCollectorName,
		Help:      "Number of calculations partitioned by calculator and outcome.",
	}, []string{"calculator", "outcome"})

	m.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      RequestsCollectorName,
		Help:      "Number of HTTP requests partitioned by status code, method and route.",
	}, []string{"code", "method", "path"})

	m.latency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      LatencyCollectorName,
		Help:      "Time spent on the request partitioned by status code, method and route.",
		Buckets:   latencyBuckets,
	}, []string{"code", "method", "path"})

	m.registry.MustRegister(m.calculations, m.requests, m.latency)
	return m
}

var _ ports.MetricsRecorder = (*Metrics)(nil)

func (m *Metrics) ObserveCalculation(id domain.CalculatorID, outcome string) {
	m.calculations.WithLabelValues(string(id), outcome).Inc()
}

// Middleware records request count and latency by chi route pattern, so
// /api/v1/calculators/bmi and /api/v1/calculators/age share one series.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		rctx := chi.RouteContext(r.Context())
		if rctx == nil {
			return
		}
		rp := rctx.RoutePattern()
		if rp == "" {
			rp = "unmatched"
		}
		code := strconv.Itoa(ww.Status())
		m.requests.WithLabelValues(code, r.Method, rp).Inc()
		m.latency.WithLabelValues(code, r.Method, rp).Observe(float64(time.Since(start).Milliseconds()))
	}
	return http.HandlerFunc(fn)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
