package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fredcamaral/md2slides/internal/domain/ports"
)

const metricsNamespace = "md2slides"

// Metrics holds the server's Prometheus collectors. Each server owns its
// registry so several servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	SlidesExtracted prometheus.Counter
	ExtractFailures *prometheus.CounterVec
	DocumentBytes   prometheus.Histogram
}

// NewMetrics creates and registers all collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		SlidesExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "slides_extracted_total",
			Help:      "Slides returned by the extraction endpoint.",
		}),
		ExtractFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "extraction_failures_total",
			Help:      "Failed extractions by reason.",
		}, []string{"reason"}),
		DocumentBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "document_bytes",
			Help:      "Size of submitted markdown documents.",
			Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
		}),
	}

	m.registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.SlidesExtracted,
		m.ExtractFailures,
		m.DocumentBytes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RegisterCache exports the cache's counters, read at scrape time
func (m *Metrics) RegisterCache(cache ports.ExtractionCache) {
	m.registry.MustRegister(
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cache_hits_total",
			Help:      "Extractions served from the cache.",
		}, func() float64 { return float64(cache.Stats().Hits) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cache_misses_total",
			Help:      "Extractions that missed the cache.",
		}, func() float64 { return float64(cache.Stats().Misses) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "cache_entries",
			Help:      "Presentations currently cached.",
		}, func() float64 { return float64(cache.Stats().Entries) }),
	)
}

// Registry returns the registry backing the collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// metricsMiddleware records request counts and latency per route template.
// It runs as router middleware so the matched route is known.
func metricsMiddleware(next http.Handler, m *Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		route := "unmatched"
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		m.RequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(wrapped.status)).Inc()
		m.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
