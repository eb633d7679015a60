package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonathan/letter-studio/internal/catalog"
)

const namespace = "letter_studio"

// Metrics holds the collectors for one server instance. Each instance owns its
// registry so several servers (or tests) can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	LettersTotal     *prometheus.CounterVec
	LetterParagraphs *prometheus.HistogramVec
	RendersTotal     *prometheus.CounterVec
	RateLimitedTotal prometheus.Counter
}

// NewMetrics creates and registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method", "path"},
		),

		LettersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "letter",
				Name:      "generation_total",
				Help:      "Total number of letter generations",
			},
			[]string{"tone", "language", "status"},
		),

		LetterParagraphs: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "letter",
				Name:      "body_paragraphs",
				Help:      "Body paragraphs per generated letter",
				Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21, 50},
			},
			[]string{"tone"},
		),

		RendersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "render",
				Name:      "total",
				Help:      "Total number of letter renderings",
			},
			[]string{"format", "status"},
		),

		RateLimitedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "rate_limited_total",
				Help:      "Requests rejected by the rate limiter",
			},
		),
	}
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, path, status string, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveLetter records one generation attempt. Tone and language are only
// used as labels when they are catalog values; anything else is "unknown".
func (m *Metrics) ObserveLetter(tone, language string, paragraphs int, err error) {
	if _, ok := catalog.LookupTone(tone); !ok {
		tone = "unknown"
	}
	if _, ok := catalog.LookupLanguage(language); !ok {
		language = "unknown"
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.LettersTotal.WithLabelValues(tone, language, status).Inc()
	if err == nil {
		m.LetterParagraphs.WithLabelValues(tone).Observe(float64(paragraphs))
	}
}

// ObserveRender records one rendering attempt.
func (m *Metrics) ObserveRender(format string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.RendersTotal.WithLabelValues(format, status).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
