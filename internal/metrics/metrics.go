// Package metrics holds the Prometheus collectors exported by the web server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all Prometheus metrics for the site.
type Registry struct {
	reg *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	PageRenders     *prometheus.CounterVec
	NotFound        prometheus.Counter
	RateLimited     prometheus.Counter
}

// NewRegistry creates a registry with the site metrics plus Go runtime and
// process collectors. Each server owns its registry, so tests can build many.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "knowledgehub_http_requests_total",
				Help: "Total HTTP requests by route pattern, method and status code",
			},
			[]string{"route", "method", "status"},
		),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "knowledgehub_http_request_duration_seconds",
				Help:    "HTTP request latency by route pattern",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
			[]string{"route"},
		),

		PageRenders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "knowledgehub_page_renders_total",
				Help: "Pages rendered by page and response kind (full or fragment)",
			},
			[]string{"page", "kind"},
		),

		NotFound: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "knowledgehub_not_found_total",
				Help: "Requests for unregistered paths",
			},
		),

		RateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "knowledgehub_rate_limited_total",
				Help: "Requests rejected by the per-client rate limiter",
			},
		),
	}
	r.reg.MustRegister(
		r.RequestsTotal,
		r.RequestDuration,
		r.PageRenders,
		r.NotFound,
		r.RateLimited,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveRequest records one finished request.
func (r *Registry) ObserveRequest(route, method string, status int, d time.Duration) {
	if r == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	r.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.RequestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// ObserveRender records a page render.
func (r *Registry) ObserveRender(page string, fragment bool) {
	if r == nil {
		return
	}
	kind := "full"
	if fragment {
		kind = "fragment"
	}
	r.PageRenders.WithLabelValues(page, kind).Inc()
}

// IncNotFound counts a request for an unregistered path.
func (r *Registry) IncNotFound() {
	if r == nil {
		return
	}
	r.NotFound.Inc()
}

// IncRateLimited counts a rejected request.
func (r *Registry) IncRateLimited() {
	if r == nil {
		return
	}
	r.RateLimited.Inc()
}

// Gatherer exposes the underlying registry for tests and custom exporters.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
