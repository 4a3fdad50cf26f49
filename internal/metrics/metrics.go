package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds all Prometheus metrics.
type Registry struct {
	*prometheus.Registry

	// HTTP metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	// UI metrics
	pagesRendered      *prometheus.CounterVec
	renderErrors       *prometheus.CounterVec
	sidebarTransitions *prometheus.CounterVec
	templateReloads    *prometheus.CounterVec
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	// Register Go runtime metrics
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		Registry: reg,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		httpRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently in flight",
			},
		),
	}

	reg.MustRegister(r.httpRequestsTotal)
	reg.MustRegister(r.httpRequestDuration)
	reg.MustRegister(r.httpRequestsInFlight)

	r.pagesRendered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hyperglue_pages_rendered_total",
			Help: "Total number of pages rendered",
		},
		[]string{"page"},
	)
	r.renderErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hyperglue_render_errors_total",
			Help: "Total number of failed page renders",
		},
		[]string{"page"},
	)
	r.sidebarTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hyperglue_sidebar_transitions_total",
			Help: "Sidebar state transitions applied while rendering",
		},
		[]string{"from", "to"},
	)
	r.templateReloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hyperglue_template_reloads_total",
			Help: "Template reloads triggered by file changes",
		},
		[]string{"status"},
	)

	reg.MustRegister(r.pagesRendered)
	reg.MustRegister(r.renderErrors)
	reg.MustRegister(r.sidebarTransitions)
	reg.MustRegister(r.templateReloads)

	return r
}

// RecordRequest records metrics for an HTTP request.
func (r *Registry) RecordRequest(method, path string, status int, duration float64) {
	statusStr := statusToString(status)
	r.httpRequestsTotal.WithLabelValues(method, path, statusStr).Inc()
	r.httpRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// InFlightInc increments in-flight requests.
func (r *Registry) InFlightInc() {
	r.httpRequestsInFlight.Inc()
}

// InFlightDec decrements in-flight requests.
func (r *Registry) InFlightDec() {
	r.httpRequestsInFlight.Dec()
}

// RecordPageRendered counts a successful page render.
func (r *Registry) RecordPageRendered(page string) {
	r.pagesRendered.WithLabelValues(page).Inc()
}

// RecordRenderError counts a failed page render.
func (r *Registry) RecordRenderError(page string) {
	r.renderErrors.WithLabelValues(page).Inc()
}

// RecordSidebarTransition counts an applied sidebar transition.
func (r *Registry) RecordSidebarTransition(from, to string) {
	r.sidebarTransitions.WithLabelValues(from, to).Inc()
}

// RecordTemplateReload counts a template reload attempt.
func (r *Registry) RecordTemplateReload(ok bool) {
	status := "ok"
	if !ok {
		status = "error"
	}
	r.templateReloads.WithLabelValues(status).Inc()
}

func statusToString(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}
