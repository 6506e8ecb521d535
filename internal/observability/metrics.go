package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects Prometheus metrics for the console.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	workspaces      prometheus.Gauge
	toastsTotal     *prometheus.CounterVec
	exportsTotal    *prometheus.CounterVec
	mutationsTotal  *prometheus.CounterVec
}

// NewMetrics initialises the registry and base metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_http_requests_total",
		Help: "HTTP requests by route and status code.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "admin_http_request_duration_seconds",
		Help:    "HTTP request duration per route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	workspaces := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "admin_workspaces_live",
		Help: "Session workspaces currently held in memory.",
	})
	toasts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_toasts_total",
		Help: "Toasts shown by kind.",
	}, []string{"kind"})
	exports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_csv_exports_total",
		Help: "CSV exports by collection.",
	}, []string{"collection"})
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_store_mutations_total",
		Help: "Entity store notifications by collection and operation.",
	}, []string{"collection", "op"})
	registry.MustRegister(requests, duration, workspaces, toasts, exports, mutations)
	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:   requests,
		requestDuration: duration,
		workspaces:      workspaces,
		toastsTotal:     toasts,
		exportsTotal:    exports,
		mutationsTotal:  mutations,
	}
}

// Handler returns the http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Middleware records metrics for every HTTP request.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(&recorder, r)
		route := routePattern(r)
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// SetWorkspaces reports the number of live workspaces.
func (m *Metrics) SetWorkspaces(n int) {
	if m == nil {
		return
	}
	m.workspaces.Set(float64(n))
}

// ToastShown counts a toast.
func (m *Metrics) ToastShown(kind string) {
	if m == nil {
		return
	}
	m.toastsTotal.WithLabelValues(kind).Inc()
}

// Exported counts a CSV download.
func (m *Metrics) Exported(collection string) {
	if m == nil {
		return
	}
	m.exportsTotal.WithLabelValues(collection).Inc()
}

// Mutated counts an entity store notification.
func (m *Metrics) Mutated(collection, op string) {
	if m == nil {
		return
	}
	m.mutationsTotal.WithLabelValues(collection, op).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unknown"
}
