// Package metrics expone contadores e histogramas Prometheus del gateway web.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder registra métricas HTTP entrantes y llamadas al backend.
// Un *Recorder nil es válido y no hace nada.
type Recorder struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	backendCalls    *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
	gateDecisions   *prometheus.CounterVec
}

// New registra las métricas en el registerer indicado. Con reg nil devuelve nil.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		return nil
	}
	r := &Recorder{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storemax_http_requests_total",
			Help: "Peticiones HTTP atendidas por ruta y status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "storemax_http_request_duration_seconds",
			Help:    "Latencia de las peticiones HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		backendCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storemax_backend_calls_total",
			Help: "Llamadas al backend REST por operación y resultado.",
		}, []string{"operation", "outcome"}),
		backendDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "storemax_backend_call_duration_seconds",
			Help:    "Latencia de las llamadas al backend REST.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		gateDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storemax_access_decisions_total",
			Help: "Decisiones del gate de acceso por ruta.",
		}, []string{"route", "decision"}),
	}
	reg.MustRegister(r.httpRequests, r.httpDuration, r.backendCalls, r.backendDuration, r.gateDecisions)
	return r
}

// ObserveBackendCall registra una llamada al backend. outcome: ok, http_4xx, http_5xx, network, schema.
func (r *Recorder) ObserveBackendCall(operation, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.backendCalls.WithLabelValues(label(operation), label(outcome)).Inc()
	r.backendDuration.WithLabelValues(label(operation)).Observe(d.Seconds())
}

// ObserveDecision registra una decisión del gate.
func (r *Recorder) ObserveDecision(route, decision string) {
	if r == nil {
		return
	}
	r.gateDecisions.WithLabelValues(label(route), label(decision)).Inc()
}

// Middleware cuenta peticiones y latencia usando la ruta registrada (no el path crudo).
func (r *Recorder) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if r == nil {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		r.httpRequests.WithLabelValues(c.Method(), label(route), strconv.Itoa(status)).Inc()
		r.httpDuration.WithLabelValues(c.Method(), label(route)).Observe(time.Since(start).Seconds())
		return err
	}
}

func label(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
