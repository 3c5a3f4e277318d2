// Package metrics expone los contadores Prometheus del libro de stock.
// Todos los métodos aceptan receptor nil (métricas desactivadas).
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Resultados usados como etiqueta.
const (
	ResultApplied  = "applied"
	ResultRejected = "rejected"
	ResultOK       = "ok"
	ResultError    = "error"
	ResultDegraded = "degraded"
	ResultBusy     = "busy"
)

// Metrics agrupa los colectores del servicio.
type Metrics struct {
	movements      *prometheus.CounterVec
	snapshotWrites *prometheus.CounterVec
	insights       *prometheus.CounterVec
	criticalItems  prometheus.Gauge
	httpRequests   *prometheus.CounterVec
	httpLatency    *prometheus.HistogramVec
}

// New registra los colectores en reg. reg nil devuelve nil (no-op).
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}
	m := &Metrics{
		movements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seasafety_movements_total",
			Help: "Movimientos de stock solicitados por tipo y resultado.",
		}, []string{"type", "result"}),
		snapshotWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seasafety_snapshot_writes_total",
			Help: "Escrituras de snapshots por resultado.",
		}, []string{"result"}),
		insights: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seasafety_insight_requests_total",
			Help: "Solicitudes de análisis IA por resultado.",
		}, []string{"result"}),
		criticalItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "seasafety_critical_items",
			Help: "Items con saldo en o por debajo del mínimo.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seasafety_http_requests_total",
			Help: "Peticiones HTTP por método, ruta y rango de status.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "seasafety_http_request_duration_seconds",
			Help:    "Latencia de las peticiones HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.movements, m.snapshotWrites, m.insights, m.criticalItems, m.httpRequests, m.httpLatency)
	return m
}

// Movement cuenta un movimiento aplicado o rechazado.
func (m *Metrics) Movement(movementType, result string) {
	if m == nil {
		return
	}
	m.movements.WithLabelValues(normalize(movementType), result).Inc()
}

// SnapshotWrite cuenta una escritura de snapshot.
func (m *Metrics) SnapshotWrite(result string) {
	if m == nil {
		return
	}
	m.snapshotWrites.WithLabelValues(result).Inc()
}

// Insight cuenta una solicitud de análisis.
func (m *Metrics) Insight(result string) {
	if m == nil {
		return
	}
	m.insights.WithLabelValues(result).Inc()
}

// SetCritical actualiza el número de items críticos.
func (m *Metrics) SetCritical(n int) {
	if m == nil {
		return
	}
	m.criticalItems.Set(float64(n))
}

// HTTPRequest registra una petición. route es el patrón de la ruta, no la URL.
func (m *Metrics) HTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, statusRange(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// statusRange agrupa el código en 2xx, 3xx, 4xx o 5xx.
func statusRange(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return strconv.Itoa(code/100) + "xx"
}

// normalize limita la cardinalidad de la etiqueta type.
func normalize(s string) string {
	switch s {
	case "IN", "OUT":
		return s
	}
	return "unknown"
}
