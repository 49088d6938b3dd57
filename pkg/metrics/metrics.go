package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome результат перехода в сценарии бронирования
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDuration        *prometheus.HistogramVec
	flowTransitionsTotal       *prometheus.CounterVec
	reservationsCreatedTotal   *prometheus.CounterVec
	reservationsCancelledTotal prometheus.Counter
	activeSessions             prometheus.Gauge
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		flowTransitionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_flow_transitions_total",
			Help:        "Booking flow transitions by name and outcome",
			ConstLabels: labels,
		}, []string{"transition", "outcome"}),
		reservationsCreatedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Confirmed reservations by resource",
			ConstLabels: labels,
		}, []string{"resource_id"}),
		reservationsCancelledTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "reservations_cancelled_total",
			Help:        "Cancelled reservations",
			ConstLabels: labels,
		}),
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "booking_sessions_active",
			Help:        "Number of live booking sessions",
			ConstLabels: labels,
		}),
	}
}

// Методы безопасно вызывать на nil: метрики отключены в конфиге
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) IncFlowTransition(transition, outcome string) {
	if m == nil {
		return
	}
	m.flowTransitionsTotal.WithLabelValues(transition, outcome).Inc()
}

func (m *Metrics) IncReservationCreated(resourceID string) {
	if m == nil {
		return
	}
	m.reservationsCreatedTotal.WithLabelValues(resourceID).Inc()
}

func (m *Metrics) IncReservationCancelled() {
	if m == nil {
		return
	}
	m.reservationsCancelledTotal.Inc()
}

func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}
