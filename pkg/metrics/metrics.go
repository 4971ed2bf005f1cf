package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "salon"

// Metrics набор prometheus метрик сервиса.
// Все методы безопасны для nil-ресивера, чтобы выключенные метрики не требовали проверок.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbOpenConns     prometheus.Gauge
	dbInUseConns    prometheus.Gauge
	dbIdleConns     prometheus.Gauge
	dbWaitCount     prometheus.Gauge

	appointmentsTotal    *prometheus.CounterVec
	availabilityDegraded prometheus.Counter
}

// New создает и регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в указанном registerer
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests by route and status",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "query_duration_seconds",
			Help:        "Database call latency by operation",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "query_errors_total",
			Help:        "Failed database calls by operation",
			ConstLabels: labels,
		}, []string{"operation"}),
		dbOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "open_connections",
			Help:        "Open connections in the pool",
			ConstLabels: labels,
		}),
		dbInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "in_use_connections",
			Help:        "Connections currently in use",
			ConstLabels: labels,
		}),
		dbIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "idle_connections",
			Help:        "Idle connections in the pool",
			ConstLabels: labels,
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),
		appointmentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "booking",
			Name:        "appointments_total",
			Help:        "Appointment creation attempts by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
		availabilityDegraded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "booking",
			Name:        "availability_degraded_total",
			Help:        "Availability reads answered with the fallback schedule",
			ConstLabels: labels,
		}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbOpenConns,
		m.dbInUseConns,
		m.dbIdleConns,
		m.dbWaitCount,
		m.appointmentsTotal,
		m.availabilityDegraded,
	)

	return m
}

// ObserveHTTP записывает результат HTTP запроса
func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveDBQuery записывает длительность обращения к БД
func (m *Metrics) ObserveDBQuery(operation string, seconds float64, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(seconds)
	if err != nil {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetPoolStats обновляет метрики пула соединений
func (m *Metrics) SetPoolStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbOpenConns.Set(float64(stats.OpenConnections))
	m.dbInUseConns.Set(float64(stats.InUse))
	m.dbIdleConns.Set(float64(stats.Idle))
	m.dbWaitCount.Set(float64(stats.WaitCount))
}

// ObserveAppointment считает исход попытки записи (created, replayed, conflict, invalid, error)
func (m *Metrics) ObserveAppointment(outcome string) {
	if m == nil {
		return
	}
	m.appointmentsTotal.WithLabelValues(outcome).Inc()
}

// ObserveDegraded считает ответы доступности, построенные по запасному расписанию
func (m *Metrics) ObserveDegraded() {
	if m == nil {
		return
	}
	m.availabilityDegraded.Inc()
}
