package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	SnapResolutionsTotal *prometheus.CounterVec
	SlotChangesTotal     *prometheus.CounterVec
	ActiveSessions       prometheus.Gauge
	DroppedIntervals     *prometheus.CounterVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections prometheus.Gauge
	DBInUseConns      prometheus.Gauge
	DBIdleConns       prometheus.Gauge
}

// New создает и регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		SnapResolutionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "timeline_snap_resolutions_total",
			Help:        "Finished drag gestures by outcome (committed, reverted, cancelled)",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		SlotChangesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "timeline_slot_changes_total",
			Help:        "Committed selection changes by source (auto, tap, drag)",
			ConstLabels: constLabels,
		}, []string{"source"}),

		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "timeline_active_sessions",
			Help:        "Number of open picker sessions",
			ConstLabels: constLabels,
		}),

		DroppedIntervals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "timeline_dropped_intervals_total",
			Help:        "Schedule intervals discarded as malformed input",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency by operation",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Failed database queries by operation",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Established connections, both in use and idle",
			ConstLabels: constLabels,
		}),

		DBInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Connections currently in use",
			ConstLabels: constLabels,
		}),

		DBIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle connections",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SnapResolutionsTotal,
		m.SlotChangesTotal,
		m.ActiveSessions,
		m.DroppedIntervals,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUseConns,
		m.DBIdleConns,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) SnapResolved(outcome string) {
	m.SnapResolutionsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SlotChanged(source string) {
	m.SlotChangesTotal.WithLabelValues(source).Inc()
}

func (m *Metrics) SessionOpened() {
	m.ActiveSessions.Inc()
}

func (m *Metrics) SessionClosed() {
	m.ActiveSessions.Dec()
}

func (m *Metrics) IntervalsDropped(operation string, count int) {
	if count <= 0 {
		return
	}
	m.DroppedIntervals.WithLabelValues(operation).Add(float64(count))
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetDBPoolStats обновляет состояние пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	m.DBOpenConnections.Set(float64(open))
	m.DBInUseConns.Set(float64(inUse))
	m.DBIdleConns.Set(float64(idle))
}
