package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "smc"

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbConnections   *prometheus.GaugeVec

	searchDuration   prometheus.Histogram
	searchCandidates prometheus.Histogram
	searchSlots      prometheus.Histogram
	travelEstimates  *prometheus.CounterVec
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry создает метрики и регистрирует их в указанном registry
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "query_errors_total",
			Help:        "Failed database queries",
			ConstLabels: labels,
		}, []string{"operation"}),
		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "connections",
			Help:        "Database connection pool state",
			ConstLabels: labels,
		}, []string{"state"}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "slots",
			Name:        "search_duration_seconds",
			Help:        "Duration of one slot search",
			ConstLabels: labels,
			Buckets:     []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5},
		}),
		searchCandidates: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "slots",
			Name:        "candidates_evaluated",
			Help:        "Candidate start times evaluated per search",
			ConstLabels: labels,
			Buckets:     prometheus.LinearBuckets(0, 16, 8),
		}),
		searchSlots: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "slots",
			Name:        "slots_returned",
			Help:        "Valid slots returned per search",
			ConstLabels: labels,
			Buckets:     prometheus.LinearBuckets(0, 8, 8),
		}),
		travelEstimates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "travel",
			Name:        "estimates_total",
			Help:        "Travel estimates by source (estimator, cache, fallback)",
			ConstLabels: labels,
		}, []string{"source"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbConnections,
		m.searchDuration,
		m.searchCandidates,
		m.searchSlots,
		m.travelEstimates,
	)
	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil && err != sql.ErrNoRows {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetDBStats обновляет состояние пула соединений
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	m.dbConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	m.dbConnections.WithLabelValues("idle").Set(float64(stats.Idle))
}

// ObserveSearch фиксирует результат одного поиска слотов
func (m *Metrics) ObserveSearch(duration time.Duration, candidates, slots int) {
	if m == nil {
		return
	}
	m.searchDuration.Observe(duration.Seconds())
	m.searchCandidates.Observe(float64(candidates))
	m.searchSlots.Observe(float64(slots))
}

// ObserveTravelEstimate фиксирует источник оценки времени в пути
func (m *Metrics) ObserveTravelEstimate(source string) {
	if m == nil {
		return
	}
	m.travelEstimates.WithLabelValues(source).Inc()
}
