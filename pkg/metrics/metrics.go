package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса (HTTP + БД)
type Metrics struct {
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec

	dbQueriesTotal *prometheus.CounterVec
	dbDuration     *prometheus.HistogramVec

	dbOpenConns  *prometheus.GaugeVec
	dbIdleConns  *prometheus.GaugeVec
	dbInUseConns *prometheus.GaugeVec
}

// New создает и регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "scheduling",
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests by method, path and status code",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   "scheduling",
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"method", "path"}),
		dbQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "scheduling",
			Subsystem:   "db",
			Name:        "queries_total",
			Help:        "Total database queries by operation and result",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"operation", "result"}),
		dbDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   "scheduling",
			Subsystem:   "db",
			Name:        "query_duration_seconds",
			Help:        "Database query duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"operation"}),
		dbOpenConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   "scheduling",
			Subsystem:   "db",
			Name:        "open_connections",
			Help:        "Number of open database connections",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"state"}),
		dbIdleConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   "scheduling",
			Subsystem:   "db",
			Name:        "idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"state"}),
		dbInUseConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   "scheduling",
			Subsystem:   "db",
			Name:        "in_use_connections",
			Help:        "Number of database connections currently in use",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"state"}),
	}

	prometheus.MustRegister(
		m.httpRequestsTotal,
		m.httpDuration,
		m.dbQueriesTotal,
		m.dbDuration,
		m.dbOpenConns,
		m.dbIdleConns,
		m.dbInUseConns,
	)

	return m
}

// ObserveHTTPRequest фиксирует выполненный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.dbQueriesTotal.WithLabelValues(operation, result).Inc()
	m.dbDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет gauge-метрики пула соединений
func (m *Metrics) SetDBPoolStats(open, idle, inUse int) {
	if m == nil {
		return
	}
	m.dbOpenConns.WithLabelValues("open").Set(float64(open))
	m.dbIdleConns.WithLabelValues("idle").Set(float64(idle))
	m.dbInUseConns.WithLabelValues("in_use").Set(float64(inUse))
}
