package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequestsTotal     *prometheus.CounterVec
	httpRequestDuration   *prometheus.HistogramVec
	conflictsDetected     *prometheus.CounterVec
	draftCleanupFailures  prometheus.Counter
	staleFetchesDiscarded prometheus.Counter
	depositFallbacks      prometheus.Counter
}

// New регистрирует метрики в DefaultRegisterer (вызывать один раз на процесс)
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewNop метрики, которые никуда не экспортируются
func NewNop() *Metrics {
	return NewWithRegisterer("nop", prometheus.NewRegistry())
}

// NewWithRegisterer регистрирует метрики в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		conflictsDetected: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_conflicts_detected_total",
			Help:        "Proposed intervals rejected by the conflict detector.",
			ConstLabels: constLabels,
		}, []string{"source"}),
		draftCleanupFailures: factory.NewCounter(prometheus.CounterOpts{
			Name:        "draft_cleanup_failures_total",
			Help:        "Draft records left behind after a successful conversion.",
			ConstLabels: constLabels,
		}),
		staleFetchesDiscarded: factory.NewCounter(prometheus.CounterOpts{
			Name:        "stale_fetches_discarded_total",
			Help:        "Booking snapshot fetches superseded by a newer one.",
			ConstLabels: constLabels,
		}),
		depositFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name:        "deposit_fallbacks_total",
			Help:        "Deposit quotes that used the default percentage.",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) IncConflict(source string) {
	m.conflictsDetected.WithLabelValues(source).Inc()
}

func (m *Metrics) IncDraftCleanupFailure() {
	m.draftCleanupFailures.Inc()
}

func (m *Metrics) IncStaleFetch() {
	m.staleFetchesDiscarded.Inc()
}

func (m *Metrics) IncDepositFallback() {
	m.depositFallbacks.Inc()
}
