package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"skillbot/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObservePersistenceDuration(operation string, duration time.Duration)
	IncStorageErrors(operation string)
	IncSessionsLogged(minutes int)
	IncAchievementsAwarded(id string)
	IncBroadcastDeliveries(result string)
	SetUsersTotal(count int)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	persistenceDuration *prometheus.HistogramVec
	storageErrors       *prometheus.CounterVec
	sessionsLogged      prometheus.Counter
	minutesLogged       prometheus.Counter
	achievementsAwarded *prometheus.CounterVec
	broadcastDeliveries *prometheus.CounterVec
	usersTotal          prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(operation string, duration time.Duration) {
	m.persistenceDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncStorageErrors(operation string) {
	m.storageErrors.WithLabelValues(operation).Inc()
}

func (m *MetricsProvider) IncSessionsLogged(minutes int) {
	m.sessionsLogged.Inc()
	m.minutesLogged.Add(float64(minutes))
}

func (m *MetricsProvider) IncAchievementsAwarded(id string) {
	m.achievementsAwarded.WithLabelValues(id).Inc()
}

func (m *MetricsProvider) IncBroadcastDeliveries(result string) {
	m.broadcastDeliveries.WithLabelValues(result).Inc()
}

func (m *MetricsProvider) SetUsersTotal(count int) {
	m.usersTotal.Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "skillbot_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "skillbot_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "skillbot_cache_hits_total",
			Help: "Total number of idempotency cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "skillbot_cache_misses_total",
			Help: "Total number of idempotency cache misses",
		}),

		persistenceDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "skillbot_persistence_duration_seconds",
			Help:    "Duration of store load and save operations in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),

		storageErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "skillbot_storage_errors_total",
			Help: "Store operations that failed and were degraded",
		}, []string{"operation"}),

		sessionsLogged: promauto.NewCounter(prometheus.CounterOpts{
			Name: "skillbot_sessions_logged_total",
			Help: "Practice sessions logged",
		}),

		minutesLogged: promauto.NewCounter(prometheus.CounterOpts{
			Name: "skillbot_minutes_logged_total",
			Help: "Practice minutes logged",
		}),

		achievementsAwarded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "skillbot_achievements_awarded_total",
			Help: "Achievements awarded by id",
		}, []string{"achievement"}),

		broadcastDeliveries: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "skillbot_broadcast_deliveries_total",
			Help: "Broadcast deliveries by result",
		}, []string{"result"}),

		usersTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "skillbot_users_total",
			Help: "Number of known users",
		}),
	}
}

type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                     {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)     {}
func (n *noopMetrics) IncCacheHits()                                        {}
func (n *noopMetrics) IncCacheMisses()                                      {}
func (n *noopMetrics) ObservePersistenceDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncStorageErrors(_ string)                            {}
func (n *noopMetrics) IncSessionsLogged(_ int)                              {}
func (n *noopMetrics) IncAchievementsAwarded(_ string)                      {}
func (n *noopMetrics) IncBroadcastDeliveries(_ string)                      {}
func (n *noopMetrics) SetUsersTotal(_ int)                                  {}
