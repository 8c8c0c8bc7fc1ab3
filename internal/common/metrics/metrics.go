package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	Namespace = "productif_notifier"

	SchedulerSubsystem = "scheduler"
	WatcherSubsystem   = "watcher"
	WatchdogSubsystem  = "watchdog"
	BridgeSubsystem    = "bridge"
	HTTPSubsystem      = "http"
	StorageSubsystem   = "storage"
)

// Метрики планировщика.
var (
	LiveHandles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: SchedulerSubsystem,
			Name:      "live_handles",
			Help:      "Number of live per-user trigger handles",
		},
	)

	TriggerFirings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: SchedulerSubsystem,
			Name:      "trigger_firings_total",
			Help:      "Total number of per-user trigger firings",
		},
		[]string{"checkin_type"},
	)

	InstallErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: SchedulerSubsystem,
			Name:      "install_errors_total",
			Help:      "Total number of failed per-user installs",
		},
	)
)

// Метрики наблюдателя изменений.
var (
	WatcherCycles = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: WatcherSubsystem,
			Name:      "cycles_total",
			Help:      "Total number of completed watcher poll cycles",
		},
	)

	WatcherDriftDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: WatcherSubsystem,
			Name:      "drift_detected_total",
			Help:      "Total number of out-of-band changes detected",
		},
		[]string{"kind"},
	)
)

// Метрики сторожа сессий.
var (
	SessionTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: WatchdogSubsystem,
			Name:      "session_transitions_total",
			Help:      "Total number of session actions raised by the watchdog",
		},
		[]string{"action"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: WatchdogSubsystem,
			Name:      "active_sessions",
			Help:      "Number of active focus sessions at last scan",
		},
	)
)

// Метрики моста.
var (
	QueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: BridgeSubsystem,
			Name:      "queue_depth",
			Help:      "Current depth of the action queue",
		},
	)

	DeliveryOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BridgeSubsystem,
			Name:      "delivery_outcomes_total",
			Help:      "Total number of delivery attempts by outcome",
		},
		[]string{"channel", "outcome"},
	)

	DroppedActions = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BridgeSubsystem,
			Name:      "dropped_actions_total",
			Help:      "Total number of actions dropped due to queue overflow",
		},
	)
)

// Метрики хранилища.
var (
	DatabaseQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: StorageSubsystem,
			Name:      "database_queries_total",
			Help:      "Total number of database queries",
		},
		[]string{"operation", "status"},
	)

	DatabaseQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: StorageSubsystem,
			Name:      "database_query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// Метрики операторского API.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: HTTPSubsystem,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: HTTPSubsystem,
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

func RecordDatabaseQuery(operation string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}

	DatabaseQueriesTotal.WithLabelValues(operation, status).Inc()
	DatabaseQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := "success"
	if statusCode >= 400 {
		status = "error"
	}

	HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}
