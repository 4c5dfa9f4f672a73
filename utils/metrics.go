package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)

	// Database metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Domain metrics
	GoalOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goal_operations_total",
			Help: "Total number of goal operations",
		},
		[]string{"operation"}, // create, update, delete, complete, archive
	)

	TaskOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "task_operations_total",
			Help: "Total number of task operations",
		},
		[]string{"operation"}, // create, update, delete, complete, uncomplete
	)

	TaskCompletionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "task_completions_total",
			Help: "Total number of task completions",
		},
	)

	BlueprintAppliesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blueprint_applies_total",
			Help: "Total number of blueprint applications",
		},
	)

	// Authentication metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"status", "type"}, // success/failure, login/refresh/2fa
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_sessions_total",
			Help: "Total number of active sessions",
		},
	)

	// Error metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by category and kind",
		},
		[]string{"category", "kind"},
	)
)

// TrackDBOperation times a database operation; observe via the returned timer.
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

func TrackGoalOperation(operation string) {
	GoalOperationsTotal.WithLabelValues(operation).Inc()
}

func TrackTaskOperation(operation string) {
	TaskOperationsTotal.WithLabelValues(operation).Inc()
}

func TrackTaskCompletion() {
	TaskCompletionsTotal.Inc()
}

func TrackBlueprintApply() {
	BlueprintAppliesTotal.Inc()
}

func TrackAuthAttempt(status, authType string) {
	AuthAttempts.WithLabelValues(status, authType).Inc()
}

func UpdateActiveSessions(count float64) {
	ActiveSessions.Set(count)
}

func TrackError(category, kind string) {
	ErrorsTotal.WithLabelValues(category, kind).Inc()
}
