package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Duration of persistent store operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "key"},
	)

	// Timer Metrics
	TimerTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "timer_transitions_total",
			Help: "Total number of focus timer state transitions",
		},
		[]string{"transition"}, // start, pause, resume, reset, save
	)

	// Advice Metrics
	AdviceRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advice_requests_total",
			Help: "Total number of coaching requests",
		},
		[]string{"status"}, // success, fallback, busy
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by component and reason",
		},
		[]string{"component", "reason"},
	)
)

// TrackStoreOperation times one persistent store operation.
func TrackStoreOperation(operation, key string) *prometheus.Timer {
	return prometheus.NewTimer(StoreOperationDuration.WithLabelValues(operation, key))
}

// TrackTimerTransition records a focus timer state change.
func TrackTimerTransition(transition string) {
	TimerTransitionsTotal.WithLabelValues(transition).Inc()
}

// TrackAdviceRequest records the outcome of a coaching request.
func TrackAdviceRequest(status string) {
	AdviceRequestsTotal.WithLabelValues(status).Inc()
}

// TrackError increments the error counter for a component.
func TrackError(component, reason string) {
	ErrorsTotal.WithLabelValues(component, reason).Inc()
}
