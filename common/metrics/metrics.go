// Package metrics provides Prometheus metrics for shell sessions.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shell_commands_total",
			Help: "Total number of executed commands",
		},
		[]string{"verb"},
	)

	commandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shell_command_duration_seconds",
			Help:    "Command execution duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"verb"},
	)

	sessionLogFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shell_session_log_failures_total",
			Help: "Total number of failed session log appends",
		},
	)

	indexEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shell_index_entries",
			Help: "Number of entries in the loaded archive index",
		},
	)

	queueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shell_queue_depth",
			Help: "Number of commands waiting in the command queue",
		},
	)
)

// RecordCommand records one executed command.
func RecordCommand(verb string, duration time.Duration) {
	commandsTotal.WithLabelValues(verb).Inc()
	commandDuration.WithLabelValues(verb).Observe(duration.Seconds())
}

// RecordSessionLogFailure records a failed session log append.
func RecordSessionLogFailure() {
	sessionLogFailures.Inc()
}

// SetIndexEntries sets the size of the loaded index.
func SetIndexEntries(n int) {
	indexEntries.Set(float64(n))
}

// SetQueueDepth sets the number of queued commands.
func SetQueueDepth(n int) {
	queueDepth.Set(float64(n))
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
