// Package metrics provides Prometheus instrumentation for permrank.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ranking metrics.
var (
	RanksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "permrank_ranks_total",
		Help: "Total number of ranked strings.",
	}, []string{"status"})

	RankDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "permrank_rank_duration_seconds",
		Help:    "Duration of ranking one string in seconds.",
		Buckets: prometheus.ExponentialBuckets(0.000001, 4, 12),
	})

	InputLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "permrank_input_length_runes",
		Help:    "Length of ranked strings in runes.",
		Buckets: prometheus.LinearBuckets(5, 5, 10),
	})
)

// Task metrics.
var (
	ActiveTasks = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "permrank_active_tasks",
		Help: "Number of currently running ranking tasks.",
	})

	TasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "permrank_tasks_total",
		Help: "Total number of finished ranking tasks.",
	}, []string{"status"})
)

// HTTP metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "permrank_http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "permrank_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// Status returns label value for an operation result.
func Status(err error) string {
	if err != nil {
		return "error"
	}

	return "ok"
}
