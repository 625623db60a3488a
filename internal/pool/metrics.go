package pool

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// tasksSubmitted tracks accepted submissions.
	tasksSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newsagent_pool_tasks_submitted_total",
			Help: "Total number of tasks accepted by the worker pool",
		},
	)

	// tasksCompleted tracks finished tasks by outcome.
	tasksCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsagent_pool_tasks_completed_total",
			Help: "Total number of tasks completed by the worker pool",
		},
		[]string{"status"}, // "ok", "error"
	)

	// queueDepth tracks tasks waiting for a free worker.
	queueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "newsagent_pool_queue_depth",
			Help: "Number of accepted tasks waiting for a worker",
		},
	)

	// activeWorkers tracks tasks currently executing.
	activeWorkers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "newsagent_pool_active_workers",
			Help: "Number of workers currently executing a task",
		},
	)

	// taskDuration observes task execution time, not counting queue wait.
	taskDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "newsagent_pool_task_duration_seconds",
			Help:    "Task execution duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
