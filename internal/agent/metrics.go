package agent

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// researchRuns tracks research runs by outcome and mode.
	researchRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsagent_research_runs_total",
			Help: "Total number of research runs",
		},
		[]string{"mode", "status"}, // mode: "hybrid", "sequential"; status: "ok", "error"
	)

	// researchDuration observes end-to-end run duration per mode.
	researchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsagent_research_duration_seconds",
			Help:    "End-to-end research run duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)

	// articlesProcessed counts articles that made it through both phases.
	articlesProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newsagent_articles_processed_total",
			Help: "Total number of articles fetched and analyzed successfully",
		},
	)
)
