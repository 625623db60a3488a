package newswire

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// fetchesTotal tracks fetch attempts by outcome.
	fetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsagent_fetches_total",
			Help: "Total number of article fetches",
		},
		[]string{"status"}, // "ok", "canceled"
	)

	// fetchDuration observes wall-clock fetch time.
	fetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "newsagent_fetch_duration_seconds",
			Help:    "Article fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
