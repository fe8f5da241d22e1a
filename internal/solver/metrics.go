package solver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	startsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gridcover",
		Subsystem: "solver",
		Name:      "starts_total",
		Help:      "Searches seeded from a free cell",
	})

	expandedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gridcover",
		Subsystem: "solver",
		Name:      "states_expanded_total",
		Help:      "Search states entered past the memo prune",
	})

	prunedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gridcover",
		Subsystem: "solver",
		Name:      "states_pruned_total",
		Help:      "Search states cut by the memo prune",
	})

	bestUpdatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gridcover",
		Subsystem: "solver",
		Name:      "best_updates_total",
		Help:      "Best path replacements",
	})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "gridcover",
		Subsystem: "solver",
		Name:      "run_duration_seconds",
		Help:      "Wall time of a complete run",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
	})
)

// observe is called once per finished run so the recursion stays free of metric calls.
func observe(stats Stats, elapsed time.Duration) {
	startsTotal.Add(float64(stats.Starts))
	expandedTotal.Add(float64(stats.Expanded))
	prunedTotal.Add(float64(stats.Pruned))
	bestUpdatesTotal.Add(float64(stats.Improvements))
	runDuration.Observe(elapsed.Seconds())
}

// WriteMetrics writes the default registry, solver metrics included, to path in the
// Prometheus text format for the node exporter textfile collector.
func WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
