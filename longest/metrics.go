package longest

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchTotal counts finished searches by result
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trailmaze_search_total",
		Help: "Total longest-path searches by result",
	}, []string{"result"})

	// searchExpanded counts search-tree nodes expanded
	searchExpanded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trailmaze_search_expanded_nodes_total",
		Help: "Non-terminal search-tree nodes expanded across all searches",
	})

	// searchTasks counts goroutines spawned for fan-out
	searchTasks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trailmaze_search_tasks_total",
		Help: "Goroutines spawned by bounded-depth fan-out",
	})

	// searchDuration tracks wall-clock search time
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "trailmaze_search_duration_seconds",
		Help:    "Longest-path search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
	})
)

func observe(elapsed time.Duration, expanded, tasks int64, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	searchTotal.WithLabelValues(result).Inc()
	searchExpanded.Add(float64(expanded))
	searchTasks.Add(float64(tasks))
	searchDuration.Observe(elapsed.Seconds())
}
