// Package metrics holds the Prometheus collectors of the birips module.
// Collectors register with the default registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GridBuildsTotal counts grid builds by outcome ("ok", "error", "canceled").
	GridBuildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "birips_grid_builds_total",
		Help: "Total number of bigrade grid builds by outcome",
	}, []string{"status"})

	// GridBuildDurationSeconds measures wall time of a full grid build.
	GridBuildDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "birips_grid_build_duration_seconds",
		Help:    "Wall time of a bigrade grid build",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
	})

	// SubsetSize observes |S(a)| for every density threshold built.
	SubsetSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "birips_density_subset_size",
		Help:    "Number of points surviving a density threshold",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})

	// GeneratorsTotal counts generators placed into grid cells.
	GeneratorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "birips_generators_total",
		Help: "Total number of cycle generators placed into grid cells",
	})

	// CellsAssembledTotal counts module cells assembled.
	CellsAssembledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "birips_cells_assembled_total",
		Help: "Total number of module cells assembled",
	})

	// LogEntriesTotal counts log entries by level.
	LogEntriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "birips_log_entries_total",
		Help: "Total number of log entries by level",
	}, []string{"level"})
)
