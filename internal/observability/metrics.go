package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ParsingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "displaylint_parsing_seconds",
		Help:    "Time spent parsing a source file.",
		Buckets: prometheus.DefBuckets,
	}, []string{"language"})

	LintDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "displaylint_pass_seconds",
		Help:    "Time spent on one lint pass over all files.",
		Buckets: prometheus.DefBuckets,
	})

	FilesScanned = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "displaylint_files_scanned",
		Help: "Number of files covered by the most recent lint pass.",
	})

	ParseFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "displaylint_parse_failures_total",
		Help: "Total number of files that failed to parse.",
	})

	DiagnosticsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "displaylint_diagnostics_total",
		Help: "Total number of diagnostics reported, by rule.",
	}, []string{"rule"})

	LintRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "displaylint_runs_total",
		Help: "Total number of completed lint passes.",
	})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "displaylint_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})
)
