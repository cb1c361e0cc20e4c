// Package metrics exposes a process-global Prometheus registry and the
// counters/histograms the engine publishes to it (cache hits and misses
// included, counted by the engine around each cache probe).
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry is the process-wide Prometheus registry. A dedicated registry
// (rather than prometheus.DefaultRegisterer) keeps repeated engine
// construction in tests from panicking on duplicate registration.
var Registry *prometheus.Registry

var (
	FilesAnalyzed prometheus.Counter
	CacheHits     prometheus.Counter
	CacheMisses   prometheus.Counter
	RuleErrors    prometheus.Counter
	ParseErrors   prometheus.Counter
	AnalyzeTime   prometheus.Histogram
)

func init() {
	Reset()
}

// Reset rebuilds Registry and re-registers all collectors. Exported for
// tests that construct multiple engines in the same process.
func Reset() {
	Registry = prometheus.NewRegistry()

	FilesAnalyzed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "solguard_files_analyzed_total",
		Help: "Total number of files analyzed.",
	})
	CacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "solguard_cache_hits_total",
		Help: "Total number of cache probes that hit.",
	})
	CacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "solguard_cache_misses_total",
		Help: "Total number of cache probes that missed.",
	})
	RuleErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "solguard_rule_errors_total",
		Help: "Total number of rule.Analyze calls that failed.",
	})
	ParseErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "solguard_parse_errors_total",
		Help: "Total number of files that failed to parse.",
	})
	AnalyzeTime = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "solguard_analyze_file_seconds",
		Help: "Time spent analyzing a single file.",
	})

	Registry.MustRegister(FilesAnalyzed, CacheHits, CacheMisses, RuleErrors, ParseErrors, AnalyzeTime)
}
