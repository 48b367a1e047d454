// Package metrics provides Prometheus metrics for swimreports runs.
//
// The tool is a one-shot batch process, so nothing is scraped; counters
// accumulate during a run and Snapshot gathers them for the end-of-run
// summary log line.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for a run.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// Ingest metrics - data quality of the CSV exports
	recordsParsed  prometheus.Counter
	recordsSkipped *prometheus.CounterVec

	// Pipeline metrics - what the run produced
	ribbonsAwarded prometheus.Counter
	pagesLaidOut   prometheus.Counter
	reportsWritten *prometheus.CounterVec

	// Run timing
	stageDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager()
}

// NewManager creates a new metrics manager with default configuration.
// Each manager carries its own registry so runs and tests stay isolated.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "swimreports",
		subsystem:        "run",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.recordsParsed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_parsed_total",
		Help:      "Total number of swim records parsed from input CSVs",
	})

	m.recordsSkipped = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "records_skipped_total",
			Help:      "Total number of input records excluded, by reason",
		},
		[]string{"reason"},
	)

	m.ribbonsAwarded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ribbons_awarded_total",
		Help:      "Total number of black ribbons awarded",
	})

	m.pagesLaidOut = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pages_laid_out_total",
		Help:      "Total number of label sheet pages laid out",
	})

	m.reportsWritten = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "reports_written_total",
			Help:      "Total number of output artifacts written, by kind",
		},
		[]string{"kind"},
	)

	m.stageDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "stage_duration_seconds",
			Help:      "Duration of each pipeline stage in seconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"stage"},
	)
}

// RecordParsed counts records successfully parsed from input.
func (m *Manager) RecordParsed(n int) {
	m.recordsParsed.Add(float64(n))
}

// RecordSkipped counts excluded input records by reason.
func (m *Manager) RecordSkipped(reason string, n int) {
	m.recordsSkipped.WithLabelValues(reason).Add(float64(n))
}

// RecordRibbons counts awarded ribbons.
func (m *Manager) RecordRibbons(n int) {
	m.ribbonsAwarded.Add(float64(n))
}

// RecordPages counts laid-out label pages.
func (m *Manager) RecordPages(n int) {
	m.pagesLaidOut.Add(float64(n))
}

// RecordReport counts one written output artifact of the given kind.
func (m *Manager) RecordReport(kind string) {
	m.reportsWritten.WithLabelValues(kind).Inc()
}

// ObserveStage records the duration of a pipeline stage in seconds.
func (m *Manager) ObserveStage(stage string, seconds float64) {
	m.stageDuration.WithLabelValues(stage).Observe(seconds)
}

// Snapshot gathers the current counter values as a flat name -> value map
// for the end-of-run summary.
func (m *Manager) Snapshot() (map[string]float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrObserveFailed, err)
	}

	out := make(map[string]float64)
	for _, fam := range families {
		for _, metric := range fam.GetMetric() {
			name := fam.GetName()
			for _, label := range metric.GetLabel() {
				name += "{" + label.GetName() + "=" + label.GetValue() + "}"
			}
			switch {
			case metric.GetCounter() != nil:
				out[name] = metric.GetCounter().GetValue()
			case metric.GetHistogram() != nil:
				out[name] = metric.GetHistogram().GetSampleSum()
			}
		}
	}
	return out, nil
}

// Package-level helpers operating on the global manager.

func RecordParsed(n int)                         { globalManager.RecordParsed(n) }
func RecordSkipped(reason string, n int)         { globalManager.RecordSkipped(reason, n) }
func RecordRibbons(n int)                        { globalManager.RecordRibbons(n) }
func RecordPages(n int)                          { globalManager.RecordPages(n) }
func RecordReport(kind string)                   { globalManager.RecordReport(kind) }
func ObserveStage(stage string, seconds float64) { globalManager.ObserveStage(stage, seconds) }
func Snapshot() (map[string]float64, error)      { return globalManager.Snapshot() }
