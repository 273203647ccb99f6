// Package metrics provides Prometheus metrics for the headcount service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the headcount service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Roster Metrics - Load and cache behavior
	rosterLoads        prometheus.Counter
	rosterLoadErrors   prometheus.Counter
	rosterCacheHits    prometheus.Counter
	rosterLoadDuration prometheus.Histogram
	rosterEmployees    prometheus.Gauge
	rosterRowsDropped  *prometheus.CounterVec

	// Scenario Metrics - What the dashboard is actually used for
	scenariosComputed prometheus.Counter
	scenarioErrors    prometheus.Counter
	scenarioDuration  prometheus.Histogram
	scenarioHeadcount prometheus.Gauge

	// Export Metrics
	exportsServed prometheus.Counter
	exportRows    prometheus.Histogram

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Enhanced Error Metrics - Detailed error tracking
	errorRateByComponent *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "headcount",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
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
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Roster Metrics - Load and cache behavior
	m.rosterLoads = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_loads_total",
		Help:      "Total number of roster CSV parses",
	})

	m.rosterLoadErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_load_errors_total",
		Help:      "Total number of failed roster loads",
	})

	m.rosterCacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_cache_hits_total",
		Help:      "Total number of reads served from the frozen roster cache",
	})

	m.rosterLoadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_load_duration_milliseconds",
		Help:      "Roster parse duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.rosterEmployees = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_employees",
		Help:      "Number of employees in the clean roster (business scale)",
	})

	m.rosterRowsDropped = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "roster_rows_dropped_total",
			Help:      "Total number of source rows dropped during cleaning, by reason",
		},
		[]string{"reason"},
	)

	// Scenario Metrics - Selection and summary pipeline
	m.scenariosComputed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scenarios_computed_total",
		Help:      "Total number of headcount scenarios computed",
	})

	m.scenarioErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scenario_errors_total",
		Help:      "Total number of scenario computation errors",
	})

	m.scenarioDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scenario_duration_milliseconds",
		Help:      "Scenario computation duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.scenarioHeadcount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scenario_last_headcount",
		Help:      "Headcount of the most recently computed scenario",
	})

	// Export Metrics
	m.exportsServed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "exports_served_total",
		Help:      "Total number of CSV exports served",
	})

	m.exportRows = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "export_rows",
		Help:      "Number of rows per served CSV export",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	})

	// HTTP Performance Metrics - User experience indicators
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds (user experience)",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	// Enhanced Error Metrics - Detailed error tracking
	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total number of errors by component",
		},
		[]string{"component", "error_type"},
	)

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
}

// Roster Metrics Functions.

// RecordRosterLoad increments the roster loads counter.
func RecordRosterLoad() {
	globalManager.rosterLoads.Inc()
}

// RecordRosterLoadError increments the roster load errors counter.
func RecordRosterLoadError() {
	globalManager.rosterLoadErrors.Inc()
}

// RecordRosterCacheHit increments the cache hits counter.
func RecordRosterCacheHit() {
	globalManager.rosterCacheHits.Inc()
}

// RecordRosterLoadDuration records roster parse duration in milliseconds.
func RecordRosterLoadDuration(durationMs float64) {
	globalManager.rosterLoadDuration.Observe(durationMs)
}

// UpdateRosterEmployees sets the clean roster size.
func UpdateRosterEmployees(count int) {
	globalManager.rosterEmployees.Set(float64(count))
}

// RecordRosterRowsDropped adds dropped rows for a cleaning reason.
func RecordRosterRowsDropped(reason string, count int) {
	globalManager.rosterRowsDropped.WithLabelValues(reason).Add(float64(count))
}

// Scenario Metrics Functions.

// RecordScenarioComputed increments the scenarios computed counter.
func RecordScenarioComputed() {
	globalManager.scenariosComputed.Inc()
}

// RecordScenarioError increments the scenario errors counter.
func RecordScenarioError() {
	globalManager.scenarioErrors.Inc()
}

// RecordScenarioDuration records scenario computation duration in milliseconds.
func RecordScenarioDuration(durationMs float64) {
	globalManager.scenarioDuration.Observe(durationMs)
}

// UpdateScenarioHeadcount sets the most recent scenario headcount.
func UpdateScenarioHeadcount(count int) {
	globalManager.scenarioHeadcount.Set(float64(count))
}

// Export Metrics Functions.

// RecordExportServed increments the exports counter and records the row count.
func RecordExportServed(rows int) {
	globalManager.exportsServed.Inc()
	globalManager.exportRows.Observe(float64(rows))
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Enhanced Error Metrics Functions.

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
