// Package metrics provides Prometheus metrics for the race results service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultRefreshInterval = 10 * time.Second

// Manager owns every Prometheus collector of the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Query metrics
	searches          *prometheus.CounterVec
	searchResults     prometheus.Histogram
	analyses          prometheus.Counter
	analysisErrors    *prometheus.CounterVec
	podiumBuilds      prometheus.Counter
	filterQueries     prometheus.Counter
	filterResults     prometheus.Histogram
	queryLatency      *prometheus.HistogramVec
	integrityFailures *prometheus.CounterVec

	// Dataset metrics
	datasetRunners    prometheus.Gauge
	datasetCategories prometheus.Gauge
	datasetLoadedAt   prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec
	errorsByType        *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // registry without default Go collectors

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "racelens",
		subsystem:        "results",
		histogramBuckets: prometheus.DefBuckets,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// RefreshInterval is how often gauges fed by background updaters refresh.
func (m *Manager) RefreshInterval() time.Duration { return m.refreshInterval }

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)
	counter := func(name, help string) prometheus.Counter {
		return auto.NewCounter(prometheus.CounterOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return auto.NewGauge(prometheus.GaugeOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help})
	}

	m.searches = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "searches_total",
		Help:      "Runner name searches by outcome (empty, match, no_match)",
	}, []string{"outcome"})

	m.searchResults = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_results",
		Help:      "Number of suggestions returned per search",
		Buckets:   []float64{0, 1, 2, 3, 5, 10},
	})

	m.analyses = counter("analyses_total", "Runner analyses computed")

	m.analysisErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analysis_errors_total",
		Help:      "Runner analyses that failed on malformed data, by reason",
	}, []string{"reason"})

	m.podiumBuilds = counter("podium_builds_total", "Podium boards built")
	m.filterQueries = counter("filter_queries_total", "Full-results table queries")

	m.filterResults = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "filter_results",
		Help:      "Rows returned per results table query",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 7),
	})

	m.queryLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "query_latency_milliseconds",
		Help:      "Latency of domain queries in milliseconds",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50},
	}, []string{"query"})

	m.integrityFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "integrity_violations_total",
		Help:      "Dataset invariant violations found at load, by rule",
	}, []string{"rule"})

	m.datasetRunners = gauge("dataset_runners", "Runners in the loaded dataset")
	m.datasetCategories = gauge("dataset_categories", "Distinct normalized categories in the loaded dataset")
	m.datasetLoadedAt = gauge("dataset_loaded_timestamp_seconds", "Unix time the dataset was loaded")

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint and method",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.errorsByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "HTTP errors by endpoint, method and type",
	}, []string{"endpoint", "method", "error_type"})

	m.errorsByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_type_total",
		Help:      "HTTP errors by type and severity",
	}, []string{"error_type", "severity"})

	m.systemMemoryUsage = gauge("system_memory_usage_bytes", "System memory usage in bytes")
	m.systemGoroutineCount = gauge("system_goroutine_count", "Number of goroutines")

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
}

// Search outcomes.
const (
	SearchEmpty   = "empty"
	SearchMatch   = "match"
	SearchNoMatch = "no_match"
)

// RecordSearch records one search and its suggestion count.
func RecordSearch(outcome string, results int) {
	globalManager.searches.WithLabelValues(outcome).Inc()
	if outcome != SearchEmpty {
		globalManager.searchResults.Observe(float64(results))
	}
}

// RecordAnalysis increments the analyses counter.
func RecordAnalysis() {
	globalManager.analyses.Inc()
}

// RecordAnalysisError records a failed analysis.
func RecordAnalysisError(reason string) {
	globalManager.analysisErrors.WithLabelValues(reason).Inc()
}

// RecordPodiumBuild increments the podium builds counter.
func RecordPodiumBuild() {
	globalManager.podiumBuilds.Inc()
}

// RecordFilterQuery records a results-table query and its row count.
func RecordFilterQuery(rows int) {
	globalManager.filterQueries.Inc()
	globalManager.filterResults.Observe(float64(rows))
}

// RecordQueryLatency records a domain query latency in milliseconds.
func RecordQueryLatency(query string, latencyMs float64) {
	globalManager.queryLatency.WithLabelValues(query).Observe(latencyMs)
}

// RecordIntegrityViolation counts one dataset invariant violation.
func RecordIntegrityViolation(rule string) {
	globalManager.integrityFailures.WithLabelValues(rule).Inc()
}

// UpdateDataset sets the dataset gauges after a load.
func UpdateDataset(runners, categories int, loadedAt time.Time) {
	globalManager.datasetRunners.Set(float64(runners))
	globalManager.datasetCategories.Set(float64(categories))
	globalManager.datasetLoadedAt.Set(float64(loadedAt.Unix()))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorsByType.WithLabelValues(errorType, severity).Inc()
}

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
