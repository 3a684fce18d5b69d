// Package metrics provides Prometheus metrics for the sport-fit service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultNamespace = "sportfit"
	defaultSubsystem = "recommender"
)

// Manager owns every Prometheus collector exported by the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Recommendation metrics
	recommendRequests   prometheus.Counter
	invalidInputs       prometheus.Counter
	scoringLatency      prometheus.Histogram
	recommendations     *prometheus.CounterVec
	sportsPerRequest    prometheus.Histogram
	testResultsPerBatch prometheus.Histogram
	explainRequests     prometheus.Counter

	// Catalogue metrics
	catalogueSports  prometheus.Gauge
	catalogueMetrics prometheus.Gauge
	catalogueLoaded  prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// System metrics
	systemMemory     prometheus.Gauge
	systemGoroutines prometheus.Gauge
	systemGCPause    prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        defaultNamespace,
		subsystem:        defaultSubsystem,
		histogramBuckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.recommendRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "requests_total",
		Help:      "Total number of recommendation requests scored",
	})

	m.invalidInputs = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "invalid_input_total",
		Help:      "Total number of batches rejected as invalid input",
	})

	m.scoringLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_latency_milliseconds",
		Help:      "Time spent scoring one batch against the catalogue",
		Buckets:   m.histogramBuckets,
	})

	m.recommendations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "recommendations_total",
			Help:      "Recommendations returned, by sport and category",
		},
		[]string{"sport_id", "category"},
	)

	m.sportsPerRequest = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sports_per_request",
		Help:      "Number of sports included in one recommendation list",
		Buckets:   prometheus.LinearBuckets(0, 1, 13),
	})

	m.testResultsPerBatch = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "test_results_per_batch",
		Help:      "Number of test results submitted per batch",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	})

	m.explainRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "explain_requests_total",
		Help:      "Total number of per-sport score explanations served",
	})

	m.catalogueSports = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "catalogue",
		Name:      "sports",
		Help:      "Number of sport profiles in the loaded catalogue",
	})

	m.catalogueMetrics = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "catalogue",
		Name:      "metrics",
		Help:      "Number of distinct test metrics weighted by the catalogue",
	})

	m.catalogueLoaded = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "catalogue",
		Name:      "loaded_unix",
		Help:      "Unix timestamp of the last catalogue load",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route, method and status",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: "http",
			Name:      "request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorsByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "http",
			Name:      "errors_total",
			Help:      "HTTP error responses by route, method and error type",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemory = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_alloc_bytes",
		Help:      "Bytes of allocated heap objects",
	})

	m.systemGoroutines = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutines",
		Help:      "Number of live goroutines",
	})

	m.systemGCPause = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "gc_pause_avg_milliseconds",
		Help:      "Average GC pause since process start",
	})
}

// RecordRecommendRequest counts one scored batch of n test results.
func (m *Manager) RecordRecommendRequest(n int) {
	if !m.enabled {
		return
	}
	m.recommendRequests.Inc()
	m.testResultsPerBatch.Observe(float64(n))
}

// RecordInvalidInput counts one rejected batch.
func (m *Manager) RecordInvalidInput() {
	if m.enabled {
		m.invalidInputs.Inc()
	}
}

// RecordScoringLatency observes the time spent in the engine.
func (m *Manager) RecordScoringLatency(d time.Duration) {
	if m.enabled {
		m.scoringLatency.Observe(float64(d) / float64(time.Millisecond))
	}
}

// RecordRecommendation counts one returned sport.
func (m *Manager) RecordRecommendation(sportID, category string) {
	if m.enabled {
		m.recommendations.WithLabelValues(sportID, category).Inc()
	}
}

// RecordSportsPerRequest observes the length of one recommendation list.
func (m *Manager) RecordSportsPerRequest(n int) {
	if m.enabled {
		m.sportsPerRequest.Observe(float64(n))
	}
}

// RecordExplainRequest counts one explanation.
func (m *Manager) RecordExplainRequest() {
	if m.enabled {
		m.explainRequests.Inc()
	}
}

// UpdateCatalogue publishes the loaded catalogue's shape.
func (m *Manager) UpdateCatalogue(sports, metricCount int, loadedAt time.Time) {
	if !m.enabled {
		return
	}
	m.catalogueSports.Set(float64(sports))
	m.catalogueMetrics.Set(float64(metricCount))
	m.catalogueLoaded.Set(float64(loadedAt.Unix()))
}

// RecordHTTPRequest counts and times one HTTP request.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordHTTPError counts one HTTP error response.
func (m *Manager) RecordHTTPError(endpoint, method, errorType string) {
	if m.enabled {
		m.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func (m *Manager) UpdateSystemMemoryUsage(bytes uint64) {
	if m.enabled {
		m.systemMemory.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func (m *Manager) UpdateSystemGoroutineCount(n int) {
	if m.enabled {
		m.systemGoroutines.Set(float64(n))
	}
}

// RecordSystemGCPauseTime sets the average GC pause gauge.
func (m *Manager) RecordSystemGCPauseTime(ms float64) {
	if m.enabled {
		m.systemGCPause.Set(ms)
	}
}

// Package-level helpers delegate to the global manager.

// RecordRecommendRequest counts one scored batch of n test results.
func RecordRecommendRequest(n int) { globalManager.RecordRecommendRequest(n) }

// RecordInvalidInput counts one rejected batch.
func RecordInvalidInput() { globalManager.RecordInvalidInput() }

// RecordScoringLatency observes the time spent in the engine.
func RecordScoringLatency(d time.Duration) { globalManager.RecordScoringLatency(d) }

// RecordRecommendation counts one returned sport.
func RecordRecommendation(sportID, category string) {
	globalManager.RecordRecommendation(sportID, category)
}

// RecordSportsPerRequest observes the length of one recommendation list.
func RecordSportsPerRequest(n int) { globalManager.RecordSportsPerRequest(n) }

// RecordExplainRequest counts one explanation.
func RecordExplainRequest() { globalManager.RecordExplainRequest() }

// UpdateCatalogue publishes the loaded catalogue's shape.
func UpdateCatalogue(sports, metricCount int, loadedAt time.Time) {
	globalManager.UpdateCatalogue(sports, metricCount, loadedAt)
}

// RecordHTTPRequest counts and times one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// RecordHTTPError counts one HTTP error response.
func RecordHTTPError(endpoint, method, errorType string) {
	globalManager.RecordHTTPError(endpoint, method, errorType)
}

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) { globalManager.UpdateSystemMemoryUsage(bytes) }

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(n int) { globalManager.UpdateSystemGoroutineCount(n) }

// RecordSystemGCPauseTime sets the average GC pause gauge.
func RecordSystemGCPauseTime(ms float64) { globalManager.RecordSystemGCPauseTime(ms) }

// GetRegistry returns the registry the global manager writes to.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
