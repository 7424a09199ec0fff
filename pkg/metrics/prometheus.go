// Package metrics provides Prometheus metrics for the revintel scoring service.
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

// Manager manages all Prometheus metrics for the revintel service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Core Business Metrics - What really matters for a scoring service
	predictions       *prometheus.CounterVec
	predictionLatency *prometheus.HistogramVec
	leadTiers         *prometheus.CounterVec
	churnTiers        *prometheus.CounterVec
	conversionTiers   *prometheus.CounterVec

	// Operational Health Metrics
	predictionLogSize prometheus.Gauge
	driftWarning      prometheus.Gauge
	totalAccounts     prometheus.Gauge
	totalLeads        prometheus.Gauge

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec

	// Business Quality Metrics
	lookupErrors     *prometheus.CounterVec
	planGateRefusals prometheus.Counter
	predictionErrors *prometheus.CounterVec

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
		namespace:        "revintel",
		subsystem:        "predictions",
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

	// Core Business Metrics - Focus on what drives business value
	m.predictions = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "total",
			Help:      "Total number of predictions produced by type",
		},
		[]string{"prediction_type"},
	)

	m.predictionLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "latency_milliseconds",
			Help:      "Histogram of prediction latency in milliseconds by type",
			Buckets:   m.histogramBuckets,
		},
		[]string{"prediction_type"},
	)

	m.leadTiers = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "lead_tiers_total",
			Help:      "Lead score results by tier (hot/warm/cold)",
		},
		[]string{"tier"},
	)

	m.churnTiers = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "churn_tiers_total",
			Help:      "Churn risk results by tier (critical/high/medium/low)",
		},
		[]string{"tier"},
	)

	m.conversionTiers = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "conversion_tiers_total",
			Help:      "Conversion probability results by tier (high/medium/low)",
		},
		[]string{"tier"},
	)

	// Operational Health Metrics - System stability indicators
	m.predictionLogSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "log_size",
		Help:      "Current number of entries in the prediction log",
	})

	m.driftWarning = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "drift_warning",
		Help:      "1 when the prediction volume drift warning is active, 0 otherwise",
	})

	m.totalAccounts = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_accounts",
		Help:      "Total number of accounts in the record store (business scale)",
	})

	m.totalLeads = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_leads",
		Help:      "Total number of leads in the record store (business scale)",
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

	m.httpErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_errors_total",
			Help:      "Total number of HTTP error responses by endpoint and error type",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	// Business Quality Metrics - Error tracking for business impact
	m.lookupErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "lookup_errors_total",
			Help:      "Total number of record lookup failures by record type",
		},
		[]string{"record_type"},
	)

	m.planGateRefusals = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "plan_gate_refusals_total",
		Help:      "Conversion insight requests refused because the account is not on a trial plan",
	})

	m.predictionErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_total",
			Help:      "Total number of prediction errors by type (business impact)",
		},
		[]string{"prediction_type"},
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

// RecordPrediction increments the prediction counter for a type.
func RecordPrediction(predictionType string) {
	globalManager.predictions.WithLabelValues(predictionType).Inc()
}

// RecordPredictionLatency records prediction latency in milliseconds.
func RecordPredictionLatency(predictionType string, latencyMs float64) {
	globalManager.predictionLatency.WithLabelValues(predictionType).Observe(latencyMs)
}

// RecordLeadTier increments the lead tier counter.
func RecordLeadTier(tier string) {
	globalManager.leadTiers.WithLabelValues(tier).Inc()
}

// RecordChurnTier increments the churn risk tier counter.
func RecordChurnTier(tier string) {
	globalManager.churnTiers.WithLabelValues(tier).Inc()
}

// RecordConversionTier increments the conversion probability tier counter.
func RecordConversionTier(tier string) {
	globalManager.conversionTiers.WithLabelValues(tier).Inc()
}

// UpdatePredictionLogSize sets the current prediction log size.
func UpdatePredictionLogSize(size int) {
	globalManager.predictionLogSize.Set(float64(size))
}

// UpdateDriftWarning sets the drift warning flag.
func UpdateDriftWarning(active bool) {
	if active {
		globalManager.driftWarning.Set(1)
		return
	}
	globalManager.driftWarning.Set(0)
}

// UpdateTotalAccounts sets the total accounts count.
func UpdateTotalAccounts(count int) {
	globalManager.totalAccounts.Set(float64(count))
}

// UpdateTotalLeads sets the total leads count.
func UpdateTotalLeads(count int) {
	globalManager.totalLeads.Set(float64(count))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordHTTPError records an HTTP error response by endpoint and error type.
func RecordHTTPError(endpoint, method, errorType string) {
	globalManager.httpErrors.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordLookupError increments the lookup error counter for a record type.
func RecordLookupError(recordType string) {
	globalManager.lookupErrors.WithLabelValues(recordType).Inc()
}

// RecordPlanGateRefusal increments the plan gate refusal counter.
func RecordPlanGateRefusal() {
	globalManager.planGateRefusals.Inc()
}

// RecordPredictionError increments the prediction error counter for a type.
func RecordPredictionError(predictionType string) {
	globalManager.predictionErrors.WithLabelValues(predictionType).Inc()
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
