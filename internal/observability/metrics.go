// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Engine metrics
	EventsNormalized   prometheus.Counter
	InvalidTimestamps  prometheus.Counter
	SaleRecordsEmitted prometheus.Counter
	DustSalesDropped   prometheus.Counter
	OpenLots           prometheus.Gauge

	// Classification metrics
	SummariesBuilt        prometheus.Counter
	ClassifierFailures    prometheus.Counter
	TagsAssigned          *prometheus.CounterVec

	// Chart metrics
	ChartBundlesBuilt prometheus.Counter
	ChartBuildLatency *prometheus.HistogramVec

	// Pipeline metrics
	PipelineRunsTotal *prometheus.CounterVec
	PipelineDuration  *prometheus.HistogramVec

	// Database metrics
	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec

	// Health metrics
	LastSuccessfulPipeline prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "xrpl_money_flow"
	}

	return &Metrics{
		EventsNormalized: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "events_normalized_total",
			Help:      "Total number of raw rows normalized into events",
		}),
		InvalidTimestamps: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "invalid_timestamps_total",
			Help:      "Total number of events whose timestamp failed every parse format",
		}),
		SaleRecordsEmitted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "sale_records_emitted_total",
			Help:      "Total number of closed FIFO matches emitted as sale records",
		}),
		DustSalesDropped: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "dust_sales_dropped_total",
			Help:      "Total number of matches dropped below the dust threshold",
		}),
		OpenLots: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "open_lots",
			Help:      "Open purchase lots after the last processed batch",
		}),

		SummariesBuilt: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "classify",
			Name:      "summaries_built_total",
			Help:      "Total number of smart-money summaries built",
		}),
		ClassifierFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "classify",
			Name:      "classifier_failures_total",
			Help:      "Total number of classifications that returned empty tags after an internal failure",
		}),
		TagsAssigned: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "classify",
			Name:      "tags_assigned_total",
			Help:      "Total number of tags assigned by tag code",
		}, []string{"tag"}),

		ChartBundlesBuilt: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "charts",
			Name:      "bundles_built_total",
			Help:      "Total number of chart bundles built",
		}),
		ChartBuildLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "charts",
			Name:      "build_duration_seconds",
			Help:      "Chart bundle build duration by window",
			Buckets:   prometheus.DefBuckets,
		}, []string{"window"}),

		PipelineRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "runs_total",
			Help:      "Total number of pipeline runs by phase and status",
		}, []string{"phase", "status"}),
		PipelineDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "duration_seconds",
			Help:      "Pipeline phase duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"phase"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Database query duration by database and operation",
			Buckets:   prometheus.DefBuckets,
		}, []string{"database", "operation"}),
		DBQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_errors_total",
			Help:      "Total number of database query errors",
		}, []string{"database", "operation"}),

		LastSuccessfulPipeline: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "last_successful_pipeline_timestamp",
			Help:      "Unix timestamp of last successful pipeline run",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordSale increments the sale record counter.
func RecordSale() {
	DefaultMetrics.SaleRecordsEmitted.Inc()
}

// RecordTags records every assigned tag, or a classifier failure when the
// set is empty.
func RecordTags(tags []string) {
	if len(tags) == 0 {
		DefaultMetrics.ClassifierFailures.Inc()
		return
	}
	for _, tag := range tags {
		DefaultMetrics.TagsAssigned.WithLabelValues(tag).Inc()
	}
}

// RecordDBQuery records database query metrics.
func RecordDBQuery(database, operation string, seconds float64, err error) {
	DefaultMetrics.DBQueryDuration.WithLabelValues(database, operation).Observe(seconds)
	if err != nil {
		DefaultMetrics.DBQueryErrors.WithLabelValues(database, operation).Inc()
	}
}

// RecordPipelineRun records a pipeline run.
func RecordPipelineRun(phase, status string, durationSeconds float64) {
	DefaultMetrics.PipelineRunsTotal.WithLabelValues(phase, status).Inc()
	DefaultMetrics.PipelineDuration.WithLabelValues(phase).Observe(durationSeconds)
}
