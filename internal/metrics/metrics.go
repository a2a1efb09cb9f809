package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Export Metrics
var (
	ExportRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExportRunsTotal,
			Help: HelpTextExportRunsTotal,
		},
		[]string{LabelResult},
	)

	ExportRowsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameExportRowsTotal,
			Help: HelpTextExportRowsTotal,
		},
	)

	ExportColumns = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameExportColumns,
			Help:    HelpTextExportColumns,
			Buckets: ColumnBuckets,
		},
	)

	CrewExcludedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCrewExcludedTotal,
			Help: HelpTextCrewExcludedTotal,
		},
		[]string{LabelReason},
	)
)

// Data Quality Metrics
var (
	LookupMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLookupMissesTotal,
			Help: HelpTextLookupMissesTotal,
		},
		[]string{LabelKind},
	)

	ProfileSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProfileSkippedTotal,
			Help: HelpTextProfileSkippedTotal,
		},
		[]string{LabelKind},
	)
)

// Catalog Metrics
var (
	CatalogCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogCacheTotal,
			Help: HelpTextCatalogCacheTotal,
		},
		[]string{LabelResult},
	)

	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: MetricNameCatalogLoadDuration,
			Help: HelpTextCatalogLoadDuration,
		},
	)
)
