package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Export metric names
const (
	MetricNameExportRunsTotal     = "export_runs_total"
	MetricNameExportRowsTotal     = "export_rows_total"
	MetricNameExportColumns       = "export_demand_columns"
	MetricNameCrewExcludedTotal   = "export_crew_excluded_total"
	MetricNameLookupMissesTotal   = "catalog_lookup_misses_total"
	MetricNameProfileSkippedTotal = "profile_records_skipped_total"
	MetricNameCatalogCacheTotal   = "catalog_cache_requests_total"
	MetricNameCatalogLoadDuration = "catalog_load_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Export metric help text
const (
	HelpTextExportRunsTotal     = "Total number of export runs by outcome"
	HelpTextExportRowsTotal     = "Total number of equipment demand rows assembled"
	HelpTextExportColumns       = "Number of demand columns in the equipment table of each run"
	HelpTextCrewExcludedTotal   = "Total number of crew left out of the equipment table"
	HelpTextLookupMissesTotal   = "Total number of identity lookups that found no catalog entry"
	HelpTextProfileSkippedTotal = "Total number of invalid player save records skipped"
	HelpTextCatalogCacheTotal   = "Total number of catalog cache lookups by result"
	HelpTextCatalogLoadDuration = "Time spent loading the reference catalog from disk"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelKind   = "kind"
	LabelReason = "reason"
	LabelResult = "result"
)

// ============================================================================
// Label Values
// ============================================================================

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultHit     = "hit"
	ResultMiss    = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ColumnBuckets defines the histogram buckets for demand column counts
var ColumnBuckets = []float64{0, 10, 25, 50, 100, 200, 400, 800}
