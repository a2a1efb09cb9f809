package report

// Error messages
const (
	ErrMsgNilProfile        = "profile is nil"
	ErrMsgLoadCatalogFailed = "%w: failed to load catalog: %w"
)

// Log messages
const (
	LogMsgCatalogUnavailable = "Catalog unavailable for report"
	LogMsgReportBuilt        = "Report built"
)
