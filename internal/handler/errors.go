package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgUnknownSheet          = "Unknown sheet"
	ErrMsgWriteCSVFailed        = "Failed to write CSV"
)

// Health status values and messages
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"

	MsgCatalogUnavailable = "catalog could not be loaded"
)

// Log messages
const (
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgDecodeFailed    = "Failed to decode profile"
	LogMsgBuildFailed     = "Failed to build report"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgCSVFailed       = "Failed to stream CSV"
	LogMsgExportServed    = "Export served"
)

// Content types and export formats
const (
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv; charset=utf-8"

	FormatJSON = "json"
	FormatCSV  = "csv"
)
