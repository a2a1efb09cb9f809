package catalog

// ==================== Catalog File Names ====================

// Files read from a catalog directory
const (
	ItemsFileName          = "items.json"
	CrewFileName           = "crew.json"
	ShipSchematicsFileName = "ship_schematics.json"
)

// CatalogFiles lists every file a catalog directory must provide
var CatalogFiles = []string{ItemsFileName, CrewFileName, ShipSchematicsFileName}

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadCatalogFileFailed  = "failed to read catalog file %s: %w"
	ErrMsgParseCatalogFileFailed = "failed to parse catalog file %s: %w"
	ErrMsgSchemaValidationFailed = "schema validation failed for %s: %w"
	ErrMsgStatCatalogFileFailed  = "failed to stat catalog file %s: %w"
)

// Validation error message fragments
const (
	ErrMsgEmptySymbol = "has empty symbol"
)

// Format strings used with fmt.Errorf
const (
	// ErrFmtRecordAtIndexEmpty: kind, index
	ErrFmtRecordAtIndexEmpty = "%w: %s at index %d " + ErrMsgEmptySymbol
	// ErrFmtDuplicateSymbol: kind, symbol
	ErrFmtDuplicateSymbol = "%w: %s '%s'"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded    = "Catalog loaded"
	LogMsgCatalogCacheHit  = "Catalog served from cache"
	LogMsgCatalogReloading = "Catalog changed on disk, reloading"
)
