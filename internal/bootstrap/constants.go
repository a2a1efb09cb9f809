package bootstrap

// Startup messages
const (
	LogMsgLoggingInitialized = "Logging initialized"
	LogMsgStarting           = "Starting crew planner"
	LogMsgConfigLoaded       = "Configuration loaded"
	LogMsgConfigWarning      = "Configuration warning"
	LogMsgCatalogPreloaded   = "Catalog preloaded"
	LogMsgCatalogPreloadFail = "Catalog preload failed, readiness will report unavailable"
)

// Error messages
const (
	ErrMsgSchemaValidatorFailed = "failed to compile schemas: %w"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgCatalogCacheCleared  = "Catalog cache cleared"
)
