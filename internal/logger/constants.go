package logger

// Level names accepted by LOG_LEVEL
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Output formats accepted by LOG_FORMAT
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Defaults for the attributes stamped on every record
const (
	DefaultServiceName    = "crew-planner"
	DefaultVersion        = "dev"
	ProductionVersion     = "1.0.0"
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
)

// Attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
