package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/CrewPlanner_Go/internal/config"
	"github.com/osse101/CrewPlanner_Go/internal/logger"
)

// SetupLogger initializes the default logger from cfg and logs startup
// details, including configuration warnings
func SetupLogger(cfg *config.Config, w io.Writer) {
	// Source locations only in dev
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	), w)

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigLoaded,
		"port", cfg.Port,
		"catalog_dir", cfg.CatalogDir,
		"catalog_cache_size", cfg.CatalogCacheSize,
		"catalog_cache_ttl", cfg.CatalogCacheTTL,
		"include_unowned", cfg.IncludeUnowned)

	for _, warning := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "detail", warning)
	}
}
