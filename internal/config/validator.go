package config

import (
	"fmt"
	"os"

	"github.com/osse101/CrewPlanner_Go/internal/logger"
)

// ExpectedEnvSchemaVersion is the .env layout version the application expects
const ExpectedEnvSchemaVersion = "1.0"

var (
	validLogLevels = map[string]bool{
		logger.LogLevelDebug:   true,
		logger.LogLevelInfo:    true,
		logger.LogLevelWarn:    true,
		logger.LogLevelWarning: true,
		logger.LogLevelError:   true,
	}
	validLogFormats = map[string]bool{logger.LogFormatJSON: true, logger.LogFormatText: true}
)

// Validate checks that every value is usable
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: PORT must be between 1 and 65535, got %d", ErrInvalidConfig, c.Port)
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("%w: unknown LOG_LEVEL %q", ErrInvalidConfig, c.LogLevel)
	}
	if !validLogFormats[c.LogFormat] {
		return fmt.Errorf("%w: LOG_FORMAT must be json or text, got %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.CatalogDir == "" {
		return fmt.Errorf("%w: CATALOG_DIR must be set", ErrInvalidConfig)
	}
	if c.CatalogCacheSize < 1 {
		return fmt.Errorf("%w: CATALOG_CACHE_SIZE must be positive, got %d", ErrInvalidConfig, c.CatalogCacheSize)
	}
	if c.CatalogCacheTTL <= 0 {
		return fmt.Errorf("%w: CATALOG_CACHE_TTL must be positive, got %s", ErrInvalidConfig, c.CatalogCacheTTL)
	}
	if c.MaxBodyBytes < 1 {
		return fmt.Errorf("%w: MAX_BODY_BYTES must be positive, got %d", ErrInvalidConfig, c.MaxBodyBytes)
	}
	if c.RateLimitRequests < 1 {
		return fmt.Errorf("%w: RATE_LIMIT_REQUESTS must be positive, got %d", ErrInvalidConfig, c.RateLimitRequests)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("%w: RATE_LIMIT_WINDOW must be positive, got %s", ErrInvalidConfig, c.RateLimitWindow)
	}
	return nil
}

// Warnings returns non-critical issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if c.EnvSchemaVersion != "" && c.EnvSchemaVersion != ExpectedEnvSchemaVersion {
		warnings = append(warnings, fmt.Sprintf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, c.EnvSchemaVersion))
	}

	if info, err := os.Stat(c.CatalogDir); err != nil || !info.IsDir() {
		warnings = append(warnings, fmt.Sprintf("CATALOG_DIR %s is not a readable directory - readiness checks will fail until it is", c.CatalogDir))
	}

	return warnings
}
