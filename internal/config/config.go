package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned when a configuration value is out of range
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"crew-planner"`
	Version     string `env:"VERSION" envDefault:"dev"`

	CatalogDir       string        `env:"CATALOG_DIR" envDefault:"data/structured"`
	CatalogCacheSize int           `env:"CATALOG_CACHE_SIZE" envDefault:"8"`
	CatalogCacheTTL  time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"10m"`
	IncludeUnowned   bool          `env:"INCLUDE_UNOWNED" envDefault:"false"`
	OutputDir        string        `env:"OUTPUT_DIR" envDefault:"out"`
	MaxBodyBytes     int64         `env:"MAX_BODY_BYTES" envDefault:"10485760"`

	RateLimitRequests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"1000"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"5m"`
	TrustedProxies    []string      `env:"TRUSTED_PROXIES" envSeparator:","`

	EnvSchemaVersion string `env:"ENV_SCHEMA_VERSION"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
