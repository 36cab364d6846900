package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config holds all configuration for the application
type Config struct {
	// HTTP
	Port              int           `conf:"default:3000,env:PORT"`
	BodyLimitBytes    int64         `conf:"default:10240,env:BODY_LIMIT_BYTES"`
	RateLimitRequests int           `conf:"default:100,env:RATE_LIMIT_REQUESTS"`
	RateLimitWindow   time.Duration `conf:"default:15m,env:RATE_LIMIT_WINDOW"`
	ShutdownTimeout   time.Duration `conf:"default:30s,env:SHUTDOWN_TIMEOUT"`

	// CORS: comma-separated list of allowed origins; use * to allow all (dev only)
	CORSOrigin string `conf:"default:*,env:CORS_ORIGIN"`

	// Application
	LogLevel    string `conf:"default:info,enum:error|warn|info|debug,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|test|production,env:ENVIRONMENT"`

	// Observability
	ServiceName    string `conf:"default:storefront,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:1.0.0,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// IsProduction reports whether ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// IsTest reports whether ENVIRONMENT=test.
func (c *Config) IsTest() bool {
	return c.Environment == EnvTest
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ValidateForProduction enforces security requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if !cfg.IsProduction() {
		return nil
	}

	var errs []string

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	for _, origin := range strings.Split(cfg.CORSOrigin, ",") {
		if strings.TrimSpace(origin) == "*" {
			errs = append(errs, "CORS_ORIGIN must list explicit origins in production, not '*'")
			break
		}
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		errs = append(errs, fmt.Sprintf("PORT must be between 1 and 65535 (got %d)", cfg.Port))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
