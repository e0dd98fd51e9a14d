// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8080"`

	// Database (PostgreSQL). Empty selects the in-memory store,
	// which matches how the app runs without a database in development.
	DatabaseURL string `env:"DATABASE_URL"`

	// Cache (Redis). Empty disables auth-endpoint rate limiting.
	RedisURL string `env:"REDIS_URL"`

	// Token signing
	JWTSecret string        `env:"JWT_SECRET,required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"168h"` // 7 days

	// Auth bypass: skips token verification for the listed path prefixes
	// and assigns a placeholder identity. Test/dev affordance only;
	// main refuses to start with this enabled in production.
	AuthBypassEnabled  bool   `env:"AUTH_BYPASS_ENABLED" envDefault:"false"`
	AuthBypassPrefixes string `env:"AUTH_BYPASS_PREFIXES" envDefault:"/api/trips,/api/itinerary,/api/accommodation,/api/expenses"`
	AuthBypassUserID   string `env:"AUTH_BYPASS_USER_ID" envDefault:"test-user-id"`

	// Admin accounts recognized regardless of the stored flag
	AdminEmails string `env:"ADMIN_EMAILS" envDefault:"admin@tripforge.io"`

	// Suggestion provider (Gemini)
	GeminiAPIKey   string        `env:"GEMINI_API_KEY"`
	GeminiModel    string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	SuggestRPS     float64       `env:"SUGGEST_RPS" envDefault:"1"`
	SuggestBurst   int           `env:"SUGGEST_BURST" envDefault:"2"`
	SuggestTimeout time.Duration `env:"SUGGEST_TIMEOUT" envDefault:"15s"`

	// SMTP for contact-form notifications (all empty = mail disabled)
	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`
	MailTo   string `env:"MAIL_TO"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Rate limiting for the auth endpoints (per IP)
	RateLimitAuthEnabled bool `env:"RATE_LIMIT_AUTH_ENABLED" envDefault:"true"`
	RateLimitAuthRPM     int  `env:"RATE_LIMIT_AUTH_RPM" envDefault:"10"`
	RateLimitAuthBurst   int  `env:"RATE_LIMIT_AUTH_BURST" envDefault:"5"`

	// CORS configuration
	// Comma-separated list of allowed origins (e.g., "https://example.com,https://app.example.com")
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:""`

	// Request body size limit in bytes (default 1MB)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// GetCORSAllowedOrigins parses the comma-separated origins string into a slice.
func (c *Config) GetCORSAllowedOrigins() []string {
	return splitCommaList(c.CORSAllowedOrigins)
}

// GetAuthBypassPrefixes parses the comma-separated bypass prefix list.
func (c *Config) GetAuthBypassPrefixes() []string {
	return splitCommaList(c.AuthBypassPrefixes)
}

// GetAdminEmails parses the comma-separated admin email list.
func (c *Config) GetAdminEmails() []string {
	return splitCommaList(c.AdminEmails)
}

func splitCommaList(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))

	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// Load parses environment variables and returns a Config.
// Returns an error if required variables are missing.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
