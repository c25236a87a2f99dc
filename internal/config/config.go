// Package config provides configuration management for the greeting service.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yukselcoding/greeting-service/internal/greeting"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Greeting  GreetingConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	Version         string
}

// GreetingConfig holds the greeting template configuration
type GreetingConfig struct {
	Format string // Template with exactly one %s verb
}

// RateLimitConfig holds per-IP rate limits
type RateLimitConfig struct {
	Limit          int64         // General requests per period
	Period         time.Duration // General window
	GreetingLimit  int64         // Greeting requests per period
	GreetingPeriod time.Duration // Greeting window
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text or json
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			AllowedOrigins:  getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", "10s"),
			Version:         getEnv("APP_VERSION", "1.0.0"),
		},
		Greeting: GreetingConfig{
			Format: GetEnvOrFile("GREETING_FORMAT", greeting.DefaultFormat),
		},
		RateLimit: RateLimitConfig{
			Limit:          getEnvAsInt64("RATE_LIMIT", 100),
			Period:         getEnvAsDuration("RATE_LIMIT_PERIOD", "1m"),
			GreetingLimit:  getEnvAsInt64("GREETING_RATE_LIMIT", 60),
			GreetingPeriod: getEnvAsDuration("GREETING_RATE_LIMIT_PERIOD", "1m"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if err := greeting.ValidateFormat(c.Greeting.Format); err != nil {
		return fmt.Errorf("invalid GREETING_FORMAT: %w", err)
	}
	if c.RateLimit.Limit <= 0 || c.RateLimit.Period <= 0 {
		return errors.New("RATE_LIMIT and RATE_LIMIT_PERIOD must be positive")
	}
	if c.RateLimit.GreetingLimit <= 0 || c.RateLimit.GreetingPeriod <= 0 {
		return errors.New("GREETING_RATE_LIMIT and GREETING_RATE_LIMIT_PERIOD must be positive")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown LOG_LEVEL %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q", c.Log.Format)
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (s *ServerConfig) Addr() string {
	return ":" + s.Port
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt64 gets an environment variable as an integer or returns a default value
func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		defaultDuration, _ := time.ParseDuration(defaultValue)
		return defaultDuration
	}
	return value
}

// getEnvAsList splits a comma-separated environment variable
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var values []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
