// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, resolver, rate limit and logging

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Resolver contains fetch/extraction configuration
	Resolver ResolverConfig

	// RateLimit contains per-IP rate limit configuration
	RateLimit RateLimitConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// AllowedOrigins configures CORS; empty means allow all
	AllowedOrigins []string
}

// ResolverConfig holds resolver configuration
type ResolverConfig struct {
	// FetchTimeoutSeconds bounds connect, TLS and body transfer per fetch
	FetchTimeoutSeconds int

	// MaxBodyBytes caps how much of a response body is read
	MaxBodyBytes int64
}

// RateLimitConfig holds rate limit configuration
type RateLimitConfig struct {
	// Requests is the allowed requests per window per IP; 0 disables limiting
	Requests int

	// WindowSeconds is the rate limit window
	WindowSeconds int
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string

	// File, when set, routes logs to a rotated file instead of stdout
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8000"),
			AllowedOrigins: getEnvAsListOrDefault("ALLOWED_ORIGINS", nil),
		},
		Resolver: ResolverConfig{
			FetchTimeoutSeconds: getEnvAsIntOrDefault("FETCH_TIMEOUT", 10),
			MaxBodyBytes:        int64(getEnvAsIntOrDefault("MAX_BODY_BYTES", 5*1024*1024)),
		},
		RateLimit: RateLimitConfig{
			Requests:      getEnvAsIntOrDefault("RATE_LIMIT", 100),
			WindowSeconds: getEnvAsIntOrDefault("RATE_WINDOW", 60),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
			File:  getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault returns the environment variable split on commas,
// or a default
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Resolver.FetchTimeoutSeconds < 1 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	if c.Resolver.MaxBodyBytes < 1 {
		return errors.New("max body bytes must be positive")
	}

	if c.RateLimit.Requests < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.RateLimit.Requests > 0 && c.RateLimit.WindowSeconds < 1 {
		return errors.New("rate window must be at least 1 second when rate limiting is enabled")
	}

	return nil
}
