// Package config provides environment-based configuration with
// defaults, validated at startup so misconfiguration fails fast.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// Config holds all service configuration.
type Config struct {
	Server  ServerConfig
	Upload  UploadConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (SHEETCAST_HOST, default 0.0.0.0).
	Host string
	// Port is the port to listen on (SHEETCAST_PORT, default 8080).
	Port int
	// ReadTimeout bounds reading the request body (SHEETCAST_READ_TIMEOUT, default 30s).
	ReadTimeout time.Duration
	// WriteTimeout bounds writing the response (SHEETCAST_WRITE_TIMEOUT, default 30s).
	WriteTimeout time.Duration
	// IdleTimeout is the keep-alive timeout (SHEETCAST_IDLE_TIMEOUT, default 60s).
	IdleTimeout time.Duration
	// ShutdownTimeout bounds graceful shutdown (SHEETCAST_SHUTDOWN_TIMEOUT, default 15s).
	ShutdownTimeout time.Duration
	// RequestTimeout is the per-request middleware timeout
	// (SHEETCAST_REQUEST_TIMEOUT, default 60s).
	RequestTimeout time.Duration
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// UploadConfig holds conversion upload settings.
type UploadConfig struct {
	// MaxFileSize is the largest accepted upload in bytes
	// (SHEETCAST_MAX_FILE_SIZE, default 50MB).
	MaxFileSize int64
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (SHEETCAST_LOG_LEVEL, default info).
	Level string
	// Format is "text" or "json" (SHEETCAST_LOG_FORMAT, default text).
	Format string
}

// Load reads configuration from environment variables, applying
// defaults for unset values, and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:            envString("SHEETCAST_HOST", "0.0.0.0"),
			Port:            envInt("SHEETCAST_PORT", 8080),
			ReadTimeout:     envDuration("SHEETCAST_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    envDuration("SHEETCAST_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     envDuration("SHEETCAST_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: envDuration("SHEETCAST_SHUTDOWN_TIMEOUT", 15*time.Second),
			RequestTimeout:  envDuration("SHEETCAST_REQUEST_TIMEOUT", 60*time.Second),
		},
		Upload: UploadConfig{
			MaxFileSize: envInt64("SHEETCAST_MAX_FILE_SIZE", 50<<20),
		},
		Logging: LoggingConfig{
			Level:  envString("SHEETCAST_LOG_LEVEL", "info"),
			Format: envString("SHEETCAST_LOG_FORMAT", "text"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate checks settings for consistency.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Server.Port)
	}
	if c.Upload.MaxFileSize < 1 {
		return fmt.Errorf("max file size must be positive, got %d", c.Upload.MaxFileSize)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
