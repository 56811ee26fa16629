package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rezkam/hostitask/internal/env"
)

// ServerConfig holds all configuration for the server binary.
type ServerConfig struct {
	HTTP            HTTPConfig
	Task            TaskConfig
	Chat            ChatConfig
	Observability   ObservabilityConfig
	ShutdownTimeout time.Duration `env:"HOSTITASK_SHUTDOWN_TIMEOUT" default:"10s"`
}

// HTTPConfig holds HTTP server configuration.
// Zero values fall back to the server's defaults.
type HTTPConfig struct {
	Host              string        `env:"HOSTITASK_HTTP_HOST"`
	Port              string        `env:"HOSTITASK_HTTP_PORT" default:"8081"`
	ReadTimeout       time.Duration `env:"HOSTITASK_HTTP_READ_TIMEOUT"`
	WriteTimeout      time.Duration `env:"HOSTITASK_HTTP_WRITE_TIMEOUT"`
	IdleTimeout       time.Duration `env:"HOSTITASK_HTTP_IDLE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `env:"HOSTITASK_HTTP_READ_HEADER_TIMEOUT"`
	MaxHeaderBytes    int           `env:"HOSTITASK_HTTP_MAX_HEADER_BYTES"`
	MaxBodyBytes      int64         `env:"HOSTITASK_HTTP_MAX_BODY_BYTES"`
}

// Validate implements env.Validator.
func (c *HTTPConfig) Validate() error {
	if c.Port == "" {
		return nil
	}
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("HOSTITASK_HTTP_PORT must be a number between 0 and 65535, got %q", c.Port)
	}
	return nil
}

// TaskConfig holds task store configuration.
type TaskConfig struct {
	// SeedSampleTasks preloads the five demo tasks shown on a fresh dashboard.
	SeedSampleTasks bool `env:"HOSTITASK_SEED_SAMPLE_TASKS"`
}

// ChatConfig holds quick chat timing and capacity.
type ChatConfig struct {
	ReplyDelay  time.Duration `env:"HOSTITASK_CHAT_REPLY_DELAY" default:"2s"`
	CloseDelay  time.Duration `env:"HOSTITASK_CHAT_CLOSE_DELAY" default:"2s"`
	MaxSessions int           `env:"HOSTITASK_CHAT_MAX_SESSIONS" default:"1000"`
}

// Validate implements env.Validator.
func (c *ChatConfig) Validate() error {
	if c.ReplyDelay < 0 || c.CloseDelay < 0 {
		return errors.New("HOSTITASK_CHAT_REPLY_DELAY and HOSTITASK_CHAT_CLOSE_DELAY must not be negative")
	}
	if c.MaxSessions < 1 {
		return fmt.Errorf("HOSTITASK_CHAT_MAX_SESSIONS must be at least 1, got %d", c.MaxSessions)
	}
	return nil
}

// ObservabilityConfig holds observability configuration.
type ObservabilityConfig struct {
	OTelEnabled bool   `env:"HOSTITASK_OTEL_ENABLED"`
	ServiceName string `env:"OTEL_SERVICE_NAME"`
}

// Validate implements env.Validator.
func (c *ServerConfig) Validate() error {
	if c.ShutdownTimeout <= 0 {
		return errors.New("HOSTITASK_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// LoadServerConfig loads and validates server configuration from environment.
func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{}

	if err := env.Load(cfg); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}

	return cfg, nil
}
