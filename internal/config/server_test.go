package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var serverEnvVars = []string{
	"HOSTITASK_HTTP_HOST",
	"HOSTITASK_HTTP_PORT",
	"HOSTITASK_HTTP_READ_TIMEOUT",
	"HOSTITASK_HTTP_MAX_BODY_BYTES",
	"HOSTITASK_SEED_SAMPLE_TASKS",
	"HOSTITASK_CHAT_REPLY_DELAY",
	"HOSTITASK_CHAT_CLOSE_DELAY",
	"HOSTITASK_CHAT_MAX_SESSIONS",
	"HOSTITASK_OTEL_ENABLED",
	"OTEL_SERVICE_NAME",
	"HOSTITASK_SHUTDOWN_TIMEOUT",
}

func clearServerEnv(t *testing.T) {
	t.Helper()
	for _, k := range serverEnvVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadServerConfig_Defaults(t *testing.T) {
	clearServerEnv(t)

	cfg, err := LoadServerConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.HTTP.Port)
	assert.Empty(t, cfg.HTTP.Host)
	assert.Zero(t, cfg.HTTP.ReadTimeout, "left to the HTTP server defaults")
	assert.False(t, cfg.Task.SeedSampleTasks)
	assert.Equal(t, 2*time.Second, cfg.Chat.ReplyDelay)
	assert.Equal(t, 2*time.Second, cfg.Chat.CloseDelay)
	assert.Equal(t, 1000, cfg.Chat.MaxSessions)
	assert.False(t, cfg.Observability.OTelEnabled)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadServerConfig_FromEnvironment(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("HOSTITASK_HTTP_HOST", "127.0.0.1")
	t.Setenv("HOSTITASK_HTTP_PORT", "9090")
	t.Setenv("HOSTITASK_HTTP_READ_TIMEOUT", "3s")
	t.Setenv("HOSTITASK_HTTP_MAX_BODY_BYTES", "4096")
	t.Setenv("HOSTITASK_SEED_SAMPLE_TASKS", "true")
	t.Setenv("HOSTITASK_CHAT_REPLY_DELAY", "500ms")
	t.Setenv("HOSTITASK_CHAT_MAX_SESSIONS", "50")
	t.Setenv("HOSTITASK_OTEL_ENABLED", "true")
	t.Setenv("OTEL_SERVICE_NAME", "front-desk")
	t.Setenv("HOSTITASK_SHUTDOWN_TIMEOUT", "30s")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, int64(4096), cfg.HTTP.MaxBodyBytes)
	assert.True(t, cfg.Task.SeedSampleTasks)
	assert.Equal(t, 500*time.Millisecond, cfg.Chat.ReplyDelay)
	assert.Equal(t, 50, cfg.Chat.MaxSessions)
	assert.Equal(t, 2*time.Second, cfg.Chat.CloseDelay)
	assert.True(t, cfg.Observability.OTelEnabled)
	assert.Equal(t, "front-desk", cfg.Observability.ServiceName)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoadServerConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric port", "HOSTITASK_HTTP_PORT", "http"},
		{"port out of range", "HOSTITASK_HTTP_PORT", "70000"},
		{"negative chat delay", "HOSTITASK_CHAT_REPLY_DELAY", "-1s"},
		{"zero chat session cap", "HOSTITASK_CHAT_MAX_SESSIONS", "0"},
		{"zero shutdown timeout", "HOSTITASK_SHUTDOWN_TIMEOUT", "0s"},
		{"unparseable bool", "HOSTITASK_SEED_SAMPLE_TASKS", "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearServerEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadServerConfig()
			assert.Error(t, err)
		})
	}
}
