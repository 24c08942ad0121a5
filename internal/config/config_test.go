package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.ConfigPath)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PLANTERCUT_ADDR", "127.0.0.1:9000")
	t.Setenv("PLANTERCUT_LOG_LEVEL", "debug")
	t.Setenv("PLANTERCUT_SHARE_BASE_URL", "https://planter.example/")
	t.Setenv("PLANTERCUT_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("PLANTERCUT_CONFIG_PATH", "/tmp/planter.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "https://planter.example/", cfg.ShareBaseURL)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "/tmp/planter.yaml", cfg.ConfigPath)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("PLANTERCUT_SHUTDOWN_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		c := Config{LogLevel: tt.in}
		got, err := c.SlogLevel()
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	c := Config{LogLevel: "loud"}
	_, err := c.SlogLevel()
	assert.Error(t, err)
}
