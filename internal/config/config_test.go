package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8088", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int64(10485760), cfg.MaxUploadBytes)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
	assert.False(t, cfg.NoColor)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PAGEINDEX_ADDR", "127.0.0.1:9000")
	t.Setenv("PAGEINDEX_LOG_LEVEL", "debug")
	t.Setenv("PAGEINDEX_READ_TIMEOUT", "2s")
	t.Setenv("PAGEINDEX_NO_COLOR", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
	assert.True(t, cfg.NoColor)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadFromDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PAGEINDEX_MAX_UPLOAD_BYTES=2048\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("PAGEINDEX_MAX_UPLOAD_BYTES") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("PAGEINDEX_WRITE_TIMEOUT", "soon")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Addr:           ":8088",
		LogLevel:       "warn",
		MaxUploadBytes: 1,
		ReadTimeout:    time.Second,
		WriteTimeout:   time.Second,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Addr = "" }},
		{"zero upload limit", func(c *Config) { c.MaxUploadBytes = 0 }},
		{"negative read timeout", func(c *Config) { c.ReadTimeout = -time.Second }},
		{"zero write timeout", func(c *Config) { c.WriteTimeout = 0 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
