package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds settings shared by the CLI and the HTTP server.
type Config struct {
	Addr           string        `env:"PAGEINDEX_ADDR" envDefault:":8088"`
	LogLevel       string        `env:"PAGEINDEX_LOG_LEVEL" envDefault:"info"`
	MaxUploadBytes int64         `env:"PAGEINDEX_MAX_UPLOAD_BYTES" envDefault:"10485760"`
	ReadTimeout    time.Duration `env:"PAGEINDEX_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout   time.Duration `env:"PAGEINDEX_WRITE_TIMEOUT" envDefault:"30s"`
	NoColor        bool          `env:"PAGEINDEX_NO_COLOR" envDefault:"false"`
}

// Load reads an optional .env file and then the environment.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) (Config, error) {
	// A missing .env file is normal.
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate checks limits and the log level.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("PAGEINDEX_ADDR must not be empty")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("PAGEINDEX_MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("PAGEINDEX_READ_TIMEOUT must be positive, got %s", c.ReadTimeout)
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("PAGEINDEX_WRITE_TIMEOUT must be positive, got %s", c.WriteTimeout)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("PAGEINDEX_LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
