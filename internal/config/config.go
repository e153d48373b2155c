// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "ROOMLEDGER"

const (
	EnvPort            = "ROOMLEDGER_PORT"
	EnvLogLevel        = "ROOMLEDGER_LOG_LEVEL"
	EnvLogFormat       = "ROOMLEDGER_LOG_FORMAT"
	EnvDBDSN           = "ROOMLEDGER_DB_DSN"
	EnvShutdownTimeout = "ROOMLEDGER_SHUTDOWN_TIMEOUT"
	EnvMemberHeader    = "ROOMLEDGER_MEMBER_HEADER"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Config struct {
	Port            int           `envconfig:"PORT" default:"8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"text"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// DSN is the SQLite data source. ":memory:" keeps the household for the
	// lifetime of the process only.
	DSN string `envconfig:"DB_DSN" default:":memory:"`

	// MemberHeader names the request header that selects the current member.
	MemberHeader string `envconfig:"MEMBER_HEADER" default:"X-Member-Id"`
}

// Load reads the configuration from ROOMLEDGER_* variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%s must be between 1 and 65535, got %d", EnvPort, c.Port)
	}

	c.LogFormat = strings.ToLower(c.LogFormat)
	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("%s must be %q or %q, got %q", EnvLogFormat, LogFormatText, LogFormatJSON, c.LogFormat)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%s must be one of debug, info, warn, error, got %q", EnvLogLevel, c.LogLevel)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%s must be positive", EnvShutdownTimeout)
	}
	if strings.TrimSpace(c.DSN) == "" {
		return fmt.Errorf("%s must not be empty", EnvDBDSN)
	}
	if strings.TrimSpace(c.MemberHeader) == "" {
		return fmt.Errorf("%s must not be empty", EnvMemberHeader)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
