// Package config loads service configuration from the environment.
//
// Only three options are load-bearing: BIND_ADDRESS, DATABASE_URL and
// LOG_LEVEL. Everything else about the services is fixed at build time.
package config

import (
	"fmt"
	"net"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds one service's runtime settings.
type Config struct {
	// BindAddress is the host:port the HTTP listener binds.
	BindAddress string

	// DatabaseURL selects the write-through journal target. "memory"
	// (the default) keeps the journal in an in-memory database.
	DatabaseURL string

	// LogLevel is informational: debug, info, warn or error.
	LogLevel string
}

// FromEnv reads the environment, falling back to the given default port.
func FromEnv(defaultPort int) (Config, error) {
	cfg := Config{
		BindAddress: fmt.Sprintf("0.0.0.0:%d", defaultPort),
		DatabaseURL: "memory",
		LogLevel:    "info",
	}

	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return Config{}, fmt.Errorf("invalid BIND_ADDRESS %q: %w", addr, err)
		}
		cfg.BindAddress = addr
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	return cfg, nil
}

// NewLogger builds the service logger honouring the configured level.
// Unknown levels fall back to info rather than failing startup.
func (c Config) NewLogger() (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(c.LogLevel); err == nil {
		level = parsed
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.DisableStacktrace = true
	return zcfg.Build()
}
