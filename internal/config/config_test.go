package config

import (
	"testing"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("BIND_ADDRESS", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := FromEnv(8080)
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.BindAddress != "0.0.0.0:8080" {
		t.Errorf("BindAddress = %s, want 0.0.0.0:8080", cfg.BindAddress)
	}
	if cfg.DatabaseURL != "memory" {
		t.Errorf("DatabaseURL = %s, want memory", cfg.DatabaseURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("BIND_ADDRESS", "127.0.0.1:9999")
	t.Setenv("DATABASE_URL", "/tmp/journal.db")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := FromEnv(8081)
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.BindAddress != "127.0.0.1:9999" {
		t.Errorf("BindAddress = %s", cfg.BindAddress)
	}
	if cfg.DatabaseURL != "/tmp/journal.db" {
		t.Errorf("DatabaseURL = %s", cfg.DatabaseURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want lowercased debug", cfg.LogLevel)
	}
}

func TestFromEnv_InvalidBindAddress(t *testing.T) {
	t.Setenv("BIND_ADDRESS", "no-port-here")
	if _, err := FromEnv(8080); err == nil {
		t.Error("address without port should fail")
	}
}

func TestNewLogger_Levels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus"} {
		cfg := Config{LogLevel: level}
		log, err := cfg.NewLogger()
		if err != nil {
			t.Errorf("level %q: NewLogger failed: %v", level, err)
			continue
		}
		log.Sync() //nolint:errcheck
	}
}
