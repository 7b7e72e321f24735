package config

import (
	"testing"
	"time"

	"urban-people/internal/domain/users"
)

func TestLoad_Defaults(t *testing.T) {
	// Empty values fall back to envDefault.
	for _, k := range []string{"PORT", "VARIANT", "LOG_LEVEL", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected default Port 8080, got %d", cfg.Port)
	}
	if cfg.UsersVariant() != users.VariantStrict {
		t.Errorf("expected default variant strict, got %q", cfg.Variant)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default LogLevel 'info', got %s", cfg.LogLevel)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Errorf("expected default ShutdownTimeout 15s, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("VARIANT", "loose")
	t.Setenv("SEED", "42")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("expected Port 9090, got %d", cfg.Port)
	}
	if cfg.UsersVariant() != users.VariantLoose {
		t.Errorf("expected loose, got %q", cfg.Variant)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected Seed 42, got %d", cfg.Seed)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected LogFormat json, got %s", cfg.LogFormat)
	}
}

func TestLoad_InvalidVariant(t *testing.T) {
	t.Setenv("VARIANT", "medium")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid variant, got nil")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid port, got nil")
	}
}
