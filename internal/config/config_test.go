package config

import (
	"os"
	"testing"
)

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	os.Unsetenv("DATABASE_URL")
	_, err := Load()
	if err == nil {
		t.Error("expected error when DATABASE_URL is unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://localhost/tom")
	defer os.Unsetenv("DATABASE_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.DBMaxConns != 20 {
		t.Errorf("expected 20 max conns, got %d", cfg.DBMaxConns)
	}
	if cfg.ReadinessTimeout != 5 {
		t.Errorf("expected readiness timeout 5, got %d", cfg.ReadinessTimeout)
	}
}

func TestValidate_ProductionRequiresAuth(t *testing.T) {
	cfg := &Config{Env: "production", RequestTimeout: 30, ReadinessTimeout: 5}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for production without auth config")
	}

	cfg.AuthSigningKey = "secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error with signing key set: %v", err)
	}
}

func TestValidate_DevNeedsNoAuth(t *testing.T) {
	cfg := &Config{Env: "development", RequestTimeout: 30, ReadinessTimeout: 5}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_RejectsZeroTimeouts(t *testing.T) {
	cfg := &Config{Env: "development", RequestTimeout: 0, ReadinessTimeout: 5}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero request timeout")
	}
	cfg = &Config{Env: "development", RequestTimeout: 30, ReadinessTimeout: 0}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero readiness timeout")
	}
}
