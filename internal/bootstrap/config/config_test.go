package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
app:
  name: crimpqc-test
  env: test
database:
  dsn: /tmp/test.sqlite
http:
  addr: ":9090"
  rate_limit_rps: 5
auth:
  token_ttl: 24h
`)

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.App.Name != "crimpqc-test" {
		t.Fatalf("app name = %q", cfg.App.Name)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("http addr = %q", cfg.HTTP.Addr)
	}
	if cfg.HTTP.RateLimitRPS != 5 {
		t.Fatalf("rate limit rps = %d", cfg.HTTP.RateLimitRPS)
	}
	// Unset keys keep their defaults.
	if cfg.HTTP.RateLimitBurst != 100 {
		t.Fatalf("rate limit burst = %d, want default 100", cfg.HTTP.RateLimitBurst)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Fatalf("token ttl = %v", cfg.Auth.TokenTTL)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() accepted a missing explicit config file")
	}
}

func TestLoadRejectsInvalidTTL(t *testing.T) {
	path := writeConfigFile(t, `
database:
  dsn: /tmp/test.sqlite
auth:
  token_ttl: 0s
`)

	if _, err := Load(context.Background(), path); err == nil {
		t.Fatal("Load() accepted non-positive token ttl")
	}
}
