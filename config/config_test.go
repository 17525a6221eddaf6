package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.Server.Addr)
	}
	if cfg.RateLimit.Requests != 5 || cfg.RateLimit.WindowMinutes != 1 {
		t.Errorf("unexpected default rate limit: %+v", cfg.RateLimit)
	}
	if cfg.Redis.Addr != "" || cfg.Database.Path != "" {
		t.Errorf("expected redis and sqlite to be disabled by default")
	}
}

func TestLoad_File(t *testing.T) {

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":9090"
  read_timeout_seconds: 5
redis:
  addr: "localhost:6379"
database:
  path: "sweeps.db"
rate_limit:
  requests: 10
  window_minutes: 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("expected :9090, got %s", cfg.Server.Addr)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("expected redis addr, got %s", cfg.Redis.Addr)
	}
	if cfg.Database.Path != "sweeps.db" {
		t.Errorf("expected sqlite path, got %s", cfg.Database.Path)
	}
	if cfg.RateLimit.Requests != 10 {
		t.Errorf("expected 10 requests, got %d", cfg.RateLimit.Requests)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: ["), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
