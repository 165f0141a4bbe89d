package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ADDR", "ADMIN_ADDR", "DATABASE_URL", "MAX_POOL_SIZE", "MAX_IDLE_CONNS", "CONN_MAX_LIFETIME", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(Default(), c); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected a missing database url to be rejected")
	}
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`addr: ":6000"
database_url: postgres://file/db
max_pool_size: 3
conn_max_lifetime: 1m
cors_origins:
  - https://admin.example.com
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("ADDR", "")
	t.Setenv("ADMIN_ADDR", "")
	t.Setenv("MAX_IDLE_CONNS", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("MAX_POOL_SIZE", "not-a-number")
	t.Setenv("CONN_MAX_LIFETIME", "90s")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := &Config{
		Addr:            ":6000",
		AdminAddr:       ":8081",
		DatabaseURL:     "postgres://env/db",
		MaxPoolSize:     3,
		MaxIdleConns:    5,
		ConnMaxLifetime: 90 * time.Second,
		CORSOrigins:     []string{"https://admin.example.com"},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestCORSOriginsFromEnv(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com,")
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if diff := cmp.Diff(want, c.CORSOrigins); diff != "" {
		t.Fatalf("unexpected origins (-want +got):\n%s", diff)
	}
	c.DatabaseURL = "postgres://env/db"
	c.CORSOrigins = []string{"admin.example.com"}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected an origin without scheme to be rejected")
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("ADMIN_ADDR=:9999\n"), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Setenv("ADMIN_ADDR", "")
	os.Unsetenv("ADMIN_ADDR")
	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile failed: %v", err)
	}
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.AdminAddr != ":9999" {
		t.Fatalf("expected admin addr from env file, got %q", c.AdminAddr)
	}
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected a missing env file to fail")
	}
}
