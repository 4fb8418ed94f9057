package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shelf-labs/shelf/pkg/shelf/store"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoad_NoConfigFileUsesDefaults(t *testing.T) {
	// Point the default location at an empty directory
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Type != store.DatabaseTypeSQLite {
		t.Errorf("Expected sqlite default database, got %q", cfg.Database.Type)
	}
	if cfg.Retention.MinimumAge != 120*time.Hour {
		t.Errorf("Expected 120h retention default, got %v", cfg.Retention.MinimumAge)
	}
	if cfg.API.Port != 8080 {
		t.Errorf("Expected API port 8080, got %d", cfg.API.Port)
	}
	if !cfg.SeedEnabled() {
		t.Error("Expected seeding enabled by default")
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  level: debug
  format: json
database:
  type: sqlite
  sqlite:
    path: /tmp/shelf-test.db
retention:
  minimum_age: 48h
api:
  port: 9999
seed: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Expected level normalized to DEBUG, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected json format, got %q", cfg.Logging.Format)
	}
	if cfg.Database.SQLite.Path != "/tmp/shelf-test.db" {
		t.Errorf("Unexpected sqlite path: %q", cfg.Database.SQLite.Path)
	}
	if cfg.Retention.MinimumAge != 48*time.Hour {
		t.Errorf("Expected 48h retention, got %v", cfg.Retention.MinimumAge)
	}
	if cfg.API.Port != 9999 {
		t.Errorf("Expected port 9999, got %d", cfg.API.Port)
	}
	if cfg.SeedEnabled() {
		t.Error("Expected seeding disabled")
	}
}

func TestLoad_DurationAsString(t *testing.T) {
	path := writeConfigFile(t, `
retention:
  minimum_age: 5m
shutdown_timeout: 45s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Retention.MinimumAge != 5*time.Minute {
		t.Errorf("Expected 5m retention, got %v", cfg.Retention.MinimumAge)
	}
	if cfg.ShutdownTimeout != 45*time.Second {
		t.Errorf("Expected 45s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  level: WARN
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Logging.Level != "WARN" {
		t.Errorf("Expected WARN level, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Expected text format default, got %q", cfg.Logging.Format)
	}
	if cfg.Database.SQLite.Path != store.MemoryDSN {
		t.Errorf("Expected in-memory sqlite default, got %q", cfg.Database.SQLite.Path)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected 30s shutdown default, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "logging: [not a map")

	if _, err := Load(path); err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
}

func TestMustLoad_MissingExplicitFile(t *testing.T) {
	_, err := MustLoad(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing explicit config file")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.API.Port = 8123
	cfg.Retention.MinimumAge = 72 * time.Hour

	path := filepath.Join(t.TempDir(), "saved", "config.yaml")
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load of saved config failed: %v", err)
	}
	if loaded.API.Port != 8123 {
		t.Errorf("Expected port 8123 after round trip, got %d", loaded.API.Port)
	}
	if loaded.Retention.MinimumAge != 72*time.Hour {
		t.Errorf("Expected 72h retention after round trip, got %v", loaded.Retention.MinimumAge)
	}
}
