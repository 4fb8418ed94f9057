package config

import (
	"testing"
	"time"

	"github.com/shelf-labs/shelf/pkg/shelf/store"
)

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected INFO log level, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Expected text format, got %q", cfg.Logging.Format)
	}
	if cfg.Database.Type != store.DatabaseTypeSQLite {
		t.Errorf("Expected sqlite database, got %q", cfg.Database.Type)
	}
	if cfg.Database.SQLite.Path != store.MemoryDSN {
		t.Errorf("Expected in-memory sqlite, got %q", cfg.Database.SQLite.Path)
	}
	if cfg.Retention.MinimumAge != 5*24*time.Hour {
		t.Errorf("Expected 5 day retention, got %v", cfg.Retention.MinimumAge)
	}
	if cfg.API.Port != 8080 {
		t.Errorf("Expected API port 8080, got %d", cfg.API.Port)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected 30s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.Metrics.Enabled {
		t.Error("Expected metrics disabled by default")
	}
	if cfg.Telemetry.Enabled {
		t.Error("Expected telemetry disabled by default")
	}
}

func TestApplyDefaults_NormalizesLogLevel(t *testing.T) {
	cfg := &Config{}
	cfg.Logging.Level = "debug"

	ApplyDefaults(cfg)

	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Expected DEBUG after normalization, got %q", cfg.Logging.Level)
	}
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.API.Port = 9001
	cfg.Retention.MinimumAge = time.Hour

	ApplyDefaults(cfg)

	if cfg.API.Port != 9001 {
		t.Errorf("Expected explicit port preserved, got %d", cfg.API.Port)
	}
	if cfg.Retention.MinimumAge != time.Hour {
		t.Errorf("Expected explicit retention preserved, got %v", cfg.Retention.MinimumAge)
	}
}

func TestApplyDefaults_MetricsPortWhenEnabled(t *testing.T) {
	cfg := &Config{}
	cfg.Metrics.Enabled = true

	ApplyDefaults(cfg)

	if cfg.Metrics.Port != 9090 {
		t.Errorf("Expected metrics port 9090, got %d", cfg.Metrics.Port)
	}
}
