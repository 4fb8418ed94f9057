package store

import (
	"strings"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	t.Run("empty config defaults to in-memory sqlite", func(t *testing.T) {
		cfg := &Config{}
		cfg.ApplyDefaults()

		if cfg.Type != DatabaseTypeSQLite {
			t.Errorf("expected sqlite, got %s", cfg.Type)
		}
		if cfg.SQLite.Path != MemoryDSN {
			t.Errorf("expected %q, got %q", MemoryDSN, cfg.SQLite.Path)
		}
	})

	t.Run("explicit sqlite path preserved", func(t *testing.T) {
		cfg := &Config{
			Type:   DatabaseTypeSQLite,
			SQLite: SQLiteConfig{Path: "/var/lib/shelf/shelf.db"},
		}
		cfg.ApplyDefaults()

		if cfg.SQLite.Path != "/var/lib/shelf/shelf.db" {
			t.Errorf("explicit path not preserved: %q", cfg.SQLite.Path)
		}
	})

	t.Run("postgres defaults", func(t *testing.T) {
		cfg := &Config{Type: DatabaseTypePostgres}
		cfg.ApplyDefaults()

		if cfg.Postgres.Port != 5432 {
			t.Errorf("expected port 5432, got %d", cfg.Postgres.Port)
		}
		if cfg.Postgres.SSLMode != "disable" {
			t.Errorf("expected ssl_mode disable, got %q", cfg.Postgres.SSLMode)
		}
		if cfg.Postgres.MaxOpenConns == 0 || cfg.Postgres.MaxIdleConns == 0 {
			t.Error("expected connection pool defaults")
		}
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		cfg := &Config{Type: "mongodb"}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for unknown database type")
		}
	})

	t.Run("sqlite requires path", func(t *testing.T) {
		cfg := &Config{Type: DatabaseTypeSQLite}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for missing sqlite path")
		}
	})

	t.Run("postgres requires connection fields", func(t *testing.T) {
		cfg := &Config{Type: DatabaseTypePostgres}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for missing postgres fields")
		}
	})

	t.Run("valid postgres config", func(t *testing.T) {
		cfg := &Config{
			Type: DatabaseTypePostgres,
			Postgres: PostgresConfig{
				Host:     "localhost",
				Port:     5432,
				Database: "shelf",
				User:     "shelf",
			},
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected valid config, got %v", err)
		}
	})
}

func TestPostgresDSN(t *testing.T) {
	cfg := PostgresConfig{
		Host:     "db.internal",
		Port:     5433,
		Database: "shelf",
		User:     "app",
		Password: "secret",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()
	for _, part := range []string{"host=db.internal", "port=5433", "dbname=shelf", "user=app", "sslmode=require"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("DSN missing %q: %s", part, dsn)
		}
	}
}
