package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// sampleConfig is the commented configuration template written by InitConfig.
// It documents every section with its default value so new installations can
// be customized by uncommenting lines.
const sampleConfig = `# Shelf Configuration File
#
# This file configures the Shelf record management server.
# All values shown are defaults; uncomment and edit to customize.
#
# Configuration precedence (highest to lowest):
#   1. Environment variables (SHELF_*, e.g. SHELF_LOGGING_LEVEL=DEBUG)
#   2. This configuration file
#   3. Built-in defaults

# Logging configuration
logging:
  # Minimum log level: DEBUG, INFO, WARN, ERROR
  level: INFO
  # Log format: text or json
  format: text
  # Log destination: stdout, stderr, or a file path
  output: stdout

# Item database (SQLite or PostgreSQL)
database:
  # Database type: sqlite or postgres
  type: sqlite
  sqlite:
    # Path to the SQLite database file.
    # The special value ":memory:" keeps all items in memory.
    path: ":memory:"
  # postgres:
  #   host: localhost
  #   port: 5432
  #   user: shelf
  #   password: ""
  #   database: shelf
  #   ssl_mode: disable

# Retention hold on items
retention:
  # How old an item must be before it can be deleted
  minimum_age: 120h

# REST API server
api:
  # HTTP port for the API endpoints
  port: 8080
  # read_timeout: 10s
  # write_timeout: 10s
  # idle_timeout: 60s

# Insert sample items into an empty database at server start
seed: true

# Maximum time to wait for graceful shutdown
shutdown_timeout: 30s

# Prometheus metrics server (optional)
metrics:
  enabled: false
  # port: 9090

# OpenTelemetry distributed tracing (optional)
telemetry:
  enabled: false
  # endpoint: localhost:4317
  # insecure: true
  # sample_rate: 1.0
`

// InitConfig creates a sample configuration file at the default location.
//
// Returns the path to the created file. Fails if a config file already
// exists, unless force is true.
func InitConfig(force bool) (string, error) {
	path := GetDefaultConfigPath()
	if err := InitConfigToPath(path, force); err != nil {
		return "", err
	}
	return path, nil
}

// InitConfigToPath creates a sample configuration file at the given path.
func InitConfigToPath(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
