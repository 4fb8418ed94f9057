package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/shelf-labs/shelf/internal/logger"
)

// Watch watches the config file at path and applies logging changes at
// runtime. Only the logging level is applied live; other changes require a
// restart.
//
// Watch blocks until the context is cancelled. It watches the parent
// directory rather than the file itself so that editors that replace the
// file on save (rename + create) don't break the watch.
func Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	target := filepath.Clean(path)
	logger.Debug("Watching config file for changes", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			cfg, err := Load(path)
			if err != nil {
				logger.Warn("Ignoring config change, reload failed", "error", err)
				continue
			}
			logger.SetLevel(cfg.Logging.Level)
			logger.Info("Applied logging level from config change", "level", cfg.Logging.Level)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Config watcher error", "error", err)
		}
	}
}
