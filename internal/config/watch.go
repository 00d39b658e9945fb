package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors the config file at path and calls onChange with the newly
// loaded Config each time it is saved. It runs until ctx is cancelled.
//
// The parent directory is watched rather than the file, so saves that replace
// the file (write temp, rename over) keep being seen. A zero-length file is
// the middle of a truncating write and is not reloaded. A failed reload is
// logged and onChange is not called; the caller keeps its previous config.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}

	slog.Info("config: watching for changes", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			// A rename onto path arrives as Create.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			reload(path, onChange)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher error", "err", err)
		}
	}
}

// reload loads path and hands the result to onChange unless the file is
// empty or invalid.
func reload(path string, onChange func(*Config)) {
	fi, err := os.Stat(path)
	if err != nil {
		// Removed between the event and now; the next Create brings it back.
		slog.Debug("config: stat after change failed", "path", path, "err", err)
		return
	}
	if fi.Size() == 0 {
		slog.Debug("config: skipping empty file", "path", path)
		return
	}

	cfg, err := Load(path)
	if err != nil {
		slog.Error("config: reload failed, keeping previous config",
			"path", path, "err", err)
		return
	}

	slog.Info("config: reloaded", "path", path)
	onChange(cfg)
}
