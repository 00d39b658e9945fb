package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// startWatch runs Watch on path in the background and returns the channel
// onChange feeds. The watcher is stopped when the test ends.
func startWatch(t *testing.T, path string) <-chan *Config {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	changes := make(chan *Config, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *Config) { changes <- c })
	}()
	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Watch() returned %v after cancel", err)
		}
	})

	// Give the watcher time to register before the test writes.
	time.Sleep(100 * time.Millisecond)
	return changes
}

// waitFor receives configs until match returns true, failing after 5s.
func waitFor(t *testing.T, changes <-chan *Config, what string, match func(*Config) bool) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case c := <-changes:
			if match(c) {
				return
			}
		case <-timeout:
			t.Fatalf("onChange was not called with %s", what)
		}
	}
}

// drain discards any pending configs.
func drain(changes <-chan *Config) {
	for {
		select {
		case <-changes:
		case <-time.After(200 * time.Millisecond):
			return
		}
	}
}

// replaceFile saves content the way atomic-save editors do: write a sibling
// temp file, then rename it over path.
func replaceFile(t *testing.T, path, content string) {
	t.Helper()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename over config: %v", err)
	}
}

func formatIs(format string) func(*Config) bool {
	return func(c *Config) bool { return c.Output.Format == format }
}

func TestWatch_InPlaceWrite(t *testing.T) {
	path := writeConfig(t, "output:\n  format: text\n")
	changes := startWatch(t, path)

	if err := os.WriteFile(path, []byte("output:\n  format: json\n"), 0o600); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}
	waitFor(t, changes, "format json", formatIs(FormatJSON))
}

func TestWatch_AtomicRenameSaves(t *testing.T) {
	path := writeConfig(t, "output:\n  format: text\n")
	changes := startWatch(t, path)

	replaceFile(t, path, "output:\n  format: json\n")
	waitFor(t, changes, "format json after first rename", formatIs(FormatJSON))

	replaceFile(t, path, "output:\n  format: prometheus\n")
	waitFor(t, changes, "format prometheus after second rename", formatIs(FormatPrometheus))

	drain(changes)
	if err := os.WriteFile(path, []byte("output:\n  format: text\n"), 0o600); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}
	waitFor(t, changes, "format text after in-place write", formatIs(FormatText))
}

func TestWatch_EmptyFileNotReloaded(t *testing.T) {
	path := writeConfig(t, "source:\n  type: file\n  path: /x.json\n")
	changes := startWatch(t, path)

	if err := os.Truncate(path, 0); err != nil {
		t.Fatalf("truncate config: %v", err)
	}
	select {
	case c := <-changes:
		t.Fatalf("empty file triggered onChange with source %+v", c.Source)
	case <-time.After(300 * time.Millisecond):
	}

	if err := os.WriteFile(path, []byte("source:\n  type: file\n  path: /y.json\n"), 0o600); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case c := <-changes:
		if c.Source.Type != SourceFile || c.Source.Path != "/y.json" {
			t.Fatalf("first reload = %+v, want file source /y.json", c.Source)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("onChange was not called after the rewrite")
	}
}

func TestWatch_IgnoresSiblingFiles(t *testing.T) {
	path := writeConfig(t, "output:\n  format: text\n")
	changes := startWatch(t, path)

	sibling := filepath.Join(filepath.Dir(path), "other.yaml")
	if err := os.WriteFile(sibling, []byte("output:\n  format: json\n"), 0o600); err != nil {
		t.Fatalf("write sibling: %v", err)
	}
	select {
	case c := <-changes:
		t.Fatalf("sibling write triggered onChange with %+v", c.Output)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatch_MissingFile(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"), func(*Config) {})
	if err == nil {
		t.Fatal("expected error watching a missing file, got nil")
	}
}
