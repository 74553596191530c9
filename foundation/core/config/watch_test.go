// File: watch_test.go
// Title: Configuration File Watching Tests
// Description: Tests for reload on file change and watcher lifecycle.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func replaceFile(t *testing.T, path, content string) {
	t.Helper()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("Failed to rename temp file: %v", err)
	}
}

func TestWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "textkit.toml", "[wrap]\nwidth = 40\n")

	cfg, err := LoadWithOptions(path, LoadOptions{Watch: true})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}
	defer cfg.StopWatching()

	if !cfg.IsWatching() {
		t.Fatal("Expected IsWatching() to be true")
	}

	changes := make(chan int, 16)
	cfg.OnChange(func(oldConfig, newConfig *Config) {
		changes <- newConfig.GetInt("wrap.width")
	})

	replaceFile(t, path, "[wrap]\nwidth = 50\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case width := <-changes:
			if width == 50 {
				if got := cfg.GetInt("wrap.width"); got != 50 {
					t.Errorf("GetInt() after reload = %d, want 50", got)
				}
				return
			}
		case <-deadline:
			t.Fatal("Timed out waiting for reload")
		}
	}
}

func TestWatchKeepsValuesOnBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "textkit.toml", "[wrap]\nwidth = 40\n")

	cfg, err := LoadWithOptions(path, LoadOptions{Watch: true})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}
	defer cfg.StopWatching()

	if err := cfg.reload(); err != nil {
		t.Fatalf("reload() of a valid file error = %v", err)
	}

	replaceFile(t, path, "[wrap\n")
	if err := cfg.reload(); err == nil {
		t.Error("Expected reload() error for broken file")
	}
	if got := cfg.GetInt("wrap.width"); got != 40 {
		t.Errorf("GetInt() = %d, want previous value 40", got)
	}
}

func TestWatchLifecycle(t *testing.T) {
	cfg, err := LoadFromString("[wrap]\nwidth = 1\n", FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	if err := cfg.Watch(); err == nil {
		t.Error("Expected error when watching a config without file")
	}

	dir := t.TempDir()
	cfg, err = Load(writeFile(t, dir, "textkit.yaml", "wrap:\n  width: 3\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := cfg.Watch(); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if err := cfg.Watch(); err == nil {
		t.Error("Expected error when watching twice")
	}

	cfg.StopWatching()
	cfg.StopWatching()
	if cfg.IsWatching() {
		t.Error("Expected IsWatching() to be false after StopWatching()")
	}
	if filepath.Base(cfg.FilePath()) != "textkit.yaml" {
		t.Errorf("FilePath() = %q", cfg.FilePath())
	}
}

func TestReloadKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "textkit.toml", "[wrap]\nwidth = 40\n")

	cfg, err := LoadWithOptions(path, LoadOptions{
		Defaults: map[string]interface{}{"truncate.ellipsis": "..."},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	replaceFile(t, path, "[wrap]\nwidth = 50\n")
	if err := cfg.reload(); err != nil {
		t.Fatalf("reload() error = %v", err)
	}
	if got := cfg.GetInt("wrap.width"); got != 50 {
		t.Errorf("GetInt() after reload = %d, want 50", got)
	}
	if got := cfg.GetString("truncate.ellipsis"); got != "..." {
		t.Errorf("GetString() after reload = %q, want default", got)
	}
}
