// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Reloads the configuration when its file changes on disk and
//              notifies registered change handlers. Uses fsnotify on the
//              containing directory so editors that replace the file by
//              rename are picked up as well.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file watching
// - 2026-10-16 v0.2.0: fsnotify replaces the polling ticker

package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/core/log"
)

type watchState struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
}

// Watch starts reloading the configuration on file changes. Calling it on
// an already watched or file-less configuration is an error.
func (c *Config) Watch() error {
	return c.startWatching()
}

func (c *Config) startWatching() error {
	if c.filePath == "" {
		return errors.ValidationFailed(errors.ModuleConfig, "path", "", "file path required for watching")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.watch != nil {
		return errors.NewErrorBuilder(errors.ModuleConfig).
			Operation("watch").
			Message("configuration is already being watched").
			Build()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.OperationFailed(errors.ModuleConfig, "watch", err)
	}
	if err := watcher.Add(filepath.Dir(c.filePath)); err != nil {
		watcher.Close()
		return errors.OperationFailed(errors.ModuleConfig, "watch", err)
	}

	state := &watchState{watcher: watcher, done: make(chan struct{})}
	c.watch = state

	state.wg.Add(1)
	go c.watchLoop(state)

	c.logger.Debug("watching configuration", log.Fields{"path": c.filePath})
	return nil
}

func (c *Config) watchLoop(state *watchState) {
	defer state.wg.Done()
	baseName := filepath.Base(c.filePath)

	for {
		select {
		case <-state.done:
			return

		case event, ok := <-state.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := c.reload(); err != nil {
				c.logger.WarnWithErr("configuration reload failed, keeping previous values", err,
					log.Fields{"path": c.filePath})
			}

		case err, ok := <-state.watcher.Errors:
			if !ok {
				return
			}
			c.logger.WarnWithErr("configuration watcher error", err)
		}
	}
}

// reload re-reads the file, merges the defaults back in and notifies
// handlers with snapshots of the old and new data
func (c *Config) reload() error {
	content, err := os.ReadFile(c.filePath)
	if err != nil {
		return errors.ConfigLoadFailed(c.filePath, err)
	}

	newData, err := parseContent(content, c.format)
	if err != nil {
		return err
	}

	c.mu.Lock()
	oldConfig := c.snapshot()
	c.data = mergeDefaults(newData, c.defaults)
	newConfig := c.snapshot()
	handlers := append([]ChangeHandler(nil), c.handlers...)
	c.mu.Unlock()

	c.logger.Info("configuration reloaded", log.Fields{"path": c.filePath})
	for _, handler := range handlers {
		if handler != nil {
			handler(oldConfig, newConfig)
		}
	}
	return nil
}

// snapshot copies the data into a detached Config; callers hold c.mu
func (c *Config) snapshot() *Config {
	return &Config{
		data:      deepCopyMap(c.data),
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: c.envPrefix,
		defaults:  c.defaults,
		logger:    c.logger,
	}
}

// StopWatching stops file monitoring and waits for the watcher goroutine to exit
func (c *Config) StopWatching() {
	c.mu.Lock()
	state := c.watch
	c.watch = nil
	c.mu.Unlock()

	if state == nil {
		return
	}
	close(state.done)
	state.watcher.Close()
	state.wg.Wait()
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watch != nil
}
