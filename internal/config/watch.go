// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceDelay is how long Watch waits after the last change before
// reloading. Editors often write a file in several steps.
var DebounceDelay = 300 * time.Millisecond

// Watch reloads the file at path whenever it changes and passes the new
// configuration to onChange. Invalid files are logged and skipped. Watch
// blocks until ctx is done.
//
// The parent directory is watched rather than the file itself so that
// atomic saves (write temp file, rename) are seen.
func Watch(ctx context.Context, path string, logger *slog.Logger, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch config directory %s: %w", dir, err)
	}

	logger.Info("config watcher started", "path", path)

	var debounceTimer *time.Timer
	debounceCh := make(chan struct{}, 1)
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	target := filepath.Clean(path)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(DebounceDelay, func() {
				select {
				case debounceCh <- struct{}{}:
				default:
				}
			})

		case <-debounceCh:
			cfg, err := Load(path)
			if err != nil {
				logger.Error("config reload failed", "error", err, "path", path)
				continue
			}
			logger.Info("config reloaded", "path", path, "maxBufferSize", cfg.MaxBufferSize)
			onChange(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("config watcher error", "error", err)

		case <-ctx.Done():
			return nil
		}
	}
}
