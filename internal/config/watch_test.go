// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReloads(t *testing.T) {
	DebounceDelay = 20 * time.Millisecond

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("maxBufferSize: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 16)
	done := make(chan error, 1)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	go func() {
		done <- Watch(ctx, path, logger, func(cfg *Config) { changes <- cfg })
	}()

	// The watcher may not be registered yet; keep writing until a reload
	// arrives.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for i := 0; ; i++ {
		select {
		case cfg := <-changes:
			if cfg.MaxBufferSize < 5 {
				t.Errorf("MaxBufferSize = %d, want the rewritten value", cfg.MaxBufferSize)
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch() error = %v", err)
			}
			return
		case <-tick.C:
			data := fmt.Sprintf("maxBufferSize: %d\n", 5+i)
			if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("no reload within 5s")
		}
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing", "config.yaml"), logger, func(*Config) {})
	if err == nil {
		t.Fatal("Watch() error = nil, want error for missing directory")
	}
}
