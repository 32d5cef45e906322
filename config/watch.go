// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch watches the given config file until ctx is done, calling fn
// with the newly opened config every time the file is written or
// replaced. Files that fail to open or validate are logged and skipped.
// The containing directory is watched so that editors that replace the
// file on save are seen.
func Watch(ctx context.Context, file string, fn func(c *Config)) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("config.Watch: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config.Watch: creating watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("config.Watch: watching %q: %w", file, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				c, err := Open(abs)
				if err != nil {
					slog.Error("config: reloading", "file", file, "err", err)
					continue
				}
				slog.Info("config: reloaded", "file", file)
				fn(c)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("config: watcher error", "err", err)
			}
		}
	}()
	return nil
}
