// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"urlbroker.dev/router"
)

// Watcher holds a *router.RouteList loaded from a file and reloads it
// whenever the file changes. Because the dispatch cache is built once at
// construction with no incremental update path, a reload rebuilds the
// whole list from scratch and swaps it in atomically rather than mutating
// the list in place — readers never observe a half-built list.
type Watcher struct {
	path        string
	logger      *slog.Logger
	diagnostics router.DiagnosticHandler
	current     atomic.Pointer[router.RouteList]
}

// NewWatcher loads path once and returns a Watcher serving that initial
// RouteList. Call Start to begin watching for changes.
func NewWatcher(path string, logger *slog.Logger, diagnostics router.DiagnosticHandler) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	w := &Watcher{path: path, logger: logger.With("component", "config.Watcher", "path", path), diagnostics: diagnostics}
	rl, err := w.reload()
	if err != nil {
		return nil, err
	}
	w.current.Store(rl)
	return w, nil
}

// Current returns the RouteList currently in effect. It is safe to call
// from any goroutine, including while a reload is in progress.
func (w *Watcher) Current() *router.RouteList {
	return w.current.Load()
}

func (w *Watcher) reload() (*router.RouteList, error) {
	return w.loadAndBuild()
}

func (w *Watcher) loadAndBuild() (*router.RouteList, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", w.path, err)
	}
	table, err := Parse(data)
	if err != nil {
		return nil, err
	}
	rl, err := Build(table, w.diagnostics)
	if err != nil {
		return nil, err
	}
	rl.WarmupCache()
	return rl, nil
}

// Start watches the config file for writes and reloads on each one,
// logging and keeping the previous RouteList in effect if the new file
// fails to parse. It blocks until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: creating file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.path); err != nil {
		return fmt.Errorf("config: watching %s: %w", w.path, err)
	}

	w.logger.Info("watching route table for changes")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stopping config watcher")
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			rl, err := w.loadAndBuild()
			if err != nil {
				w.logger.Error("reload failed, keeping previous route table", "err", err)
				continue
			}
			w.current.Store(rl)
			w.logger.Info("route table reloaded")

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("file watcher error", "err", err)
		}
	}
}
