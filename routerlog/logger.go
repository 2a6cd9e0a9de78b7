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

package routerlog

import (
	"context"
	"log/slog"
	"os"

	"urlbroker.dev/router"
)

// NewLogger returns a JSON-handler slog.Logger at the given level,
// optionally including source location, writing to stdout.
func NewLogger(level slog.Level, addSource bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: addSource,
		Level:     level,
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// SlogHandler adapts a *slog.Logger into a router.DiagnosticHandler,
// logging every event at a level chosen by its kind: cache fallback and
// high-child-count events are warnings, everything else is debug.
type SlogHandler struct {
	logger *slog.Logger
}

// NewSlogHandler wraps logger, or slog.Default() if logger is nil.
func NewSlogHandler(logger *slog.Logger) *SlogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogHandler{logger: logger.WithGroup("router")}
}

func (h *SlogHandler) OnDiagnostic(e router.DiagnosticEvent) {
	level := slog.LevelDebug
	switch e.Kind {
	case router.DiagCacheFallback, router.DiagHighChildCount:
		level = slog.LevelWarn
	}

	args := make([]any, 0, 2+2*len(e.Fields))
	args = append(args, "kind", string(e.Kind))
	for k, v := range e.Fields {
		args = append(args, k, v)
	}
	h.logger.Log(context.Background(), level, e.Message, args...)
}
