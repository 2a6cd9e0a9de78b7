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

package router

// Option configures a RouteList at construction. Options are applied in
// the order given to New.
type Option func(*RouteList)

// WithDiagnostics sets a diagnostic handler for the RouteList.
//
// Diagnostic events are optional informational events describing route
// registration, cache warmup, and dispatch fallback to the `*` bucket.
// A RouteList functions correctly whether diagnostics are collected or
// not; the handler only observes.
//
// Example with logging:
//
//	import "log/slog"
//
//	handler := router.DiagnosticHandlerFunc(func(e router.DiagnosticEvent) {
//	    slog.Info(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	rl := router.New(router.WithDiagnostics(handler))
//
// Example with metrics:
//
//	handler := router.DiagnosticHandlerFunc(func(e router.DiagnosticEvent) {
//	    metrics.Increment("router.diagnostics", "kind", string(e.Kind))
//	})
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(rl *RouteList) {
		rl.diagnostics = handler
	}
}
