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

// DiagnosticEvent represents a RouteList diagnostic: cache lifecycle,
// registration, and dispatch-fallback events.
//
// Diagnostic events are optional - a RouteList functions correctly
// whether they are collected or not. They provide visibility into cache
// rebuilds and fallback dispatch for observability systems.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any // Structured context
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// DiagRouteRegistered fires once per addRoute/add/prepend call.
	DiagRouteRegistered DiagnosticKind = "route_registered"

	// DiagCacheWarmed fires when warmupCache finishes rebuilding the
	// dispatch cache; Fields["generation"] carries the build's UUID.
	DiagCacheWarmed DiagnosticKind = "cache_warmed"

	// DiagCacheFallback fires when constructUrl falls back to the `*`
	// bucket because params[cacheKey] was absent, non-scalar, or unknown.
	DiagCacheFallback DiagnosticKind = "cache_key_fallback"

	// DiagHighChildCount fires when a RouteList accumulates an unusually
	// large number of direct children, a common sign of a route table
	// that should be split with withDomain/withPath instead.
	DiagHighChildCount DiagnosticKind = "child_count_high"
)

// DiagnosticHandler receives diagnostic events from a RouteList.
// Implementations may log, emit metrics, trace events, or ignore them.
//
// This interface is optional - if not provided, diagnostics are silently
// dropped. A RouteList's behavior is unchanged whether diagnostics are
// collected or not.
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
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc is a function adapter for DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) {
	f(e)
}
