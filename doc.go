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

// Package router provides a bidirectional URL routing broker.
//
// A Route (package "urlbroker.dev/router/route") compiles one mask string —
// a compact pattern describing path segments, optional sections, and named
// placeholders with per-parameter regular expressions and defaults — into a
// matcher/constructor pair: match(request) extracts a parameter mapping from
// an inbound URL, constructUrl(params, ref) renders a canonical URL back out.
//
// RouteList, the type this package centers on, composes many Routers —
// anything satisfying the Router interface, including nested RouteLists —
// into an ordered broker. Matching walks children in insertion order and
// returns the first hit. Construction instead consults a lazily built
// dispatch cache that buckets children by the value of a discriminating
// constant parameter, so that constructing a URL for a route pinned to
// presenter="checkout" does not have to linear-scan every other presenter's
// route first.
//
// # Key Features
//
//   - Mask-based routing: literals, placeholders, optional groups, absolute
//     host masks with %tld%/%domain%/%sld% substitution
//   - Bidirectional: the same compiled Route both matches and constructs
//   - Domain and path scoping via WithDomain/WithPath, producing nested
//     RouteLists that gate their children on host or path-prefix
//   - A construction-time dispatch cache keyed on the constant parameter
//     with the most distinct values across children, rebuilt on WarmupCache
//   - One-way routes (AddRoute with the OneWay flag) that construct but
//     never match
//   - Diagnostic events for route registration, cache warmup, and dispatch
//     fallback, delivered through an optional DiagnosticHandler
//
// # Constructor Pattern
//
//   - New() returns *RouteList (no error) because broker construction
//     cannot fail: it allocates memory and applies options, nothing more.
//     There is no file, network, or other I/O at construction time.
//   - Route compilation can fail (a malformed mask), so AddRoute returns an
//     error; MustAddRoute panics, for package-level route tables built once
//     at startup the way MustCompile/MustNew do for masks and routes.
//   - All configuration options use the "With" prefix (WithDiagnostics).
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "net/url"
//
//	    "urlbroker.dev/router"
//	    "urlbroker.dev/router/urlview"
//	)
//
//	func main() {
//	    rl := router.New()
//	    rl.MustAddRoute("<presenter>/<action>[/<id \\d{1,3}>]", 0)
//	    rl.WarmupCache()
//
//	    u, _ := url.Parse("https://example.com/product/detail/42")
//	    params, ok := rl.Match(urlview.NewRequest(u))
//	    fmt.Println(params, ok)
//	}
//
// # Domain and Path Scoping
//
//	admin := rl.WithPath("/admin")
//	admin.MustAddRoute("<presenter>", 0)
//	rl2 := admin.End() // back to rl
//
//	api := rl.WithDomain("%sld%.example.com")
//	api.MustAddRoute("<presenter>", 0)
//
// # Diagnostics
//
// RouteList emits DiagnosticEvent values for route registration, cache
// warmup, and cache-key fallback to the `*` bucket. Diagnostics are
// optional: a RouteList with no handler installed behaves identically,
// just without the events.
//
//	handler := router.DiagnosticHandlerFunc(func(e router.DiagnosticEvent) {
//	    slog.Info(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	rl := router.New(router.WithDiagnostics(handler))
package router
