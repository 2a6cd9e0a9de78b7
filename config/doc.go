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

// Package config turns a declarative YAML route table into calls against
// a *router.RouteList's public API. The routing core never reads a file
// itself; this package is the external collaborator that does.
//
// A table is a tree of scopes: a root list of routes, plus nested
// children scoped by a domain pattern (%tld%/%domain%/%sld% substitution)
// or a path prefix. Load parses and builds one RouteList;
// Watcher additionally reloads the table from disk whenever the file
// changes, rebuilding a fresh RouteList and swapping it in atomically —
// the dispatch cache is construction-time and has no incremental update
// path, so a full rebuild is the simplest way to honor that.
package config
