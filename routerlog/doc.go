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

// Package routerlog provides two router.DiagnosticHandler implementations:
// a slog-backed one for structured logging, and a Prometheus-backed one
// for counting diagnostic events by kind. Both are adapters over the
// diagnostics contract in the root package — neither is required, and
// both can be attached to the same RouteList at once via a handler that
// fans out to several.
package routerlog
