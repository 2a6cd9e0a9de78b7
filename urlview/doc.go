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

// Package urlview defines the two view contracts the routing core
// consumes instead of parsing URLs itself: an inbound Request and an
// outbound Reference. The core never parses wire bytes or owns a
// net/url.URL; it reads through these interfaces and asks for new,
// independent views via their modifier methods rather than mutating
// the one it was given.
//
// Request and Reference are implemented here on top of net/url for
// convenience, but a caller with its own URL type (behind a web
// framework's request object, say) can implement the interfaces
// directly without ever constructing a net/url.URL.
package urlview
