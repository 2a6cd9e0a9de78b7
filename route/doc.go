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

// Package route implements the single-route matcher and constructor: a
// compiled Mask, a set of constant parameters fixed at registration, and
// a filter.Pipeline applied around the mask's raw text.
//
// A Route is created once, by New or MustNew, and is read-only for the
// rest of its lifetime — its Match and ConstructURL methods never mutate
// the receiver, which is what lets a RouteList share routes freely across
// concurrent readers once warmed up.
package route
