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

// Package filter applies per-parameter and whole-mapping transforms between
// the raw text a Mask extracts or accepts and the scalar values a Route's
// caller works with.
//
// Inbound: a matched path or host component passes through an optional
// per-parameter FilterIn before it is assigned into the parameter mapping.
// A FilterIn that rejects a value rejects the whole match — filter
// rejection is reported the same way every other routing-time failure is,
// as a plain "no match" rather than an error.
//
// Outbound: a caller-supplied value passes through an optional
// per-parameter FilterOut on its way back to text. GlobalIn and GlobalOut
// run once for the whole parameter mapping, after the inbound pass and
// before the outbound pass respectively, and may add, remove, or
// transform entries.
package filter
