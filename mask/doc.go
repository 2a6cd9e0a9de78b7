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

// Package mask compiles mask strings into immutable Mask values.
//
// A mask describes one URL shape: an optional host pattern, a sequence of
// path segments, and placeholders of the form <name regex default> that
// extract or fill in parameters. Compile is a pure function — the same
// mask string always produces an equivalent Mask — so callers (route.Route,
// tests) can share compiled masks freely.
//
// # Grammar
//
//	mask      := ['//' host '/'] path ['/']
//	path      := segment ('/' segment)*
//	segment   := part*
//	part      := literal | '<' name [sp regex] [sp default] '>' | '[' path ']'
//	name      := [A-Za-z_][A-Za-z0-9_-]*
//	regex     := any balanced pattern not containing '>'
//	default   := token not containing whitespace or '>'
package mask
