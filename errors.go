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

import "errors"

// Static errors for better error handling and testing.
// These errors should be wrapped with fmt.Errorf and %w when context is needed.
var (
	// ErrOutOfRange is returned by Modify when index is outside the current
	// list of children.
	ErrOutOfRange = errors.New("router: index out of range")

	// ErrNotFound is returned when a lookup against a RouteList's registered
	// children (by name, via Routes()) does not resolve.
	ErrNotFound = errors.New("router: route not found")
)
