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

package filter

import "fmt"

// In transforms a raw matched path or host component into a scalar value.
// Returning ok == false rejects the entire match.
type In func(raw string) (value any, ok bool)

// Out transforms a scalar value supplied by a caller into its text form.
// Returning ok == false rejects the entire construction.
type Out func(value any) (text string, ok bool)

// Global transforms the whole parameter mapping, once, between the
// per-parameter inbound pass and the per-parameter outbound pass. It may
// add, remove, or rewrite entries. Returning ok == false rejects the
// operation in progress (a match or a construction).
type Global func(params map[string]any) (map[string]any, bool)

// Params holds the optional inbound and outbound filters for one
// parameter. Either field may be nil, in which case that side of the
// pipeline passes the value through unchanged (as a string).
type Params struct {
	In  In
	Out Out
}

// Identity returns the value unchanged. It is useful as an explicit
// no-op when a caller wants to document that a parameter intentionally
// carries no transform.
func Identity(raw string) (any, bool) { return raw, true }

// ToString renders value back to text using a plain type switch over the
// scalar kinds a FilterIn can plausibly produce. A value outside this set
// (a slice, a map, nil) is treated as non-scalar and rejected, matching
// the "non-scalar parameter where a string is required" failure mode.
// Parameters with a custom scalar type must supply their own Out.
func ToString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case fmtStringer:
		return v.String(), true
	case int, int32, int64, uint, uint32, uint64, float32, float64, bool:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}

type fmtStringer interface{ String() string }
