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

package mask

import (
	"errors"
	"fmt"
)

// Static errors for use with errors.Is. These are wrapped with fmt.Errorf
// and %w at the point a concrete mask string and offset are known so
// callers get context without losing the sentinel identity.
var (
	// ErrMaskSyntax is returned when a mask string cannot be parsed: unbalanced
	// brackets, an unterminated placeholder, or an invalid regex fragment.
	ErrMaskSyntax = errors.New("mask: syntax error")

	// ErrDuplicateParameter is returned when the same placeholder name is
	// declared twice within one mask.
	ErrDuplicateParameter = errors.New("mask: duplicate parameter")
)

// SyntaxError reports a mask compilation failure with the offending mask
// string and the byte offset at which the parser gave up.
type SyntaxError struct {
	Mask   string
	Offset int
	Reason string
	err    error // ErrMaskSyntax or ErrDuplicateParameter
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("mask %q: %s (at offset %d)", e.Mask, e.Reason, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return e.err }

func syntaxErr(raw string, offset int, reason string) error {
	return &SyntaxError{Mask: raw, Offset: offset, Reason: reason, err: ErrMaskSyntax}
}

func duplicateErr(raw string, offset int, name string) error {
	return &SyntaxError{
		Mask:   raw,
		Offset: offset,
		Reason: fmt.Sprintf("parameter %q declared twice", name),
		err:    ErrDuplicateParameter,
	}
}
