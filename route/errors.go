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

package route

import (
	"fmt"

	"urlbroker.dev/router/mask"
)

// constantCollisionErr reports a constant parameter whose declared value
// disagrees with the same-named placeholder's default inside the mask.
// Declaring the same name twice with agreeing values is permitted.
func constantCollisionErr(maskRaw, name, constantValue, maskDefault string) error {
	return fmt.Errorf("route: constant %q=%q conflicts with mask %q default %q: %w",
		name, constantValue, maskRaw, maskDefault, mask.ErrDuplicateParameter)
}
