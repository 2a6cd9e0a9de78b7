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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidParamName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want bool
	}{
		{"presenter", true},
		{"_private", true},
		{"id-2", true},
		{"id_2", true},
		{"2id", false},
		{"-id", false},
		{"", false},
		{"has space", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, isValidParamName(tc.name), "name %q", tc.name)
	}
}

func TestSplitRegexDefault(t *testing.T) {
	t.Parallel()

	cases := []struct {
		rest           string
		wantRegex      string
		wantDefault    string
		wantHasDefault bool
	}{
		{"", "", "", false},
		{`\d+`, `\d+`, "", false},
		{"home", "", "home", true},
		{`\d+ 1`, `\d+`, "1", true},
	}
	for _, tc := range cases {
		regex, def, hasDefault := splitRegexDefault(tc.rest)
		assert.Equal(t, tc.wantRegex, regex, "rest %q regex", tc.rest)
		assert.Equal(t, tc.wantDefault, def, "rest %q default", tc.rest)
		assert.Equal(t, tc.wantHasDefault, hasDefault, "rest %q hasDefault", tc.rest)
	}
}

func TestPath_HasPlaceholders(t *testing.T) {
	t.Parallel()

	m := MustCompile("<presenter>/<action>")
	assert.True(t, m.Path.HasPlaceholders())

	m = MustCompile("about/contact")
	assert.False(t, m.Path.HasPlaceholders())

	m = MustCompile("about[/<section>]")
	assert.True(t, m.Path.HasPlaceholders())
}
