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

func TestSplitHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		host   string
		tld    string
		domain string
		sld    string
	}{
		{"www.example.com", "com", "example.com", "example"},
		{"example.com", "com", "example.com", "example"},
		{"localhost", "localhost", "localhost", ""},
		{"api.staging.example.com", "com", "example.com", "example"},
		{"192.168.0.1", "192.168.0.1", "192.168.0.1", ""},
	}
	for _, tc := range cases {
		tld, domain, sld := SplitHost(tc.host)
		assert.Equal(t, tc.tld, tld, "host %q tld", tc.host)
		assert.Equal(t, tc.domain, domain, "host %q domain", tc.host)
		assert.Equal(t, tc.sld, sld, "host %q sld", tc.host)
	}
}

func TestExpandDomain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "example.com", ExpandDomain("%domain%", "www.example.com"))
	assert.Equal(t, "www.example.com", ExpandDomain("www.%domain%", "www.example.com"))
	assert.Equal(t, "example.example.com", ExpandDomain("%sld%.%domain%", "staging.example.com"))
}

func TestMask_MatchHost_DomainExpansion(t *testing.T) {
	t.Parallel()

	m := MustCompile("//%sld%.example.com/<presenter>")

	_, ok := m.MatchHost("api.example.com")
	assert.True(t, ok)

	_, ok = m.MatchHost("example.com")
	assert.False(t, ok, "no second-level label to satisfy %%sld%%")
}
