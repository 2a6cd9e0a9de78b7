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

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_PassThrough(t *testing.T) {
	t.Parallel()

	p := New()
	values, ok := p.Inbound(map[string]string{"id": "42"})
	require.True(t, ok)
	assert.Equal(t, any("42"), values["id"])

	text, ok := p.Outbound(values)
	require.True(t, ok)
	assert.Equal(t, "42", text["id"])
}

func TestPipeline_PerParamFilters(t *testing.T) {
	t.Parallel()

	p := New()
	p.SetParam("id", Params{
		In: func(raw string) (any, bool) {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, false
			}
			return n, true
		},
		Out: func(value any) (string, bool) {
			n, ok := value.(int)
			if !ok {
				return "", false
			}
			return strconv.Itoa(n), true
		},
	})

	values, ok := p.Inbound(map[string]string{"id": "42"})
	require.True(t, ok)
	assert.Equal(t, 42, values["id"])

	_, ok = p.Inbound(map[string]string{"id": "nope"})
	assert.False(t, ok, "a rejecting filter-in rejects the whole match")

	text, ok := p.Outbound(map[string]any{"id": 42})
	require.True(t, ok)
	assert.Equal(t, "42", text["id"])
}

func TestPipeline_GlobalFilters(t *testing.T) {
	t.Parallel()

	p := New()
	p.SetGlobalIn(func(params map[string]any) (map[string]any, bool) {
		if v, ok := params["name"].(string); ok {
			params["name"] = strings.ToUpper(v)
		}
		return params, true
	})
	p.SetGlobalOut(func(params map[string]any) (map[string]any, bool) {
		if v, ok := params["name"].(string); ok {
			params["name"] = strings.ToLower(v)
		}
		return params, true
	})

	values, ok := p.Inbound(map[string]string{"name": "blog"})
	require.True(t, ok)
	assert.Equal(t, any("BLOG"), values["name"])

	text, ok := p.Outbound(map[string]any{"name": "BLOG"})
	require.True(t, ok)
	assert.Equal(t, "blog", text["name"])
}

func TestPipeline_GlobalRejection(t *testing.T) {
	t.Parallel()

	p := New()
	p.SetGlobalIn(func(params map[string]any) (map[string]any, bool) {
		return nil, false
	})

	_, ok := p.Inbound(map[string]string{"id": "1"})
	assert.False(t, ok)
}

func TestToString_NonScalarRejected(t *testing.T) {
	t.Parallel()

	_, ok := ToString([]string{"a", "b"})
	assert.False(t, ok)

	text, ok := ToString(42)
	require.True(t, ok)
	assert.Equal(t, "42", text)
}
