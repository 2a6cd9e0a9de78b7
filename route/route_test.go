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
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urlbroker.dev/router/filter"
	"urlbroker.dev/router/urlview"
)

func mustRequest(t *testing.T, raw string) urlview.Request {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return urlview.NewRequest(u)
}

func mustReference(t *testing.T, raw string) urlview.Reference {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return urlview.NewReference(u)
}

func TestRoute_PlainPresenter(t *testing.T) {
	t.Parallel()

	r := MustNew("<presenter>")

	params, ok := r.Match(mustRequest(t, "https://example.com/homepage"))
	require.True(t, ok)
	assert.Equal(t, map[string]any{"presenter": "homepage"}, params)

	out, ok := r.ConstructURL(map[string]any{"presenter": "homepage"}, mustReference(t, "https://example.com"))
	require.True(t, ok)
	assert.Equal(t, "https://example.com/homepage", out)
}

func TestRoute_FilterReverse(t *testing.T) {
	t.Parallel()

	strrev := func(s string) string {
		r := []rune(s)
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		return string(r)
	}

	r := MustNew("<presenter>", WithFilter("presenter", filter.Params{
		In: func(raw string) (any, bool) { return strrev(raw), true },
		Out: func(value any) (string, bool) {
			s, ok := value.(string)
			if !ok {
				return "", false
			}
			return strrev(s), true
		},
	}))

	params, ok := r.Match(mustRequest(t, "https://example.com/abc"))
	require.True(t, ok)
	assert.Equal(t, "cba", params["presenter"])

	out, ok := r.ConstructURL(map[string]any{"presenter": "cba", "test": "x"}, mustReference(t, "https://example.com"))
	require.True(t, ok)
	assert.Equal(t, "https://example.com/abc?test=x", out)
}

func TestRoute_RegexConstrained(t *testing.T) {
	t.Parallel()

	r := MustNew(`<presenter>/<action>/<id \d{1,3}>`)

	params, ok := r.Match(mustRequest(t, "https://example.com/product/detail/42"))
	require.True(t, ok)
	assert.Equal(t, map[string]any{"presenter": "product", "action": "detail", "id": "42"}, params)

	_, ok = r.Match(mustRequest(t, "https://example.com/product/detail/abcd"))
	assert.False(t, ok)

	_, ok = r.Match(mustRequest(t, "https://example.com/product/detail/9999"))
	assert.False(t, ok)
}

func TestRoute_OptionalTail(t *testing.T) {
	t.Parallel()

	r := MustNew("<presenter>[/<id>]")

	params, ok := r.Match(mustRequest(t, "https://example.com/article"))
	require.True(t, ok)
	assert.Equal(t, "article", params["presenter"])
	assert.Contains(t, params, "id")
	assert.Nil(t, params["id"])

	params, ok = r.Match(mustRequest(t, "https://example.com/article/7"))
	require.True(t, ok)
	assert.Equal(t, "7", params["id"])

	out, ok := r.ConstructURL(map[string]any{"presenter": "article"}, mustReference(t, "https://example.com"))
	require.True(t, ok)
	assert.Equal(t, "https://example.com/article", out)

	out, ok = r.ConstructURL(map[string]any{"presenter": "article", "id": "7"}, mustReference(t, "https://example.com"))
	require.True(t, ok)
	assert.Equal(t, "https://example.com/article/7", out)
}

func TestRoute_Constant(t *testing.T) {
	t.Parallel()

	r := MustNew("<action>", WithConstant("presenter", "blog"))
	assert.Equal(t, map[string]string{"presenter": "blog"}, r.GetConstantParameters())

	params, ok := r.Match(mustRequest(t, "https://example.com/show"))
	require.True(t, ok)
	assert.Equal(t, "blog", params["presenter"])
}

func TestRoute_ConstructURL_CallerConflictsWithConstant(t *testing.T) {
	t.Parallel()

	r := MustNew("/detail", WithConstant("presenter", "blog"))

	_, ok := r.ConstructURL(map[string]any{"presenter": "other"}, mustReference(t, "https://example.com"))
	assert.False(t, ok)

	out, ok := r.ConstructURL(map[string]any{"presenter": "blog"}, mustReference(t, "https://example.com"))
	require.True(t, ok)
	assert.Equal(t, "https://example.com/detail", out)
}

func TestRoute_ConstantDisagreesWithDefault(t *testing.T) {
	t.Parallel()

	_, err := New("<action home>", WithConstant("action", "other"))
	require.Error(t, err)
}

func TestRoute_FilterRejectionFailsMatch(t *testing.T) {
	t.Parallel()

	r := MustNew("<id>", WithFilter("id", filter.Params{
		In: func(raw string) (any, bool) { return nil, false },
	}))

	_, ok := r.Match(mustRequest(t, "https://example.com/anything"))
	assert.False(t, ok)
}

func TestRoute_AbsoluteHostMismatch(t *testing.T) {
	t.Parallel()

	r := MustNew("//%sld%.example.com/<presenter>")

	_, ok := r.Match(mustRequest(t, "https://other.org/x"))
	assert.False(t, ok)

	params, ok := r.Match(mustRequest(t, "https://api.example.com/x"))
	require.True(t, ok)
	assert.Equal(t, "x", params["presenter"])
}
