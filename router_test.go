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

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urlbroker.dev/router/route"
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

func TestRouteList_DomainScoping(t *testing.T) {
	t.Parallel()

	rl := New()
	api := rl.WithDomain("%sld%.example.com")
	api.MustAddRoute("<presenter>", 0)

	params, ok := rl.Match(mustRequest(t, "https://api.example.com/x"))
	require.True(t, ok)
	assert.Equal(t, "x", params["presenter"])

	_, ok = rl.Match(mustRequest(t, "https://other.org/x"))
	assert.False(t, ok)
}

func TestRouteList_PathScoping(t *testing.T) {
	t.Parallel()

	rl := New()
	admin := rl.WithPath("/admin")
	admin.MustAddRoute("<presenter>", 0)

	params, ok := rl.Match(mustRequest(t, "https://example.com/admin/users"))
	require.True(t, ok)
	assert.Equal(t, "users", params["presenter"])

	_, ok = rl.Match(mustRequest(t, "https://example.com/users"))
	assert.False(t, ok)
}

func TestRouteList_PathScoping_ConstructURL(t *testing.T) {
	t.Parallel()

	rl := New()
	admin := rl.WithPath("/admin")
	admin.MustAddRoute("<presenter>", 0)
	rl.WarmupCache()

	out, ok := rl.ConstructURL(map[string]any{"presenter": "users"}, mustReference(t, "https://example.com"))
	require.True(t, ok)
	assert.Equal(t, "https://example.com/admin/users", out)
}

func TestRouteList_CacheKeySelection(t *testing.T) {
	t.Parallel()

	rl := New()
	rl.MustAddRoute("/a-detail", 0, route.WithConstant("presenter", "a"))
	rl.MustAddRoute("/b-detail", 0, route.WithConstant("presenter", "b"))
	rl.MustAddRoute("/c-detail", 0, route.WithConstant("presenter", "c"))
	rl.MustAddRoute("<presenter>/generic", 0)
	rl.WarmupCache()

	out, ok := rl.ConstructURL(map[string]any{"presenter": "b"}, mustReference(t, "https://example.com"))
	require.True(t, ok)
	assert.Equal(t, "https://example.com/b-detail", out)

	out, ok = rl.ConstructURL(map[string]any{"presenter": "zzz"}, mustReference(t, "https://example.com"))
	require.True(t, ok)
	assert.Equal(t, "https://example.com/zzz/generic", out)
}

func TestRouteList_OneWayExclusion(t *testing.T) {
	t.Parallel()

	rl := New()
	rl.MustAddRoute("<presenter>/legacy", OneWay)

	_, ok := rl.Match(mustRequest(t, "https://example.com/x/legacy"))
	assert.False(t, ok)

	out, ok := rl.ConstructURL(map[string]any{"presenter": "x"}, mustReference(t, "https://example.com"))
	require.True(t, ok)
	assert.Equal(t, "https://example.com/x/legacy", out)
}

func TestRouteList_OrderPreservation(t *testing.T) {
	t.Parallel()

	rl := New()
	rl.MustAddRoute("<presenter>", 0, route.WithName("first"))
	rl.MustAddRoute("<presenter>", 0, route.WithName("second"))

	params, ok := rl.Match(mustRequest(t, "https://example.com/x"))
	require.True(t, ok)
	assert.Equal(t, "x", params["presenter"])

	infos := rl.Routes()
	require.Len(t, infos, 2)
	assert.Equal(t, "first", infos[0].RouteInfo.Name)
	assert.Equal(t, "second", infos[1].RouteInfo.Name)
}

func TestRouteList_FindByName(t *testing.T) {
	t.Parallel()

	rl := New()
	rl.MustAddRoute("<presenter>", 0, route.WithName("first"))
	rl.MustAddRoute("<presenter>", 0, route.WithName("second"))

	ci, err := rl.FindByName("second")
	require.NoError(t, err)
	assert.Equal(t, "second", ci.RouteInfo.Name)

	_, err = rl.FindByName("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRouteList_Modify_OutOfRange(t *testing.T) {
	t.Parallel()

	rl := New()
	rl.MustAddRoute("<presenter>", 0)

	err := rl.Modify(5, nil)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestRouteList_Modify_DeleteInvalidatesCache(t *testing.T) {
	t.Parallel()

	rl := New()
	rl.MustAddRoute("<presenter a>/x", 0, route.WithConstant("presenter", "a"))
	rl.WarmupCache()

	require.NoError(t, rl.Modify(0, nil))

	_, ok := rl.Match(mustRequest(t, "https://example.com/x"))
	assert.False(t, ok)

	_, ok = rl.ConstructURL(map[string]any{"presenter": "a"}, mustReference(t, "https://example.com"))
	assert.False(t, ok, "a stale dispatch cache would still construct through the deleted route")
}

func TestRouteList_CacheTransparency(t *testing.T) {
	t.Parallel()

	build := func() *RouteList {
		rl := New()
		rl.MustAddRoute("/a-detail", 0, route.WithConstant("presenter", "a"))
		rl.MustAddRoute("/b-detail", 0, route.WithConstant("presenter", "b"))
		rl.MustAddRoute("<presenter>/generic", 0)
		return rl
	}

	warmed := build()
	warmed.WarmupCache()

	cold := build() // cache builds lazily on first ConstructURL

	for _, presenter := range []string{"a", "b", "unknown"} {
		ref := mustReference(t, "https://example.com")
		gotWarm, okWarm := warmed.ConstructURL(map[string]any{"presenter": presenter}, ref)
		gotCold, okCold := cold.ConstructURL(map[string]any{"presenter": presenter}, ref)
		assert.Equal(t, okWarm, okCold)
		assert.Equal(t, gotWarm, gotCold)
	}
}

func TestRouteList_EndReturnsParent(t *testing.T) {
	t.Parallel()

	rl := New()
	admin := rl.WithPath("/admin")
	assert.Same(t, rl, admin.End())
	assert.Nil(t, rl.End())
}

func TestRouteList_Diagnostics(t *testing.T) {
	t.Parallel()

	var kinds []DiagnosticKind
	handler := DiagnosticHandlerFunc(func(e DiagnosticEvent) {
		kinds = append(kinds, e.Kind)
	})

	rl := New(WithDiagnostics(handler))
	rl.MustAddRoute("<presenter>", 0)
	rl.WarmupCache()

	assert.Contains(t, kinds, DiagRouteRegistered)
	assert.Contains(t, kinds, DiagCacheWarmed)
}

func TestRouteList_Diagnostics_HighChildCount(t *testing.T) {
	t.Parallel()

	var sawHighCount bool
	handler := DiagnosticHandlerFunc(func(e DiagnosticEvent) {
		if e.Kind == DiagHighChildCount {
			sawHighCount = true
		}
	})

	rl := New(WithDiagnostics(handler))
	for i := 0; i < highChildCountThreshold; i++ {
		rl.MustAddRoute("<presenter>", 0, route.WithName(fmt.Sprintf("route-%d", i)))
	}
	assert.False(t, sawHighCount)

	rl.MustAddRoute("<presenter>", 0, route.WithName("one-too-many"))
	assert.True(t, sawHighCount)
}

func TestRouteList_Diagnostics_CacheFallback(t *testing.T) {
	t.Parallel()

	var sawFallback bool
	handler := DiagnosticHandlerFunc(func(e DiagnosticEvent) {
		if e.Kind == DiagCacheFallback {
			sawFallback = true
		}
	})

	rl := New(WithDiagnostics(handler))
	rl.MustAddRoute("<presenter a>/a", 0, route.WithConstant("presenter", "a"))
	rl.WarmupCache()

	_, _ = rl.ConstructURL(map[string]any{}, mustReference(t, "https://example.com"))
	assert.True(t, sawFallback)
}
