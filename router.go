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
	"strings"
	"sync"

	"urlbroker.dev/router/mask"
	"urlbroker.dev/router/route"
	"urlbroker.dev/router/urlview"
)

// Router is anything that can match an inbound request and construct an
// outbound URL. *route.Route and *RouteList both satisfy it, so a
// RouteList may nest arbitrarily deep.
type Router interface {
	Match(req urlview.Request) (map[string]any, bool)
	ConstructURL(params map[string]any, ref urlview.Reference) (string, bool)
}

// Flag is a bitmask attached to a child Router when it is added to a
// RouteList.
type Flag int

const (
	// OneWay marks a router as construction-only: it never contributes to
	// Match and never contributes a cache-key candidate.
	OneWay Flag = 1 << iota
)

// constantParamSource is implemented by routers able to name parameters
// whose value is fixed regardless of request, for dispatch-cache bucketing.
// *route.Route implements it; a nested *RouteList does not pin anything and
// so always falls into the `*` bucket.
type constantParamSource interface {
	GetConstantParameters() map[string]string
}

func constantParamsOf(r Router) map[string]string {
	if cp, ok := r.(constantParamSource); ok {
		return cp.GetConstantParameters()
	}
	return nil
}

type entry struct {
	router Router
	flags  Flag
}

// RouteList is an ordered broker of Routers: Match dispatches to the
// first child whose Match succeeds, in insertion order; ConstructURL
// consults a lazily built dispatch cache that buckets children by a
// discriminating constant parameter so construction need not linear-scan
// every child.
//
// A RouteList may be scoped with WithDomain or WithPath, producing a
// nested child RouteList gated on a host pattern or a path prefix; End
// returns to the parent. RouteList itself satisfies Router, so nesting is
// unbounded.
type RouteList struct {
	mu sync.RWMutex

	entries []entry

	hasDomain     bool
	domainPattern string
	hasPath       bool
	pathPrefix    string

	parent      *RouteList
	diagnostics DiagnosticHandler

	cache    *dispatchCache
	refCache map[urlview.Reference]urlview.Reference
}

// New creates an empty, unscoped RouteList.
func New(opts ...Option) *RouteList {
	rl := &RouteList{}
	for _, opt := range opts {
		opt(rl)
	}
	return rl
}

func (rl *RouteList) emit(kind DiagnosticKind, message string, fields map[string]any) {
	if rl.diagnostics == nil {
		return
	}
	rl.diagnostics.OnDiagnostic(DiagnosticEvent{Kind: kind, Message: message, Fields: fields})
}

// highChildCountThreshold is the direct-child count above which a RouteList
// emits DiagHighChildCount, a sign the table should be split with
// WithDomain/WithPath instead of growing a single flat list.
const highChildCountThreshold = 64

// Add appends router to the list with the given flags, invalidating the
// dispatch cache.
func (rl *RouteList) Add(router Router, flags Flag) *RouteList {
	rl.mu.Lock()
	rl.entries = append(rl.entries, entry{router: router, flags: flags})
	count := len(rl.entries)
	rl.invalidateLocked()
	rl.mu.Unlock()

	rl.emit(DiagRouteRegistered, "router registered", map[string]any{"flags": flags})
	rl.warnIfHighChildCount(count)
	return rl
}

// Prepend inserts router at the front of the list with the given flags,
// invalidating the dispatch cache.
func (rl *RouteList) Prepend(router Router, flags Flag) *RouteList {
	rl.mu.Lock()
	rl.entries = append([]entry{{router: router, flags: flags}}, rl.entries...)
	count := len(rl.entries)
	rl.invalidateLocked()
	rl.mu.Unlock()

	rl.emit(DiagRouteRegistered, "router registered (prepended)", map[string]any{"flags": flags})
	rl.warnIfHighChildCount(count)
	return rl
}

func (rl *RouteList) warnIfHighChildCount(count int) {
	if count <= highChildCountThreshold {
		return
	}
	rl.emit(DiagHighChildCount, "RouteList has more than 64 direct children, consider splitting with WithDomain/WithPath", map[string]any{
		"child_count":    count,
		"recommendation": "use WithDomain or WithPath to split this list into scoped sub-lists",
	})
}

// Modify replaces the router at index, or removes it when router is nil.
// It returns ErrOutOfRange when index is outside the current list.
func (rl *RouteList) Modify(index int, router Router) error {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if index < 0 || index >= len(rl.entries) {
		return ErrOutOfRange
	}

	if router == nil {
		rl.entries = append(rl.entries[:index], rl.entries[index+1:]...)
	} else {
		rl.entries[index].router = router
	}
	rl.invalidateLocked()
	return nil
}

// AddRoute compiles maskRaw into a Route, applies opts, and adds it to the
// list with the given flags. It returns a MaskSyntax or DuplicateParameter
// error rather than adding anything on failure.
func (rl *RouteList) AddRoute(maskRaw string, flags Flag, opts ...route.Option) (*route.Route, error) {
	r, err := route.New(maskRaw, opts...)
	if err != nil {
		return nil, err
	}
	rl.Add(r, flags)
	return r, nil
}

// MustAddRoute is like AddRoute but panics on error, for route tables
// built once at startup.
func (rl *RouteList) MustAddRoute(maskRaw string, flags Flag, opts ...route.Option) *route.Route {
	r, err := rl.AddRoute(maskRaw, flags, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// WithDomain creates a nested RouteList scoped to domainPattern — a host
// mask using %tld%/%domain%/%sld% substitution — attaches it as a child
// of rl, and returns the nested list.
func (rl *RouteList) WithDomain(domainPattern string) *RouteList {
	child := &RouteList{
		hasDomain:     true,
		domainPattern: domainPattern,
		parent:        rl,
		diagnostics:   rl.diagnostics,
	}
	rl.Add(child, 0)
	return child
}

// WithPath creates a nested RouteList scoped to pathPrefix, attaches it as
// a child of rl, and returns the nested list. pathPrefix is used exactly
// as given: callers that want trailing-slash-tolerant scoping should
// normalize it themselves at registration time.
func (rl *RouteList) WithPath(pathPrefix string) *RouteList {
	child := &RouteList{
		hasPath:     true,
		pathPrefix:  pathPrefix,
		parent:      rl,
		diagnostics: rl.diagnostics,
	}
	rl.Add(child, 0)
	return child
}

// End returns the parent of a RouteList created by WithDomain or
// WithPath, or nil for a root list. The back-reference is non-owning: it
// exists solely to support fluent setup.
func (rl *RouteList) End() *RouteList {
	return rl.parent
}

// Match gates req against this list's domain/path scope, then dispatches
// to the first non-one-way child whose Match succeeds, in insertion
// order.
func (rl *RouteList) Match(req urlview.Request) (map[string]any, bool) {
	if rl.hasDomain && !mask.DomainMatches(rl.domainPattern, req.Host()) {
		return nil, false
	}

	view := req
	if rl.hasPath {
		rel := req.RelativePath()
		if !strings.HasPrefix(rel, rl.pathPrefix) {
			return nil, false
		}
		view = req.WithPath(req.BasePath()+rl.pathPrefix, strings.TrimPrefix(rel, rl.pathPrefix))
	}

	rl.mu.RLock()
	snapshot := append([]entry(nil), rl.entries...)
	rl.mu.RUnlock()

	for _, e := range snapshot {
		if e.flags&OneWay != 0 {
			continue
		}
		if params, ok := e.router.Match(view); ok {
			return params, true
		}
	}
	return nil, false
}

// ConstructURL adjusts ref for this list's domain/path scope (memoised per
// reference), ensures the dispatch cache is warm, selects the candidate
// bucket from params, and returns the first non-null construction from
// that bucket.
func (rl *RouteList) ConstructURL(params map[string]any, ref urlview.Reference) (string, bool) {
	adjusted := rl.adjustReference(ref)

	bucket := rl.selectBucket(params)
	for _, r := range bucket {
		if out, ok := r.ConstructURL(params, adjusted); ok {
			return out, true
		}
	}
	return "", false
}

func (rl *RouteList) adjustReference(ref urlview.Reference) urlview.Reference {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.refCache == nil {
		rl.refCache = make(map[urlview.Reference]urlview.Reference)
	}
	if cached, ok := rl.refCache[ref]; ok {
		return cached
	}

	adjusted := ref
	if rl.hasDomain {
		adjusted = adjusted.WithHost(mask.ExpandDomain(rl.domainPattern, ref.Host()))
	}
	if rl.hasPath {
		adjusted = &prefixedReference{Reference: adjusted, prefix: rl.pathPrefix}
	}

	rl.refCache[ref] = adjusted
	return adjusted
}

// prefixedReference decorates a Reference so that WithPath prepends a
// fixed prefix ahead of whatever path a nested child constructs, letting
// a path-scoped RouteList compose with children that only know their own
// mask-relative path.
type prefixedReference struct {
	urlview.Reference
	prefix string
}

func (p *prefixedReference) WithPath(path string) urlview.Reference {
	return p.Reference.WithPath(p.prefix + path)
}

// WithHost must also re-wrap, or a construct chain of
// ref.WithHost(h).WithPath(p) — exactly what Route.ConstructURL does —
// would drop the prefix after the first call.
func (p *prefixedReference) WithHost(host string) urlview.Reference {
	return &prefixedReference{Reference: p.Reference.WithHost(host), prefix: p.prefix}
}

func (p *prefixedReference) Path() string {
	return p.prefix + p.Reference.Path()
}

// WarmupCache eagerly (re)builds the dispatch cache, recursing into any
// nested RouteList children first. Calling it is optional — the cache
// also builds lazily on first ConstructURL after a mutation — but eager
// warmup at boot is the recommended discipline for predictable latency
// and for publishing a RouteList safely across goroutines.
func (rl *RouteList) WarmupCache() {
	rl.mu.Lock()
	snapshot := append([]entry(nil), rl.entries...)
	rl.mu.Unlock()

	for _, e := range snapshot {
		if nested, ok := e.router.(*RouteList); ok {
			nested.WarmupCache()
		}
	}

	cache := buildDispatchCache(snapshot)

	rl.mu.Lock()
	rl.cache = cache
	rl.mu.Unlock()

	rl.emit(DiagCacheWarmed, "dispatch cache rebuilt", map[string]any{
		"generation": cache.generation,
		"cache_key":  cache.cacheKey,
		"children":   len(snapshot),
	})
}

func (rl *RouteList) ensureWarm() *dispatchCache {
	rl.mu.RLock()
	cache := rl.cache
	rl.mu.RUnlock()
	if cache != nil {
		return cache
	}
	rl.WarmupCache()
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return rl.cache
}

func (rl *RouteList) selectBucket(params map[string]any) []Router {
	cache := rl.ensureWarm()

	if !cache.hasCacheKey {
		return cache.ranks["*"]
	}

	raw, present := params[cache.cacheKey]
	if !present {
		rl.emit(DiagCacheFallback, "cache key absent, falling back to wildcard bucket", map[string]any{
			"cache_key": cache.cacheKey,
		})
		return cache.ranks["*"]
	}

	text, ok := toScalarText(raw)
	if !ok {
		rl.emit(DiagCacheFallback, "cache key value non-scalar, falling back to wildcard bucket", map[string]any{
			"cache_key": cache.cacheKey,
		})
		return cache.ranks["*"]
	}

	bucket, ok := cache.ranks[text]
	if !ok {
		rl.emit(DiagCacheFallback, "cache key value unknown, falling back to wildcard bucket", map[string]any{
			"cache_key": cache.cacheKey,
			"value":     text,
		})
		return cache.ranks["*"]
	}
	return bucket
}

func (rl *RouteList) invalidateLocked() {
	rl.cache = nil
	rl.refCache = nil
}

// GetConstantParameters always reports no constant parameters for a
// RouteList: only a Route pins a parameter's value, so a nested RouteList
// never participates in a parent's cache-key selection beyond the `*`
// bucket. This satisfies constantParamSource so a RouteList may itself be
// nested inside another RouteList's dispatch cache.
func (rl *RouteList) GetConstantParameters() map[string]string {
	return map[string]string{}
}

// ChildInfo is a read-only snapshot of one entry in a RouteList, for
// introspection tooling.
type ChildInfo struct {
	Router    Router
	Flags     Flag
	RouteInfo *route.Info // non-nil when Router is a *route.Route
}

// Routes returns a snapshot of this list's direct children in insertion
// order, without descending into nested RouteLists.
func (rl *RouteList) Routes() []ChildInfo {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	out := make([]ChildInfo, 0, len(rl.entries))
	for _, e := range rl.entries {
		ci := ChildInfo{Router: e.router, Flags: e.flags}
		if r, ok := e.router.(*route.Route); ok {
			info := r.Info()
			ci.RouteInfo = &info
		}
		out = append(out, ci)
	}
	return out
}

// FindByName returns the ChildInfo for the direct child *route.Route
// registered with the given name (via route.WithName), or ErrNotFound if
// no direct child carries that name. It does not descend into nested
// RouteLists.
func (rl *RouteList) FindByName(name string) (ChildInfo, error) {
	for _, ci := range rl.Routes() {
		if ci.RouteInfo != nil && ci.RouteInfo.Name == name {
			return ci, nil
		}
	}
	return ChildInfo{}, ErrNotFound
}
