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
	"sort"

	"github.com/google/uuid"

	"urlbroker.dev/router/filter"
)

// dispatchCache is the construction-time dispatch index built by
// buildDispatchCache. cacheKey is the parameter name chosen as
// discriminator, or "" when no non-one-way child pins any constant
// parameter; ranks maps a discriminator value (or the sentinel "*") to an
// ordered bucket of candidate routers.
type dispatchCache struct {
	cacheKey    string
	hasCacheKey bool
	ranks       map[string][]Router
	generation  string
}

// toScalarText renders an outbound parameter value to text for cache-key
// bucketing, reusing the same scalar/non-scalar boundary the filter
// pipeline's outbound pass uses.
func toScalarText(value any) (string, bool) {
	return filter.ToString(value)
}

// buildDispatchCache runs in two passes: first determine the full set of
// discriminator values, then scan children once per bucket so that each v
// bucket is the insertion-order merge of routers pinned to v and routers
// with no opinion on the discriminator (the `*` bucket).
func buildDispatchCache(entries []entry) *dispatchCache {
	var candidates, all []Router
	for _, e := range entries {
		all = append(all, e.router)
		if e.flags&OneWay != 0 {
			continue
		}
		candidates = append(candidates, e.router)
	}

	cacheKey, hasCacheKey := chooseCacheKey(candidates)

	ranks := make(map[string][]Router)
	if !hasCacheKey {
		ranks["*"] = all
		return &dispatchCache{ranks: ranks, generation: uuid.New().String()}
	}

	var valueOrder []string
	seen := make(map[string]bool)
	for _, r := range all {
		if v, pinned := constantParamsOf(r)[cacheKey]; pinned {
			if !seen[v] {
				seen[v] = true
				valueOrder = append(valueOrder, v)
			}
		}
	}

	star := make([]Router, 0, len(all))
	for _, r := range all {
		if _, pinned := constantParamsOf(r)[cacheKey]; !pinned {
			star = append(star, r)
		}
	}
	ranks["*"] = star

	for _, v := range valueOrder {
		bucket := make([]Router, 0, len(all))
		for _, r := range all {
			val, pinned := constantParamsOf(r)[cacheKey]
			if !pinned || val == v {
				bucket = append(bucket, r)
			}
		}
		ranks[v] = bucket
	}

	return &dispatchCache{cacheKey: cacheKey, hasCacheKey: true, ranks: ranks, generation: uuid.New().String()}
}

// chooseCacheKey picks the constant-parameter name with the most distinct
// values across candidates, ties broken by first occurrence across the
// candidates in insertion order.
func chooseCacheKey(candidates []Router) (string, bool) {
	var nameOrder []string
	seenName := make(map[string]bool)
	valuesByName := make(map[string]map[string]bool)

	for _, r := range candidates {
		params := constantParamsOf(r)
		names := make([]string, 0, len(params))
		for name := range params {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			if !seenName[name] {
				seenName[name] = true
				nameOrder = append(nameOrder, name)
				valuesByName[name] = make(map[string]bool)
			}
			valuesByName[name][params[name]] = true
		}
	}

	best := 0
	bestName := ""
	for _, name := range nameOrder {
		if n := len(valuesByName[name]); n > best {
			best = n
			bestName = name
		}
	}
	return bestName, bestName != ""
}
