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

import "urlbroker.dev/router/filter"

// Option configures a Route at construction. Options are applied in the
// order given to New.
type Option func(*Route)

// WithConstant fixes name to value for every match and construction; it
// never appears in the mask's path and is exposed to a broker for
// cache-key selection via GetConstantParameters.
func WithConstant(name, value string) Option {
	return func(r *Route) { r.constants[name] = value }
}

// WithFilter registers the inbound/outbound filters for one mask
// parameter.
func WithFilter(name string, f filter.Params) Option {
	return func(r *Route) { r.pipeline.SetParam(name, f) }
}

// WithGlobalIn registers the whole-mapping filter applied immediately
// after the per-parameter inbound pass, on the match path.
func WithGlobalIn(f filter.Global) Option {
	return func(r *Route) { r.pipeline.SetGlobalIn(f) }
}

// WithGlobalOut registers the whole-mapping filter applied immediately
// before the per-parameter outbound pass, on the construct path.
func WithGlobalOut(f filter.Global) Option {
	return func(r *Route) { r.pipeline.SetGlobalOut(f) }
}

// WithName attaches a human-readable name used by Info and diagnostics.
func WithName(name string) Option {
	return func(r *Route) { r.name = name }
}

// WithDescription attaches free-form documentation used by Info.
func WithDescription(description string) Option {
	return func(r *Route) { r.description = description }
}

// WithTags attaches free-form labels used by Info, mirroring the
// category tags a route table commonly groups routes by.
func WithTags(tags ...string) Option {
	return func(r *Route) { r.tags = append(r.tags, tags...) }
}
