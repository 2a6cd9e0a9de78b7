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
	"net/url"
	"strings"

	"urlbroker.dev/router/filter"
	"urlbroker.dev/router/mask"
	"urlbroker.dev/router/urlview"
)

// Route owns one compiled Mask plus the constant parameters and filter
// pipeline wrapped around it.
type Route struct {
	raw       string
	mask      *mask.Mask
	constants map[string]string
	pipeline  *filter.Pipeline

	name        string
	description string
	tags        []string
}

// Info is a read-only snapshot of a Route's registration-time metadata,
// used by introspection and diagnostics callers that want to describe a
// route without reaching into its internals.
type Info struct {
	Mask               string
	ConstantParameters map[string]string
	Name               string
	Description        string
	Tags               []string
}

// New compiles maskRaw and applies opts, returning a Route or a
// MaskSyntax/DuplicateParameter error.
func New(maskRaw string, opts ...Option) (*Route, error) {
	m, err := mask.Compile(maskRaw)
	if err != nil {
		return nil, err
	}

	r := &Route{
		raw:       maskRaw,
		mask:      m,
		constants: make(map[string]string),
		pipeline:  filter.New(),
	}
	for _, opt := range opts {
		opt(r)
	}

	for name, value := range r.constants {
		p, declared := m.Params[name]
		if !declared {
			continue
		}
		if p.HasDefault && p.Default == value {
			continue
		}
		return nil, constantCollisionErr(maskRaw, name, value, p.Default)
	}

	return r, nil
}

// MustNew is like New but panics on error. Intended for package-level
// route tables built at startup.
func MustNew(maskRaw string, opts ...Option) *Route {
	r, err := New(maskRaw, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// GetConstantParameters returns a copy of the parameters this route
// fixes regardless of the request, for a broker's cache-key selection.
func (r *Route) GetConstantParameters() map[string]string {
	out := make(map[string]string, len(r.constants))
	for k, v := range r.constants {
		out[k] = v
	}
	return out
}

// Info returns a snapshot of this route's registration-time metadata.
func (r *Route) Info() Info {
	return Info{
		Mask:               r.raw,
		ConstantParameters: r.GetConstantParameters(),
		Name:               r.name,
		Description:        r.description,
		Tags:               append([]string(nil), r.tags...),
	}
}

func (r *Route) String() string {
	if len(r.constants) == 0 {
		return r.raw
	}
	parts := make([]string, 0, len(r.constants))
	for k, v := range r.constants {
		parts = append(parts, fmt.Sprintf("%s=%s", k, v))
	}
	return fmt.Sprintf("%s (%s)", r.raw, strings.Join(parts, ", "))
}

// Match reports whether req satisfies this route's mask, returning a
// mapping with every placeholder's resolved value, every defaulted
// parameter, every constant parameter, and any residual query parameter
// not named by the mask. A host, path, or filter mismatch returns
// (nil, false); Match never errors.
func (r *Route) Match(req urlview.Request) (map[string]any, bool) {
	relPath := strings.TrimPrefix(req.RelativePath(), "/")
	raw, absent, ok := r.mask.MatchPath(relPath)
	if !ok {
		return nil, false
	}

	if r.mask.IsAbsolute() {
		hostParams, ok := r.mask.MatchHost(req.Host())
		if !ok {
			return nil, false
		}
		for k, v := range hostParams {
			raw[k] = v
		}
	}

	values, ok := r.pipeline.Inbound(raw)
	if !ok {
		return nil, false
	}

	for _, name := range absent {
		values[name] = nil
	}

	for name, value := range r.constants {
		values[name] = value
	}

	for key, vals := range req.Query() {
		if _, named := r.mask.Params[key]; named {
			continue
		}
		if _, isConstant := r.constants[key]; isConstant {
			continue
		}
		if len(vals) > 0 {
			values[key] = vals[0]
		}
	}

	return values, true
}

// ConstructURL renders an absolute URL anchored at ref, filling the
// mask's placeholders from params. It returns (string, false) when a
// required placeholder is missing, a supplied value fails its regex, or
// a filter rejects the value. Parameters not consumed by the mask become
// query-string entries.
func (r *Route) ConstructURL(params map[string]any, ref urlview.Reference) (string, bool) {
	callerText, ok := r.pipeline.Outbound(params)
	if !ok {
		return "", false
	}

	combined := make(map[string]string, len(callerText)+len(r.constants))
	for k, v := range callerText {
		combined[k] = v
	}
	for k, v := range r.constants {
		if callerValue, present := callerText[k]; present && callerValue != v {
			return "", false
		}
		combined[k] = v
	}

	hostStr, ok := r.mask.BuildHost(combined, ref.Host())
	if !ok {
		return "", false
	}
	pathStr, ok := r.mask.BuildPath(combined)
	if !ok {
		return "", false
	}

	query := url.Values{}
	for name, text := range callerText {
		if _, named := r.mask.Params[name]; named {
			continue
		}
		if _, isConstant := r.constants[name]; isConstant {
			continue
		}
		query.Set(name, text)
	}

	result := ref.WithHost(hostStr).WithPath(pathStr)
	out := result.String()
	if len(query) > 0 {
		out += "?" + query.Encode()
	}
	return out, true
}
