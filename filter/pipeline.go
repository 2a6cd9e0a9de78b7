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

// Pipeline holds the per-parameter and whole-mapping filters a Route
// applies around a Mask's match/build text. A zero-value Pipeline is
// usable and behaves as a pure pass-through.
type Pipeline struct {
	params    map[string]Params
	globalIn  Global
	globalOut Global
}

// New returns an empty Pipeline.
func New() *Pipeline {
	return &Pipeline{params: make(map[string]Params)}
}

// SetParam registers the inbound/outbound filters for one parameter.
func (p *Pipeline) SetParam(name string, f Params) {
	if p.params == nil {
		p.params = make(map[string]Params)
	}
	p.params[name] = f
}

// SetGlobalIn sets the filter applied to the whole mapping immediately
// after the per-parameter inbound pass, on the match path.
func (p *Pipeline) SetGlobalIn(f Global) { p.globalIn = f }

// SetGlobalOut sets the filter applied to the whole mapping immediately
// before the per-parameter outbound pass, on the construct path.
func (p *Pipeline) SetGlobalOut(f Global) { p.globalOut = f }

// Inbound runs raw per the pipeline's filter order: per-parameter inbound
// filters are applied to each entry of raw, then globalIn runs over the
// assembled mapping. Any rejection at either stage rejects the whole call.
func (p *Pipeline) Inbound(raw map[string]string) (map[string]any, bool) {
	out := make(map[string]any, len(raw))
	for name, text := range raw {
		if f, ok := p.params[name]; ok && f.In != nil {
			value, ok := f.In(text)
			if !ok {
				return nil, false
			}
			out[name] = value
			continue
		}
		out[name] = text
	}

	if p.globalIn == nil {
		return out, true
	}
	return p.globalIn(out)
}

// Outbound runs values through globalOut, then through each parameter's
// outbound filter (or ToString as the default), returning the rendered
// text for every entry that survives. Any rejection at either stage
// rejects the whole call.
func (p *Pipeline) Outbound(values map[string]any) (map[string]string, bool) {
	if p.globalOut != nil {
		v, ok := p.globalOut(values)
		if !ok {
			return nil, false
		}
		values = v
	}

	out := make(map[string]string, len(values))
	for name, value := range values {
		if f, ok := p.params[name]; ok && f.Out != nil {
			text, ok := f.Out(value)
			if !ok {
				return nil, false
			}
			out[name] = text
			continue
		}
		text, ok := ToString(value)
		if !ok {
			return nil, false
		}
		out[name] = text
	}
	return out, true
}
