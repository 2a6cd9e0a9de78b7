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
	"regexp"
	"strings"
)

// Fixity classifies how a parameter relates to the path text.
type Fixity uint8

const (
	// FixityRequired placeholders have no default and sit in a mandatory
	// segment; they must be present to match and must be supplied to construct.
	FixityRequired Fixity = iota
	// FixityOptional placeholders have a default and sit in a mandatory
	// segment; a missing construct value falls back to the default.
	FixityOptional
	// FixityPathOptional placeholders live inside a '[...]' group and may be
	// entirely absent from the URL text.
	FixityPathOptional
	// FixityConstant parameters are fixed by route metadata, not the mask.
	FixityConstant
)

func (f Fixity) String() string {
	switch f {
	case FixityRequired:
		return "required"
	case FixityOptional:
		return "optional"
	case FixityPathOptional:
		return "path-optional"
	case FixityConstant:
		return "constant"
	default:
		return "unknown"
	}
}

// Param describes one placeholder declared anywhere in a mask (path or host).
type Param struct {
	Name       string
	Regex      string // raw fragment as written in the mask, "" for the implicit default
	Default    string
	HasDefault bool
	Fixity     Fixity

	compiled *regexp.Regexp // "^(regex)$", for validating a single value
}

// effectiveRegex returns the regex fragment used when building the full
// path/host regex: the declared fragment, or the segment-bounded default.
func (p *Param) effectiveRegex() string {
	if p.Regex != "" {
		return p.Regex
	}
	return `[^/]+`
}

// Matches reports whether value satisfies this parameter's regex.
func (p *Param) Matches(value string) bool {
	if p.compiled == nil {
		return true
	}
	return p.compiled.MatchString(value)
}

// Mask is the immutable compiled form of a mask string.
type Mask struct {
	Raw           string
	HostRaw       string // "" for a relative (host-less) mask
	Path          Path
	TrailingSlash bool
	Params        map[string]*Param
	ParamOrder    []string // declaration order: path first (left to right), then host

	hostPath  Path // host parsed with the same grammar as path (dots are literals)
	hasHost   bool
	pathRegex *regexp.Regexp
	hostRegex *regexp.Regexp
}

// IsAbsolute reports whether the mask declares a host part.
func (m *Mask) IsAbsolute() bool { return m.hasHost }

// Compile parses a mask string into an immutable Mask value.
//
// Compile is a pure function: the same mask string always yields an
// equivalent Mask, so callers may share compiled masks freely.
func Compile(raw string) (*Mask, error) {
	hostRaw := ""
	hostBase := 0
	pathStart := 0

	if strings.HasPrefix(raw, "//") {
		hostBase = 2
		afterSlashes := raw[2:]
		if idx := strings.IndexByte(afterSlashes, '/'); idx >= 0 {
			hostRaw = afterSlashes[:idx]
			pathStart = 2 + idx
		} else {
			hostRaw = afterSlashes
			pathStart = len(raw)
		}
	}

	m := &Mask{Raw: raw, HostRaw: hostRaw, Params: make(map[string]*Param)}

	sharedSeen := make(map[string]int)

	if hostRaw != "" {
		hp := newParser(raw, hostRaw, hostBase)
		hp.seen = sharedSeen
		path, err := hp.parsePath()
		if err != nil {
			return nil, err
		}
		if !hp.eof() {
			return nil, syntaxErr(raw, hp.offset(), "unexpected character in host")
		}
		m.hostPath = path
		m.hasHost = true
	}

	pathStr := raw[pathStart:]
	pathBase := pathStart

	trailingSlash := false
	if len(pathStr) > 1 && strings.HasSuffix(pathStr, "/") {
		trailingSlash = true
		pathStr = pathStr[:len(pathStr)-1]
	}
	if strings.HasPrefix(pathStr, "/") {
		pathStr = pathStr[1:]
		pathBase++
	}

	pp := newParser(raw, pathStr, pathBase)
	pp.seen = sharedSeen

	path, err := pp.parsePath()
	if err != nil {
		return nil, err
	}
	if !pp.eof() {
		return nil, syntaxErr(raw, pp.offset(), "unexpected character in path")
	}

	m.Path = path
	m.TrailingSlash = trailingSlash

	if err := m.collectParams(); err != nil {
		return nil, err
	}
	if err := m.compileParamRegexes(); err != nil {
		return nil, err
	}

	rx, err := m.buildPathRegex()
	if err != nil {
		return nil, syntaxErr(raw, 0, "invalid derived regex: "+err.Error())
	}
	m.pathRegex = rx

	if m.hasHost {
		hrx, err := m.buildHostRegex()
		if err != nil {
			return nil, syntaxErr(raw, 0, "invalid derived host regex: "+err.Error())
		}
		m.hostRegex = hrx
	}

	return m, nil
}

// MustCompile is like Compile but panics on error. Intended for
// package-level variable initialization and tests, mirroring the
// panic-on-invalid-pattern convention used elsewhere for startup-time
// configuration mistakes.
func MustCompile(raw string) *Mask {
	m, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Mask) collectParams() error {
	var walk func(p Path, inOptional bool) error
	walk = func(p Path, inOptional bool) error {
		for _, seg := range p.Segments {
			for _, part := range seg.Parts {
				switch part.Kind {
				case PartPlaceholder:
					ph := part.Placeholder
					fixity := FixityRequired
					switch {
					case inOptional:
						fixity = FixityPathOptional
					case ph.HasDefault:
						fixity = FixityOptional
					}
					param := &Param{
						Name:       ph.Name,
						Regex:      ph.Regex,
						Default:    ph.Default,
						HasDefault: ph.HasDefault,
						Fixity:     fixity,
					}
					m.Params[ph.Name] = param
					m.ParamOrder = append(m.ParamOrder, ph.Name)
				case PartOptional:
					if err := walk(*part.Optional, true); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
	if err := walk(m.Path, false); err != nil {
		return err
	}
	if m.hasHost {
		if err := walk(m.hostPath, false); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mask) compileParamRegexes() error {
	for _, name := range m.ParamOrder {
		p := m.Params[name]
		rx, err := regexp.Compile("^(?:" + p.effectiveRegex() + ")$")
		if err != nil {
			return syntaxErr(m.Raw, 0, "invalid regex for parameter "+name+": "+err.Error())
		}
		p.compiled = rx
	}
	return nil
}

func validateRegexFragment(fragment string) error {
	_, err := regexp.Compile(fragment)
	return err
}

// buildPathRegex derives the single anchored regular expression used to
// match a whole path.
func (m *Mask) buildPathRegex() (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	if err := writePathRegex(&b, m.Path, m.Params); err != nil {
		return nil, err
	}
	if m.TrailingSlash {
		b.WriteString("/")
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}

// buildHostRegex derives the anchored regular expression used to match a
// whole host, reusing writePathRegex (a host pattern has exactly one
// segment, so the '/' separator it inserts between segments never fires).
func (m *Mask) buildHostRegex() (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	if err := writePathRegex(&b, m.hostPath, m.Params); err != nil {
		return nil, err
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}

// MatchPath reports whether path satisfies the mask's path pattern,
// returning the resolved value of every placeholder (including those
// inside matched optional groups) plus every defaulted optional and
// path-optional parameter that the text omitted. absent lists every
// path-optional parameter with no default that the text omitted — its
// value is null rather than text, so the caller should carry it through
// as an explicit nil rather than as filtered text.
func (m *Mask) MatchPath(path string) (values map[string]string, absent []string, ok bool) {
	loc := m.pathRegex.FindStringSubmatchIndex(path)
	if loc == nil {
		return nil, nil, false
	}

	result := make(map[string]string, len(m.ParamOrder))
	found := make(map[string]bool, len(m.ParamOrder))
	for i, name := range m.pathRegex.SubexpNames() {
		if i == 0 || name == "" || loc[2*i] < 0 {
			continue
		}
		result[name] = path[loc[2*i]:loc[2*i+1]]
		found[name] = true
	}

	for _, name := range m.ParamOrder {
		if found[name] {
			continue
		}
		p := m.Params[name]
		switch p.Fixity {
		case FixityOptional:
			result[name] = p.Default
		case FixityPathOptional:
			if p.HasDefault {
				result[name] = p.Default
			} else {
				absent = append(absent, name)
			}
		}
	}
	return result, absent, true
}

// BuildPath renders the mask's path using values for its placeholders.
// A placeholder without a supplied value falls back to its default; one
// with neither a value nor a default fails the build unless it lives
// inside an optional group with no other satisfied placeholder, in which
// case the whole group is omitted from the output.
func (m *Mask) BuildPath(values map[string]string) (string, bool) {
	var b strings.Builder
	if !buildPathInto(&b, m.Path, m.Params, values) {
		return "", false
	}
	s := "/" + b.String()
	if m.TrailingSlash {
		s += "/"
	}
	return s, true
}

// buildPathInto renders p into b using values, consulting paramTable for
// defaults and regex validation. It reports false when a required
// placeholder cannot be satisfied.
func buildPathInto(b *strings.Builder, p Path, paramTable map[string]*Param, values map[string]string) bool {
	for i, seg := range p.Segments {
		if i > 0 {
			b.WriteString("/")
		}
		if !buildSegmentInto(b, seg, paramTable, values) {
			return false
		}
	}
	return true
}

func buildSegmentInto(b *strings.Builder, seg Segment, paramTable map[string]*Param, values map[string]string) bool {
	for _, part := range seg.Parts {
		switch part.Kind {
		case PartLiteral:
			b.WriteString(part.Literal)
		case PartPlaceholder:
			name := part.Placeholder.Name
			param := paramTable[name]
			val, has := values[name]
			if !has {
				if param.HasDefault {
					val = param.Default
				} else {
					return false
				}
			}
			if !param.Matches(val) {
				return false
			}
			b.WriteString(val)
		case PartOptional:
			if !optionalSatisfied(*part.Optional, paramTable, values) {
				continue
			}
			if !buildPathInto(b, *part.Optional, paramTable, values) {
				return false
			}
		}
	}
	return true
}

// optionalSatisfied reports whether at least one placeholder inside an
// optional group receives a non-default value on construct, which is the
// condition under which the group is rendered at all; otherwise it is
// silently omitted rather than treated as a build failure.
func optionalSatisfied(p Path, paramTable map[string]*Param, values map[string]string) bool {
	for _, seg := range p.Segments {
		for _, part := range seg.Parts {
			switch part.Kind {
			case PartPlaceholder:
				name := part.Placeholder.Name
				val, has := values[name]
				if !has {
					continue
				}
				param := paramTable[name]
				if param.HasDefault && val == param.Default {
					continue
				}
				return true
			case PartOptional:
				if optionalSatisfied(*part.Optional, paramTable, values) {
					return true
				}
			}
		}
	}
	return false
}

func writePathRegex(b *strings.Builder, p Path, params map[string]*Param) error {
	for i, seg := range p.Segments {
		if i > 0 {
			b.WriteString("/")
		}
		for _, part := range seg.Parts {
			switch part.Kind {
			case PartLiteral:
				b.WriteString(quoteDomainAware(part.Literal))
			case PartPlaceholder:
				param := params[part.Placeholder.Name]
				b.WriteString("(?P<")
				b.WriteString(part.Placeholder.Name)
				b.WriteString(">")
				b.WriteString(param.effectiveRegex())
				b.WriteString(")")
			case PartOptional:
				b.WriteString("(?:")
				if err := writePathRegex(b, *part.Optional, params); err != nil {
					return err
				}
				b.WriteString(")?")
			}
		}
	}
	return nil
}
