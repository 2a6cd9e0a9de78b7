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
	"net/netip"
	"regexp"
	"strings"
)

// SplitHost derives the %tld%, %domain%, and %sld% components of host.
//
// A host that parses as an IPv4 address is treated as a single label:
// tld and domain both equal the address text and sld is empty. Dotted
// hostnames are split on '.'; a single-label host (no dots) has domain
// equal to that label and an empty sld.
func SplitHost(host string) (tld, domain, sld string) {
	if addr, err := netip.ParseAddr(host); err == nil && addr.Is4() {
		return host, host, ""
	}

	labels := strings.Split(host, ".")
	n := len(labels)
	tld = labels[n-1]
	if n == 1 {
		return tld, tld, ""
	}
	sld = labels[n-2]
	domain = sld + "." + tld
	return tld, domain, sld
}

// ExpandDomain substitutes %tld%, %domain%, and %sld% in pattern with the
// components derived from host. Substitution is purely textual; a
// RouteList uses the result as the host of a domain-scoped reference.
func ExpandDomain(pattern, host string) string {
	tld, domain, sld := SplitHost(host)
	r := strings.NewReplacer("%tld%", tld, "%domain%", domain, "%sld%", sld)
	return r.Replace(pattern)
}

// expandLiterals returns a copy of p with %tld%/%domain%/%sld% substituted
// inside literal text only; placeholders and nested optionals are walked
// but left structurally intact.
func expandLiterals(p Path, tld, domain, sld string) Path {
	r := strings.NewReplacer("%tld%", tld, "%domain%", domain, "%sld%", sld)
	out := Path{Segments: make([]Segment, len(p.Segments))}
	for si, seg := range p.Segments {
		newSeg := Segment{Parts: make([]Part, len(seg.Parts))}
		for pi, part := range seg.Parts {
			switch part.Kind {
			case PartLiteral:
				newSeg.Parts[pi] = Part{Kind: PartLiteral, Literal: r.Replace(part.Literal)}
			case PartOptional:
				inner := expandLiterals(*part.Optional, tld, domain, sld)
				newSeg.Parts[pi] = Part{Kind: PartOptional, Optional: &inner}
			default:
				newSeg.Parts[pi] = part
			}
		}
		out.Segments[si] = newSeg
	}
	return out
}

// domainTokenFragments maps each magic domain token to the regex fragment
// that stands in for it when a host pattern is compiled for matching: a
// %tld% or %sld% is one label, a %domain% is the last two labels joined.
// Unlike a named placeholder, these tokens do not bind a captured value by
// substitution — the concrete value they stand for is only known once a
// real host (for matching) or reference host (for construction) exists,
// so matching treats them as structural wildcards rather than attempting
// the self-referential "derive from the very host being tested" reading
// of the textual substitution rule.
var domainTokenFragments = map[string]string{
	"%tld%":    `[^.]+`,
	"%sld%":    `[^.]+`,
	"%domain%": `[^.]+\.[^.]+`,
}

// quoteDomainAware quotes s for use inside a regular expression, except
// that occurrences of %tld%, %sld%, and %domain% are left as their
// wildcard regex fragments instead of being escaped literally.
func quoteDomainAware(s string) string {
	var b strings.Builder
	rest := s
	for len(rest) > 0 {
		bestIdx := -1
		bestTok, bestFrag := "", ""
		for tok, frag := range domainTokenFragments {
			if i := strings.Index(rest, tok); i >= 0 && (bestIdx == -1 || i < bestIdx) {
				bestIdx, bestTok, bestFrag = i, tok, frag
			}
		}
		if bestIdx == -1 {
			b.WriteString(regexp.QuoteMeta(rest))
			break
		}
		b.WriteString(regexp.QuoteMeta(rest[:bestIdx]))
		b.WriteString(bestFrag)
		rest = rest[bestIdx+len(bestTok):]
	}
	return b.String()
}

// DomainMatches reports whether host satisfies a bare domain pattern —
// the same %tld%/%sld%/%domain% wildcard matching MatchHost applies to a
// mask's host part, exposed standalone for a broker's withDomain scoping,
// which stores a domain pattern with no surrounding mask.
func DomainMatches(pattern, host string) bool {
	rx, err := regexp.Compile("^" + quoteDomainAware(pattern) + "$")
	if err != nil {
		return false
	}
	return rx.MatchString(host)
}

// MatchHost reports whether host satisfies the mask's host pattern. A
// mask with no host part matches every host and returns an empty map.
func (m *Mask) MatchHost(host string) (map[string]string, bool) {
	if !m.hasHost {
		return map[string]string{}, true
	}

	match := m.hostRegex.FindStringSubmatch(host)
	if match == nil {
		return nil, false
	}

	params := make(map[string]string)
	for i, name := range m.hostRegex.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		params[name] = match[i]
	}
	return params, true
}

// BuildHost renders the mask's host pattern using params for its
// placeholders and refHost as the basis for %tld%/%domain%/%sld%
// expansion. A mask with no host part leaves refHost unchanged.
func (m *Mask) BuildHost(params map[string]string, refHost string) (string, bool) {
	if !m.hasHost {
		return refHost, true
	}

	tld, domain, sld := SplitHost(refHost)
	expanded := expandLiterals(m.hostPath, tld, domain, sld)

	var b strings.Builder
	if !buildPathInto(&b, expanded, m.Params, params) {
		return "", false
	}
	return b.String(), true
}
