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

import "strings"

// PartKind identifies which alternative of the 'part' grammar rule a Part
// holds.
type PartKind uint8

const (
	PartLiteral PartKind = iota
	PartPlaceholder
	PartOptional
)

// Placeholder is a named slot in a mask, optionally carrying a regex
// fragment and a default value.
type Placeholder struct {
	Name       string
	Regex      string // raw fragment, "" means the default "[^/]+"
	Default    string
	HasDefault bool
	inOptional bool // true if declared inside a '[...]' group
}

// Part is one element of a segment: literal text, a placeholder, or a
// nested optional group (itself a full Path, since '[...]' may span '/').
type Part struct {
	Kind        PartKind
	Literal     string
	Placeholder *Placeholder
	Optional    *Path
}

// Segment is a concatenation of parts between two '/' separators.
type Segment struct {
	Parts []Part
}

// Path is an ordered sequence of segments, the parsed form of the 'path'
// grammar rule. It is reused for both the mask's path and its host part,
// and recursively for the contents of '[...]' groups.
type Path struct {
	Segments []Segment
}

// HasPlaceholders reports whether any segment of the path carries a
// placeholder, scanning into nested optional groups.
func (p Path) HasPlaceholders() bool {
	for _, seg := range p.Segments {
		for _, part := range seg.Parts {
			switch part.Kind {
			case PartPlaceholder:
				return true
			case PartOptional:
				if part.Optional.HasPlaceholders() {
					return true
				}
			}
		}
	}
	return false
}

// parser walks a mask (or host) string, collecting placeholder names into
// seen so duplicate declarations can be rejected with their original
// offset.
type parser struct {
	raw  string // the full original mask string, for error reporting
	s    string // the slice currently being parsed (path or host)
	base int    // offset of s within raw
	pos  int    // cursor within s
	seen map[string]int
}

func newParser(raw, s string, base int) *parser {
	return &parser{raw: raw, s: s, base: base, seen: make(map[string]int)}
}

func (p *parser) offset() int { return p.base + p.pos }

func (p *parser) eof() bool { return p.pos >= len(p.s) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.s[p.pos]
}

// parsePath parses 'path := segment (\'/\' segment)*'. It stops at ']' or
// end of input, leaving the cursor positioned there.
func (p *parser) parsePath() (Path, error) {
	var path Path
	for {
		seg, err := p.parseSegment()
		if err != nil {
			return Path{}, err
		}
		path.Segments = append(path.Segments, seg)
		if p.peek() == '/' {
			p.pos++
			continue
		}
		break
	}
	return path, nil
}

// parseSegment parses 'segment := part*', stopping at '/', ']', or end.
func (p *parser) parseSegment() (Segment, error) {
	var seg Segment
	for {
		switch p.peek() {
		case 0, '/', ']':
			return seg, nil
		case '<':
			ph, err := p.parsePlaceholder()
			if err != nil {
				return Segment{}, err
			}
			seg.Parts = append(seg.Parts, Part{Kind: PartPlaceholder, Placeholder: ph})
		case '[':
			opt, err := p.parseOptional()
			if err != nil {
				return Segment{}, err
			}
			seg.Parts = append(seg.Parts, Part{Kind: PartOptional, Optional: opt})
		case '>':
			return Segment{}, syntaxErr(p.raw, p.offset(), "unexpected '>'")
		default:
			lit := p.parseLiteral()
			seg.Parts = append(seg.Parts, Part{Kind: PartLiteral, Literal: lit})
		}
	}
}

// parseLiteral consumes a run of characters that are not a grammar
// metacharacter.
func (p *parser) parseLiteral() string {
	start := p.pos
	for !p.eof() {
		switch p.s[p.pos] {
		case '/', '<', '[', ']', '>':
			return p.s[start:p.pos]
		}
		p.pos++
	}
	return p.s[start:p.pos]
}

// parsePlaceholder parses '<' name [sp regex] [sp default] '>'.
func (p *parser) parsePlaceholder() (*Placeholder, error) {
	startOffset := p.offset()
	p.pos++ // consume '<'

	body, ok := p.consumeUntilClose()
	if !ok {
		return nil, syntaxErr(p.raw, startOffset, "unterminated placeholder, missing '>'")
	}

	name, rest, found := strings.Cut(body, " ")
	if !found {
		name, rest, found = strings.Cut(body, "\t")
	}
	if !found {
		name = body
		rest = ""
	}
	name = strings.TrimSpace(name)
	rest = strings.TrimSpace(rest)

	if name == "" {
		return nil, syntaxErr(p.raw, startOffset, "placeholder has no name")
	}
	if !isValidParamName(name) {
		return nil, syntaxErr(p.raw, startOffset, "invalid parameter name "+name)
	}

	if prev, dup := p.seen[name]; dup {
		return nil, duplicateErr(p.raw, prev, name)
	}
	p.seen[name] = startOffset

	regex, def, hasDefault := splitRegexDefault(rest)
	if regex != "" {
		if err := validateRegexFragment(regex); err != nil {
			return nil, syntaxErr(p.raw, startOffset, "invalid regex: "+err.Error())
		}
	}

	return &Placeholder{Name: name, Regex: regex, Default: def, HasDefault: hasDefault}, nil
}

// consumeUntilClose reads characters up to (and consuming) the next '>',
// returning the text in between. It respects balanced '(' ')' so a regex
// fragment such as <id (\d+|x)> is read in full.
func (p *parser) consumeUntilClose() (string, bool) {
	start := p.pos
	depth := 0
	for !p.eof() {
		switch p.s[p.pos] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case '>':
			if depth == 0 {
				body := p.s[start:p.pos]
				p.pos++ // consume '>'
				return body, true
			}
		}
		p.pos++
	}
	return "", false
}

// parseOptional parses '[' path ']'.
func (p *parser) parseOptional() (*Path, error) {
	startOffset := p.offset()
	p.pos++ // consume '['

	inner := &parser{raw: p.raw, s: p.s, base: p.base, pos: p.pos, seen: p.seen}
	path, err := inner.parsePath()
	if err != nil {
		return nil, err
	}
	p.pos = inner.pos

	if p.peek() != ']' {
		return nil, syntaxErr(p.raw, startOffset, "unbalanced '[', missing ']'")
	}
	p.pos++ // consume ']'

	markOptional(&path)
	return &path, nil
}

func markOptional(path *Path) {
	for si := range path.Segments {
		for pi := range path.Segments[si].Parts {
			part := &path.Segments[si].Parts[pi]
			switch part.Kind {
			case PartPlaceholder:
				part.Placeholder.inOptional = true
			case PartOptional:
				markOptional(part.Optional)
			}
		}
	}
}

func isValidParamName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9' || r == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// regexMeta are the characters whose presence in a bare placeholder token
// marks it as a regex fragment rather than a default value, per the
// heuristic in the mask grammar notes.
const regexMeta = `\^$.|?*+()[]{}`

func looksLikeRegex(tok string) bool {
	return strings.ContainsAny(tok, regexMeta)
}

// splitRegexDefault applies the "regex and default are whitespace
// separated and either may be present alone" rule: a token containing
// regex metacharacters is the regex, otherwise it is the default.
func splitRegexDefault(rest string) (regex, def string, hasDefault bool) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", "", false
	}

	idx := strings.LastIndexAny(rest, " \t")
	if idx == -1 {
		if looksLikeRegex(rest) {
			return rest, "", false
		}
		return "", rest, true
	}

	first := strings.TrimSpace(rest[:idx])
	last := strings.TrimSpace(rest[idx+1:])
	if first != "" && !looksLikeRegex(last) {
		return first, last, true
	}

	if looksLikeRegex(rest) {
		return rest, "", false
	}
	return "", rest, true
}
