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

package urlview

import "net/url"

// Reference is the immutable anchor a Route or RouteList constructs an
// absolute URL against. WithHost and WithPath return new views; neither
// mutates the receiver, so the same Reference can anchor many independent
// construction calls.
type Reference interface {
	Scheme() string
	Host() string
	Path() string

	WithHost(host string) Reference
	WithPath(path string) Reference

	// String renders the view as an absolute URL.
	String() string
}

type reference struct {
	scheme string
	host   string
	path   string
}

// NewReference builds a Reference from a parsed URL, keeping only the
// scheme and host; Path starts empty and is filled in by construction.
func NewReference(u *url.URL) Reference {
	return &reference{scheme: u.Scheme, host: u.Host}
}

func (r *reference) Scheme() string { return r.scheme }
func (r *reference) Host() string   { return r.host }
func (r *reference) Path() string   { return r.path }

func (r *reference) WithHost(host string) Reference {
	clone := *r
	clone.host = host
	return &clone
}

func (r *reference) WithPath(path string) Reference {
	clone := *r
	clone.path = path
	return &clone
}

func (r *reference) String() string {
	u := url.URL{Scheme: r.scheme, Host: r.host, Path: r.path}
	return u.String()
}
