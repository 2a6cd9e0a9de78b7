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

// Request is the inbound URL view the routing core matches against. An
// implementation must be immutable: WithPath returns a new view rather
// than mutating the receiver, so a RouteList scoped with withPath can
// narrow the view for its children without disturbing the caller's
// original request.
type Request interface {
	Scheme() string
	Host() string

	// Path is the full request path, including any base path already
	// consumed by an enclosing scope.
	Path() string

	// BasePath is the portion of Path consumed by enclosing withPath
	// scopes; RelativePath is what remains for this scope's children.
	// BasePath + RelativePath reconstructs Path.
	BasePath() string
	RelativePath() string

	// Query is the parsed query string; parameters not named by a mask
	// pass through unchanged into a match result.
	Query() url.Values

	// WithPath returns a new view whose BasePath and RelativePath are
	// basePath and relativePath; Path is unchanged.
	WithPath(basePath, relativePath string) Request
}

// request is the net/url-backed implementation of Request.
type request struct {
	scheme       string
	host         string
	path         string
	basePath     string
	relativePath string
	query        url.Values
}

// NewRequest builds a Request from a parsed URL. The initial view has an
// empty BasePath and a RelativePath equal to the full path.
func NewRequest(u *url.URL) Request {
	return &request{
		scheme:       u.Scheme,
		host:         u.Host,
		path:         u.Path,
		basePath:     "",
		relativePath: u.Path,
		query:        u.Query(),
	}
}

func (r *request) Scheme() string       { return r.scheme }
func (r *request) Host() string         { return r.host }
func (r *request) Path() string         { return r.path }
func (r *request) BasePath() string     { return r.basePath }
func (r *request) RelativePath() string { return r.relativePath }
func (r *request) Query() url.Values    { return r.query }

func (r *request) WithPath(basePath, relativePath string) Request {
	clone := *r
	clone.basePath = basePath
	clone.relativePath = relativePath
	return &clone
}
