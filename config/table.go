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

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"urlbroker.dev/router"
	"urlbroker.dev/router/route"
)

// Table is the YAML shape of a route table: a flat list of routes plus
// any number of nested scopes, each gated by a domain pattern or a path
// prefix (mutually exclusive within one Scope).
type Table struct {
	Routes   []RouteEntry `yaml:"routes,omitempty"`
	Children []Scope      `yaml:"children,omitempty"`
}

// Scope is one nested, gated section of a Table.
type Scope struct {
	Domain string `yaml:"domain,omitempty"`
	Path   string `yaml:"path,omitempty"`
	Table  `yaml:",inline"`
}

// RouteEntry is the YAML shape of one Route registration.
type RouteEntry struct {
	Mask        string            `yaml:"mask"`
	Constants   map[string]string `yaml:"constants,omitempty"`
	Name        string            `yaml:"name,omitempty"`
	Description string            `yaml:"description,omitempty"`
	Tags        []string          `yaml:"tags,omitempty"`
	OneWay      bool              `yaml:"one_way,omitempty"`
}

// Parse decodes a YAML document into a Table.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("config: parsing route table: %w", err)
	}
	return &t, nil
}

// Load reads and parses the route table at path, then builds it into a
// *router.RouteList.
func Load(path string) (*router.RouteList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	table, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(table, nil)
}

// Build compiles a Table into a *router.RouteList, attaching diagnostics
// (optional) to every scope in the tree.
func Build(t *Table, diagnostics router.DiagnosticHandler) (*router.RouteList, error) {
	var opts []router.Option
	if diagnostics != nil {
		opts = append(opts, router.WithDiagnostics(diagnostics))
	}
	rl := router.New(opts...)
	if err := populate(rl, t); err != nil {
		return nil, err
	}
	return rl, nil
}

func populate(rl *router.RouteList, t *Table) error {
	for _, re := range t.Routes {
		flags := router.Flag(0)
		if re.OneWay {
			flags = router.OneWay
		}

		var opts []route.Option
		for name, value := range re.Constants {
			opts = append(opts, route.WithConstant(name, value))
		}
		if re.Name != "" {
			opts = append(opts, route.WithName(re.Name))
		}
		if re.Description != "" {
			opts = append(opts, route.WithDescription(re.Description))
		}
		if len(re.Tags) > 0 {
			opts = append(opts, route.WithTags(re.Tags...))
		}

		if _, err := rl.AddRoute(re.Mask, flags, opts...); err != nil {
			return fmt.Errorf("config: route %q: %w", re.Mask, err)
		}
	}

	for _, child := range t.Children {
		if child.Domain == "" && child.Path == "" {
			return fmt.Errorf("config: child scope must set domain or path")
		}
		if child.Domain != "" && child.Path != "" {
			return fmt.Errorf("config: child scope cannot set both domain and path")
		}

		var nested *router.RouteList
		if child.Domain != "" {
			nested = rl.WithDomain(child.Domain)
		} else {
			nested = rl.WithPath(child.Path)
		}
		if err := populate(nested, &child.Table); err != nil {
			return err
		}
	}

	return nil
}
