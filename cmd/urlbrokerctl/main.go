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

// Command urlbrokerctl loads a YAML route table and exercises it against
// one URL from the command line, either matching it as an inbound
// request or using it as a reference to construct an outbound URL from a
// flat set of parameters. It is a debugging aid for a route table, not a
// server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"urlbroker.dev/router"
	"urlbroker.dev/router/config"
	"urlbroker.dev/router/routerlog"
	"urlbroker.dev/router/urlview"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "urlbrokerctl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("urlbrokerctl", flag.ContinueOnError)
	tablePath := fs.String("table", "", "path to a YAML route table (required)")
	mode := fs.String("mode", "match", "match | construct")
	target := fs.String("url", "", "URL to match, or reference URL to construct against (required)")
	params := fs.String("params", "", "comma-separated key=value pairs for -mode=construct")
	verbose := fs.Bool("v", false, "log diagnostic events to stderr")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tablePath == "" || *target == "" {
		fs.Usage()
		return fmt.Errorf("-table and -url are required")
	}

	var handler router.DiagnosticHandler
	if *verbose {
		handler = routerlog.NewSlogHandler(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	data, err := os.ReadFile(*tablePath)
	if err != nil {
		return fmt.Errorf("reading route table: %w", err)
	}
	table, err := config.Parse(data)
	if err != nil {
		return err
	}
	rl, err := config.Build(table, handler)
	if err != nil {
		return err
	}
	rl.WarmupCache()

	switch *mode {
	case "match":
		return runMatch(rl, *target)
	case "construct":
		return runConstruct(rl, *target, *params)
	default:
		return fmt.Errorf("unknown -mode %q (want match or construct)", *mode)
	}
}

type matcher interface {
	Match(req urlview.Request) (map[string]any, bool)
	ConstructURL(params map[string]any, ref urlview.Reference) (string, bool)
}

func runMatch(rl matcher, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parsing -url: %w", err)
	}

	result, ok := rl.Match(urlview.NewRequest(u))
	if !ok {
		fmt.Println("no match")
		os.Exit(2)
	}
	return printJSON(result)
}

func runConstruct(rl matcher, raw, paramSpec string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parsing -url: %w", err)
	}

	params, err := parseParams(paramSpec)
	if err != nil {
		return err
	}

	out, ok := rl.ConstructURL(params, urlview.NewReference(u))
	if !ok {
		fmt.Println("no construction")
		os.Exit(2)
	}
	fmt.Println(out)
	return nil
}

func parseParams(spec string) (map[string]any, error) {
	params := map[string]any{}
	if spec == "" {
		return params, nil
	}
	for _, pair := range strings.Split(spec, ",") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed -params entry %q, want key=value", pair)
		}
		params[name] = value
	}
	return params, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
