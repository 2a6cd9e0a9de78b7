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

package routerlog

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urlbroker.dev/router"
)

func TestSlogHandler_LogsEvent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := NewSlogHandler(logger)

	h.OnDiagnostic(router.DiagnosticEvent{
		Kind:    router.DiagRouteRegistered,
		Message: "router registered",
		Fields:  map[string]any{"flags": 0},
	})

	assert.Contains(t, buf.String(), "router registered")
	assert.Contains(t, buf.String(), "route_registered")
}

func TestSlogHandler_DefaultsWhenNil(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(nil)
	assert.NotNil(t, h.logger)
}

func TestPrometheusRecorder_CountsByKind(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	rec, err := NewPrometheusRecorder(reg)
	require.NoError(t, err)

	rec.OnDiagnostic(router.DiagnosticEvent{Kind: router.DiagCacheWarmed})
	rec.OnDiagnostic(router.DiagnosticEvent{Kind: router.DiagCacheWarmed})
	rec.OnDiagnostic(router.DiagnosticEvent{Kind: router.DiagCacheFallback})

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, fam := range families {
		if fam.GetName() != "urlbroker_diagnostic_events_total" {
			continue
		}
		for _, m := range fam.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "kind" {
					counts[l.GetValue()] = m.GetCounter().GetValue()
				}
			}
		}
	}

	assert.Equal(t, float64(2), counts[string(router.DiagCacheWarmed)])
	assert.Equal(t, float64(1), counts[string(router.DiagCacheFallback)])
}

func TestPrometheusRecorder_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := NewPrometheusRecorder(reg)
	require.NoError(t, err)

	_, err = NewPrometheusRecorder(reg)
	assert.Error(t, err)
}

func TestMulti_FansOutInOrder(t *testing.T) {
	t.Parallel()

	var seen []router.DiagnosticKind
	a := router.DiagnosticHandlerFunc(func(e router.DiagnosticEvent) { seen = append(seen, e.Kind) })
	b := router.DiagnosticHandlerFunc(func(e router.DiagnosticEvent) { seen = append(seen, e.Kind) })

	m := Multi{a, b}
	m.OnDiagnostic(router.DiagnosticEvent{Kind: router.DiagRouteRegistered})

	assert.Equal(t, []router.DiagnosticKind{router.DiagRouteRegistered, router.DiagRouteRegistered}, seen)
}
