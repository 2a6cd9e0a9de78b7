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
	"github.com/prometheus/client_golang/prometheus"

	"urlbroker.dev/router"
)

// PrometheusRecorder is a router.DiagnosticHandler that counts diagnostic
// events by kind. Register it with a prometheus.Registerer of the
// caller's choosing; it does not reach for the global default registry.
type PrometheusRecorder struct {
	events *prometheus.CounterVec
}

// NewPrometheusRecorder creates and registers a PrometheusRecorder against
// reg. Passing prometheus.DefaultRegisterer matches the package-level
// promauto convenience most callers expect.
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	events := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urlbroker_diagnostic_events_total",
			Help: "Number of diagnostic events emitted by a RouteList, by kind.",
		},
		[]string{"kind"},
	)
	if err := reg.Register(events); err != nil {
		return nil, err
	}
	return &PrometheusRecorder{events: events}, nil
}

func (p *PrometheusRecorder) OnDiagnostic(e router.DiagnosticEvent) {
	p.events.With(prometheus.Labels{"kind": string(e.Kind)}).Inc()
}
