// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package help

import "github.com/prometheus/client_golang/prometheus"

// Reload result labels.
const (
	ReloadSuccess = "success"
	ReloadFailure = "failure"
)

// Renders counts rendered help requests by outcome.
// Use RegisterMetrics to register this with a Prometheus registry.
var Renders = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "helpmenu_renders_total",
		Help: "Total number of help renders by status",
	},
	[]string{"status"},
)

// Reloads counts help definition reloads by result.
// Use RegisterMetrics to register this with a Prometheus registry.
var Reloads = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "helpmenu_reloads_total",
		Help: "Total number of help definition reloads by result",
	},
	[]string{"result"},
)

// RegisterMetrics registers help metrics with the given Prometheus registry.
// Panics if registration fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(Renders)
	reg.MustRegister(Reloads)
}
