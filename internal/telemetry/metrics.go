// Package telemetry registers the engine's Prometheus collectors.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsEmitted counts scan events by kind (RETROGRADE, LUNATION,
	// ECLIPSE, INGRESS, TRANSIT).
	EventsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "astroscan_events_emitted_total",
		Help: "Scan events emitted, by event kind",
	}, []string{"kind"})

	// ProviderErrors counts per-body ephemeris failures. These degrade to
	// absent positions, so the counter is the main visibility into them.
	ProviderErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "astroscan_provider_errors_total",
		Help: "Per-body ephemeris query failures",
	}, []string{"body"})

	// ChartsBuilt counts completed chart builds.
	ChartsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "astroscan_charts_built_total",
		Help: "Charts built, including partially degraded ones",
	})

	// ScansCompleted counts finished period scans.
	ScansCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "astroscan_scans_completed_total",
		Help: "Period scans run to completion",
	})
)
