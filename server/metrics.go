package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors. Each hub owns its own
// registry so tests can run several servers side by side.
type Metrics struct {
	registry *prometheus.Registry

	Connections   prometheus.Gauge
	Sessions      prometheus.Gauge
	Rejected      prometheus.Counter
	Frames        prometheus.Counter
	FrameSeconds  prometheus.Histogram
	Events        *prometheus.CounterVec
	Runs          *prometheus.CounterVec
	CreditsEarned prometheus.Counter
	Panics        prometheus.Counter
}

// NewMetrics creates and registers all collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "arcade",
			Name:      "connections",
			Help:      "Open WebSocket connections.",
		}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "arcade",
			Name:      "sessions",
			Help:      "Running game sessions.",
		}),
		Rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "arcade",
			Name:      "rejected_connections_total",
			Help:      "Connections refused by the per-IP or global limit.",
		}),
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "arcade",
			Name:      "frames_total",
			Help:      "Simulation frames run across all sessions.",
		}),
		FrameSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "arcade",
			Name:      "frame_seconds",
			Help:      "Wall time spent in one simulation frame.",
			Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		}),
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arcade",
			Name:      "events_total",
			Help:      "Game events by type.",
		}, []string{"type"}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arcade",
			Name:      "runs_total",
			Help:      "Finished runs by mode and outcome.",
		}, []string{"mode", "outcome"}),
		CreditsEarned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "arcade",
			Name:      "credits_earned_total",
			Help:      "Credits added to guest balances.",
		}),
		Panics: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "arcade",
			Name:      "session_panics_total",
			Help:      "Session loops that recovered from a panic.",
		}),
	}
	m.registry.MustRegister(
		m.Connections, m.Sessions, m.Rejected,
		m.Frames, m.FrameSeconds, m.Events,
		m.Runs, m.CreditsEarned, m.Panics,
	)
	return m
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
