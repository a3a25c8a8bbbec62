package main

import (
	"github.com/katalvlaran/brachistochrone/descent"
	"github.com/prometheus/client_golang/prometheus"
)

// solveMetrics lives on a private registry and is written out once per run
// in the node-exporter textfile format.
type solveMetrics struct {
	reg          *prometheus.Registry
	solveSeconds prometheus.Histogram
	transitions  prometheus.Counter
	relaxations  prometheus.Counter
	pathSteps    prometheus.Gauge
}

func newSolveMetrics() *solveMetrics {
	m := &solveMetrics{
		reg: prometheus.NewRegistry(),
		solveSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "brachistochrone_solve_seconds",
			Help:    "Wall time of the backward induction.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		transitions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "brachistochrone_transitions_total",
			Help: "In-grid (cell, action) pairs examined by the backward pass.",
		}),
		relaxations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "brachistochrone_relaxations_total",
			Help: "Transition costs evaluated against a successor that was not unreached.",
		}),
		pathSteps: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "brachistochrone_path_steps",
			Help: "Steps in the extracted path; zero when the goal is unreachable.",
		}),
	}
	m.reg.MustRegister(m.solveSeconds, m.transitions, m.relaxations, m.pathSteps)

	return m
}

func (m *solveMetrics) observe(st descent.Stats, steps int) {
	m.solveSeconds.Observe(st.Elapsed.Seconds())
	m.transitions.Add(float64(st.Transitions))
	m.relaxations.Add(float64(st.Relaxations))
	m.pathSteps.Set(float64(steps))
}

func (m *solveMetrics) writeTo(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
