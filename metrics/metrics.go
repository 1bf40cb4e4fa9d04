// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/primst/mst"
)

const namespace = "primst"

// Recorder collects engine statistics on its own registry.
type Recorder struct {
	reg *prometheus.Registry

	runs        *prometheus.CounterVec
	errors      *prometheus.CounterVec
	reached     prometheus.Counter
	unreached   prometheus.Counter
	relaxations prometheus.Counter
	weight      prometheus.Gauge
	vertices    prometheus.Gauge
	edges       prometheus.Gauge
	duration    *prometheus.HistogramVec
}

// NewRecorder registers all metrics on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed MST runs.",
		}, []string{"frontier"}),
		errors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "run_errors_total",
			Help:      "Failed runs by pipeline stage.",
		}, []string{"stage"}),
		reached: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vertices_reached_total",
			Help:      "Vertices attached to a tree, roots included.",
		}),
		unreached: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vertices_unreached_total",
			Help:      "Vertices with no path to the start vertex.",
		}),
		relaxations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relaxations_total",
			Help:      "Successful key decreases.",
		}),
		weight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_tree_weight",
			Help:      "Total weight of the most recent tree.",
		}),
		vertices: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_graph_vertices",
			Help:      "Vertex count of the most recent graph.",
		}),
		edges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_graph_edges",
			Help:      "Edge count of the most recent graph.",
		}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Engine time per run.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"frontier"}),
	}
}

// ObserveRun implements mst.Observer.
func (r *Recorder) ObserveRun(s mst.Stats) {
	fr := string(s.Frontier)
	r.runs.WithLabelValues(fr).Inc()
	r.reached.Add(float64(s.Reached))
	r.unreached.Add(float64(s.Unreached))
	r.relaxations.Add(float64(s.Relaxations))
	r.weight.Set(float64(s.TotalWeight))
	r.vertices.Set(float64(s.Vertices))
	r.edges.Set(float64(s.Edges))
	r.duration.WithLabelValues(fr).Observe(s.Elapsed.Seconds())
}

// ObserveError counts a failure in the named stage (decode, build, prim, verify, write).
func (r *Recorder) ObserveError(stage string) {
	r.errors.WithLabelValues(stage).Inc()
}

// Registry returns the private registry, e.g. for promhttp or testutil.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteTextfile writes all metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("WriteTextfile: %w", err)
	}

	return nil
}

var _ mst.Observer = (*Recorder)(nil)
