// Package metrics counts what lunaris computes and renders. Metrics live on a
// private registry and are written once, on exit, in the node-exporter
// textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds the lunaris metrics. A nil *Recorder is valid and records
// nothing.
type Recorder struct {
	registry *prometheus.Registry

	PhaseComputations prometheus.Counter
	FramesRendered    *prometheus.CounterVec
	FrameDuration     prometheus.Histogram
	FramesExported    prometheus.Counter
	ExportFailures    prometheus.Counter
}

// New returns a Recorder registered on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		PhaseComputations: factory.NewCounter(prometheus.CounterOpts{
			Name: "lunaris_phase_computations_total",
			Help: "Total number of phase computations",
		}),
		FramesRendered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lunaris_frames_rendered_total",
			Help: "Total number of frames rendered, by output kind",
		}, []string{"kind"}),
		FrameDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lunaris_frame_render_duration_seconds",
			Help:    "Time spent rendering a single frame",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5},
		}),
		FramesExported: factory.NewCounter(prometheus.CounterOpts{
			Name: "lunaris_frames_exported_total",
			Help: "Total number of frames written by export",
		}),
		ExportFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "lunaris_export_failures_total",
			Help: "Total number of frames that failed to export",
		}),
	}
}

// Registry returns the registry the metrics are registered on.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObservePhase counts one phase computation.
func (r *Recorder) ObservePhase() {
	if r == nil {
		return
	}
	r.PhaseComputations.Inc()
}

// ObserveFrame records a rendered frame of the given kind ("svg", "blocks",
// "braille"). Call with time.Now() taken before rendering.
func (r *Recorder) ObserveFrame(kind string, start time.Time) {
	if r == nil {
		return
	}
	r.FramesRendered.WithLabelValues(kind).Inc()
	r.FrameDuration.Observe(time.Since(start).Seconds())
}

// ObserveExport records the outcome of writing one exported frame.
func (r *Recorder) ObserveExport(err error) {
	if r == nil {
		return
	}
	if err != nil {
		r.ExportFailures.Inc()
		return
	}
	r.FramesExported.Inc()
}

// WriteToTextfile writes every metric to path atomically. An empty path is a
// no-op.
func (r *Recorder) WriteToTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
