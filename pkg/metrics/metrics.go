// Package metrics provides Prometheus instrumentation for pushflow components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for pushflow components.
type Registry struct {
	// Push algebra metrics
	TransformInputs    *prometheus.CounterVec
	TransformEmissions *prometheus.CounterVec
	TransformDrops     *prometheus.CounterVec
	TransformErrors    *prometheus.CounterVec
	SinkInvocations    *prometheus.CounterVec
	SinkErrors         *prometheus.CounterVec

	// Pull engine metrics
	SourceElements *prometheus.CounterVec
	SourceErrors   *prometheus.CounterVec

	// Writer metrics
	WriterFlushes      *prometheus.CounterVec
	WriterBytesWritten *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by pushflow components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		TransformInputs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pushflow",
				Subsystem: "push",
				Name:      "transform_inputs_total",
				Help:      "Total number of values fed into a transform",
			},
			[]string{"name"},
		),

		TransformEmissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pushflow",
				Subsystem: "push",
				Name:      "transform_emissions_total",
				Help:      "Total number of values emitted by a transform",
			},
			[]string{"name"},
		),

		TransformDrops: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pushflow",
				Subsystem: "push",
				Name:      "transform_drops_total",
				Help:      "Total number of inputs that produced zero emissions",
			},
			[]string{"name"},
		),

		TransformErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pushflow",
				Subsystem: "push",
				Name:      "transform_errors_total",
				Help:      "Total number of transform invocations that failed",
			},
			[]string{"name"},
		),

		SinkInvocations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pushflow",
				Subsystem: "push",
				Name:      "sink_invocations_total",
				Help:      "Total number of values consumed by a sink",
			},
			[]string{"name"},
		),

		SinkErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pushflow",
				Subsystem: "push",
				Name:      "sink_errors_total",
				Help:      "Total number of sink effects that failed",
			},
			[]string{"name"},
		),

		SourceElements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pushflow",
				Subsystem: "pull",
				Name:      "source_elements_total",
				Help:      "Total number of elements produced by a source",
			},
			[]string{"name"},
		),

		SourceErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pushflow",
				Subsystem: "pull",
				Name:      "source_errors_total",
				Help:      "Total number of source pulls that failed",
			},
			[]string{"name"},
		),

		WriterFlushes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pushflow",
				Subsystem: "writer",
				Name:      "flushes_total",
				Help:      "Total number of writer flush operations",
			},
			[]string{"name"},
		),

		WriterBytesWritten: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pushflow",
				Subsystem: "writer",
				Name:      "bytes_written_total",
				Help:      "Total number of bytes written to the underlying writer",
			},
			[]string{"name"},
		),
	}
}
