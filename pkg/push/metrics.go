package push

import (
	"context"

	"github.com/vnykmshr/pushflow/pkg/metrics"
)

// InstrumentTransform wraps a transform with Prometheus metrics collection.
// It counts inputs, emissions, zero-emission drops and errors under the
// given name without changing the transform's behavior. If registry is nil,
// metrics.DefaultRegistry is used.
func InstrumentTransform[A, B any](name string, t Transform[A, B], registry *metrics.Registry) Transform[A, B] {
	if registry == nil {
		registry = metrics.DefaultRegistry
	}

	return func(ctx context.Context, v A, emit Emit[B]) error {
		registry.TransformInputs.WithLabelValues(name).Inc()

		emitted := false
		err := t(ctx, v, func(ctx context.Context, b B) error {
			emitted = true
			registry.TransformEmissions.WithLabelValues(name).Inc()
			return emit(ctx, b)
		})

		switch {
		case err != nil && !IsStop(err):
			registry.TransformErrors.WithLabelValues(name).Inc()
		case !emitted:
			registry.TransformDrops.WithLabelValues(name).Inc()
		}

		return err
	}
}

// InstrumentSink wraps a sink with Prometheus metrics collection, counting
// invocations and effect failures under the given name. If registry is nil,
// metrics.DefaultRegistry is used.
func InstrumentSink[A any](name string, s Sink[A], registry *metrics.Registry) Sink[A] {
	if registry == nil {
		registry = metrics.DefaultRegistry
	}

	return func(ctx context.Context, v A) error {
		registry.SinkInvocations.WithLabelValues(name).Inc()

		err := s(ctx, v)
		if err != nil && !IsStop(err) {
			registry.SinkErrors.WithLabelValues(name).Inc()
		}

		return err
	}
}
