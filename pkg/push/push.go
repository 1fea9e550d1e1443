package push

import (
	"context"

	flowerrors "github.com/vnykmshr/pushflow/pkg/common/errors"
)

// ErrStop signals that the downstream side wants no further values.
// Returning it from an Emit callback or a Sink requests graceful early
// termination; it is normal control flow, not a failure.
var ErrStop = flowerrors.ErrStop

// IsStop reports whether err is a graceful stop request rather than a real
// failure.
func IsStop(err error) bool {
	return flowerrors.IsStop(err)
}

// Emit delivers one value downstream. A non-nil return value tells the
// caller to produce no further values: ErrStop requests a graceful stop,
// anything else is a downstream failure. Either way the caller must not
// invoke the callback again.
type Emit[B any] func(ctx context.Context, v B) error

// Sink consumes one value and performs exactly one effect, producing no
// further output. Each invocation is independent; whatever the effect fails
// with is returned unchanged.
type Sink[A any] func(ctx context.Context, v A) error

// Transform consumes one value and emits zero or more values downstream by
// invoking emit once per output, in order. The effect for emission i+1 must
// not run before emission i has been delivered, and emission must cease as
// soon as emit returns a non-nil error (which is then propagated unchanged).
type Transform[A, B any] func(ctx context.Context, v A, emit Emit[B]) error

// Identity returns the transform that emits its input unchanged exactly
// once, with no effect. It is the neutral element of Pipe:
// Pipe(Identity(), f) and Pipe(f, Identity()) behave exactly like f.
func Identity[A any]() Transform[A, A] {
	return func(ctx context.Context, v A, emit Emit[A]) error {
		return emit(ctx, v)
	}
}

// Pipe composes two transforms into one. Every value emitted by f is fed to
// g before f produces its next value (depth-first), so at most one element
// is in flight per composition link and Pipe is associative:
// Pipe(Pipe(f, g), h) and Pipe(f, Pipe(g, h)) are observationally identical.
func Pipe[A, B, C any](f Transform[A, B], g Transform[B, C]) Transform[A, C] {
	return func(ctx context.Context, v A, emit Emit[C]) error {
		return f(ctx, v, func(ctx context.Context, b B) error {
			return g(ctx, b, emit)
		})
	}
}

// Into composes a transform with a sink, yielding a sink. The sink runs its
// effect for each emitted value before the transform produces the next one.
// A sink is the degenerate case of a transform with no output, so Into is
// the Sink-terminated form of Pipe.
func Into[A, B any](f Transform[A, B], s Sink[B]) Sink[A] {
	return func(ctx context.Context, v A) error {
		return f(ctx, v, func(ctx context.Context, b B) error {
			return s(ctx, b)
		})
	}
}

// Collect invokes a transform directly with a single input and gathers every
// emitted value. This is the direct-invocation path; use the bridge package
// to drive a transform from a pull source instead.
func Collect[A, B any](ctx context.Context, t Transform[A, B], v A) ([]B, error) {
	var out []B
	err := t(ctx, v, func(_ context.Context, b B) error {
		out = append(out, b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
