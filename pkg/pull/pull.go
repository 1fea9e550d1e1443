package pull

import (
	"context"

	flowerrors "github.com/vnykmshr/pushflow/pkg/common/errors"
)

// Source represents a pull-driven producer of elements.
//
// A source is driven by exactly one loop at a time: callers must never
// request two elements concurrently from the same source. Ceasing to call
// Next and calling Close is equivalent to cancellation; a closed source
// must not produce further elements or run further effects.
type Source[T any] interface {
	// Next returns the next element and true, or the zero value and false
	// if no more elements are available.
	Next(ctx context.Context) (T, bool, error)

	// Close releases resources held by the source.
	Close() error
}

// Stage transforms a source into a derived source. Stages compose by plain
// function application: applying stage g to the output of stage f yields
// the pipeline f-then-g.
type Stage[A, B any] func(Source[A]) Source[B]

// PassThrough returns the engine's identity stage, which forwards the
// upstream source unchanged.
func PassThrough[A any]() Stage[A, A] {
	return func(src Source[A]) Source[A] { return src }
}

// Limit returns a stage that ends the stream after n elements without
// pulling further elements from upstream.
func Limit[A any](n int64) Stage[A, A] {
	return func(src Source[A]) Source[A] {
		return &limitSource[A]{source: src, remaining: n}
	}
}

type limitSource[A any] struct {
	source    Source[A]
	remaining int64
}

func (s *limitSource[A]) Next(ctx context.Context) (A, bool, error) {
	if s.remaining <= 0 {
		var zero A
		return zero, false, nil
	}
	v, ok, err := s.source.Next(ctx)
	if err != nil || !ok {
		var zero A
		return zero, false, err
	}
	s.remaining--
	return v, true, nil
}

func (s *limitSource[A]) Close() error {
	return s.source.Close()
}

// Drain is the driving loop of the engine. It pulls elements from src one
// at a time, strictly sequentially, and feeds each to consume before
// requesting the next. It returns when the source is exhausted, the context
// is canceled, or consume fails; a consume error of ErrStop is treated as
// clean early termination. The source is closed before Drain returns.
func Drain[T any](ctx context.Context, src Source[T], consume func(ctx context.Context, v T) error) error {
	defer func() { _ = src.Close() }()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		v, ok, err := src.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := consume(ctx, v); err != nil {
			if flowerrors.IsStop(err) {
				return nil
			}
			return err
		}
	}
}

// ToSlice drains src into a slice. Mostly useful in tests and examples.
func ToSlice[T any](ctx context.Context, src Source[T]) ([]T, error) {
	var out []T
	err := Drain(ctx, src, func(_ context.Context, v T) error {
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
