package pull

import "context"

// FromSlice creates a source producing the elements of slice in order.
func FromSlice[T any](slice []T) Source[T] {
	return &sliceSource[T]{slice: slice}
}

type sliceSource[T any] struct {
	slice []T
	index int
}

func (s *sliceSource[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	if s.index >= len(s.slice) {
		return zero, false, nil
	}

	select {
	case <-ctx.Done():
		return zero, false, ctx.Err()
	default:
	}

	v := s.slice[s.index]
	s.index++
	return v, true, nil
}

func (s *sliceSource[T]) Close() error {
	return nil
}

// FromChannel creates a source producing elements received from ch until it
// is closed.
func FromChannel[T any](ch <-chan T) Source[T] {
	return &channelSource[T]{ch: ch}
}

type channelSource[T any] struct {
	ch <-chan T
}

func (s *channelSource[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	select {
	case v, ok := <-s.ch:
		if !ok {
			return zero, false, nil
		}
		return v, true, nil
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
}

func (s *channelSource[T]) Close() error {
	return nil
}

// Generate creates an unbounded source from a generator function. The
// generator runs once per pull, so pair it with Limit or an early-stopping
// consumer.
func Generate[T any](generator func() T) Source[T] {
	return &generatorSource[T]{generator: generator}
}

type generatorSource[T any] struct {
	generator func() T
}

func (s *generatorSource[T]) Next(ctx context.Context) (T, bool, error) {
	select {
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	default:
		return s.generator(), true, nil
	}
}

func (s *generatorSource[T]) Close() error {
	return nil
}

// Empty creates a source with no elements.
func Empty[T any]() Source[T] {
	return emptySource[T]{}
}

type emptySource[T any] struct{}

func (emptySource[T]) Next(context.Context) (T, bool, error) {
	var zero T
	return zero, false, nil
}

func (emptySource[T]) Close() error {
	return nil
}
