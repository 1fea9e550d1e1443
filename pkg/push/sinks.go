package push

import (
	"context"
	"io"
)

// ForEach adapts an effectful function with no result into a sink.
func ForEach[A any](f func(ctx context.Context, v A) error) Sink[A] {
	return Sink[A](f)
}

// DiscardResult adapts an arbitrary effectful function into a sink by
// running the effect and discarding its result.
func DiscardResult[A, B any](f func(ctx context.Context, v A) (B, error)) Sink[A] {
	return func(ctx context.Context, v A) error {
		_, err := f(ctx, v)
		return err
	}
}

// WriteLines returns a sink that writes each value as a single line to w.
// Write errors are propagated unchanged.
func WriteLines(w io.Writer) Sink[string] {
	return func(_ context.Context, s string) error {
		_, err := io.WriteString(w, s+"\n")
		return err
	}
}

// Discard returns a sink that performs no effect at all.
func Discard[A any]() Sink[A] {
	return func(context.Context, A) error {
		return nil
	}
}
