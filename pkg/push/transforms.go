package push

import (
	"context"
	"fmt"
	"strconv"
)

// Map returns a transform that emits exactly one value, f(v), with no effect.
func Map[A, B any](f func(A) B) Transform[A, B] {
	return func(ctx context.Context, v A, emit Emit[B]) error {
		return emit(ctx, f(v))
	}
}

// MapEffect returns a transform that runs the effectful function f and emits
// its result; exactly one emission per input. An error from f is propagated
// unchanged and nothing is emitted.
func MapEffect[A, B any](f func(ctx context.Context, v A) (B, error)) Transform[A, B] {
	return func(ctx context.Context, v A, emit Emit[B]) error {
		b, err := f(ctx, v)
		if err != nil {
			return err
		}
		return emit(ctx, b)
	}
}

// MapMany returns a transform that emits every element of f(v) in iteration
// order; zero emissions if the collection is empty. Emission stops as soon
// as the downstream side declines further values.
func MapMany[A, B any](f func(A) []B) Transform[A, B] {
	return func(ctx context.Context, v A, emit Emit[B]) error {
		for _, b := range f(v) {
			if err := emit(ctx, b); err != nil {
				return err
			}
		}
		return nil
	}
}

// Flatten returns a transform that emits each element of its slice input.
func Flatten[A any]() Transform[[]A, A] {
	return MapMany(func(vs []A) []A { return vs })
}

// Filter returns a transform that emits its input unchanged iff the
// predicate holds; otherwise it emits nothing. Rejection is normal control
// flow, not an error.
func Filter[A any](predicate func(A) bool) Transform[A, A] {
	return func(ctx context.Context, v A, emit Emit[A]) error {
		if !predicate(v) {
			return nil
		}
		return emit(ctx, v)
	}
}

// FilterEffect returns a transform that runs the effectful predicate and
// emits its input iff the result is true. The predicate's effect runs
// exactly once per input regardless of outcome; its error is propagated
// unchanged.
func FilterEffect[A any](predicate func(ctx context.Context, v A) (bool, error)) Transform[A, A] {
	return func(ctx context.Context, v A, emit Emit[A]) error {
		ok, err := predicate(ctx, v)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		return emit(ctx, v)
	}
}

// LiftEffect returns a transform that ignores its input, runs the
// zero-argument effect, and emits its result; exactly one emission. The
// input value is only a trigger.
func LiftEffect[A, B any](action func(ctx context.Context) (B, error)) Transform[A, B] {
	return func(ctx context.Context, _ A, emit Emit[B]) error {
		b, err := action(ctx)
		if err != nil {
			return err
		}
		return emit(ctx, b)
	}
}

// Tap returns a transform that runs f for its side effect and then emits its
// input unchanged. The effect always precedes the emission.
func Tap[A any](f func(ctx context.Context, v A) error) Transform[A, A] {
	return func(ctx context.Context, v A, emit Emit[A]) error {
		if err := f(ctx, v); err != nil {
			return err
		}
		return emit(ctx, v)
	}
}

// ParseWith returns a transform that emits the parsed value when parse
// accepts the entire input, and emits nothing when it does not. A failed
// parse is silently dropped: downstream stages treat zero emissions as a
// normal outcome, so no error is raised and nothing is logged. The parse
// function must reject inputs with trailing garbage.
func ParseWith[T any](parse func(s string) (T, error)) Transform[string, T] {
	return func(ctx context.Context, s string, emit Emit[T]) error {
		t, err := parse(s)
		if err != nil {
			return nil
		}
		return emit(ctx, t)
	}
}

// ParseInt is ParseWith for base-10 signed integers.
func ParseInt() Transform[string, int64] {
	return ParseWith(func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

// ParseFloat is ParseWith for decimal floating point numbers.
func ParseFloat() Transform[string, float64] {
	return ParseWith(func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// Render returns a transform that emits the textual representation of its
// input; exactly one emission, no effect.
func Render[A any]() Transform[A, string] {
	return Map(func(v A) string { return fmt.Sprint(v) })
}
