// Package logging provides zerolog-backed observability leaves for push
// pipelines.
package logging

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vnykmshr/pushflow/pkg/push"
)

// Tap returns a transform that logs each value at debug level and forwards
// it unchanged. The log write always precedes the downstream emission.
func Tap[A any](logger zerolog.Logger, msg string) push.Transform[A, A] {
	return push.Tap(func(_ context.Context, v A) error {
		logger.Debug().Interface("value", v).Msg(msg)
		return nil
	})
}

// Sink returns a sink that logs each consumed value at info level.
func Sink[A any](logger zerolog.Logger, msg string) push.Sink[A] {
	return func(_ context.Context, v A) error {
		logger.Info().Interface("value", v).Msg(msg)
		return nil
	}
}
