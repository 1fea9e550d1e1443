package bridge

import (
	"context"
	"iter"

	"github.com/vnykmshr/pushflow/pkg/pull"
	"github.com/vnykmshr/pushflow/pkg/push"
)

// Consume drives a push sink from a pull source. Each element supplied by
// the engine is handed to the sink, whose effect runs to completion before
// the next element is requested. The sink returning ErrStop ends the drive
// cleanly; any other error is returned unchanged.
func Consume[A any](ctx context.Context, src pull.Source[A], sink push.Sink[A]) error {
	return pull.Drain(ctx, src, func(ctx context.Context, v A) error {
		return sink(ctx, v)
	})
}

// Stage exposes a push transform as a stage of a pull pipeline. For each
// upstream element the transform's emissions are forwarded downstream in
// order, one per pull, before the next upstream element is requested.
//
// The stage is lazy in the generator sense: the effect for emission i+1
// runs only when element i+1 is actually pulled, and closing the stage
// without pulling further elements runs no further effects. Bridging a
// composed chain is observationally identical to composing the bridged
// stages, and bridging push.Identity behaves like pull.PassThrough.
func Stage[A, B any](t push.Transform[A, B]) pull.Stage[A, B] {
	return func(src pull.Source[A]) pull.Source[B] {
		return &stageSource[A, B]{upstream: src, transform: t}
	}
}

type stageSource[A, B any] struct {
	upstream  pull.Source[A]
	transform push.Transform[A, B]

	// ctx holds the context of the in-flight Next call so the suspended
	// producer resumes under the caller's current context. Safe without
	// synchronization: the engine contract forbids concurrent pulls.
	ctx  context.Context
	next func() (B, error, bool)
	stop func()
}

func (s *stageSource[A, B]) Next(ctx context.Context) (B, bool, error) {
	var zero B

	s.ctx = ctx
	if s.next == nil {
		s.next, s.stop = iter.Pull2(s.produce)
	}

	v, err, ok := s.next()
	if !ok {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// produce runs as a coroutine via iter.Pull2. It pulls one upstream element,
// pushes it through the transform yielding each emission, and suspends at
// every yield until the consumer asks for the next element. A yield that
// returns false means the stage was closed: the transform sees ErrStop and
// no further upstream elements are requested.
func (s *stageSource[A, B]) produce(yield func(B, error) bool) {
	var zero B

	for {
		v, ok, err := s.upstream.Next(s.ctx)
		if err != nil {
			yield(zero, err)
			return
		}
		if !ok {
			return
		}

		err = s.transform(s.ctx, v, func(_ context.Context, b B) error {
			if !yield(b, nil) {
				return push.ErrStop
			}
			return nil
		})
		if err != nil {
			if push.IsStop(err) {
				return
			}
			yield(zero, err)
			return
		}
	}
}

func (s *stageSource[A, B]) Close() error {
	if s.stop != nil {
		s.stop()
	}
	return s.upstream.Close()
}
