package integration

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/vnykmshr/pushflow/internal/testutil"
	"github.com/vnykmshr/pushflow/pkg/bridge"
	"github.com/vnykmshr/pushflow/pkg/pull"
	"github.com/vnykmshr/pushflow/pkg/push"
	"github.com/vnykmshr/pushflow/pkg/writer"
)

// TestChannelToWriterPipeline drives a full pipeline: a channel source feeds
// a bridged parse/transform stage whose output lands in the buffered line
// writer.
func TestChannelToWriterPipeline(t *testing.T) {
	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	ch := make(chan string, 8)
	for _, v := range []string{"1", "junk", "2", "3", ""} {
		ch <- v
	}
	close(ch)

	underlying := testutil.NewMockWriter()
	w := writer.NewWithConfig(underlying, writer.Config{BufferSize: 1024})
	defer func() { _ = w.Close() }()

	stage := bridge.Stage(push.Pipe(
		push.ParseInt(),
		push.Pipe(
			push.Map(func(x int64) int64 { return x * 10 }),
			push.Render[int64](),
		),
	))

	src := stage(pull.FromChannel(ch))
	err := bridge.Consume(ctx, src, w.Sink())
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, w.Flush())
	testutil.AssertEqual(t, underlying.String(), "10\n20\n30\n")
}

// TestEarlyStopReleasesUpstream verifies that a consumer stopping early
// cancels the whole pull chain without forcing further effects.
func TestEarlyStopReleasesUpstream(t *testing.T) {
	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	generated := 0
	src := pull.Generate(func() int {
		generated++
		return generated
	})

	var effects int
	stage := bridge.Stage(push.Tap(func(context.Context, int) error {
		effects++
		return nil
	}))

	var got []int
	sink := push.ForEach(func(_ context.Context, v int) error {
		got = append(got, v)
		if len(got) == 3 {
			return push.ErrStop
		}
		return nil
	})

	err := bridge.Consume(ctx, stage(src), sink)
	testutil.AssertNoError(t, err)
	testutil.AssertDeepEqual(t, got, []int{1, 2, 3})
	testutil.AssertEqual(t, effects, 3)
	testutil.AssertEqual(t, generated, 3)
}

// TestTimedPipeline runs a generator-driven pipeline under a deadline and
// checks the context error surfaces at the driving loop.
func TestTimedPipeline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	src := pull.Generate(func() string { return strconv.Itoa(int(time.Now().UnixNano())) })
	slow := bridge.Stage(push.Tap(func(ctx context.Context, _ string) error {
		select {
		case <-time.After(5 * time.Millisecond):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}))

	err := bridge.Consume(ctx, slow(src), push.Discard[string]())
	testutil.AssertIsError(t, err, context.DeadlineExceeded)
}
