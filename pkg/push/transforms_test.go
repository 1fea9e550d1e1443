package push

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vnykmshr/pushflow/internal/testutil"
)

func TestMap(t *testing.T) {
	var log testutil.EffectLog

	result, err := Collect(context.Background(), Map(func(x int) int { return x * x }), 7)
	testutil.AssertNoError(t, err)
	testutil.AssertDeepEqual(t, result, []int{49})
	testutil.AssertEqual(t, log.Len(), 0)
}

func TestMapEffect(t *testing.T) {
	calls := 0
	tr := MapEffect(func(_ context.Context, s string) (int, error) {
		calls++
		return len(s), nil
	})

	result, err := Collect(context.Background(), tr, "hello")
	testutil.AssertNoError(t, err)
	testutil.AssertDeepEqual(t, result, []int{5})
	testutil.AssertEqual(t, calls, 1)
}

func TestMapEffectError(t *testing.T) {
	boom := errors.New("boom")
	tr := MapEffect(func(_ context.Context, s string) (int, error) {
		return 0, boom
	})

	_, err := Collect(context.Background(), tr, "hello")
	testutil.AssertIsError(t, err, boom)
}

func TestMapMany(t *testing.T) {
	tr := MapMany(func(s string) []string { return strings.Fields(s) })

	result, err := Collect(context.Background(), tr, "a b c")
	testutil.AssertNoError(t, err)
	testutil.AssertDeepEqual(t, result, []string{"a", "b", "c"})

	result, err = Collect(context.Background(), tr, "")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(result), 0)
}

func TestFlatten(t *testing.T) {
	result, err := Collect(context.Background(), Flatten[int](), []int{1, 2, 3})
	testutil.AssertNoError(t, err)
	testutil.AssertDeepEqual(t, result, []int{1, 2, 3})

	result, err = Collect(context.Background(), Flatten[int](), nil)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(result), 0)
}

func TestFilter(t *testing.T) {
	even := Filter(func(x int) bool { return x%2 == 0 })

	result, err := Collect(context.Background(), even, 4)
	testutil.AssertNoError(t, err)
	testutil.AssertDeepEqual(t, result, []int{4})

	result, err = Collect(context.Background(), even, 3)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(result), 0)
}

func TestFilterEffect(t *testing.T) {
	calls := 0
	even := FilterEffect(func(_ context.Context, x int) (bool, error) {
		calls++
		return x%2 == 0, nil
	})

	result, err := Collect(context.Background(), even, 4)
	testutil.AssertNoError(t, err)
	testutil.AssertDeepEqual(t, result, []int{4})

	result, err = Collect(context.Background(), even, 3)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(result), 0)

	// The predicate effect runs exactly once per input, accepted or not.
	testutil.AssertEqual(t, calls, 2)
}

func TestFilterEffectError(t *testing.T) {
	boom := errors.New("boom")
	tr := FilterEffect(func(context.Context, int) (bool, error) { return false, boom })

	_, err := Collect(context.Background(), tr, 1)
	testutil.AssertIsError(t, err, boom)
}

func TestLiftEffect(t *testing.T) {
	counter := 0
	tr := LiftEffect[string](func(context.Context) (int, error) {
		counter++
		return counter, nil
	})

	result, err := Collect(context.Background(), tr, "ignored")
	testutil.AssertNoError(t, err)
	testutil.AssertDeepEqual(t, result, []int{1})

	result, err = Collect(context.Background(), tr, "also ignored")
	testutil.AssertNoError(t, err)
	testutil.AssertDeepEqual(t, result, []int{2})
}

func TestTapOrder(t *testing.T) {
	var log testutil.EffectLog

	tr := Pipe(
		Tap(func(_ context.Context, v string) error {
			log.Record("tap:" + v)
			return nil
		}),
		Tap(func(_ context.Context, v string) error {
			log.Record("down:" + v)
			return nil
		}),
	)

	result, err := Collect(context.Background(), tr, "x")
	testutil.AssertNoError(t, err)
	testutil.AssertDeepEqual(t, result, []string{"x"})
	testutil.AssertDeepEqual(t, log.Entries(), []string{"tap:x", "down:x"})
}

func TestParseIntFullParse(t *testing.T) {
	result, err := Collect(context.Background(), ParseInt(), "42")
	testutil.AssertNoError(t, err)
	testutil.AssertDeepEqual(t, result, []int64{42})
}

func TestParseIntTrailingGarbageDropped(t *testing.T) {
	// A partial parse is dropped silently: no emission, no error.
	result, err := Collect(context.Background(), ParseInt(), "42x")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(result), 0)
}

func TestParseIntInvalidDropped(t *testing.T) {
	for _, input := range []string{"", "x", "4 2", " 42"} {
		result, err := Collect(context.Background(), ParseInt(), input)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, len(result), 0)
	}
}

func TestParseFloat(t *testing.T) {
	result, err := Collect(context.Background(), ParseFloat(), "3.5")
	testutil.AssertNoError(t, err)
	testutil.AssertDeepEqual(t, result, []float64{3.5})

	result, err = Collect(context.Background(), ParseFloat(), "3.5kg")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(result), 0)
}

func TestRender(t *testing.T) {
	result, err := Collect(context.Background(), Render[int](), 42)
	testutil.AssertNoError(t, err)
	testutil.AssertDeepEqual(t, result, []string{"42"})
}

// naturals emits 0, 1, 2, ... without bound, running one counted effect per
// emission. Only downstream refusal can stop it.
func naturals(log *testutil.EffectLog) Transform[struct{}, int] {
	return func(ctx context.Context, _ struct{}, emit Emit[int]) error {
		for i := 0; ; i++ {
			log.Record("effect")
			if err := emit(ctx, i); err != nil {
				return err
			}
		}
	}
}

func TestLazinessBoundedEffects(t *testing.T) {
	const k = 5
	var log testutil.EffectLog

	var got []int
	err := naturals(&log)(context.Background(), struct{}{}, func(_ context.Context, v int) error {
		got = append(got, v)
		if len(got) == k {
			return ErrStop
		}
		return nil
	})

	testutil.AssertIsError(t, err, ErrStop)
	testutil.AssertDeepEqual(t, got, []int{0, 1, 2, 3, 4})
	// Exactly k effects ran; nothing was produced beyond the k-th element.
	testutil.AssertEqual(t, log.Len(), k)
}

func TestLazinessThroughComposition(t *testing.T) {
	const k = 3
	var log testutil.EffectLog

	chain := Pipe(naturals(&log), Map(func(x int) int { return x * 10 }))

	var got []int
	err := chain(context.Background(), struct{}{}, func(_ context.Context, v int) error {
		got = append(got, v)
		if len(got) == k {
			return ErrStop
		}
		return nil
	})

	testutil.AssertIsError(t, err, ErrStop)
	testutil.AssertDeepEqual(t, got, []int{0, 10, 20})
	testutil.AssertEqual(t, log.Len(), k)
}
