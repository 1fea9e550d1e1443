// Package pull provides the pull-driven iteration engine that feeds elements
// one at a time to consumers and stages built from the push algebra.
//
// A Source produces elements on demand via Next; Drain is the single driving
// loop that pulls from a source strictly sequentially and feeds a consumer.
// Stages are Source-to-Source adapters and compose by function application.
//
// The engine guarantees it never requests two elements concurrently from the
// same source, and that ceasing to request elements (Close without further
// Next calls) is equivalent to cancellation.
//
// Basic Usage:
//
//	src := pull.FromSlice([]int{1, 2, 3, 4, 5})
//	limited := pull.Limit[int](3)(src)
//
//	err := pull.Drain(ctx, limited, func(ctx context.Context, v int) error {
//		fmt.Println(v)
//		return nil
//	})
//
// Time-driven pipelines can use a cron source:
//
//	ticks, err := pull.Ticks("*/5 * * * *")
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = pull.Drain(ctx, ticks, handleTick)
package pull
