/*
Package pushflow provides a small algebra for building push-based stream
consumers out of composable pieces, and a bridge that turns them into stages
of pull-based iteration pipelines.

Core Algebra (pkg/push):
  - Sink: consumes one value and performs an effect
  - Transform: consumes one value, emits zero or more values downstream
  - Pipe / Into: depth-first composition with associativity and identity laws
  - Leaves: Map, Filter, MapMany, Tap, ParseInt, Render and friends

Pull Engine (pkg/pull):
  - Source: pull-driven element producer (Next/Close)
  - Drain: the single driving loop feeding a consumer one element at a time
  - Stages: composable Source-to-Source adapters, including Limit and Ticks

Bridge (pkg/bridge):
  - Consume: drives a push Sink from a pull Source
  - Stage: exposes a push Transform as a lazy pull stage

Supporting packages:
  - writer: asynchronous buffered line sink
  - publish: Redis-backed sinks
  - logging: zerolog observability leaves
  - metrics: Prometheus instrumentation

Example usage:

	import (
		"github.com/vnykmshr/pushflow/pkg/bridge"
		"github.com/vnykmshr/pushflow/pkg/pull"
		"github.com/vnykmshr/pushflow/pkg/push"
	)

	upper := push.Pipe(
		push.Filter(func(s string) bool { return s != "" }),
		push.Map(strings.ToUpper),
	)
	src := bridge.Stage(upper)(pull.FromSlice([]string{"", "a", "bb"}))
	err := bridge.Consume(ctx, src, push.WriteLines(os.Stdout))
*/
package pushflow
