/*
Package bridge converts push-based sinks and transforms into pull-driven
consumers and pipeline stages.

A push chain is driven by whoever holds the values; a pull pipeline is
driven by the engine's loop requesting one element at a time. The bridge
inverts control with a suspend/resume producer (iter.Pull2), preserving the
push algebra's ordering and laziness guarantees: effects run only for
elements actually pulled, and stopping the pull is equivalent to canceling
the upstream chain.

Basic Usage:

	// Bridge a transform into a pull stage.
	stage := bridge.Stage(push.Pipe(
		push.Filter(func(s string) bool { return s != "" }),
		push.Map(strings.ToUpper),
	))

	src := stage(pull.FromSlice(lines))

	// Bridge a sink into the consumer of the driving loop.
	err := bridge.Consume(ctx, src, push.WriteLines(os.Stdout))

Bridging distributes over composition: bridge.Stage(push.Pipe(f, g)) and
bridge.Stage(g) applied after bridge.Stage(f) produce identical output
sequences and effect traces.
*/
package bridge
