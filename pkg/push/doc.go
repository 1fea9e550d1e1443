/*
Package push provides the core algebra for push-based stream consumers: a
Sink consumes one value and performs an effect, a Transform consumes one
value and emits zero or more values downstream, and Pipe/Into compose them
into bigger sinks and transforms that are still plain function values.

Core Concepts:

A composed chain is driven one input at a time. For each input, values flow
depth-first: every value a transform emits is handed to the next stage
before the transform produces another one. This keeps memory bounded to one
in-flight element per composition link and makes composition associative.

Effects are ordinary Go functions taking a context and returning an error.
The context carries cancellation and whatever state the caller's effect
environment needs; errors propagate unchanged through the whole chain.

Basic Usage:

	// Keep non-empty lines, upper-case them, print them.
	chain := push.Into(
		push.Pipe(
			push.Filter(func(s string) bool { return s != "" }),
			push.Map(strings.ToUpper),
		),
		push.WriteLines(os.Stdout),
	)

	// A chain is just a function; invoke it directly...
	err := chain(ctx, "hello")

	// ...or drive it from a pull source via the bridge package.

Zero Emissions:

A transform may legitimately emit nothing for an input: Filter rejects it,
ParseInt fails to parse it. This is normal control flow, never an error.
Effect failures, in contrast, are returned unchanged and stop the chain for
the current input.

Early Stop:

Any downstream stage can return ErrStop to request that no further values
be produced. Composition propagates it upstream, no effects for unconsumed
elements run, and driving loops treat it as clean termination.

Laws:

Pipe is associative and Identity is its neutral element:

	Pipe(Pipe(f, g), h) == Pipe(f, Pipe(g, h))
	Pipe(Identity(), f) == f == Pipe(f, Identity())

Equality here is observational: same emitted values, same effects, same
order. The test suite verifies these laws against effect traces.
*/
package push
