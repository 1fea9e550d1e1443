/*
Package writer provides a buffered line writer usable as a push sink.

Lines are accumulated in an in-memory buffer and flushed to the underlying
io.Writer when the buffer fills, at a configurable interval, or on
Flush/Close. The Sink method adapts the writer into the push algebra:

	w := writer.New(file)
	defer w.Close()

	chain := push.Into(push.Render[int](), w.Sink())
	err := chain(ctx, 42)
*/
package writer
