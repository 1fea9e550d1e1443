package writer

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/vnykmshr/pushflow/pkg/metrics"
	"github.com/vnykmshr/pushflow/pkg/push"
)

// ErrWriterClosed is returned when attempting to write to a closed writer.
var ErrWriterClosed = errors.New("writer is closed")

// Config holds configuration options for Writer.
type Config struct {
	// BufferSize is the size of the internal buffer in bytes.
	// Default: 64KB
	BufferSize int

	// FlushInterval is how often to flush the buffer automatically.
	// Set to 0 to disable automatic flushing.
	// Default: 1 second
	FlushInterval time.Duration

	// Name labels this writer in metrics. Default: "default"
	Name string

	// Metrics is the registry to record flushes and bytes written in.
	// If nil, metrics are disabled.
	Metrics *metrics.Registry
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		BufferSize:    64 * 1024,
		FlushInterval: time.Second,
		Name:          "default",
	}
}

// Writer buffers textual lines in memory and flushes them to an underlying
// io.Writer when the buffer fills, at a fixed interval, or on Flush/Close.
// It is the buffered variant of the push.WriteLines sink leaf.
type Writer struct {
	underlying io.Writer
	config     Config

	mu     sync.Mutex
	buffer []byte
	closed bool

	done chan struct{}
	wg   sync.WaitGroup
}

// New creates a Writer with default configuration.
func New(w io.Writer) *Writer {
	return NewWithConfig(w, DefaultConfig())
}

// NewWithConfig creates a Writer with the specified configuration.
func NewWithConfig(w io.Writer, config Config) *Writer {
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultConfig().BufferSize
	}
	if config.Name == "" {
		config.Name = DefaultConfig().Name
	}

	lw := &Writer{
		underlying: w,
		config:     config,
		buffer:     make([]byte, 0, config.BufferSize),
		done:       make(chan struct{}),
	}

	if config.FlushInterval > 0 {
		lw.wg.Add(1)
		go lw.flushLoop()
	}

	return lw
}

// WriteLine appends s plus a trailing newline to the buffer, flushing the
// buffer first when the line would not fit.
func (lw *Writer) WriteLine(ctx context.Context, s string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	lw.mu.Lock()
	defer lw.mu.Unlock()

	if lw.closed {
		return ErrWriterClosed
	}

	line := len(s) + 1
	if len(lw.buffer)+line > cap(lw.buffer) {
		if err := lw.flushLocked(); err != nil {
			return err
		}
	}

	// Lines larger than the whole buffer are written through directly.
	if line > cap(lw.buffer) {
		return lw.writeOut(append([]byte(s), '\n'))
	}

	lw.buffer = append(lw.buffer, s...)
	lw.buffer = append(lw.buffer, '\n')
	return nil
}

// Sink exposes the writer as a push sink consuming one line per value.
func (lw *Writer) Sink() push.Sink[string] {
	return lw.WriteLine
}

// Flush writes all buffered data to the underlying writer.
func (lw *Writer) Flush() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if lw.closed {
		return ErrWriterClosed
	}
	return lw.flushLocked()
}

// Close flushes remaining data, stops the automatic flush goroutine and
// marks the writer closed. Close is idempotent.
func (lw *Writer) Close() error {
	lw.mu.Lock()
	if lw.closed {
		lw.mu.Unlock()
		return nil
	}
	lw.closed = true
	err := lw.flushLocked()
	lw.mu.Unlock()

	close(lw.done)
	lw.wg.Wait()
	return err
}

// IsClosed returns true if the writer is closed.
func (lw *Writer) IsClosed() bool {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.closed
}

// BufferSize returns the current number of buffered bytes.
func (lw *Writer) BufferSize() int {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return len(lw.buffer)
}

func (lw *Writer) flushLoop() {
	defer lw.wg.Done()

	ticker := time.NewTicker(lw.config.FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			lw.mu.Lock()
			if !lw.closed {
				_ = lw.flushLocked() // errors surface on the next explicit write
			}
			lw.mu.Unlock()
		case <-lw.done:
			return
		}
	}
}

func (lw *Writer) flushLocked() error {
	if len(lw.buffer) == 0 {
		return nil
	}

	err := lw.writeOut(lw.buffer)
	lw.buffer = lw.buffer[:0]
	return err
}

func (lw *Writer) writeOut(data []byte) error {
	n, err := lw.underlying.Write(data)

	if lw.config.Metrics != nil {
		lw.config.Metrics.WriterFlushes.WithLabelValues(lw.config.Name).Inc()
		lw.config.Metrics.WriterBytesWritten.WithLabelValues(lw.config.Name).Add(float64(n))
	}

	return err
}
