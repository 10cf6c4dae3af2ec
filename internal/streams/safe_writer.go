package streams

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// SafeWriter buffers writes to the wrapped io.WriteCloser and makes sure that `Close()` can be called
// safely multiple times. Close flushes the buffer first. Calling `Close()` on a closed object will simply
// succeed without an error.
type SafeWriter struct {
	io.WriteCloser
	buffer *bufio.Writer
	closed bool
}

func NewSafeWriter(wrapped io.WriteCloser) *SafeWriter {
	if scs, ok := wrapped.(*SafeWriter); ok {
		return scs
	}

	return &SafeWriter{
		WriteCloser: wrapped,
		buffer:      bufio.NewWriter(wrapped),
	}
}

func (ns *SafeWriter) Write(p []byte) (int, error) {
	if ns.closed {
		return 0, errors.WithStack(io.ErrClosedPipe)
	}
	return ns.buffer.Write(p)
}

// Flush writes any buffered data to the underlying stream
func (ns *SafeWriter) Flush() error {
	return errors.WithStack(ns.buffer.Flush())
}

// Close will flush and close the underlying stream. If the Close has already been called, it will do nothing
func (ns *SafeWriter) Close() error {
	if ns.closed {
		return nil
	}
	flushErr := ns.Flush()
	err := LogClose(ns.WriteCloser)
	ns.closed = true

	if flushErr != nil {
		return flushErr
	}
	return err
}

// Closed will return `true` if SafeWriter.Close has been called at least once
func (ns *SafeWriter) Closed() bool {
	return ns.closed
}

// Unwrap returns the embedded io.WriteCloser
func (ns *SafeWriter) Unwrap() io.WriteCloser {
	return ns.WriteCloser
}
