package streams

import (
	"io"
)

// NamedWriter is the writing counterpart of NamedReader. Writes are buffered by the underlying SafeWriter
// and flushed on `Close()`.
type NamedWriter struct {
	WriteCloserClosed
	name  string
	count int64
}

// NewNamedWriter will, unsurprisingly, create a new NamedWriter with a given name
func NewNamedWriter(wrapped io.WriteCloser, name string) *NamedWriter {
	return &NamedWriter{
		WriteCloserClosed: NewSafeWriter(wrapped),
		name:              name,
	}
}

func (ns *NamedWriter) Write(p []byte) (int, error) {
	n, err := ns.WriteCloserClosed.Write(p)
	ns.count += int64(n)
	return n, err
}

// Count returns the number of bytes written so far
func (ns *NamedWriter) Count() int64 {
	return ns.count
}

func (ns *NamedWriter) String() string {
	return describeChain(ns.name, ns.WriteCloserClosed)
}

func (ns *NamedWriter) Unwrap() io.WriteCloser {
	return ns.WriteCloserClosed
}
