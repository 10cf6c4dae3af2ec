package streams

import (
	"fmt"
	"io"
)

// NamedReader implements the io.ReadCloser interface as well as fmt.Stringer. It allows the caller to setup
// a name for the stream which will be returned when outputing the stream with `%v`, and counts the bytes
// read through it. It also makes sure that `Close()` can be called safely multiple times.
type NamedReader struct {
	ReadCloserClosed
	name  string
	count int64
}

func NewNamedReader(wrapped io.ReadCloser, name string) *NamedReader {
	return &NamedReader{
		ReadCloserClosed: NewSafeReader(wrapped),
		name:             name,
	}
}

func (ns *NamedReader) Read(p []byte) (int, error) {
	n, err := ns.ReadCloserClosed.Read(p)
	ns.count += int64(n)
	return n, err
}

// Count returns the number of bytes read so far
func (ns *NamedReader) Count() int64 {
	return ns.count
}

func (ns *NamedReader) String() string {
	return describeChain(ns.name, ns.ReadCloserClosed)
}

func (ns *NamedReader) Unwrap() io.ReadCloser {
	return ns.ReadCloserClosed
}

// describeChain appends the name of the first named stream found by unwrapping s
func describeChain(name string, s interface{}) string {
	for {
		var u interface{}
		switch t := s.(type) {
		case UnwrappedReadCloser:
			u = t.Unwrap()
		case UnwrappedWriteCloser:
			u = t.Unwrap()
		default:
			return name
		}
		if v, ok := u.(fmt.Stringer); ok {
			return name + "->" + v.String()
		}
		s = u
	}
}
