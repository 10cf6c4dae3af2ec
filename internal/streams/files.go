package streams

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

// StandardStream is the file name which stands for the standard input or output
const StandardStream = "-"

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// OpenInput opens the named file for reading. An empty name or "-" is the standard input, which is
// left open when the reader is closed.
func OpenInput(name string) (*NamedReader, error) {
	if name == "" || name == StandardStream {
		return NewNamedReader(ioutil.NopCloser(os.Stdin), "stdin"), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open input %v", name)
	}
	return NewNamedReader(f, name), nil
}

// OpenOutput creates (or truncates) the named file for writing. An empty name or "-" is the standard
// output, which is flushed but left open when the writer is closed.
func OpenOutput(name string) (*NamedWriter, error) {
	if name == "" || name == StandardStream {
		return NewNamedWriter(nopWriteCloser{os.Stdout}, "stdout"), nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create output %v", name)
	}
	return NewNamedWriter(f, name), nil
}
