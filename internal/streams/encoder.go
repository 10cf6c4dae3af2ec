package streams

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/bokysan/baseenc/enc"
)

const (
	// DefaultBlockSize is the number of bytes read from the input in one go
	DefaultBlockSize = 15360
	// MinBlockSize is the smallest accepted block size
	MinBlockSize = 8
)

// Encoder encodes a stream in chunks. The output is the same as encoding the whole input at once.
type Encoder struct {
	Encoding  *enc.Encoding
	BlockSize int
}

func NewEncoder(e *enc.Encoding, blockSize int) *Encoder {
	return &Encoder{
		Encoding:  e,
		BlockSize: blockSize,
	}
}

// chunkSize returns the block size rounded down to a multiple of n, but at least n
func chunkSize(blockSize, n int) int {
	if blockSize < MinBlockSize {
		blockSize = DefaultBlockSize
	}
	if blockSize < n {
		return n
	}
	return blockSize / n * n
}

// Copy reads r until EOF and writes the encoded data to w
func (c *Encoder) Copy(w io.Writer, r io.Reader) error {
	size := chunkSize(c.BlockSize, c.Encoding.EncodeChunkLen())
	input := make([]byte, size)
	output := make([]byte, c.Encoding.EncodeLen(size))
	log.Tracef("Encoding with %v in chunks of %d bytes", c.Encoding, size)

	for {
		n, err := io.ReadFull(r, input)
		if n > 0 {
			olen := c.Encoding.EncodeLen(n)
			c.Encoding.Encode(output[:olen], input[:n])
			if _, werr := w.Write(output[:olen]); werr != nil {
				return errors.WithStack(werr)
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "could not read input")
		}
	}
}
