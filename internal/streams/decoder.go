package streams

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/bokysan/baseenc/enc"
)

// Decoder decodes a stream in chunks. Errors are enc.DecodeError values positioned in the whole
// stream, as if it had been decoded at once. Everything decoded before an error is written out.
type Decoder struct {
	Encoding  *enc.Encoding
	BlockSize int
}

func NewDecoder(e *enc.Encoding, blockSize int) *Decoder {
	return &Decoder{
		Encoding:  e,
		BlockSize: blockSize,
	}
}

// Copy reads r until EOF and writes the decoded data to w
func (c *Decoder) Copy(w io.Writer, r io.Reader) error {
	input := make([]byte, chunkSize(c.BlockSize, 8))
	var output []byte
	pos, rest := 0, 0
	log.Tracef("Decoding with %v in chunks of %d bytes", c.Encoding, len(input))

	for {
		// A long run of ignored characters can fill the buffer without completing a block
		if rest == len(input) {
			input = append(input, make([]byte, len(input))...)
			log.Tracef("Input buffer grown to %d bytes", len(input))
		}

		n, err := io.ReadFull(r, input[rest:])
		eof := err == io.EOF || err == io.ErrUnexpectedEOF
		if err != nil && !eof {
			return errors.Wrapf(err, "could not read input")
		}
		avail := rest + n

		chunk := avail
		if !eof {
			chunk = c.Encoding.DecodeChunkLen(input[:avail])
		}

		olen, err := c.Encoding.DecodeLen(chunk)
		if err != nil {
			return shift(err, pos)
		}
		if len(output) < olen {
			output = make([]byte, olen)
		}
		written, err := c.Encoding.Decode(output[:olen], input[:chunk])
		if written > 0 {
			if _, werr := w.Write(output[:written]); werr != nil {
				return errors.WithStack(werr)
			}
		}
		if err != nil {
			return shift(err, pos)
		}

		if eof {
			return nil
		}
		pos += chunk
		rest = copy(input, input[chunk:avail])
	}
}

// shift moves the position of a decoding error from a chunk to the whole stream
func shift(err error, pos int) error {
	var de enc.DecodeError
	if !errors.As(err, &de) {
		return err
	}
	de.Position += pos
	return de
}
