package decode

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/bokysan/baseenc/internal/args"
	"github.com/bokysan/baseenc/internal/logging"
	"github.com/bokysan/baseenc/internal/streams"
)

type Command struct {
	args.Encoding `group:"Encoding options" yaml:",inline"`
	args.IO       `group:"Input/output options" yaml:",inline"`
}

func NewCommand() *Command {
	return &Command{
		IO: args.IO{
			Input:  streams.StandardStream,
			Output: streams.StandardStream,
			Block:  streams.DefaultBlockSize,
		},
	}
}

// Run decodes everything read from r into w. Invalid input is reported as an enc.DecodeError
// positioned in the whole input. Whatever was decoded before the error has been written already.
func (c *Command) Run(w io.Writer, r io.Reader) error {
	if codec, ok := c.Codec(); ok {
		log.Debugf("Decoding with %v", codec)
		data, err := ioutil.ReadAll(r)
		if err != nil {
			return errors.Wrapf(err, "could not read input")
		}
		decoded, err := codec.Decode(data)
		if err != nil {
			return err
		}
		_, err = w.Write(decoded)
		return errors.WithStack(err)
	}

	e, err := c.Encoding.Encoding()
	if err != nil {
		return err
	}
	log.Debugf("Decoding %v with block size %d", c.Source(), c.Block)
	return streams.NewDecoder(e, c.Block).Copy(w, r)
}

func (c *Command) Execute(rest []string) error {
	logging.SetupLogging()

	if len(rest) > 0 {
		return errors.Errorf("Unexpected arguments %v", rest)
	}
	if err := c.Encoding.Validate(); err != nil {
		return err
	}

	in, out, err := c.Open()
	if err != nil {
		return err
	}
	defer streams.LogClose(in)

	log.Debugf("Decoding %v into %v", in, out)
	err = c.Run(out, in)
	log.Debugf("Read %d bytes, wrote %d bytes", in.Count(), out.Count())
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return err
}
