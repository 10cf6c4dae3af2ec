package args

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/bokysan/baseenc/internal/streams"
)

// IO holds the input and output of the encode and decode commands
type IO struct {
	Input  string `yaml:"input"  short:"i" long:"input"  default:"-"     description:"Read from <file> instead of standard input"`
	Output string `yaml:"output" short:"o" long:"output" default:"-"     description:"Write to <file> instead of standard output"`
	Block  int    `yaml:"block"            long:"block"  default:"15360" description:"Read blocks of about <size> bytes"`
}

func (o *IO) Validate() error {
	var errs error
	if o.Block < streams.MinBlockSize {
		errs = multierror.Append(errs, errors.Errorf("Block value must be greater or equal than %d", streams.MinBlockSize))
	}
	if o.Input != streams.StandardStream && o.Input != "" && o.Input == o.Output {
		errs = multierror.Append(errs, errors.Errorf("Input and output must differ: %v", o.Input))
	}
	return errs
}

// Open opens the input and the output. The caller must close both.
func (o *IO) Open() (*streams.NamedReader, *streams.NamedWriter, error) {
	if err := o.Validate(); err != nil {
		return nil, nil, err
	}
	in, err := streams.OpenInput(o.Input)
	if err != nil {
		return nil, nil, err
	}
	out, err := streams.OpenOutput(o.Output)
	if err != nil {
		streams.LogClose(in)
		return nil, nil, err
	}
	return in, out, nil
}
