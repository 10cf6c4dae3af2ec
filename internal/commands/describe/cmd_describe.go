package describe

import (
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	"github.com/bokysan/baseenc/enc"
	"github.com/bokysan/baseenc/internal/args"
	"github.com/bokysan/baseenc/internal/logging"
)

// Description is what the describe command prints, as YAML
type Description struct {
	Specification *enc.Specification `yaml:"specification,omitempty"`
	BitWidth      int                `yaml:"bit_width,omitempty"`
	Canonical     bool               `yaml:"canonical"`
	Codec         string             `yaml:"codec,omitempty"`
	Ratio         float64            `yaml:"ratio,omitempty"`
}

type Command struct {
	args.Encoding `group:"Encoding options" yaml:",inline"`

	// Output defaults to the standard output
	Output io.Writer `yaml:"-" no-flag:"true"`
}

func NewCommand() *Command {
	return &Command{}
}

// Describe returns the description of the selected encoding
func (c *Command) Describe() (*Description, error) {
	if codec, ok := c.Codec(); ok {
		return &Description{
			Codec: codec.Name(),
			Ratio: codec.Ratio(),
		}, nil
	}

	e, err := c.Encoding.Encoding()
	if err != nil {
		return nil, err
	}
	return &Description{
		Specification: e.Specification(),
		BitWidth:      e.BitWidth(),
		Canonical:     e.IsCanonical(),
	}, nil
}

func (c *Command) Execute(rest []string) error {
	logging.SetupLogging()

	if len(rest) > 0 {
		return errors.Errorf("Unexpected arguments %v", rest)
	}

	d, err := c.Describe()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(d)
	if err != nil {
		return errors.WithStack(err)
	}

	w := c.Output
	if w == nil {
		w = os.Stdout
	}
	_, err = w.Write(data)
	return errors.WithStack(err)
}
