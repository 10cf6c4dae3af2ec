package args

import (
	"io/ioutil"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/bokysan/baseenc/enc"
	"github.com/bokysan/baseenc/internal/codec"
)

// baseAliases are the short base names understood by --base next to the preset names
var baseAliases = map[string]*enc.Encoding{
	"16":    enc.HexUpper,
	"hex":   enc.HexLowerPermissive,
	"32":    enc.Base32,
	"32hex": enc.Base32Hex,
	"64":    enc.Base64,
	"64url": enc.Base64URL,
}

// Encoding describes the encoding used by a command, either starting from a known base, from a set of
// symbols or from a specification file. The remaining options are applied on top.
type Encoding struct {
	Base                     string `yaml:"base"                         short:"b" long:"base"                         env:"BASEENC_BASE"   description:"Use a known base: 16, hex, 32, 32hex, 64, 64url, 85, 91, 128 or a preset name"`
	Symbols                  string `yaml:"symbols"                                long:"symbols"                                           description:"Define a custom base using <symbols>"`
	SpecFile                 string `yaml:"spec-file"                              long:"spec-file"                                         description:"Read the encoding specification from a yaml file"`
	Padding                  string `yaml:"padding"                      short:"p" long:"padding"                                           description:"Pad with <padding>"`
	Ignore                   string `yaml:"ignore"                       short:"g" long:"ignore"                                            description:"When decoding, ignore characters in <ignore>"`
	Width                    int    `yaml:"width"                        short:"w" long:"width"                                             description:"When encoding, wrap every <cols> characters"`
	Separator                string `yaml:"separator"                    short:"s" long:"separator"                                         description:"When encoding, wrap with <separator>"`
	Translate                string `yaml:"translate"                              long:"translate"                                         description:"When decoding, translate <new> as <old>, given as <new><old>"`
	IgnoreTrailingBits       bool   `yaml:"ignore-trailing-bits"                   long:"ignore-trailing-bits"                              description:"When decoding, ignore non-zero trailing bits"`
	LeastSignificantBitFirst bool   `yaml:"least-significant-bit-first"            long:"least-significant-bit-first"                       description:"Use least significant bit first bit-order"`
}

// Codec returns the codec selected with --base when it is not a power of two base
func (o *Encoding) Codec() (codec.Codec, bool) {
	if o.Base == "" {
		return nil, false
	}
	return codec.Lookup(o.Base)
}

func (o *Encoding) customized() bool {
	return o.Padding != "" || o.Ignore != "" || o.Width != 0 || o.Separator != "" || o.Translate != "" ||
		o.IgnoreTrailingBits || o.LeastSignificantBitFirst
}

// Validate checks the options for conflicts and reports all of them at once
func (o *Encoding) Validate() error {
	var errs error

	sources := 0
	for _, s := range []string{o.Base, o.Symbols, o.SpecFile} {
		if s != "" {
			sources++
		}
	}
	if sources == 0 {
		errs = multierror.Append(errs, errors.Errorf("Base, symbols or a specification file must be provided"))
	} else if sources > 1 {
		errs = multierror.Append(errs, errors.Errorf("Base, symbols and specification file are incompatible"))
	}

	if o.Base != "" {
		if _, ok := o.Codec(); ok {
			if o.customized() {
				errs = multierror.Append(errs, errors.Errorf("Base %v cannot be customized", o.Base))
			}
		} else if _, err := lookupBase(o.Base); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if len(o.Translate)%2 != 0 {
		errs = multierror.Append(errs, errors.Errorf("Invalid translate: %q has an odd length", o.Translate))
	}
	if o.Width < 0 {
		errs = multierror.Append(errs, errors.Errorf("Invalid width value: %v", o.Width))
	}

	return errs
}

func lookupBase(base string) (*enc.Encoding, error) {
	if e, ok := baseAliases[base]; ok {
		return e, nil
	}
	if e, ok := enc.Lookup(base); ok {
		return e, nil
	}
	return nil, errors.Errorf("Invalid base: %v", base)
}

// ReadSpecification reads a yaml formatted specification. Missing keys keep the defaults of
// enc.NewSpecification.
func ReadSpecification(file string) (*enc.Specification, error) {
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read specification %v", file)
	}
	spec := enc.NewSpecification()
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, errors.Wrapf(err, "could not parse specification %v", file)
	}
	return spec, nil
}

// Specification builds the specification described by the options. When a known base is used, its
// padding is dropped unless a padding is given explicitly.
func (o *Encoding) Specification() (*enc.Specification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var spec *enc.Specification
	switch {
	case o.Base != "":
		e, err := lookupBase(o.Base)
		if err != nil {
			return nil, err
		}
		spec = e.Specification()
		spec.Padding = ""
	case o.SpecFile != "":
		s, err := ReadSpecification(o.SpecFile)
		if err != nil {
			return nil, err
		}
		spec = s
	default:
		spec = enc.NewSpecification()
		spec.Symbols = o.Symbols
	}

	if o.Padding != "" {
		spec.Padding = o.Padding
	}
	if o.Translate != "" {
		half := len(o.Translate) / 2
		spec.Translate.From = o.Translate[:half]
		spec.Translate.To = o.Translate[half:]
	}
	if o.IgnoreTrailingBits {
		spec.CheckTrailingBits = false
	}
	if o.LeastSignificantBitFirst {
		spec.BitOrder = enc.LeastSignificantFirst
	}
	spec.Ignore += o.Ignore
	if o.Width != 0 {
		spec.Wrap.Width = o.Width
	}
	spec.Wrap.Separator += o.Separator

	return spec, nil
}

// Encoding compiles the specification described by the options. Compilation failures are returned
// as *enc.SpecificationError, wrapped with a stack trace.
func (o *Encoding) Encoding() (*enc.Encoding, error) {
	spec, err := o.Specification()
	if err != nil {
		return nil, err
	}
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Specification from %v: %s", o.Source(), spew.Sdump(spec))
	}
	e, err := spec.Encoding()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	log.Debugf("Using encoding %v", e)
	return e, nil
}

// Source returns a short human readable name of where the encoding comes from
func (o *Encoding) Source() string {
	switch {
	case o.Base != "":
		return "base " + strings.TrimSpace(o.Base)
	case o.SpecFile != "":
		return "specification " + o.SpecFile
	}
	return "symbols " + o.Symbols
}
