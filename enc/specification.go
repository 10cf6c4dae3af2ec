package enc

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// BitOrder tells how the bits of the input are split into symbols
type BitOrder int

const (
	// MostSignificantFirst takes bit groups starting from the most significant bit of each byte, as
	// RFC4648 does
	MostSignificantFirst BitOrder = iota
	// LeastSignificantFirst takes bit groups starting from the least significant bit, as DNSCurve
	// does
	LeastSignificantFirst
)

func (b BitOrder) String() string {
	switch b {
	case MostSignificantFirst:
		return "msb"
	case LeastSignificantFirst:
		return "lsb"
	}
	return fmt.Sprintf("BitOrder(%d)", int(b))
}

// ParseBitOrder accepts "msb", "lsb" and the long constant names, case insensitive
func ParseBitOrder(s string) (BitOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "msb", "mostsignificantfirst", "most-significant-first", "":
		return MostSignificantFirst, nil
	case "lsb", "leastsignificantfirst", "least-significant-first":
		return LeastSignificantFirst, nil
	}
	return MostSignificantFirst, errors.Errorf("invalid bit order %q", s)
}

// MarshalYAML stores the bit order as its short name
func (b BitOrder) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

// UnmarshalYAML reads the bit order from its name
func (b *BitOrder) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := ParseBitOrder(s)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Wrap inserts Separator after every Width encoded characters. Both must be set for wrapping to
// take effect.
type Wrap struct {
	Width     int    `yaml:"width,omitempty"     json:"width,omitempty"`
	Separator string `yaml:"separator,omitempty" json:"separator,omitempty"`
}

// Translate makes the decoder accept From[i] wherever To[i] is accepted
type Translate struct {
	From string `yaml:"from,omitempty" json:"from,omitempty"`
	To   string `yaml:"to,omitempty"   json:"to,omitempty"`
}

// Specification describes an encoding. Its exported fields are the interchange format for a user
// chosen configuration; compile it with Encoding.
type Specification struct {
	// Symbols lists the 2, 4, 8, 16, 32 or 64 ASCII symbols. The position of a symbol is its value.
	Symbols string `yaml:"symbols" json:"symbols"`

	BitOrder BitOrder `yaml:"bit_order" json:"bit_order"`

	// CheckTrailingBits rejects input whose unused trailing bits are not zero. Always on when the
	// bit width divides 8.
	CheckTrailingBits bool `yaml:"check_trailing_bits" json:"check_trailing_bits"`

	// Padding is empty for no padding, or the single ASCII padding character. Only allowed for bit
	// widths 3, 5 and 6.
	Padding string `yaml:"padding,omitempty" json:"padding,omitempty"`

	// Ignore lists characters skipped when decoding
	Ignore string `yaml:"ignore,omitempty" json:"ignore,omitempty"`

	Wrap      Wrap      `yaml:"wrap,omitempty"      json:"wrap,omitempty"`
	Translate Translate `yaml:"translate,omitempty" json:"translate,omitempty"`
}

// NewSpecification returns an empty specification with the default options: most significant bit
// first and trailing bits checked.
func NewSpecification() *Specification {
	return &Specification{
		BitOrder:          MostSignificantFirst,
		CheckTrailingBits: true,
	}
}

// Encoding validates the specification and compiles it. The error, if any, is a
// *SpecificationError.
func (s *Specification) Encoding() (*Encoding, error) {
	symbols := []byte(s.Symbols)
	var bit int
	switch len(symbols) {
	case 2:
		bit = 1
	case 4:
		bit = 2
	case 8:
		bit = 3
	case 16:
		bit = 4
	case 32:
		bit = 5
	case 64:
		bit = 6
	default:
		return nil, &SpecificationError{Kind: BadSize}
	}

	e := &Encoding{bit: bit}
	for i := range e.val {
		e.val[i] = invalid
	}
	// set is the only way meanings get assigned. Assigning the same meaning twice is fine.
	set := func(c, v byte) error {
		if c >= 128 {
			return &SpecificationError{Kind: NotAscii}
		}
		if e.val[c] == v {
			return nil
		}
		if e.val[c] != invalid {
			return &SpecificationError{Kind: Duplicate, Char: c}
		}
		e.val[c] = v
		return nil
	}

	for v, c := range symbols {
		if err := set(c, byte(v)); err != nil {
			return nil, err
		}
	}
	e.msb = s.BitOrder != LeastSignificantFirst
	e.ctb = s.CheckTrailingBits || 8%bit == 0

	if s.Padding != "" {
		if 8%bit == 0 {
			return nil, &SpecificationError{Kind: ExtraPadding}
		}
		if len(s.Padding) != 1 {
			if utf8.RuneCountInString(s.Padding) == 1 {
				return nil, &SpecificationError{Kind: NotAscii}
			}
			return nil, &SpecificationError{Kind: BadPadding}
		}
		if err := set(s.Padding[0], padding); err != nil {
			return nil, err
		}
		e.pad = s.Padding[0]
		e.hasPad = true
	}

	for _, c := range []byte(s.Ignore) {
		if err := set(c, ignore); err != nil {
			return nil, err
		}
	}

	if s.Wrap.Width != 0 && s.Wrap.Separator != "" {
		width, sep := s.Wrap.Width, []byte(s.Wrap.Separator)
		if width < 0 || width >= 256 || len(sep) >= 256 {
			return nil, &SpecificationError{Kind: WrapLength}
		}
		if dec := decLen(bit); width%dec != 0 {
			return nil, &SpecificationError{Kind: WrapWidth, Multiple: dec}
		}
		for _, c := range sep {
			if err := set(c, ignore); err != nil {
				return nil, err
			}
		}
		e.wrapWidth = width
		e.wrapSep = sep
	}

	from, to := []byte(s.Translate.From), []byte(s.Translate.To)
	if len(from) != len(to) {
		return nil, &SpecificationError{Kind: FromTo}
	}
	for i := range from {
		if to[i] >= 128 {
			return nil, &SpecificationError{Kind: NotAscii}
		}
		v := e.val[to[i]]
		if v == invalid {
			return nil, &SpecificationError{Kind: Undefined, Char: to[i]}
		}
		if err := set(from[i], v); err != nil {
			return nil, err
		}
	}

	for i := range e.sym {
		e.sym[i] = symbols[i%len(symbols)]
	}
	for _, v := range e.val {
		if v == ignore {
			e.ignore = true
			break
		}
	}
	return e, nil
}

// MustEncoding is like Encoding but panics on an invalid specification. It is meant for package level
// variables.
func (s *Specification) MustEncoding() *Encoding {
	e, err := s.Encoding()
	if err != nil {
		panic(fmt.Sprintf("enc: invalid specification %q: %v", s.Symbols, err))
	}
	return e
}
