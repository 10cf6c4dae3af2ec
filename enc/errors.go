package enc

import (
	"fmt"
)

// SpecificationErrorKind identifies why a Specification could not be compiled
type SpecificationErrorKind int

const (
	// BadSize is returned when the number of symbols is not 2, 4, 8, 16, 32 or 64
	BadSize SpecificationErrorKind = iota
	// NotAscii is returned when a symbol, padding, ignored or translated character is not ASCII
	NotAscii
	// Duplicate is returned when a character is given two different meanings
	Duplicate
	// ExtraPadding is returned when padding is requested for a bit width that divides 8
	ExtraPadding
	// BadPadding is returned when the padding is longer than a single character
	BadPadding
	// WrapLength is returned when the wrap width or the separator are too long
	WrapLength
	// WrapWidth is returned when the wrap width is not a multiple of the decoding block
	WrapWidth
	// FromTo is returned when the translate from and to strings differ in length
	FromTo
	// Undefined is returned when a translate target has no meaning
	Undefined
)

// SpecificationError is returned by Specification.Encoding. It is terminal: the specification has to
// be fixed and compiled again.
type SpecificationError struct {
	Kind SpecificationErrorKind
	// Char is the offending character for Duplicate and Undefined
	Char byte
	// Multiple is the required wrap width multiple for WrapWidth
	Multiple int
}

func (e *SpecificationError) Error() string {
	switch e.Kind {
	case BadSize:
		return "invalid number of symbols"
	case NotAscii:
		return "non-ascii character"
	case Duplicate:
		return fmt.Sprintf("%s has conflicting definitions", quoteChar(e.Char))
	case ExtraPadding:
		return "unnecessary padding"
	case BadPadding:
		return "padding must be a single character"
	case WrapLength:
		return "invalid wrap width or separator length"
	case WrapWidth:
		return fmt.Sprintf("wrap width not a multiple of %d", e.Multiple)
	case FromTo:
		return "translate from/to length mismatch"
	case Undefined:
		return fmt.Sprintf("%s is undefined", quoteChar(e.Char))
	}
	return fmt.Sprintf("specification error %d", int(e.Kind))
}

func quoteChar(c byte) string {
	return fmt.Sprintf("%q", rune(c))
}

// DecodeKind is the kind of a decoding error
type DecodeKind int

const (
	// Length means the input length (without ignored characters) is invalid
	Length DecodeKind = iota
	// Symbol means the input contains a character which is not a symbol
	Symbol
	// Trailing means the last symbol of a block carries non-zero trailing bits
	Trailing
	// Padding means a padding run has an invalid length
	Padding
)

func (k DecodeKind) String() string {
	switch k {
	case Length:
		return "invalid length"
	case Symbol:
		return "invalid symbol"
	case Trailing:
		return "non-zero trailing bits"
	case Padding:
		return "invalid padding length"
	}
	return fmt.Sprintf("DecodeKind(%d)", int(k))
}

// DecodeError describes the first problem found in the input.
//
// Position is always an offset into the caller's input. For Length it is the greatest valid input
// length, for Symbol the first invalid character, for Trailing the character holding the non-zero
// bits and for Padding the first padding character of the invalid padding run.
type DecodeError struct {
	Position int
	Kind     DecodeKind
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("%v at %d", e.Kind, e.Position)
}

// DecodePartial is returned by Encoding.Decode. The first Read bytes of the input were decoded
// successfully into the first Written bytes of the output before Err was found.
type DecodePartial struct {
	Read    int
	Written int
	Err     DecodeError
}

func (e DecodePartial) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying DecodeError
func (e DecodePartial) Unwrap() error {
	return e.Err
}
