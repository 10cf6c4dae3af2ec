package enc

import (
	"fmt"
)

// Encoding is a compiled Specification. It is immutable and safe for concurrent use.
type Encoding struct {
	sym    [256]byte // value -> canonical symbol, repeated to fill the table
	val    [256]byte // byte -> value, invalid, ignore or padding
	pad    byte
	hasPad bool
	bit    int
	msb    bool
	ctb    bool
	ignore bool // at least one character is ignored

	// nil when not wrapping
	wrapSep   []byte
	wrapWidth int
}

// BitWidth returns the number of bits per symbol, 1 to 6
func (e *Encoding) BitWidth() int {
	return e.bit
}

// BitOrder returns the order in which bits are grouped into symbols
func (e *Encoding) BitOrder() BitOrder {
	if e.msb {
		return MostSignificantFirst
	}
	return LeastSignificantFirst
}

// Padding returns the padding character, if any
func (e *Encoding) Padding() (byte, bool) {
	return e.pad, e.hasPad
}

func (e *Encoding) String() string {
	return fmt.Sprintf("Base%d(%s)", 1<<uint(e.bit), string(e.sym[:1<<uint(e.bit)]))
}

// EncodeLen returns the exact encoded length of n bytes, including padding and separators
func (e *Encoding) EncodeLen(n int) int {
	return e.encodeWrapLen(n)
}

// Encode encodes src into dst. It panics unless len(dst) is EncodeLen(len(src)).
func (e *Encoding) Encode(dst, src []byte) {
	if olen := e.EncodeLen(len(src)); len(dst) != olen {
		panic(fmt.Sprintf("enc: output length %d, expected %d", len(dst), olen))
	}
	e.encodeWrap(dst, src)
}

// EncodeToString returns the encoding of src
func (e *Encoding) EncodeToString(src []byte) string {
	dst := make([]byte, e.EncodeLen(len(src)))
	e.encodeWrap(dst, src)
	return string(dst)
}

// AppendEncode appends the encoding of src to dst and returns the extended slice
func (e *Encoding) AppendEncode(dst, src []byte) []byte {
	n := e.EncodeLen(len(src))
	dst = grow(dst, n)
	e.encodeWrap(dst[len(dst)-n:], src)
	return dst
}

// DecodeLen returns the decoded length of an input of n bytes.
//
// When the encoding ignores characters this is only an upper bound: the number of ignored
// characters is not known until the input is scanned, so Decode may still fail with Length and may
// write fewer bytes. Otherwise an invalid n fails with a DecodeError of kind Length positioned at
// the greatest valid length, and the result is exact for unpadded input.
func (e *Encoding) DecodeLen(n int) (int, error) {
	ilen, olen := e.decodeWrapLen(n)
	if !e.ignore && ilen != n {
		return 0, DecodeError{Position: ilen, Kind: Length}
	}
	return olen, nil
}

// Decode decodes src into dst and returns the number of bytes written, which may be less than
// len(dst) when the input holds padding or ignored characters.
//
// It panics unless len(dst) is DecodeLen(len(src)). On failure the error is a DecodePartial: the
// first Read input bytes were decoded into the first Written output bytes, and Written is also
// returned as n.
func (e *Encoding) Decode(dst, src []byte) (int, error) {
	olen, err := e.DecodeLen(len(src))
	if err != nil {
		panic(fmt.Sprintf("enc: invalid input length %d: %v", len(src), err))
	}
	if len(dst) != olen {
		panic(fmt.Sprintf("enc: output length %d, expected %d", len(dst), olen))
	}
	n, partial := e.decodeWrap(dst, src)
	if partial != nil {
		return partial.Written, *partial
	}
	return n, nil
}

// DecodeBytes returns the decoded src. The error, if any, is a DecodeError.
func (e *Encoding) DecodeBytes(src []byte) ([]byte, error) {
	return e.AppendDecode(nil, src)
}

// DecodeString returns the bytes represented by s. The error, if any, is a DecodeError.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	return e.AppendDecode(nil, []byte(s))
}

// AppendDecode appends the decoded src to dst. On failure dst is returned unchanged together with a
// DecodeError.
func (e *Encoding) AppendDecode(dst, src []byte) ([]byte, error) {
	olen, err := e.DecodeLen(len(src))
	if err != nil {
		return dst, err
	}
	start := len(dst)
	out := grow(dst, olen)
	n, partial := e.decodeWrap(out[start:], src)
	if partial != nil {
		return dst, partial.Err
	}
	return out[:start+n], nil
}

// IsCanonical reports whether decoding and encoding are exact inverses: trailing bits are checked,
// there is no padding, nothing is ignored and every accepted character is the canonical symbol of
// its value.
func (e *Encoding) IsCanonical() bool {
	if !e.ctb {
		return false
	}
	for i, v := range e.val {
		if v == invalid {
			continue
		}
		if int(v) >= 1<<uint(e.bit) {
			return false
		}
		if int(e.sym[v]) != i {
			return false
		}
	}
	return true
}

// Specification returns a specification which compiles back to an equal encoding. Characters
// accepted in place of a symbol or of the padding come back as translations.
func (e *Encoding) Specification() *Specification {
	s := NewSpecification()
	s.Symbols = string(e.sym[:1<<uint(e.bit)])
	s.BitOrder = e.BitOrder()
	s.CheckTrailingBits = e.ctb
	if e.hasPad {
		s.Padding = string([]byte{e.pad})
	}

	var ignored, from, to []byte
	for i := 0; i < 128; i++ {
		c, v := byte(i), e.val[i]
		var canonical byte
		switch {
		case v == ignore:
			ignored = append(ignored, c)
			continue
		case int(v) < 1<<uint(e.bit):
			canonical = e.sym[v]
		case v == padding:
			canonical = e.pad
		default:
			continue
		}
		if c != canonical {
			from = append(from, c)
			to = append(to, canonical)
		}
	}
	s.Ignore = string(ignored)
	s.Translate.From = string(from)
	s.Translate.To = string(to)
	if e.wrapSep != nil {
		s.Wrap.Width = e.wrapWidth
		s.Wrap.Separator = string(e.wrapSep)
	}
	return s
}

// grow extends b by n bytes, reallocating when needed
func grow(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b[:len(b)+n]
	}
	out := make([]byte, len(b)+n, 2*len(b)+n)
	copy(out, b)
	return out
}
