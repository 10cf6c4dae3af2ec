package enc

import (
	"bytes"

	"github.com/pkg/errors"
)

const (
	flagMsb = 0x08
	flagCtb = 0x10
	noPad   = 128
)

// MarshalBinary returns the internal representation of the encoding: the symbol table, the value
// table, the padding, a flags byte and the wrap settings.
func (e *Encoding) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, 256+256+2+2+len(e.wrapSep))
	out = append(out, e.sym[:]...)
	out = append(out, e.val[:]...)
	if e.hasPad {
		out = append(out, e.pad)
	} else {
		out = append(out, noPad)
	}
	flags := byte(e.bit)
	if e.msb {
		flags |= flagMsb
	}
	if e.ctb {
		flags |= flagCtb
	}
	out = append(out, flags)
	switch {
	case e.wrapSep != nil:
		out = append(out, byte(e.wrapWidth))
		out = append(out, e.wrapSep...)
	case e.ignore:
		out = append(out, 0)
	}
	return out, nil
}

// UnmarshalBinary restores an encoding saved with MarshalBinary. Data which would not be produced
// by a valid specification is rejected.
func (e *Encoding) UnmarshalBinary(data []byte) error {
	if len(data) < 514 {
		return errors.Errorf("encoding data too short: %d bytes", len(data))
	}
	var d Encoding
	copy(d.sym[:], data[:256])
	copy(d.val[:], data[256:512])
	if data[512] < 128 {
		d.pad = data[512]
		d.hasPad = true
	}
	flags := data[513]
	d.bit = int(flags & 0x07)
	if d.bit < 1 || d.bit > 6 {
		return errors.Errorf("invalid bit width %d", d.bit)
	}
	d.msb = flags&flagMsb != 0
	d.ctb = flags&flagCtb != 0
	for _, v := range d.val {
		if v == ignore {
			d.ignore = true
			break
		}
	}
	if len(data) > 515 {
		d.wrapWidth = int(data[514])
		d.wrapSep = append([]byte{}, data[515:]...)
	}

	valid, err := d.Specification().Encoding()
	if err != nil {
		return errors.Wrap(err, "invalid encoding data")
	}
	canonical, _ := valid.MarshalBinary()
	if !bytes.Equal(canonical, data) {
		return errors.New("encoding data is not canonical")
	}
	*e = *valid
	return nil
}

// FromBinary is a convenience wrapper around UnmarshalBinary
func FromBinary(data []byte) (*Encoding, error) {
	e := new(Encoding)
	if err := e.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return e, nil
}

// MustFromBinary is like FromBinary but panics on invalid data
func MustFromBinary(data []byte) *Encoding {
	e, err := FromBinary(data)
	if err != nil {
		panic(err)
	}
	return e
}
