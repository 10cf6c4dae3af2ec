package enc

// Value table markers. Symbol values are always below 64 so they never collide with these.
const (
	invalid = 128
	ignore  = 129
	padding = 130
)

// order returns the position of group i out of n, counting from the most significant end when msb
// is set and from the least significant end otherwise.
func order(msb bool, n, i int) uint {
	if msb {
		return uint(n - 1 - i)
	}
	return uint(i)
}

// encLen is the number of bytes in a block: the smallest byte count whose bits split evenly into
// symbols of the given bit width.
func encLen(bit int) int {
	switch bit {
	case 1, 2, 4:
		return 1
	case 3, 6:
		return 3
	case 5:
		return 5
	}
	panic("enc: invalid bit width")
}

// decLen is the number of symbols in a block
func decLen(bit int) int {
	return encLen(bit) * 8 / bit
}

func divCeil(x, m int) int {
	return (x + m - 1) / m
}

func floor(x, m int) int {
	return x / m * m
}

// encodeBaseLen is the unpadded encoded length of n bytes
func (e *Encoding) encodeBaseLen(n int) int {
	return divCeil(8*n, e.bit)
}

// encodeBlock packs at most encLen bytes into an accumulator and extracts one symbol per bit
// group. len(dst) must be encodeBaseLen(len(src)).
func (e *Encoding) encodeBlock(dst, src []byte) {
	bit := uint(e.bit)
	enc, dec := encLen(e.bit), decLen(e.bit)
	var x uint64
	for i, b := range src {
		x |= uint64(b) << (8 * order(e.msb, enc, i))
	}
	for i := range dst {
		y := x >> (bit * order(e.msb, dec, i))
		dst[i] = e.sym[y&0xff]
	}
}

// encodeBase encodes all full blocks and then the trailing partial block
func (e *Encoding) encodeBase(dst, src []byte) {
	enc, dec := encLen(e.bit), decLen(e.bit)
	n := len(src) / enc
	for i := 0; i < n; i++ {
		e.encodeBlock(dst[dec*i:dec*(i+1)], src[enc*i:enc*(i+1)])
	}
	e.encodeBlock(dst[dec*n:], src[enc*n:])
}

// decodeBlock is the inverse of encodeBlock. It fails with the index of the first character which
// is not a symbol, in which case dst is left untouched.
func (e *Encoding) decodeBlock(dst, src []byte) (int, bool) {
	bit := uint(e.bit)
	enc, dec := encLen(e.bit), decLen(e.bit)
	var x uint64
	for j, c := range src {
		y := e.val[c]
		if y >= 1<<bit {
			return j, false
		}
		x |= uint64(y) << (bit * order(e.msb, dec, j))
	}
	for j := range dst {
		dst[j] = byte(x >> (8 * order(e.msb, enc, j)))
	}
	return 0, true
}

// decodeBlocks decodes every block of src. On failure the position is the first invalid character
// and dst holds valid output up to pos / dec * enc.
func (e *Encoding) decodeBlocks(dst, src []byte) (int, bool) {
	enc, dec := encLen(e.bit), decLen(e.bit)
	n := len(src) / dec
	for i := 0; i < n; i++ {
		if pos, ok := e.decodeBlock(dst[enc*i:enc*(i+1)], src[dec*i:dec*(i+1)]); !ok {
			return dec*i + pos, false
		}
	}
	if pos, ok := e.decodeBlock(dst[enc*n:], src[dec*n:]); !ok {
		return dec*n + pos, false
	}
	return 0, true
}

// checkTrail verifies that the bits of the last symbol which do not make it into the output are
// zero.
func (e *Encoding) checkTrail(src []byte) bool {
	if 8%e.bit == 0 || !e.ctb {
		return true
	}
	trail := uint(e.bit * len(src) % 8)
	if trail == 0 {
		return true
	}
	mask := byte(1)<<trail - 1
	if !e.msb {
		mask <<= uint(e.bit) - trail
	}
	return e.val[src[len(src)-1]]&mask == 0
}

// checkPad counts the padding at the end of a full block and returns the length of the data in
// front of it. It fails with the index of the first padding character when that length cannot be
// produced by the encoder.
func (e *Encoding) checkPad(src []byte) (int, bool) {
	count := 0
	for i := len(src) - 1; i >= 0 && e.val[src[i]] == padding; i-- {
		count++
	}
	n := len(src) - count
	if n > 0 && e.bit*n%8 < e.bit {
		return n, true
	}
	return n, false
}

// decodeWrapLen returns the longest valid input length not above n and the matching output length
func (e *Encoding) decodeWrapLen(n int) (int, int) {
	enc, dec := encLen(e.bit), decLen(e.bit)
	if e.hasPad {
		return floor(n, dec), n / dec * enc
	}
	trail := e.bit * n % 8
	return n - trail/e.bit, e.bit * n / 8
}

// decodeBaseLen fails with Length when n symbols cannot come out of the encoder without padding.
// The error position is the greatest valid length.
func (e *Encoding) decodeBaseLen(n int) (int, *DecodeError) {
	trail := e.bit * n % 8
	ilen := n - trail/e.bit
	if ilen != n {
		return 0, &DecodeError{Position: ilen, Kind: Length}
	}
	return e.bit * n / 8, nil
}

// decodeBase decodes unpadded input. len(dst) must be the decodeBaseLen of len(src).
func (e *Encoding) decodeBase(dst, src []byte) (int, *DecodePartial) {
	enc, dec := encLen(e.bit), decLen(e.bit)
	fail := func(pos int, kind DecodeKind) *DecodePartial {
		return &DecodePartial{
			Read:    pos / dec * dec,
			Written: pos / dec * enc,
			Err:     DecodeError{Position: pos, Kind: kind},
		}
	}
	if pos, ok := e.decodeBlocks(dst, src); !ok {
		return 0, fail(pos, Symbol)
	}
	if !e.checkTrail(src) {
		return 0, fail(len(src)-1, Trailing)
	}
	return len(dst), nil
}
