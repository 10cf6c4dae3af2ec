package enc

// encodePadLen rounds the encoded length up to a whole block when padding is enabled
func (e *Encoding) encodePadLen(n int) int {
	if !e.hasPad {
		return e.encodeBaseLen(n)
	}
	return divCeil(n, encLen(e.bit)) * decLen(e.bit)
}

func (e *Encoding) encodePad(dst, src []byte) {
	if !e.hasPad {
		e.encodeBase(dst, src)
		return
	}
	olen := e.encodeBaseLen(len(src))
	e.encodeBase(dst[:olen], src)
	for i := olen; i < len(dst); i++ {
		dst[i] = e.pad
	}
}

// decodePadLen fails with Length when n is not a valid (padded) input length
func (e *Encoding) decodePadLen(n int) (int, *DecodeError) {
	ilen, olen := e.decodeWrapLen(n)
	if ilen != n {
		return 0, &DecodeError{Position: ilen, Kind: Length}
	}
	return olen, nil
}

// decodePad decodes padded input, block by block. Every block is first decoded as if it had no
// padding; only when that fails is the padding of the offending block looked at. Each block carries
// its own padding, so concatenated padded inputs decode as one.
//
// len(dst) must be the decodePadLen of len(src). The returned length may be shorter when the input
// was padded.
func (e *Encoding) decodePad(dst, src []byte) (int, *DecodePartial) {
	if !e.hasPad {
		return e.decodeBase(dst, src)
	}
	enc, dec := encLen(e.bit), decLen(e.bit)
	inpos, outpos, outend := 0, 0, len(dst)
	for inpos < len(src) {
		written, partial := e.decodeBase(dst[outpos:outend], src[inpos:])
		if partial == nil {
			outpos += written
			break
		}
		inpos += partial.Read
		outpos += partial.Written

		inlen, ok := e.checkPad(src[inpos : inpos+dec])
		if !ok {
			return 0, &DecodePartial{
				Read:    inpos,
				Written: outpos,
				Err:     DecodeError{Position: inpos + inlen, Kind: Padding},
			}
		}
		outlen := e.bit * inlen / 8
		if _, partial := e.decodeBase(dst[outpos:outpos+outlen], src[inpos:inpos+inlen]); partial != nil {
			return 0, &DecodePartial{
				Read:    inpos,
				Written: outpos,
				Err: DecodeError{
					Position: inpos + partial.Err.Position,
					Kind:     partial.Err.Kind,
				},
			}
		}
		inpos += dec
		outpos += outlen
		outend -= enc - outlen
	}
	return outend, nil
}
