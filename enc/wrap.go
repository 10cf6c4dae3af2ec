package enc

func (e *Encoding) encodeWrapLen(n int) int {
	olen := e.encodePadLen(n)
	if e.wrapSep == nil {
		return olen
	}
	return olen + len(e.wrapSep)*divCeil(olen, e.wrapWidth)
}

// encodeWrap writes rows of wrapWidth symbols, each followed by the separator. The last row may be
// shorter (and padded) and is followed by the separator too. An empty input has no rows.
func (e *Encoding) encodeWrap(dst, src []byte) {
	if e.wrapSep == nil {
		e.encodePad(dst, src)
		return
	}
	blocks := e.wrapWidth / decLen(e.bit)
	ilen := blocks * encLen(e.bit)
	olen := e.wrapWidth
	row := olen + len(e.wrapSep)

	n := len(src) / ilen
	for i := 0; i < n; i++ {
		out := dst[row*i : row*(i+1)]
		e.encodeBase(out[:olen], src[ilen*i:ilen*(i+1)])
		copy(out[olen:], e.wrapSep)
	}
	if len(src) > ilen*n {
		end := row*n + e.encodePadLen(len(src)-ilen*n)
		e.encodePad(dst[row*n:end], src[ilen*n:])
		copy(dst[end:], e.wrapSep)
	}
}

func (e *Encoding) skipIgnore(src []byte, pos int) int {
	for pos < len(src) && e.val[src[pos]] == ignore {
		pos++
	}
	return pos
}

// decodeWrapBlock gathers the next block of non-ignored characters, remembering where each came
// from, and decodes it. It returns how much input was consumed and how much output was written.
// Error positions are relative to src.
func (e *Encoding) decodeWrapBlock(dst, src []byte) (int, int, *DecodeError) {
	dec := decLen(e.bit)
	var buf [8]byte
	var shift [8]int
	bufpos, inpos := 0, 0
	for bufpos < dec {
		inpos = e.skipIgnore(src, inpos)
		if inpos == len(src) {
			break
		}
		shift[bufpos] = inpos
		buf[bufpos] = src[inpos]
		bufpos++
		inpos++
	}
	olen, err := e.decodePadLen(bufpos)
	if err != nil {
		return 0, 0, &DecodeError{Position: shift[err.Position], Kind: err.Kind}
	}
	written, partial := e.decodePad(dst[:olen], buf[:bufpos])
	if partial != nil {
		return 0, 0, &DecodeError{Position: shift[partial.Err.Position], Kind: partial.Err.Kind}
	}
	return inpos, written, nil
}

// decodeWrap decodes input which may contain ignored characters. Runs without ignored characters
// go straight to the padding layer; only the block around an ignored character is gathered one
// character at a time.
func (e *Encoding) decodeWrap(dst, src []byte) (int, *DecodePartial) {
	if !e.ignore {
		return e.decodePad(dst, src)
	}
	inpos, outpos := 0, 0
	for inpos < len(src) {
		inlen, outlen := e.decodeWrapLen(len(src) - inpos)
		written, partial := e.decodePad(dst[outpos:outpos+outlen], src[inpos:inpos+inlen])
		if partial == nil {
			inpos += inlen
			outpos += written
			break
		}
		inpos += partial.Read
		outpos += partial.Written

		ipos, opos, err := e.decodeWrapBlock(dst[outpos:], src[inpos:])
		if err != nil {
			return 0, &DecodePartial{
				Read:    inpos,
				Written: outpos,
				Err:     DecodeError{Position: inpos + err.Position, Kind: err.Kind},
			}
		}
		inpos += ipos
		outpos += opos
	}
	inpos = e.skipIgnore(src, inpos)
	if inpos != len(src) {
		return 0, &DecodePartial{
			Read:    inpos,
			Written: outpos,
			Err:     DecodeError{Position: inpos, Kind: Length},
		}
	}
	return outpos, nil
}
