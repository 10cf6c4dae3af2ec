package enc

// EncodeChunkLen returns the number of input bytes which encode independently of what follows: a
// whole block, or a whole row when wrapping. Encoding a stream in chunks that are multiples of
// this length, with only the last one shorter, gives the same output as encoding it at once.
func (e *Encoding) EncodeChunkLen() int {
	if e.wrapSep != nil {
		return e.wrapWidth / decLen(e.bit) * encLen(e.bit)
	}
	return encLen(e.bit)
}

// DecodeChunkLen returns the length of the longest prefix of src made of whole decoding blocks.
// Ignored characters are skipped but do not count towards a block. Whatever follows the prefix
// can be decoded once more input is available.
func (e *Encoding) DecodeChunkLen(src []byte) int {
	dec := decLen(e.bit)
	if !e.ignore {
		return floor(len(src), dec)
	}
	count, end := 0, 0
	for i, c := range src {
		if e.val[c] == ignore {
			continue
		}
		count++
		if count%dec == 0 {
			end = i + 1
		}
	}
	return end
}
