package codec

import (
	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
)

// cb128 maps the 7-bit groups to printable characters. It avoids '-' and uses ISO-8859-1 letters for
// the upper half, so the output is only safe on 8-bit clean channels.
const cb128 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
	"\274\275\276\277" +
	"\300\301\302\303\304\305\306\307\310\311\312\313\314\315\316\317" +
	"\320\321\322\323\324\325\326\327\330\331\332\333\334\335\336\337" +
	"\340\341\342\343\344\345\346\347\350\351\352\353\354\355\356\357" +
	"\360\361\362\363\364\365\366\367\370\371\372\373\374\375"

var cb128Invert = func() [256]int16 {
	var res [256]int16
	for i := range res {
		res[i] = -1
	}
	for i := 0; i < len(cb128); i++ {
		res[cb128[i]] = int16(i)
	}
	return res
}()

// Base128 encodes 7 bytes to 8 characters
type Base128 struct {
}

func (b *Base128) Name() string {
	return "Base128"
}

func (b *Base128) String() string {
	return describe(b)
}

// Encode packs the input into 7-bit groups, most significant bit first
func (b *Base128) Encode(src []byte) []byte {
	dst := make([]byte, 0, (len(src)*8+6)/7)

	shift := uint(1)
	carry := byte(0)
	for _, val := range src {
		dst = append(dst, cb128[carry|val>>shift])
		carry = (val & (1<<shift - 1)) << (7 - shift)
		if shift == 7 {
			dst = append(dst, cb128[carry])
			carry = 0
			shift = 0
		}
		shift++
	}
	if shift > 1 {
		dst = append(dst, cb128[carry])
	}
	return dst
}

func (b *Base128) Decode(data []byte) ([]byte, error) {
	src := make([]byte, len(data))
	for i, c := range data {
		v := cb128Invert[c]
		if v < 0 {
			return nil, errors.Errorf("invalid base128 character %q at %d", c, i)
		}
		src[i] = byte(v)
	}
	res, err := base128.DecodeString(string(src))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return res, nil
}

func (b *Base128) Ratio() float64 {
	return 8.0 / 7.0
}
