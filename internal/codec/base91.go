package codec

import (
	"github.com/mtraver/base91"
	"github.com/pkg/errors"
)

const (
	cb91 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&()*+,./:;<=>?@[]^_`{|}~\""
)

var base91Encoding = base91.NewEncoding(cb91)

// Base91 converts each group of 13 bits into 2 radix-91 digits
type Base91 struct {
}

func (b *Base91) Name() string {
	return "Base91"
}

func (b *Base91) String() string {
	return describe(b)
}

func (b *Base91) Encode(data []byte) []byte {
	return []byte(base91Encoding.EncodeToString(data))
}

func (b *Base91) Decode(data []byte) ([]byte, error) {
	res, err := base91Encoding.DecodeString(string(data))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return res, nil
}

func (b *Base91) Ratio() float64 {
	return 16.0 / 13.0
}
