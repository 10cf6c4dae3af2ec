package codec

import (
	"encoding/ascii85"

	"github.com/pkg/errors"
)

// Base85 encodes 4 bytes to 5 characters, using the btoa / Adobe alphabet
type Base85 struct {
}

func (b *Base85) Name() string {
	return "Base85"
}

func (b *Base85) String() string {
	return describe(b)
}

func (b *Base85) Encode(data []byte) []byte {
	dst := make([]byte, ascii85.MaxEncodedLen(len(data)))
	n := ascii85.Encode(dst, data)
	return dst[:n]
}

func (b *Base85) Decode(data []byte) ([]byte, error) {
	// 'z' stands for four zero bytes
	dst := make([]byte, 4*len(data))
	n, _, err := ascii85.Decode(dst, data, true)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return dst[:n], nil
}

func (b *Base85) Ratio() float64 {
	return 1.25
}
