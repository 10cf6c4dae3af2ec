package codec

import (
	"fmt"
	"sort"
	"strings"
)

// Codec is a whole-buffer text encoding offered by the command line tool
type Codec interface {
	// Name is the user-friendly name of this codec
	Name() string

	// Encode will take an array of bytes and encode it using this codec
	Encode([]byte) []byte

	// Decode is the reverse process of encoding
	Decode([]byte) ([]byte, error)

	// Ratio is the approximate number of output bytes per input byte when encoding
	Ratio() float64
}

var registry = map[string]func() Codec{
	"85":  func() Codec { return &Base85{} },
	"91":  func() Codec { return &Base91{} },
	"128": func() Codec { return &Base128{} },
}

// Lookup returns the codec registered for the given base, e.g. "91"
func Lookup(base string) (Codec, bool) {
	f, ok := registry[strings.TrimSpace(base)]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Bases lists the registered bases
func Bases() []string {
	res := make([]string, 0, len(registry))
	for k := range registry {
		res = append(res, k)
	}
	sort.Slice(res, func(i, j int) bool {
		return len(res[i]) < len(res[j]) || len(res[i]) == len(res[j]) && res[i] < res[j]
	})
	return res
}

func describe(c Codec) string {
	return fmt.Sprintf("%v(%.2f)", c.Name(), c.Ratio())
}
