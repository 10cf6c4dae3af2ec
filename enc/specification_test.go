package enc

import (
	"io/ioutil"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"
)

func requireSpecError(t *testing.T, s *Specification, message string) {
	_, err := s.Encoding()
	require.EqualError(t, err, message)
	require.IsType(t, &SpecificationError{}, err)
}

func Test_SpecificationErrors(t *testing.T) {
	requireSpecError(t, NewSpecification(), "invalid number of symbols")

	build := func(symbols, padding string) *Specification {
		s := NewSpecification()
		s.Symbols = symbols
		s.Padding = padding
		return s
	}
	requireSpecError(t, build("é", ""), "non-ascii character")
	requireSpecError(t, build("0é", ""), "invalid number of symbols")
	requireSpecError(t, build("01", " "), "unnecessary padding")
	requireSpecError(t, build("01234567", "é"), "non-ascii character")
	requireSpecError(t, build("01234567", "=="), "padding must be a single character")
	requireSpecError(t, build("01234567", "0"), "'0' has conflicting definitions")
	requireSpecError(t, build("0000000000000000000000000000000000000000000000000000000000000000", ""),
		"'0' has conflicting definitions")

	s := NewSpecification()
	s.Symbols = "01"
	s.Translate = Translate{From: "1", To: "0"}
	requireSpecError(t, s, "'1' has conflicting definitions")
	s.Translate.From = "112"
	requireSpecError(t, s, "translate from/to length mismatch")
	s.Translate = Translate{From: "Z", To: "2"}
	requireSpecError(t, s, "'2' is undefined")
	s.Translate = Translate{From: "Z", To: "\x80"}
	requireSpecError(t, s, "non-ascii character")

	s = NewSpecification()
	s.Symbols = "01234567"
	s.Ignore = "0"
	requireSpecError(t, s, "'0' has conflicting definitions")
	s.Ignore = "\x80"
	requireSpecError(t, s, "non-ascii character")
}

func Test_SpecificationWrapErrors(t *testing.T) {
	s := NewSpecification()
	s.Wrap = Wrap{Width: 1, Separator: "\n"}

	s.Symbols = "01"
	requireSpecError(t, s, "wrap width not a multiple of 8")
	s.Symbols += "23"
	requireSpecError(t, s, "wrap width not a multiple of 4")
	s.Symbols += "4567"
	requireSpecError(t, s, "wrap width not a multiple of 8")
	s.Symbols += "89abcdef"
	requireSpecError(t, s, "wrap width not a multiple of 2")
	s.Symbols += "ghijklmnopqrstuv"
	requireSpecError(t, s, "wrap width not a multiple of 8")
	s.Symbols += "wxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-_"
	requireSpecError(t, s, "wrap width not a multiple of 4")

	_, err := s.Encoding()
	require.Equal(t, &SpecificationError{Kind: WrapWidth, Multiple: 4}, err)

	// A half specified wrap does not wrap
	s.Wrap.Separator = ""
	previous, err := s.Encoding()
	require.NoError(t, err)
	s.Wrap = Wrap{Width: 0, Separator: "\n"}
	current, err := s.Encoding()
	require.NoError(t, err)
	require.Equal(t, previous, current)

	s.Wrap = Wrap{Width: 256, Separator: "\n"}
	requireSpecError(t, s, "invalid wrap width or separator length")
	s.Wrap = Wrap{Width: -4, Separator: "\n"}
	requireSpecError(t, s, "invalid wrap width or separator length")
	s.Wrap = Wrap{Width: 4, Separator: "0"}
	requireSpecError(t, s, "'0' has conflicting definitions")
}

func Test_NewSpecification(t *testing.T) {
	s := NewSpecification()
	require.Equal(t, MostSignificantFirst, s.BitOrder)
	require.True(t, s.CheckTrailingBits)
	require.Empty(t, s.Symbols)
	require.Empty(t, s.Padding)
	require.Empty(t, s.Ignore)
	require.Equal(t, Wrap{}, s.Wrap)
	require.Equal(t, Translate{}, s.Translate)
}

func Test_SpecificationRoundTrip(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			e, _ := Lookup(name)
			again, err := e.Specification().Encoding()
			require.NoError(t, err)
			require.Equal(t, e, again)
		})
	}
}

func Test_SpecificationOfPresets(t *testing.T) {
	s := Base64MIME.Specification()
	require.Equal(t, symbolsBase64, s.Symbols)
	require.Equal(t, "=", s.Padding)
	require.Equal(t, "\n\r", s.Ignore)
	require.Equal(t, Wrap{Width: 76, Separator: "\r\n"}, s.Wrap)
	require.Equal(t, Translate{}, s.Translate)
	require.True(t, s.CheckTrailingBits)

	s = Base32DNSCurve.Specification()
	require.Equal(t, LeastSignificantFirst, s.BitOrder)
	require.Equal(t, Translate{From: "BCDFGHJKLMNPQRSTUVWXYZ", To: "bcdfghjklmnpqrstuvwxyz"}, s.Translate)

	s = HexLower.Specification()
	require.Equal(t, "0123456789abcdef", s.Symbols)
	require.Empty(t, s.Padding)
	require.Empty(t, s.Translate.From)
}

func Test_SpecificationDropPadding(t *testing.T) {
	s := Base64.Specification()
	s.Padding = ""
	b, err := s.Encoding()
	require.NoError(t, err)
	require.Equal(t, "aA", b.EncodeToString([]byte("h")))
	require.Equal(t, "aGU", b.EncodeToString([]byte("he")))
	require.Equal(t, "aGVs", b.EncodeToString([]byte("hel")))
	require.Equal(t, "aGVsbA", b.EncodeToString([]byte("hell")))
	require.Equal(t, "aGVsbG8", b.EncodeToString([]byte("hello")))
	require.Equal(t, Base64NoPad, b)
}

func Test_EncodeWrap(t *testing.T) {
	s := Base64.Specification()
	s.Padding = ""
	s.Wrap = Wrap{Width: 4, Separator: ":"}
	b, err := s.Encoding()
	require.NoError(t, err)
	tests := []struct {
		input, output string
	}{
		{"", ""},
		{"h", "aA:"},
		{"he", "aGU:"},
		{"hel", "aGVs:"},
		{"hell", "aGVs:bA:"},
		{"hello", "aGVs:bG8:"},
	}
	for _, tt := range tests {
		requireEncodes(t, b, tt.input, tt.output)
	}
}

func Test_EncodePadWrap(t *testing.T) {
	s := Base64.Specification()
	s.Wrap = Wrap{Width: 4, Separator: ":"}
	b, err := s.Encoding()
	require.NoError(t, err)
	tests := []struct {
		input, output string
	}{
		{"", ""},
		{"h", "aA==:"},
		{"he", "aGU=:"},
		{"hel", "aGVs:"},
		{"hell", "aGVs:bA==:"},
		{"hello", "aGVs:bG8=:"},
	}
	for _, tt := range tests {
		requireEncodes(t, b, tt.input, tt.output)
	}
}

func Test_BitOrderParse(t *testing.T) {
	for _, s := range []string{"msb", "MSB", "MostSignificantFirst", "most-significant-first"} {
		b, err := ParseBitOrder(s)
		require.NoError(t, err)
		require.Equal(t, MostSignificantFirst, b)
	}
	for _, s := range []string{"lsb", "LeastSignificantFirst", "least-significant-first"} {
		b, err := ParseBitOrder(s)
		require.NoError(t, err)
		require.Equal(t, LeastSignificantFirst, b)
	}
	_, err := ParseBitOrder("middle")
	require.Error(t, err)
	require.Equal(t, "lsb", LeastSignificantFirst.String())
}

func Test_SpecificationYaml(t *testing.T) {
	data, err := yaml.Marshal(Base32DNSCurve.Specification())
	require.NoError(t, err)
	require.Contains(t, string(data), "bit_order: lsb")

	s := NewSpecification()
	require.NoError(t, yaml.Unmarshal(data, s))
	e, err := s.Encoding()
	require.NoError(t, err)
	require.Equal(t, Base32DNSCurve, e)
}

func Test_SpecificationYamlFile(t *testing.T) {
	data, err := ioutil.ReadFile("testdata/hex-lsb.yml")
	require.NoError(t, err)

	s := NewSpecification()
	require.NoError(t, yaml.Unmarshal(data, s))
	require.Equal(t, "0123456789abcdef", s.Symbols)
	require.Equal(t, LeastSignificantFirst, s.BitOrder)
	require.True(t, s.CheckTrailingBits)
	require.Equal(t, " ", s.Ignore)
	require.Equal(t, Wrap{Width: 8, Separator: ":"}, s.Wrap)

	e, err := s.Encoding()
	require.NoError(t, err)
	require.Equal(t, "142434:", e.EncodeToString([]byte("ABC")))
	decoded, err := e.DecodeString("1424 34")
	require.NoError(t, err)
	require.Equal(t, "ABC", string(decoded))
	decoded, err = e.DecodeString("14 24 3 4")
	require.NoError(t, err)
	require.Equal(t, "ABC", string(decoded))
	decoded, err = e.DecodeString("1A")
	require.NoError(t, err)
	require.Equal(t, "\xa1", string(decoded))
}
