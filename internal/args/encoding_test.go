package args

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"

	"github.com/bokysan/baseenc/enc"
)

func Test_BaseAliases(t *testing.T) {
	tests := []struct {
		base     string
		expected *enc.Encoding
	}{
		{"16", enc.HexUpper},
		{"32", enc.Base32NoPad},
		{"32hex", enc.Base32HexNoPad},
		{"64", enc.Base64NoPad},
		{"64url", enc.Base64URLNoPad},
		{"base64url-nopad", enc.Base64URLNoPad},
	}
	for _, tt := range tests {
		o := &Encoding{Base: tt.base}
		e, err := o.Encoding()
		require.NoError(t, err, tt.base)
		require.Equal(t, tt.expected, e, tt.base)
	}

	o := &Encoding{Base: "64", Padding: "="}
	e, err := o.Encoding()
	require.NoError(t, err)
	require.Equal(t, enc.Base64, e)

	o = &Encoding{Base: "hex"}
	e, err = o.Encoding()
	require.NoError(t, err)
	require.Equal(t, enc.HexLowerPermissive, e)
}

func Test_MimeFromOptions(t *testing.T) {
	o := &Encoding{Base: "64", Padding: "=", Width: 76, Separator: "\r\n"}
	e, err := o.Encoding()
	require.NoError(t, err)
	require.Equal(t, enc.Base64MIME, e)
}

func Test_SymbolsWithTranslate(t *testing.T) {
	o := &Encoding{
		Symbols:                  "0123456789bcdfghjklmnpqrstuvwxyz",
		Translate:                "BCDFGHJKLMNPQRSTUVWXYZbcdfghjklmnpqrstuvwxyz",
		LeastSignificantBitFirst: true,
	}
	e, err := o.Encoding()
	require.NoError(t, err)
	require.Equal(t, enc.Base32DNSCurve, e)
}

func Test_SpecFile(t *testing.T) {
	o := &Encoding{SpecFile: "testdata/dnscurve.yml"}
	e, err := o.Encoding()
	require.NoError(t, err)
	require.Equal(t, enc.Base32DNSCurve, e)

	o = &Encoding{SpecFile: "testdata/missing.yml"}
	_, err = o.Encoding()
	require.Error(t, err)
}

func Test_IgnoreTrailingBits(t *testing.T) {
	o := &Encoding{Symbols: "01234567", IgnoreTrailingBits: true, Ignore: " "}
	e, err := o.Encoding()
	require.NoError(t, err)
	decoded, err := e.DecodeString("0 01")
	require.NoError(t, err)
	require.Equal(t, "\x00", string(decoded))
}

func Test_ValidateCollectsErrors(t *testing.T) {
	o := &Encoding{}
	require.Error(t, o.Validate())

	o = &Encoding{Base: "64", Symbols: "01", Translate: "abc", Width: -1}
	err := o.Validate()
	require.Error(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 3)

	o = &Encoding{Base: "91", Padding: "="}
	require.Error(t, o.Validate())

	o = &Encoding{Base: "47"}
	require.Error(t, o.Validate())

	o = &Encoding{Base: "91"}
	require.NoError(t, o.Validate())
	c, ok := o.Codec()
	require.True(t, ok)
	require.Equal(t, "Base91", c.Name())
}

func Test_SpecificationErrorIsReturned(t *testing.T) {
	o := &Encoding{Base: "16", Padding: "="}
	_, err := o.Encoding()
	require.EqualError(t, err, "unnecessary padding")
}

func Test_IOValidate(t *testing.T) {
	require.NoError(t, (&IO{Input: "-", Output: "-", Block: 15360}).Validate())
	require.Error(t, (&IO{Input: "-", Output: "-", Block: 7}).Validate())
	require.Error(t, (&IO{Input: "a.txt", Output: "a.txt", Block: 8}).Validate())
}

func Test_Source(t *testing.T) {
	require.Equal(t, "base 64", (&Encoding{Base: " 64"}).Source())
	require.Equal(t, "specification x.yml", (&Encoding{SpecFile: "x.yml"}).Source())
	require.Equal(t, "symbols 01", (&Encoding{Symbols: "01"}).Source())
}
