package enc

import (
	"sort"
	"strings"
)

const (
	symbolsHexLower  = "0123456789abcdef"
	symbolsHexUpper  = "0123456789ABCDEF"
	symbolsBase32    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	symbolsBase32Hex = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
	symbolsBase64    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	symbolsBase64URL = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

type presetOption func(s *Specification)

func withPadding(s *Specification) {
	s.Padding = "="
}

func withTranslate(from, to string) presetOption {
	return func(s *Specification) {
		s.Translate = Translate{From: from, To: to}
	}
}

func withWrap(width int, separator string) presetOption {
	return func(s *Specification) {
		s.Wrap = Wrap{Width: width, Separator: separator}
	}
}

func preset(symbols string, options ...presetOption) *Encoding {
	s := NewSpecification()
	s.Symbols = symbols
	for _, o := range options {
		o(s)
	}
	return s.MustEncoding()
}

var (
	// HexLower is lowercase hexadecimal
	HexLower = preset(symbolsHexLower)
	// HexLowerPermissive is lowercase hexadecimal which also decodes uppercase
	HexLowerPermissive = preset(symbolsHexLower, withTranslate("ABCDEF", "abcdef"))
	// HexUpper is uppercase hexadecimal, RFC4648 base16
	HexUpper = preset(symbolsHexUpper)
	// HexUpperPermissive is uppercase hexadecimal which also decodes lowercase
	HexUpperPermissive = preset(symbolsHexUpper, withTranslate("abcdef", "ABCDEF"))

	// Base32 is RFC4648 base32
	Base32      = preset(symbolsBase32, withPadding)
	Base32NoPad = preset(symbolsBase32)
	// Base32Hex is RFC4648 base32 with the extended hex alphabet
	Base32Hex      = preset(symbolsBase32Hex, withPadding)
	Base32HexNoPad = preset(symbolsBase32Hex)
	// Base32DNSSEC is the RFC5155 NSEC3 hashed owner name encoding
	Base32DNSSEC = preset("0123456789abcdefghijklmnopqrstuv",
		withTranslate("ABCDEFGHIJKLMNOPQRSTUV", "abcdefghijklmnopqrstuv"))
	// Base32DNSCurve is the DNSCurve base32 encoding, least significant bit first
	Base32DNSCurve = preset("0123456789bcdfghjklmnpqrstuvwxyz",
		func(s *Specification) { s.BitOrder = LeastSignificantFirst },
		withTranslate("BCDFGHJKLMNPQRSTUVWXYZ", "bcdfghjklmnpqrstuvwxyz"))

	// Base64 is RFC4648 base64
	Base64      = preset(symbolsBase64, withPadding)
	Base64NoPad = preset(symbolsBase64)
	// Base64MIME wraps base64 at 76 characters with CRLF. It neither prints the MIME header nor
	// ignores anything but the separator.
	Base64MIME           = preset(symbolsBase64, withPadding, withWrap(76, "\r\n"))
	Base64MIMEPermissive = preset(symbolsBase64, withPadding, withWrap(76, "\r\n"),
		func(s *Specification) { s.CheckTrailingBits = false })
	// Base64URL is RFC4648 base64 with the URL and filename safe alphabet
	Base64URL      = preset(symbolsBase64URL, withPadding)
	Base64URLNoPad = preset(symbolsBase64URL)
)

var presets = map[string]*Encoding{
	"hexlower":               HexLower,
	"hexlower-permissive":    HexLowerPermissive,
	"hexupper":               HexUpper,
	"hexupper-permissive":    HexUpperPermissive,
	"base32":                 Base32,
	"base32-nopad":           Base32NoPad,
	"base32hex":              Base32Hex,
	"base32hex-nopad":        Base32HexNoPad,
	"base32-dnssec":          Base32DNSSEC,
	"base32-dnscurve":        Base32DNSCurve,
	"base64":                 Base64,
	"base64-nopad":           Base64NoPad,
	"base64-mime":            Base64MIME,
	"base64-mime-permissive": Base64MIMEPermissive,
	"base64url":              Base64URL,
	"base64url-nopad":        Base64URLNoPad,
}

// Lookup finds a preset by name, ignoring case. Underscores are accepted in place of dashes.
func Lookup(name string) (*Encoding, bool) {
	e, ok := presets[strings.Replace(strings.ToLower(name), "_", "-", -1)]
	return e, ok
}

// PresetNames returns the sorted names understood by Lookup
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for k := range presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
