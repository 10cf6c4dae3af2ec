// Package enc provides configurable base 2, 4, 8, 16, 32 and 64 encodings.
//
// An encoding is described by a Specification: its symbols, bit order, padding, ignored
// characters, wrapping and translations. Specification.Encoding validates the description and
// compiles it into an immutable *Encoding which does the actual work. The common RFC4648
// encodings are available as presets:
//
//	s := enc.Base64.EncodeToString([]byte("hello")) // "aGVsbG8="
//	b, err := enc.Base64.DecodeString(s)
//
// A custom encoding accepting both cases and skipping whitespace:
//
//	spec := enc.HexLower.Specification()
//	spec.Ignore = " \t\r\n"
//	spec.Translate = enc.Translate{From: "ABCDEF", To: "abcdef"}
//	hex, err := spec.Encoding()
//
// Decoding reports the first problem as a DecodeError with a position in the input. Decode also
// tells how much of the input was valid, with a DecodePartial.
package enc
