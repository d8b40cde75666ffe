package headers

import "unicode/utf8"

// Encoding selects how raw value bytes from the wire decode to strings.
type Encoding uint8

const (
	// EncodingASCII accepts bytes 0x00-0x7F and maps them 1:1. The
	// default for every header.
	EncodingASCII Encoding = iota

	// EncodingLatin1 maps bytes 0x80-0xFF to U+0080-U+00FF.
	EncodingLatin1

	// EncodingUTF8 accepts any valid UTF-8 sequence.
	EncodingUTF8
)

// EncodingSelector picks the encoding for a header by its wire name.
type EncodingSelector func(name string) Encoding

func (d *dictionary) encodingFor(name []byte) Encoding {
	if d.encoding == nil {
		return EncodingASCII
	}
	return d.encoding(bytesToString(name))
}

// decodeValue converts wire bytes to an owned string under enc. Reports
// false when the bytes are illegal for the encoding.
func decodeValue(b []byte, enc Encoding) (string, bool) {
	switch enc {
	case EncodingLatin1:
		return decodeLatin1(b)
	case EncodingUTF8:
		if !utf8.Valid(b) {
			return "", false
		}
		return string(b), true
	default:
		for _, c := range b {
			if c >= 0x80 {
				return "", false
			}
		}
		return string(b), true
	}
}

func decodeLatin1(b []byte) (string, bool) {
	n := len(b)
	for _, c := range b {
		if c >= 0x80 {
			n++
		}
	}
	if n == len(b) {
		return string(b), true
	}
	out := make([]byte, 0, n)
	for _, c := range b {
		out = utf8.AppendRune(out, rune(c))
	}
	return bytesToString(out), true
}

// validateValue enforces the serializing-direction value grammar: no
// control bytes other than HTAB, no DEL. Bytes at or above 0x80 pass; the
// encoding selector already decided how they decode.
func validateValue(v string) error {
	for i := 0; i < len(v); i++ {
		c := v[i]
		if (c < 0x20 && c != '\t') || c == 0x7F {
			return ErrInvalidHeaderValue
		}
	}
	return nil
}
