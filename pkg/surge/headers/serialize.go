package headers

import (
	"math/bits"
	"strconv"
)

// appendTo walks a scratch copy of the presence bitmap least-significant
// bit first, clearing each bit as it is consumed. Per set bit:
//
//   - Content-Length: the pre-encoded key slice, then the decimal value.
//   - Enhanced-setter header with a populated raw slot: the raw bytes
//     verbatim, no formatted value text.
//   - Anything else: the pre-encoded key slice before each non-empty value.
//
// Each entry starts with CRLF; the caller supplies the final terminator. A
// set bit with no header behind it is an implementation bug and panics
// with ErrInvalidHeaderBits.
func (d *dictionary) appendTo(dst []byte) []byte {
	start := len(dst)
	tmp := d.bits &^ d.tab.pseudoBits
	if d.contentLengthSet {
		tmp |= d.tab.clBit
	}
	for tmp != 0 {
		i := bits.TrailingZeros64(tmp)
		tmp &^= 1 << uint(i)

		hdr := d.tab.byIndex[i]
		if hdr == nil {
			panic(ErrInvalidHeaderBits)
		}
		if hdr == d.tab.contentLength {
			dst = append(dst, d.tab.key(i)...)
			dst = strconv.AppendInt(dst, d.contentLength, 10)
			continue
		}

		v := &d.values[i]
		if hdr.EnhancedSetter && len(v.raw) > 0 {
			dst = append(dst, v.raw...)
			continue
		}
		key := d.tab.key(i)
		for _, part := range v.parts {
			if part == "" {
				continue
			}
			dst = append(dst, key...)
			dst = append(dst, part...)
		}
	}
	metricSerializedBytes(len(dst) - start)
	return dst
}
