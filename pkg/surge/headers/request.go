package headers

import "github.com/yourusername/surge/pkg/surge/knownheaders"

// RequestHeaders is the dictionary for the request direction. HTTP/2
// pseudo-headers (:authority, :method, :path, :scheme) are stored like any
// known header but stay off the enumeration surface. Content-Length is kept
// outside the presence bitmap entirely.
type RequestHeaders struct {
	dictionary
}

// NewRequestHeaders returns an empty request dictionary.
func NewRequestHeaders() *RequestHeaders {
	h := &RequestHeaders{}
	h.tab = requestTable
	return h
}

// ContentLength returns the parsed Content-Length, or -1 when absent.
func (h *RequestHeaders) ContentLength() int64 { return h.contentLengthValue() }

// SetContentLength sets the Content-Length. Negative values clear it.
func (h *RequestHeaders) SetContentLength(n int64) { h.setContentLengthValue(n) }

// TryAppend is the HTTP/1 parser fast path: raw name and value bytes, no
// intermediate strings. A known name goes through the SWAR matcher and the
// value-reuse rule; anything else lands in the unknown mapping. Reports
// false on a frozen dictionary, malformed Content-Length or value bytes
// the selected encoding rejects.
func (h *RequestHeaders) TryAppend(name, value []byte) bool {
	if h.readonly {
		return false
	}
	if hdr := h.tab.match(name); hdr != nil {
		if hdr == h.tab.contentLength {
			return h.trySetContentLengthBytes(value)
		}
		return h.appendKnown(hdr, value)
	}
	return h.appendUnknown(name, value)
}

// TryHPACKAppend is the HTTP/2 parser fast path: the HPACK static-table
// index replaces name matching entirely. Reports false for indices with no
// registered header, leaving the caller to fall back to name bytes.
func (h *RequestHeaders) TryHPACKAppend(index int, value []byte) bool {
	if h.readonly {
		return false
	}
	if index < 1 || index > knownheaders.StaticTableSize {
		return false
	}
	hdr := h.tab.hpack[index]
	if hdr == nil {
		return false
	}
	if hdr == h.tab.contentLength {
		return h.trySetContentLengthBytes(value)
	}
	return h.appendKnown(hdr, value)
}

// appendKnown applies the value-reuse rule:
//
//  1. If the previous message held exactly one value for this header, the
//     bit is cleared from previousBits and the old string is compared to
//     the incoming bytes by length and ASCII ordinal. On a match the old
//     string object is reused without decoding.
//  2. Otherwise the bytes decode under the selected encoding and become
//     the sole value (bit clear) or append to the sequence (bit set).
func (d *dictionary) appendKnown(hdr *knownheaders.Header, value []byte) bool {
	bit := hdr.Bit()
	v := &d.values[hdr.Index]

	if d.previousBits&bit != 0 && len(v.parts) == 1 {
		d.previousBits &^= bit
		if prev := v.parts[0]; len(prev) == len(value) && prev == bytesToString(value) {
			d.bits |= bit
			metricReuseHit()
			return true
		}
	}

	s, ok := decodeValue(value, d.encodingFor(stringToBytes(hdr.Name)))
	if !ok {
		return false
	}
	if d.bits&bit == 0 {
		v.parts = append(v.parts[:0], s)
		v.raw = nil
		d.bits |= bit
	} else {
		v.parts = append(v.parts, s)
	}
	return true
}

func (d *dictionary) appendUnknown(name, value []byte) bool {
	if len(name) == 0 || len(name) > MaxHeaderNameLength {
		return false
	}
	s, ok := decodeValue(value, d.encodingFor(name))
	if !ok {
		return false
	}
	d.unknown.add(string(name), s)
	metricUnknownAppend()
	return true
}

// trySetContentLengthBytes parses the decimal body. A duplicate
// Content-Length must agree with the first; mismatches are rejected like
// malformed digits.
func (d *dictionary) trySetContentLengthBytes(value []byte) bool {
	n, ok := parseContentLength(value)
	if !ok {
		return false
	}
	if d.contentLengthSet && d.contentLength != n {
		return false
	}
	d.contentLength = n
	d.contentLengthSet = true
	return true
}
