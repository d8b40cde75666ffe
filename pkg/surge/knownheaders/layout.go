package knownheaders

import "fmt"

// maxBits is the ceiling imposed by the 64-bit presence bitmap.
const maxBits = 64

// responseContentLengthBit is the pinned slot for the response
// Content-Length. The request direction keeps Content-Length outside the
// bitmap (Index -1); the asymmetry is load-bearing for the value-reuse
// fast path and must not be unified.
const responseContentLengthBit = 63

// planLayout orders hs under Compare, assigns bit indices by position and
// attaches the direction's out-of-band Content-Length header.
func planLayout(t *Table, hs []*Header) {
	sortHeaders(hs)

	limit := maxBits
	if t.Direction == DirResponse {
		limit = responseContentLengthBit
	}
	if len(hs) > limit {
		panic(fmt.Sprintf("knownheaders: %d %s headers exceed the %d-bit layout",
			len(hs), t.Direction, limit))
	}

	for i, h := range hs {
		h.Index = i
		if h.Pseudo {
			t.PseudoBits |= h.Bit()
		}
		if t.Direction == DirResponse && invalidH2H3Headers[lowerASCII(h.Name)] {
			t.InvalidH2H3Bits |= h.Bit()
		}
	}
	t.Headers = hs

	switch t.Direction {
	case DirRequest:
		t.ContentLength = &Header{
			Name:       HeaderContentLength,
			Identifier: Identifier(HeaderContentLength),
			Index:      -1,
		}
	case DirResponse:
		cl := &Header{
			Name:       HeaderContentLength,
			Identifier: Identifier(HeaderContentLength),
			Index:      responseContentLengthBit,
		}
		t.ContentLength = cl
		t.Headers = append(t.Headers, cl)
	}
}
