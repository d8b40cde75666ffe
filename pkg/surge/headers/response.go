package headers

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// ResponseHeaders is the dictionary for the response direction.
// Content-Length is pinned to presence bit 63 on the wire; the value
// itself lives outside the slot array. Values are validated against the
// serializing-direction grammar on every mutation.
type ResponseHeaders struct {
	dictionary
}

// NewResponseHeaders returns an empty response dictionary.
func NewResponseHeaders() *ResponseHeaders {
	h := &ResponseHeaders{}
	h.tab = responseTable
	return h
}

// ContentLength returns the Content-Length, or -1 when absent.
func (h *ResponseHeaders) ContentLength() int64 { return h.contentLengthValue() }

// SetContentLength sets the Content-Length. Negative values clear it.
func (h *ResponseHeaders) SetContentLength(n int64) { h.setContentLengthValue(n) }

// HasInvalidH2H3Headers reports whether any connection-level header that
// is illegal under HTTP/2 and HTTP/3 is present.
func (h *ResponseHeaders) HasInvalidH2H3Headers() bool {
	return h.bits&h.tab.invalidBits != 0
}

// ClearInvalidH2H3Headers drops every header covered by
// InvalidH2H3ResponseHeadersBits before serialization on an HTTP/2 or
// HTTP/3 connection. Panics with ErrReadOnly on a frozen dictionary.
func (h *ResponseHeaders) ClearInvalidH2H3Headers() {
	if h.readonly {
		panic(ErrReadOnly)
	}
	h.bits &^= h.tab.invalidBits
}

// AppendTo serializes the present known headers and Content-Length onto
// dst and returns the extended slice. Entries in the unknown mapping are
// not written. See appendTo for the wire layout.
func (h *ResponseHeaders) AppendTo(dst []byte) []byte {
	return h.appendTo(dst)
}

// WriteTo renders the headers through a pooled buffer and writes them to w.
func (h *ResponseHeaders) WriteTo(w io.Writer) (int64, error) {
	return writeDictionary(&h.dictionary, w)
}

func writeDictionary(d *dictionary, w io.Writer) (int64, error) {
	buf := bytebufferpool.Get()
	buf.B = d.appendTo(buf.B[:0])
	n, err := w.Write(buf.B)
	bytebufferpool.Put(buf)
	return int64(n), err
}
