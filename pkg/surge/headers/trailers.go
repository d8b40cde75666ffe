package headers

import "io"

// ResponseTrailers is the dictionary for response trailers. Same contract
// as ResponseHeaders minus Content-Length, which never appears in a
// trailer block.
type ResponseTrailers struct {
	dictionary
}

// NewResponseTrailers returns an empty trailer dictionary.
func NewResponseTrailers() *ResponseTrailers {
	h := &ResponseTrailers{}
	h.tab = trailerTable
	return h
}

// AppendTo serializes the present known trailers onto dst and returns the
// extended slice. Entries in the unknown mapping are not written.
func (h *ResponseTrailers) AppendTo(dst []byte) []byte {
	return h.appendTo(dst)
}

// WriteTo renders the trailers through a pooled buffer and writes them to w.
func (h *ResponseTrailers) WriteTo(w io.Writer) (int64, error) {
	return writeDictionary(&h.dictionary, w)
}
