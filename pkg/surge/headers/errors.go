package headers

import "errors"

// Contract errors - surfaced to callers through the string-keyed API.
var (
	// ErrReadOnly indicates a mutation of a frozen dictionary.
	ErrReadOnly = errors.New("headers: dictionary is read-only")

	// ErrInvalidHeaderValue indicates a response or trailer value with a
	// control byte other than HTAB, or DEL. The check is the same for
	// every header; the encoding selector does not take part in it.
	ErrInvalidHeaderValue = errors.New("headers: invalid header value characters")

	// ErrValueAlreadyExists indicates Add on a header that is present.
	ErrValueAlreadyExists = errors.New("headers: value already exists")

	// ErrInvalidContentLength indicates a malformed Content-Length body.
	ErrInvalidContentLength = errors.New("headers: invalid Content-Length")
)

// Invariant violations - never returned, only panicked. A well-formed
// build cannot produce them.
var (
	// ErrInvalidHeaderBits indicates a presence bit with no header behind
	// it. Implementation bug.
	ErrInvalidHeaderBits = errors.New("headers: presence bit outside the known set")
)

// Parser errors.
var (
	// ErrInvalidHeaderLine indicates a malformed header line.
	// Lines must be in format: Name: Value\r\n
	ErrInvalidHeaderLine = errors.New("headers: invalid header line")

	// ErrHeaderNameTooLarge indicates a header name over the name limit.
	ErrHeaderNameTooLarge = errors.New("headers: header name too large")

	// ErrHeaderBlockTooLarge indicates a header block over the total
	// size limit.
	ErrHeaderBlockTooLarge = errors.New("headers: header block too large")

	// ErrUnexpectedEOB indicates the block ended before the empty line.
	ErrUnexpectedEOB = errors.New("headers: unexpected end of header block")
)
