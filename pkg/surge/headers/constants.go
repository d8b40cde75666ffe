package headers

// Size limits for the HTTP/1 header-block parser.
const (
	// MaxHeaderNameLength bounds unknown header names; every known name
	// is far shorter.
	MaxHeaderNameLength = 64

	// MaxHeaderBlockSize bounds the total header block fed to
	// ParseHeaderBlock.
	MaxHeaderBlockSize = 8192
)

var crlfBytes = []byte("\r\n")

// parseContentLength parses a non-negative decimal Content-Length body.
// Digits only: no sign, no whitespace, no empty input.
func parseContentLength(b []byte) (int64, bool) {
	if len(b) == 0 {
		return 0, false
	}
	var n int64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		d := int64(c - '0')
		if n > (1<<63-1-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}
