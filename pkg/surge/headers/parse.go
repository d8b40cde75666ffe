package headers

import "bytes"

// ParseHeaderBlock feeds an HTTP/1 header block ("Name: value\r\n" lines
// terminated by an empty line) into dst through the TryAppend fast path.
// Returns the number of bytes consumed including the terminating CRLF.
//
// Lines are rejected when the colon is missing, the name is empty or
// oversized, or the name carries whitespace. A single optional space or
// tab of leading OWS and any trailing OWS around the value are stripped.
func ParseHeaderBlock(dst *RequestHeaders, buf []byte) (int, error) {
	if len(buf) > MaxHeaderBlockSize {
		return 0, ErrHeaderBlockTooLarge
	}
	pos := 0
	for {
		nl := bytes.Index(buf[pos:], crlfBytes)
		if nl < 0 {
			return pos, ErrUnexpectedEOB
		}
		line := buf[pos : pos+nl]
		pos += nl + 2

		if len(line) == 0 {
			return pos, nil
		}

		colon := bytes.IndexByte(line, ':')
		if colon <= 0 {
			return pos, ErrInvalidHeaderLine
		}
		name := line[:colon]
		if len(name) > MaxHeaderNameLength {
			return pos, ErrHeaderNameTooLarge
		}
		for _, c := range name {
			if c == ' ' || c == '\t' {
				return pos, ErrInvalidHeaderLine
			}
		}

		value := line[colon+1:]
		if len(value) > 0 && (value[0] == ' ' || value[0] == '\t') {
			value = value[1:]
		}
		for len(value) > 0 {
			if c := value[len(value)-1]; c == ' ' || c == '\t' {
				value = value[:len(value)-1]
				continue
			}
			break
		}

		if !dst.TryAppend(name, value) {
			return pos, ErrInvalidHeaderLine
		}
	}
}
