package knownheaders

import "fmt"

// buildWireBytes lays out the direction's "\r\nName: " blob in bit-index
// order and stamps each header's offset and length. Requests never
// serialize, so they carry no blob. The blob is shared by every dictionary
// of the direction and must be ASCII and stable across runs.
func buildWireBytes(t *Table) {
	if t.Direction == DirRequest {
		return
	}
	var blob []byte
	for _, h := range t.Headers {
		for i := 0; i < len(h.Name); i++ {
			if h.Name[i] >= 0x80 {
				panic(fmt.Sprintf("knownheaders: non-ASCII byte in header name %q", h.Name))
			}
		}
		h.WireOffset = len(blob)
		blob = append(blob, '\r', '\n')
		blob = append(blob, h.Name...)
		blob = append(blob, ':', ' ')
		h.WireLength = len(blob) - h.WireOffset
	}
	t.WireBytes = blob
}
