package headers

import (
	"github.com/yourusername/surge/pkg/surge/knownheaders"
)

// table is the immutable per-direction runtime view over the planned
// model: bit-index lookup, bucketed match program, shared wire slices and
// the HPACK dispatch array. One instance per direction, shared by every
// dictionary.
type table struct {
	dir           knownheaders.Direction
	byIndex       [64]*knownheaders.Header
	contentLength *knownheaders.Header

	// clBit is the Content-Length presence bit surfaced during
	// serialization: 1<<63 for responses, 0 elsewhere.
	clBit uint64

	pseudoBits  uint64
	invalidBits uint64

	// buckets is indexed by name length; each entry is the groups of the
	// SWAR program for that length, or nil.
	buckets [][]matchGroup
	maxLen  int

	// keySlices[i] is the shared "\r\nName: " bytes for bit index i.
	keySlices [64][]byte

	// hpack maps RFC 7541 static indices to known request headers.
	hpack [knownheaders.StaticTableSize + 1]*knownheaders.Header

	validateValues bool
}

var (
	requestTable  = newTable(knownheaders.Request)
	responseTable = newTable(knownheaders.Response)
	trailerTable  = newTable(knownheaders.Trailers)
)

func newTable(src *knownheaders.Table) *table {
	t := &table{
		dir:            src.Direction,
		contentLength:  src.ContentLength,
		pseudoBits:     src.PseudoBits,
		invalidBits:    src.InvalidH2H3Bits,
		maxLen:         src.MaxNameLength,
		validateValues: src.Direction != knownheaders.DirRequest,
	}
	for _, h := range src.Headers {
		if t.byIndex[h.Index] != nil {
			panic("headers: duplicate bit index in " + src.Direction.String() + " table")
		}
		t.byIndex[h.Index] = h
		if h.WireLength > 0 {
			t.keySlices[h.Index] = src.WireBytes[h.WireOffset : h.WireOffset+h.WireLength]
		}
	}
	if src.ContentLength != nil && src.ContentLength.Index >= 0 {
		t.clBit = src.ContentLength.Bit()
	}

	t.buckets = make([][]matchGroup, t.maxLen+1)
	for _, b := range src.Buckets {
		groups := make([]matchGroup, len(b.Groups))
		for gi, g := range b.Groups {
			cands := make([]matchCand, len(g.Candidates))
			for ci, c := range g.Candidates {
				cands[ci] = matchCand{hdr: c.Header, rest: c.Rest}
			}
			groups[gi] = matchGroup{first: g.First, cands: cands}
		}
		t.buckets[b.Length] = groups
	}

	if src.Direction == knownheaders.DirRequest {
		t.hpack = knownheaders.HPACKDispatch()
	}
	return t
}

// key returns the shared pre-encoded "\r\nName: " slice for bit index i.
func (t *table) key(i int) []byte { return t.keySlices[i] }
