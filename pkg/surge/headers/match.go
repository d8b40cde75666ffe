package headers

import (
	"encoding/binary"

	"github.com/yourusername/surge/pkg/surge/knownheaders"
)

// The matcher interprets the SWAR program synthesized at build time: the
// name is compared a word at a time against precomputed mask/comparand
// pairs. Mask bytes are 0xDF where the known name holds an ASCII letter
// (folding bit 5 of the input) and 0xFF elsewhere, so digits and
// punctuation require exact bytes. Candidates sharing their first chunk
// are grouped so the shared word is loaded and tested once per group.

type matchGroup struct {
	first knownheaders.MatchTerm
	cands []matchCand
}

type matchCand struct {
	hdr  *knownheaders.Header
	rest []knownheaders.MatchTerm
}

// match resolves name to its known header, or nil. Case-insensitive for
// ASCII letters only; zero allocations.
func (t *table) match(name []byte) *knownheaders.Header {
	if len(name) == 0 || len(name) >= len(t.buckets) {
		return nil
	}
	groups := t.buckets[len(name)]
	for gi := range groups {
		g := &groups[gi]
		if loadTerm(name, &g.first)&g.first.Mask != g.first.Comp {
			continue
		}
		for ci := range g.cands {
			c := &g.cands[ci]
			if matchRest(name, c.rest) {
				return c.hdr
			}
		}
	}
	return nil
}

func matchRest(name []byte, rest []knownheaders.MatchTerm) bool {
	for i := range rest {
		if loadTerm(name, &rest[i])&rest[i].Mask != rest[i].Comp {
			return false
		}
	}
	return true
}

// loadTerm reads the term's chunk as a little-endian word. binary's
// fixed-width loads compile to single unaligned MOVs on the platforms that
// allow them and byte assembly elsewhere, so correctness never depends on
// alignment.
func loadTerm(name []byte, term *knownheaders.MatchTerm) uint64 {
	switch term.Width {
	case 8:
		return binary.LittleEndian.Uint64(name[term.Offset:])
	case 4:
		return uint64(binary.LittleEndian.Uint32(name[term.Offset:]))
	case 2:
		return uint64(binary.LittleEndian.Uint16(name[term.Offset:]))
	default:
		return uint64(name[term.Offset])
	}
}
