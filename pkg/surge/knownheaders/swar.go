package knownheaders

import "sort"

// The match program compares header names a word at a time. Each known
// name is decomposed into chunks of 8, 4, 2 and 1 bytes; for every chunk a
// little-endian mask word and comparand word are precomputed. A byte in
// the mask is 0xDF where the known name holds an ASCII letter (folding bit
// 5 of the input) and 0xFF everywhere else, so non-letter positions demand
// byte-exact equality. Digits and punctuation never fold.

// MatchTerm is one masked word compare: the input word loaded at Offset,
// ANDed with Mask, must equal Comp.
type MatchTerm struct {
	Offset int
	Width  int // 8, 4, 2 or 1
	Mask   uint64
	Comp   uint64
}

// MatchCandidate is one known header within a group. Rest holds the terms
// after the group's shared first term.
type MatchCandidate struct {
	Header *Header
	Rest   []MatchTerm
}

// MatchGroup coalesces candidates that share their first term, so families
// like Content-Encoding/Content-Language/Content-Location load and test
// their common prefix word once.
type MatchGroup struct {
	First      MatchTerm
	Candidates []MatchCandidate
}

// LengthBucket holds every known header of one exact name length.
type LengthBucket struct {
	Length int
	Groups []MatchGroup
}

// chunkWidths decomposes a name length into descending word sizes.
func chunkWidths(n int) []int {
	var ws []int
	for _, w := range [...]int{8, 4, 2, 1} {
		for n >= w {
			ws = append(ws, w)
			n -= w
		}
	}
	return ws
}

// terms computes the full masked-compare sequence for a name.
func terms(name string) []MatchTerm {
	var ts []MatchTerm
	off := 0
	for _, w := range chunkWidths(len(name)) {
		var mask, comp uint64
		for i := 0; i < w; i++ {
			b := name[off+i]
			m := uint64(0xFF)
			if isASCIILetter(b) {
				m = 0xDF
			}
			mask |= m << (8 * i)
			comp |= (uint64(b) & m) << (8 * i)
		}
		ts = append(ts, MatchTerm{Offset: off, Width: w, Mask: mask, Comp: comp})
		off += w
	}
	return ts
}

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// buildMatcher synthesizes the bucketed match program for a table. The
// request Content-Length participates like any other name even though it
// owns no bit.
func buildMatcher(t *Table) {
	hs := append([]*Header(nil), t.Headers...)
	if t.Direction == DirRequest && t.ContentLength != nil {
		hs = append(hs, t.ContentLength)
	}
	sortHeaders(hs)

	byLen := make(map[int][]*Header)
	for _, h := range hs {
		byLen[len(h.Name)] = append(byLen[len(h.Name)], h)
	}

	lengths := make([]int, 0, len(byLen))
	for l := range byLen {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	t.Buckets = make([]LengthBucket, 0, len(lengths))
	for _, l := range lengths {
		bucket := LengthBucket{Length: l}
		for _, h := range byLen[l] {
			ts := terms(h.Name)
			first, rest := ts[0], ts[1:]
			gi := -1
			for i := range bucket.Groups {
				if bucket.Groups[i].First == first {
					gi = i
					break
				}
			}
			if gi < 0 {
				bucket.Groups = append(bucket.Groups, MatchGroup{First: first})
				gi = len(bucket.Groups) - 1
			}
			bucket.Groups[gi].Candidates = append(bucket.Groups[gi].Candidates,
				MatchCandidate{Header: h, Rest: rest})
		}
		t.Buckets = append(t.Buckets, bucket)
	}
}
