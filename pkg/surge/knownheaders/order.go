package knownheaders

import "sort"

// Compare is the total order used everywhere a header sequence matters:
// bit layout, match-cascade emission and enumeration. Primary headers sort
// first; ties break on the wire name, byte-wise ascending (culture
// invariant).
func Compare(a, b *Header) int {
	if a.Primary != b.Primary {
		if a.Primary {
			return -1
		}
		return 1
	}
	switch {
	case a.Name < b.Name:
		return -1
	case a.Name > b.Name:
		return 1
	default:
		return 0
	}
}

func sortHeaders(hs []*Header) {
	sort.SliceStable(hs, func(i, j int) bool { return Compare(hs[i], hs[j]) < 0 })
}

func sortStrings(ss []string) {
	sort.Strings(ss)
}
