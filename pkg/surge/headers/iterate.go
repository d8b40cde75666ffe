package headers

import (
	"math/bits"
	"strconv"
)

// Iterator walks a dictionary in the deterministic enumeration order:
// known headers by ascending bit index (the primary-first-alphabetical
// layout order), then Content-Length, then unknown headers in insertion
// order. The dictionary must not be mutated during iteration.
type Iterator struct {
	d      *dictionary
	set    uint64
	clDone bool
	uIdx   int
	name   string
	values []string
}

// Iterate returns an iterator positioned before the first header.
func (d *dictionary) Iterate() Iterator {
	return Iterator{d: d, set: d.bits &^ d.tab.pseudoBits &^ d.tab.clBit}
}

// Next advances to the next header and reports whether one is available.
func (it *Iterator) Next() bool {
	for it.set != 0 {
		i := bits.TrailingZeros64(it.set)
		it.set &^= 1 << uint(i)
		h := it.d.tab.byIndex[i]
		if h == nil {
			panic(ErrInvalidHeaderBits)
		}
		it.name, it.values = h.Name, it.d.values[i].parts
		return true
	}
	if !it.clDone {
		it.clDone = true
		if it.d.contentLengthSet {
			it.name = it.d.tab.contentLength.Name
			it.values = []string{strconv.FormatInt(it.d.contentLength, 10)}
			return true
		}
	}
	if it.uIdx < it.d.unknown.len() {
		e := &it.d.unknown.entries[it.uIdx]
		it.uIdx++
		it.name, it.values = e.name, e.values
		return true
	}
	return false
}

// Header returns the current name and values. Valid after a true Next.
func (it *Iterator) Header() (string, []string) {
	return it.name, it.values
}
