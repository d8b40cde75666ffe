// Package headers implements surge's per-direction HTTP header
// dictionaries: RequestHeaders, ResponseHeaders and ResponseTrailers.
//
// Presence of each known header is tracked in a 64-bit bitmap; name lookup
// runs a SWAR match program (word-sized masked compares) synthesized by
// pkg/surge/knownheaders; response serialization copies pre-encoded
// "\r\nName: " slices shared by every dictionary of a direction.
//
// A dictionary is owned by a single HTTP message at a time. Concurrent use
// of one instance is not supported.
package headers

import (
	"math/bits"
	"strconv"
)

// Field is one header as seen by enumeration and CopyTo.
type Field struct {
	Name   string
	Values []string
}

// headerValue is the per-known-header slot: the ordered value sequence and,
// for enhanced-setter headers, the raw pre-encoded replacement bytes.
type headerValue struct {
	parts []string
	raw   []byte
}

// dictionary is the shared core under the three direction types. The zero
// value has no table attached; dictionaries come from NewRequestHeaders,
// NewResponseHeaders and NewResponseTrailers.
type dictionary struct {
	tab  *table
	bits uint64

	// previousBits snapshots bits from the prior message on the same
	// connection; the append fast path reuses an identical single value
	// without re-decoding.
	previousBits uint64

	values [64]headerValue

	contentLength    int64
	contentLengthSet bool

	unknown unknownFields

	readonly bool

	// encoding selects how appended value bytes decode per header name.
	// nil means ASCII for everything.
	encoding EncodingSelector
}

// Len returns the number of distinct headers currently present, pseudo
// headers excluded.
func (d *dictionary) Len() int {
	n := bits.OnesCount64(d.bits &^ d.tab.pseudoBits)
	if d.contentLengthSet {
		n++
	}
	return n + d.unknown.len()
}

// IsReadOnly reports whether the dictionary has been frozen.
func (d *dictionary) IsReadOnly() bool { return d.readonly }

// SetReadOnly freezes the dictionary; every mutator fails afterwards until
// Reset.
func (d *dictionary) SetReadOnly() { d.readonly = true }

// SetEncodingSelector installs the per-header value encoding policy.
func (d *dictionary) SetEncodingSelector(sel EncodingSelector) { d.encoding = sel }

// Get returns the first value stored under name, case-insensitively.
func (d *dictionary) Get(name string) (string, bool) {
	vs := d.Values(name)
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Values returns every value stored under name in order, or nil.
func (d *dictionary) Values(name string) []string {
	if h := d.tab.match(stringToBytes(name)); h != nil {
		if h == d.tab.contentLength {
			if !d.contentLengthSet {
				return nil
			}
			return []string{strconv.FormatInt(d.contentLength, 10)}
		}
		if d.bits&h.Bit() == 0 {
			return nil
		}
		return d.values[h.Index].parts
	}
	return d.unknown.get(name)
}

// Has reports whether name is present.
func (d *dictionary) Has(name string) bool {
	return len(d.Values(name)) > 0
}

// Set replaces the values stored under name. An empty value list (or a
// single empty string) clears the entry. Fails with ErrReadOnly on a frozen
// dictionary and, for serializing directions, with ErrInvalidHeaderValue
// when a value contains illegal bytes.
func (d *dictionary) Set(name string, values ...string) error {
	if d.readonly {
		return ErrReadOnly
	}
	if d.tab.validateValues {
		for _, v := range values {
			if err := validateValue(v); err != nil {
				return err
			}
		}
	}
	if h := d.tab.match(stringToBytes(name)); h != nil {
		if h == d.tab.contentLength {
			return d.setContentLengthString(values)
		}
		d.storeKnown(h.Index, values)
		return nil
	}
	if len(values) == 0 || (len(values) == 1 && values[0] == "") {
		d.unknown.remove(name)
		return nil
	}
	d.unknown.set(name, values)
	return nil
}

// Add inserts name with the given value and fails with
// ErrValueAlreadyExists when the header is already present.
func (d *dictionary) Add(name, value string) error {
	if d.readonly {
		return ErrReadOnly
	}
	if d.Has(name) {
		return ErrValueAlreadyExists
	}
	return d.Set(name, value)
}

// Remove clears name and reports whether anything was removed.
func (d *dictionary) Remove(name string) (bool, error) {
	if d.readonly {
		return false, ErrReadOnly
	}
	if h := d.tab.match(stringToBytes(name)); h != nil {
		if h == d.tab.contentLength {
			had := d.contentLengthSet
			d.contentLengthSet = false
			d.contentLength = 0
			return had, nil
		}
		bit := h.Bit()
		had := d.bits&bit != 0
		d.bits &^= bit
		d.values[h.Index].parts = nil
		d.values[h.Index].raw = nil
		return had, nil
	}
	return d.unknown.remove(name), nil
}

// storeKnown writes a known slot and maintains the presence bit. Any raw
// pre-encoded companion is dropped: it described the previous value.
func (d *dictionary) storeKnown(i int, values []string) {
	v := &d.values[i]
	v.raw = nil
	if len(values) == 0 || (len(values) == 1 && values[0] == "") {
		d.bits &^= 1 << uint(i)
		v.parts = nil
		return
	}
	v.parts = append(v.parts[:0], values...)
	d.bits |= 1 << uint(i)
}

// known returns the slot's first value, used by the typed accessors.
func (d *dictionary) known(i int) string {
	if d.bits&(1<<uint(i)) == 0 {
		return ""
	}
	return d.values[i].parts[0]
}

func (d *dictionary) knownValues(i int) []string {
	if d.bits&(1<<uint(i)) == 0 {
		return nil
	}
	return d.values[i].parts
}

func (d *dictionary) knownCount(i int) int {
	if d.bits&(1<<uint(i)) == 0 {
		return 0
	}
	return len(d.values[i].parts)
}

// setKnown backs the typed setters. Contract errors surface as panics
// here; the string-keyed API returns them instead.
func (d *dictionary) setKnown(i int, v string) {
	d.mustMutate(v)
	d.storeKnown(i, []string{v})
}

// setKnownRaw stores a value together with its pre-encoded wire form. The
// serializer emits raw verbatim instead of formatting the value.
func (d *dictionary) setKnownRaw(i int, v string, raw []byte) {
	d.mustMutate(v)
	d.storeKnown(i, []string{v})
	d.values[i].raw = raw
}

func (d *dictionary) mustMutate(v string) {
	if d.readonly {
		panic(ErrReadOnly)
	}
	if d.tab.validateValues && v != "" {
		if err := validateValue(v); err != nil {
			panic(err)
		}
	}
}

func (d *dictionary) setContentLengthString(values []string) error {
	if len(values) == 0 || (len(values) == 1 && values[0] == "") {
		d.contentLengthSet = false
		d.contentLength = 0
		return nil
	}
	if len(values) > 1 {
		return ErrInvalidContentLength
	}
	n, ok := parseContentLength(stringToBytes(values[0]))
	if !ok {
		return ErrInvalidContentLength
	}
	d.contentLength = n
	d.contentLengthSet = true
	return nil
}

// contentLengthValue returns the parsed Content-Length, or -1 when absent.
func (d *dictionary) contentLengthValue() int64 {
	if !d.contentLengthSet {
		return -1
	}
	return d.contentLength
}

// setContentLengthValue sets the Content-Length. Negative values clear it.
func (d *dictionary) setContentLengthValue(n int64) {
	if d.readonly {
		panic(ErrReadOnly)
	}
	if n < 0 {
		d.contentLengthSet = false
		d.contentLength = 0
		return
	}
	d.contentLength = n
	d.contentLengthSet = true
}

// Clear empties the dictionary. With more than clearBitsCutoff set bits the
// whole slot array is overwritten at once; below that only the set slots
// are touched. The cutoff is a size/latency tradeoff, not part of the
// observable contract.
func (d *dictionary) Clear() error {
	if d.readonly {
		return ErrReadOnly
	}
	d.unknown.reset()
	d.contentLengthSet = false
	d.contentLength = 0
	d.clearSlots()
	d.bits = 0
	d.previousBits = 0
	return nil
}

const clearBitsCutoff = 12

func (d *dictionary) clearSlots() {
	set := d.bits
	if bits.OnesCount64(set) > clearBitsCutoff {
		d.values = [64]headerValue{}
		return
	}
	for set != 0 {
		i := bits.TrailingZeros64(set)
		set &^= 1 << uint(i)
		d.values[i] = headerValue{}
	}
}

// Reset prepares the dictionary for the next message on the same
// connection: the presence bitmap is snapshotted into previousBits and the
// value slots are deliberately kept so the append fast path can reuse
// repeated values without re-decoding.
func (d *dictionary) Reset() {
	d.previousBits = d.bits
	d.bits = 0
	d.contentLengthSet = false
	d.contentLength = 0
	d.unknown.reset()
	d.readonly = false
}

// VisitAll calls visitor for each present header in enumeration order:
// known headers by ascending bit index (pseudo headers skipped), then
// Content-Length, then unknown headers in insertion order. Iteration stops
// when visitor returns false.
func (d *dictionary) VisitAll(visitor func(name string, values []string) bool) {
	set := d.bits &^ d.tab.pseudoBits &^ d.tab.clBit
	for set != 0 {
		i := bits.TrailingZeros64(set)
		set &^= 1 << uint(i)
		h := d.tab.byIndex[i]
		if h == nil {
			panic(ErrInvalidHeaderBits)
		}
		if !visitor(h.Name, d.values[i].parts) {
			return
		}
	}
	if d.contentLengthSet {
		if !visitor(d.tab.contentLength.Name, []string{strconv.FormatInt(d.contentLength, 10)}) {
			return
		}
	}
	d.unknown.visit(visitor)
}

// CopyTo copies up to len(dst) fields in enumeration order and returns the
// number copied.
func (d *dictionary) CopyTo(dst []Field) int {
	n := 0
	d.VisitAll(func(name string, values []string) bool {
		if n == len(dst) {
			return false
		}
		dst[n] = Field{Name: name, Values: append([]string(nil), values...)}
		n++
		return true
	})
	return n
}

// Fields returns every present header in enumeration order.
func (d *dictionary) Fields() []Field {
	out := make([]Field, 0, d.Len())
	d.VisitAll(func(name string, values []string) bool {
		out = append(out, Field{Name: name, Values: append([]string(nil), values...)})
		return true
	})
	return out
}
