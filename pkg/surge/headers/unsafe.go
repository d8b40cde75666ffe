package headers

import "unsafe"

// bytesToString converts a byte slice to a string without copying.
//
// SAFETY REQUIREMENTS:
//  1. The returned string must be READ-ONLY (never modified)
//  2. The returned string must not outlive the source byte slice
//  3. The source byte slice must not be modified while the string is in use
//
// This is safe for the matcher and the reuse-rule comparison because the
// string never escapes the comparison; stored values are always built with
// an owning copy.
//
//go:inline
func bytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// stringToBytes converts a string to a byte slice without copying.
//
// SAFETY REQUIREMENTS:
//  1. The returned []byte MUST NEVER BE MODIFIED (strings are immutable!)
//  2. The returned []byte must not outlive the source string
//
//go:inline
func stringToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// sameStringData reports whether two strings share their backing bytes.
// Used by tests to observe the value-reuse fast path.
func sameStringData(a, b string) bool {
	return unsafe.StringData(a) == unsafe.StringData(b)
}
