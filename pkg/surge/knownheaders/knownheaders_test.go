package knownheaders

import (
	"math/bits"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitLayoutDisjoint(t *testing.T) {
	for _, tab := range Tables() {
		seen := make(map[int]*Header)
		for _, h := range tab.Headers {
			require.GreaterOrEqual(t, h.Index, 0, "%s %s", tab.Direction, h.Name)
			require.Less(t, h.Index, 64, "%s %s", tab.Direction, h.Name)
			prev, dup := seen[h.Index]
			require.False(t, dup, "%s: bit %d shared by %s and %s",
				tab.Direction, h.Index, h.Name, prev)
			seen[h.Index] = h
		}
	}
}

func TestBitLayoutContiguousPrefix(t *testing.T) {
	for _, tab := range Tables() {
		n := len(tab.Headers)
		if tab.Direction == DirResponse {
			// Pinned Content-Length sits at 63, everything else is a
			// contiguous prefix.
			cl := tab.Headers[n-1]
			require.Equal(t, "Content-Length", cl.Name)
			require.Equal(t, 63, cl.Index)
			n--
		}
		for i := 0; i < n; i++ {
			assert.Equal(t, i, tab.Headers[i].Index, "%s position %d", tab.Direction, i)
		}
	}
}

func TestRequestContentLengthOutOfBand(t *testing.T) {
	cl := Request.ContentLength
	require.NotNil(t, cl)
	assert.Equal(t, -1, cl.Index)
	assert.Zero(t, cl.Bit())
	for _, h := range Request.Headers {
		assert.NotEqual(t, "Content-Length", h.Name)
	}
}

func TestIdentifierUniqueness(t *testing.T) {
	// P1: identifiers collide only when the wire names are the same
	// header (case-insensitively), e.g. ETag in response and trailers.
	byID := make(map[string]string)
	for _, tab := range Tables() {
		for _, h := range tab.Headers {
			low := lowerASCII(h.Name)
			if prev, ok := byID[h.Identifier]; ok {
				assert.Equal(t, prev, low, "identifier %s", h.Identifier)
				continue
			}
			byID[h.Identifier] = low
		}
	}
}

func TestOrderingPolicy(t *testing.T) {
	for _, tab := range Tables() {
		hs := tab.Headers
		n := len(hs)
		if tab.Direction == DirResponse {
			n-- // pinned Content-Length is outside the ordering
		}
		for i := 1; i < n; i++ {
			assert.LessOrEqual(t, Compare(hs[i-1], hs[i]), 0,
				"%s: %s before %s", tab.Direction, hs[i-1].Name, hs[i].Name)
		}
	}
}

func TestPrimaryHeadersSortFirst(t *testing.T) {
	first := make([]string, 0, 4)
	for _, h := range Request.Headers[:4] {
		first = append(first, h.Name)
	}
	assert.ElementsMatch(t, []string{"Accept", "Connection", "Host", "User-Agent"}, first)

	first = first[:0]
	for _, h := range Response.Headers[:4] {
		first = append(first, h.Name)
	}
	assert.ElementsMatch(t, []string{"Connection", "Content-Type", "Date", "Server"}, first)
}

func TestInvalidH2H3Bits(t *testing.T) {
	// P8: popcount 5, exactly the connection-oriented response headers.
	mask := Response.InvalidH2H3Bits
	assert.Equal(t, 5, bits.OnesCount64(mask))

	want := []string{"Connection", "Keep-Alive", "Proxy-Connection", "Transfer-Encoding", "Upgrade"}
	var got uint64
	for _, name := range want {
		h := Response.Lookup(name)
		require.NotNil(t, h, name)
		got |= h.Bit()
	}
	assert.Equal(t, got, mask)
}

func TestWireBytesLayout(t *testing.T) {
	for _, tab := range []*Table{Response, Trailers} {
		blob := tab.WireBytes
		require.NotEmpty(t, blob, tab.Direction)
		next := 0
		for _, h := range tab.Headers {
			require.Equal(t, next, h.WireOffset, "%s %s", tab.Direction, h.Name)
			slice := string(blob[h.WireOffset : h.WireOffset+h.WireLength])
			assert.Equal(t, "\r\n"+h.Name+": ", slice)
			next += h.WireLength
		}
		assert.Equal(t, next, len(blob), "%s: blob has trailing bytes", tab.Direction)
	}
	assert.Empty(t, Request.WireBytes)
}

func TestPseudoHeadersRequestOnly(t *testing.T) {
	var pseudo []string
	for _, h := range Request.Headers {
		if h.Pseudo {
			pseudo = append(pseudo, h.Name)
			assert.NotZero(t, Request.PseudoBits&h.Bit())
		}
	}
	assert.ElementsMatch(t, []string{":authority", ":method", ":path", ":scheme"}, pseudo)
	assert.Zero(t, Response.PseudoBits)
	assert.Zero(t, Trailers.PseudoBits)
}

func TestLookupCaseInsensitive(t *testing.T) {
	h := Request.Lookup("hOsT")
	require.NotNil(t, h)
	assert.Equal(t, "Host", h.Name)
	assert.Nil(t, Request.Lookup("X-Not-Registered"))
}

func TestAllIdentifiersSortedAndClosed(t *testing.T) {
	ids := AllIdentifiers()
	require.NotEmpty(t, ids)
	for i := 1; i < len(ids); i++ {
		assert.True(t, ids[i-1] < ids[i], "%s !< %s", ids[i-1], ids[i])
	}
	assert.Contains(t, ids, "ContentLength")
	assert.Contains(t, ids, "Status")
	assert.Contains(t, ids, "TraceParent")
	for _, id := range ids {
		assert.False(t, strings.Contains(id, "-"), id)
	}
}
