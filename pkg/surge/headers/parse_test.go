package headers

import (
	"strings"
	"testing"
)

func TestParseHeaderBlockSimple(t *testing.T) {
	h := NewRequestHeaders()
	block := []byte("Host: example.com\r\n" +
		"User-Agent: Go-http-client/1.1\r\n" +
		"\r\n")

	n, err := ParseHeaderBlock(h, block)
	if err != nil {
		t.Fatalf("ParseHeaderBlock: %v", err)
	}
	if n != len(block) {
		t.Errorf("consumed %d, want %d", n, len(block))
	}
	if v, ok := h.Get("host"); !ok || v != "example.com" {
		t.Errorf("Get(host) = %q, %v", v, ok)
	}
	if h.UserAgent() != "Go-http-client/1.1" {
		t.Errorf("UserAgent = %q", h.UserAgent())
	}
}

func TestParseHeaderBlockOWS(t *testing.T) {
	h := NewRequestHeaders()
	block := []byte("Accept:\tapplication/json \r\n" +
		"Referer:https://example.com\r\n" +
		"\r\n")
	if _, err := ParseHeaderBlock(h, block); err != nil {
		t.Fatalf("ParseHeaderBlock: %v", err)
	}
	if h.Accept() != "application/json" {
		t.Errorf("Accept = %q", h.Accept())
	}
	if h.Referer() != "https://example.com" {
		t.Errorf("Referer = %q", h.Referer())
	}
}

func TestParseHeaderBlockErrors(t *testing.T) {
	cases := []struct {
		name  string
		block string
		err   error
	}{
		{"missing colon", "Host example.com\r\n\r\n", ErrInvalidHeaderLine},
		{"empty name", ": v\r\n\r\n", ErrInvalidHeaderLine},
		{"space in name", "Bad Name: v\r\n\r\n", ErrInvalidHeaderLine},
		{"no terminator", "Host: example.com\r\n", ErrUnexpectedEOB},
		{"bare fragment", "Host", ErrUnexpectedEOB},
		{"oversized name", strings.Repeat("a", 65) + ": v\r\n\r\n", ErrHeaderNameTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewRequestHeaders()
			if _, err := ParseHeaderBlock(h, []byte(tc.block)); err != tc.err {
				t.Errorf("err = %v, want %v", err, tc.err)
			}
		})
	}
}

func TestParseHeaderBlockTooLarge(t *testing.T) {
	h := NewRequestHeaders()
	big := make([]byte, MaxHeaderBlockSize+1)
	if _, err := ParseHeaderBlock(h, big); err != ErrHeaderBlockTooLarge {
		t.Errorf("err = %v, want ErrHeaderBlockTooLarge", err)
	}
}

func TestSerializeParseRoundTrip(t *testing.T) {
	// Serialize every plain response header with a distinctive value and
	// feed the stream back through the request parser: each value must
	// survive byte for byte, landing in a known slot or the unknown
	// mapping depending on direction membership.
	src := NewResponseHeaders()
	var names []string
	for _, h := range responseTable.byIndex {
		if h == nil || h == responseTable.contentLength || h.EnhancedSetter {
			continue
		}
		if err := src.Set(h.Name, "v-"+h.Name); err != nil {
			t.Fatalf("Set(%s): %v", h.Name, err)
		}
		names = append(names, h.Name)
	}

	wire := src.AppendTo(nil)
	// The serializer leads with CRLF per entry; a request block wants
	// trailing CRLFs instead.
	block := append(wire[2:], "\r\n\r\n"...)

	dst := NewRequestHeaders()
	if _, err := ParseHeaderBlock(dst, block); err != nil {
		t.Fatalf("ParseHeaderBlock: %v", err)
	}
	for _, name := range names {
		if v, ok := dst.Get(name); !ok || v != "v-"+name {
			t.Errorf("Get(%s) = %q, %v", name, v, ok)
		}
	}
}

func TestRoundTripSingleHeader(t *testing.T) {
	src := NewResponseHeaders()
	if err := src.Set("ETag", `"v1"`); err != nil {
		t.Fatal(err)
	}
	wire := src.AppendTo(nil)
	if string(wire) != "\r\nETag: \"v1\"" {
		t.Fatalf("wire = %q", wire)
	}

	dst := NewRequestHeaders()
	if _, err := ParseHeaderBlock(dst, append(wire[2:], "\r\n\r\n"...)); err != nil {
		t.Fatal(err)
	}
	if v, ok := dst.Get("etag"); !ok || v != `"v1"` {
		t.Errorf("Get(etag) = %q, %v", v, ok)
	}
}
