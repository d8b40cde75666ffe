package headers

import (
	"bytes"
	"strings"
	"testing"
)

func TestResponseSetGet(t *testing.T) {
	h := NewResponseHeaders()

	if err := h.Set("Content-Type", "text/html"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := h.ContentType(); got != "text/html" {
		t.Errorf("ContentType = %q", got)
	}
	if v, ok := h.Get("CONTENT-TYPE"); !ok || v != "text/html" {
		t.Errorf("Get = %q, %v", v, ok)
	}

	// Setting empty clears the entry.
	if err := h.Set("Content-Type", ""); err != nil {
		t.Fatalf("Set empty: %v", err)
	}
	if h.Has("Content-Type") {
		t.Error("Content-Type still present after empty Set")
	}
}

func TestResponseAdd(t *testing.T) {
	h := NewResponseHeaders()

	if err := h.Add("Server", "surge"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := h.Add("Server", "other"); err != ErrValueAlreadyExists {
		t.Errorf("duplicate Add = %v, want ErrValueAlreadyExists", err)
	}
	if err := h.Add("X-Custom", "1"); err != nil {
		t.Fatalf("unknown Add: %v", err)
	}
	if err := h.Add("x-custom", "2"); err != ErrValueAlreadyExists {
		t.Errorf("duplicate unknown Add = %v, want ErrValueAlreadyExists", err)
	}
}

func TestResponseRemove(t *testing.T) {
	h := NewResponseHeaders()
	h.SetServer("surge")
	h.Set("X-Custom", "1")
	h.SetContentLength(10)

	for _, name := range []string{"server", "x-custom", "content-length"} {
		removed, err := h.Remove(name)
		if err != nil || !removed {
			t.Errorf("Remove(%s) = %v, %v", name, removed, err)
		}
	}
	if h.Len() != 0 {
		t.Errorf("Len = %d, want 0", h.Len())
	}
	removed, err := h.Remove("server")
	if err != nil || removed {
		t.Errorf("second Remove = %v, %v, want false, nil", removed, err)
	}
}

func TestResponseInvalidValueBytes(t *testing.T) {
	// Control bytes are rejected and the presence bit stays clear.
	h := NewResponseHeaders()
	if err := h.Set("ETag", "\x01abc"); err != ErrInvalidHeaderValue {
		t.Fatalf("Set = %v, want ErrInvalidHeaderValue", err)
	}
	if h.Has("ETag") {
		t.Error("ETag present after rejected Set")
	}
	if h.bits != 0 {
		t.Errorf("bits = %#x, want 0", h.bits)
	}

	// CR and LF can never be smuggled into a value.
	for _, v := range []string{"a\r\nb", "a\nb", "a\rb", "\x7f"} {
		if err := h.Set("Server", v); err != ErrInvalidHeaderValue {
			t.Errorf("Set(%q) = %v, want ErrInvalidHeaderValue", v, err)
		}
	}

	// HTAB is legal field content.
	if err := h.Set("Server", "a\tb"); err != nil {
		t.Errorf("Set with HTAB = %v", err)
	}
}

func TestResponseSerializeSingleHeader(t *testing.T) {
	// Serializing {h: v} produces exactly "\r\nName: value" using the
	// registry's canonical casing, whatever casing Set saw.
	for _, name := range []string{"Server", "Content-Type", "ETag", "WWW-Authenticate"} {
		h := NewResponseHeaders()
		if err := h.Set(strings.ToLower(name), "value-1"); err != nil {
			t.Fatalf("Set(%s): %v", name, err)
		}
		got := h.AppendTo(nil)
		want := "\r\n" + name + ": value-1"
		if string(got) != want {
			t.Errorf("AppendTo = %q, want %q", got, want)
		}
	}
}

func TestResponseSerializeContentLength(t *testing.T) {
	h := NewResponseHeaders()
	h.SetContentLength(42)
	got := h.AppendTo(nil)
	if string(got) != "\r\nContent-Length: 42" {
		t.Errorf("AppendTo = %q", got)
	}
}

func TestResponseSerializeOrder(t *testing.T) {
	// Output order follows bit indices: primary headers first, then
	// alphabetical, Content-Length last. Insertion order is irrelevant.
	build := func(names []string) []byte {
		h := NewResponseHeaders()
		for _, n := range names {
			if err := h.Set(n, "x"); err != nil {
				t.Fatalf("Set(%s): %v", n, err)
			}
		}
		h.SetContentLength(7)
		return h.AppendTo(nil)
	}

	a := build([]string{"Vary", "Server", "Age", "Date"})
	b := build([]string{"Date", "Age", "Server", "Vary"})
	if !bytes.Equal(a, b) {
		t.Errorf("serialization depends on insertion order:\n%q\n%q", a, b)
	}

	out := string(a)
	wantOrder := []string{"Date", "Server", "Age", "Vary", "Content-Length"}
	pos := -1
	for _, n := range wantOrder {
		i := strings.Index(out, "\r\n"+n+": ")
		if i < 0 {
			t.Fatalf("%s missing in %q", n, out)
		}
		if i < pos {
			t.Errorf("%s out of order in %q", n, out)
		}
		pos = i
	}
}

func TestResponseSerializeMultiValue(t *testing.T) {
	h := NewResponseHeaders()
	if err := h.Set("Set-Cookie", "a=1", "b=2"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got := string(h.AppendTo(nil))
	want := "\r\nSet-Cookie: a=1\r\nSet-Cookie: b=2"
	if got != want {
		t.Errorf("AppendTo = %q, want %q", got, want)
	}
}

func TestResponseSerializeRawSlots(t *testing.T) {
	// Scenario: Date, Server and Content-Type carry pre-encoded raw
	// bytes; the serializer emits them verbatim and no formatted text.
	h := NewResponseHeaders()
	h.SetRawDate("Tue, 01 Jan 2030 00:00:00 GMT", []byte("\r\nDate: Tue, 01 Jan 2030 00:00:00 GMT"))
	h.SetRawServer("surge", []byte("\r\nServer: surge"))
	h.SetRawContentType("text/plain", []byte("\r\nContent-Type: text/plain"))

	got := string(h.AppendTo(nil))
	want := "\r\nContent-Type: text/plain" + "\r\nDate: Tue, 01 Jan 2030 00:00:00 GMT" + "\r\nServer: surge"
	if got != want {
		t.Errorf("AppendTo = %q, want %q", got, want)
	}

	// A normal Set drops the raw companion: it described the old value.
	if err := h.Set("Server", "other"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got = string(h.AppendTo(nil))
	if !strings.Contains(got, "\r\nServer: other") {
		t.Errorf("raw slot survived Set: %q", got)
	}
}

func TestResponseInvalidH2H3Headers(t *testing.T) {
	h := NewResponseHeaders()
	if err := h.Set("Connection", "close"); err != nil {
		t.Fatal(err)
	}
	if err := h.Set("Transfer-Encoding", "chunked"); err != nil {
		t.Fatal(err)
	}
	h.SetServer("surge")

	if !h.HasInvalidH2H3Headers() {
		t.Fatal("HasInvalidH2H3Headers = false")
	}

	h.ClearInvalidH2H3Headers()
	if h.HasInvalidH2H3Headers() {
		t.Error("invalid headers still flagged after clear")
	}
	if h.Has("Connection") || h.Has("Transfer-Encoding") {
		t.Error("connection-level headers still present")
	}

	out := string(h.AppendTo(nil))
	if strings.Contains(out, "Connection") || strings.Contains(out, "Transfer-Encoding") {
		t.Errorf("serialization still carries cleared headers: %q", out)
	}
	if !strings.Contains(out, "\r\nServer: surge") {
		t.Errorf("unrelated header lost: %q", out)
	}
}

func TestResponseSerializeDrainsToTemp(t *testing.T) {
	// Serialization must not consume the dictionary itself.
	h := NewResponseHeaders()
	h.SetServer("surge")
	first := h.AppendTo(nil)
	second := h.AppendTo(nil)
	if !bytes.Equal(first, second) {
		t.Errorf("repeated serialization differs: %q vs %q", first, second)
	}
}

func TestResponseWriteTo(t *testing.T) {
	h := NewResponseHeaders()
	h.SetServer("surge")
	h.SetContentLength(3)

	var buf bytes.Buffer
	n, err := h.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("n = %d, buffer %d", n, buf.Len())
	}
	if !bytes.Equal(buf.Bytes(), h.AppendTo(nil)) {
		t.Error("WriteTo output differs from AppendTo")
	}
}

func TestResponseSetterPanicsWhenFrozen(t *testing.T) {
	h := NewResponseHeaders()
	h.SetReadOnly()
	defer func() {
		if recover() != ErrReadOnly {
			t.Error("typed setter did not panic with ErrReadOnly")
		}
	}()
	h.SetServer("surge")
}

func TestTrailersSerialize(t *testing.T) {
	h := NewResponseTrailers()
	if err := h.Set("Grpc-Status", "0"); err != nil {
		t.Fatal(err)
	}
	if err := h.Set("ETag", `"abc"`); err != nil {
		t.Fatal(err)
	}
	got := string(h.AppendTo(nil))
	want := "\r\nETag: \"abc\"" + "\r\nGrpc-Status: 0"
	if got != want {
		t.Errorf("AppendTo = %q, want %q", got, want)
	}
	if h.GrpcStatus() != "0" {
		t.Errorf("GrpcStatus = %q", h.GrpcStatus())
	}
}
