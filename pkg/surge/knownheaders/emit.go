package knownheaders

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
)

// Generate renders the complete generated-dictionary artifact as Go source:
// the closed KnownHeaderType enumeration, the per-direction tables (bit
// indices, wire blobs, match programs, HPACK dispatch), the invalid-bits
// constant and the identifier-named accessor bodies. Output is deterministic
// byte for byte across runs; only behavior is contractual, the layout comes
// from go/format.
func Generate() ([]byte, error) {
	var b bytes.Buffer

	fmt.Fprintf(&b, "// Code generated by headergen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package headers\n\n")
	fmt.Fprintf(&b, "import \"encoding/binary\"\n\n")

	emitEnum(&b)
	emitInvalidBits(&b)
	for _, t := range Tables() {
		emitTable(&b, t)
	}
	emitHPACK(&b)
	for _, t := range Tables() {
		emitAccessors(&b, t)
	}

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("knownheaders: generated artifact does not parse: %w", err)
	}
	return src, nil
}

func emitEnum(b *bytes.Buffer) {
	fmt.Fprintf(b, "// KnownHeaderType enumerates every registered header across all directions.\n")
	fmt.Fprintf(b, "type KnownHeaderType int\n\n")
	fmt.Fprintf(b, "const (\n")
	fmt.Fprintf(b, "\tHeaderUnknown KnownHeaderType = iota\n")
	for _, id := range AllIdentifiers() {
		fmt.Fprintf(b, "\tHeader%s\n", id)
	}
	fmt.Fprintf(b, ")\n\n")
}

func emitInvalidBits(b *bytes.Buffer) {
	fmt.Fprintf(b, "// InvalidH2H3ResponseHeadersBits masks response headers that are illegal\n")
	fmt.Fprintf(b, "// on HTTP/2 and HTTP/3 connections.\n")
	fmt.Fprintf(b, "const InvalidH2H3ResponseHeadersBits uint64 = %#x\n\n", Response.InvalidH2H3Bits)
}

func emitTable(b *bytes.Buffer, t *Table) {
	dir := t.Direction.String()

	fmt.Fprintf(b, "// %s direction: %d known headers.\n", dir, len(t.Headers))
	fmt.Fprintf(b, "var %sHeaderNames = [...]string{\n", dir)
	for _, h := range t.Headers {
		fmt.Fprintf(b, "\t%d: %s,\n", h.Index, strconv.Quote(h.Name))
	}
	fmt.Fprintf(b, "}\n\n")

	if len(t.WireBytes) > 0 {
		fmt.Fprintf(b, "const %sWireBytes = %s\n\n", dir, strconv.Quote(string(t.WireBytes)))
		fmt.Fprintf(b, "var %sWireSlices = [...][2]int{\n", dir)
		for _, h := range t.Headers {
			fmt.Fprintf(b, "\t%d: {%d, %d},\n", h.Index, h.WireOffset, h.WireLength)
		}
		fmt.Fprintf(b, "}\n\n")
	}

	if t.PseudoBits != 0 {
		fmt.Fprintf(b, "const %sPseudoBits uint64 = %#x\n\n", dir, t.PseudoBits)
	}

	emitMatcher(b, t)
}

// emitMatcher lowers the synthesized match program to a cascade of masked
// word compares, one switch arm per name length. Candidates that share a
// first term test it once through a common local.
func emitMatcher(b *bytes.Buffer, t *Table) {
	dir := t.Direction.String()

	fmt.Fprintf(b, "// %sMatchKnown resolves a header name to its bit index (-1 for the\n", dir)
	fmt.Fprintf(b, "// request Content-Length, which owns no bit), or -2 when unknown.\n")
	fmt.Fprintf(b, "// Matching is case-insensitive for ASCII letters only.\n")
	fmt.Fprintf(b, "func %sMatchKnown(name []byte) int {\n", dir)
	fmt.Fprintf(b, "\tswitch len(name) {\n")
	for _, bucket := range t.Buckets {
		fmt.Fprintf(b, "\tcase %d:\n", bucket.Length)
		for gi, g := range bucket.Groups {
			v := fmt.Sprintf("g%d", gi)
			fmt.Fprintf(b, "\t\t%s := %s & %#x\n", v, loadExpr(g.First), g.First.Mask)
			for _, c := range g.Candidates {
				cond := fmt.Sprintf("%s == %#x", v, g.First.Comp)
				for _, term := range c.Rest {
					cond += fmt.Sprintf(" && %s&%#x == %#x", loadExpr(term), term.Mask, term.Comp)
				}
				fmt.Fprintf(b, "\t\tif %s {\n\t\t\treturn %d\n\t\t}\n", cond, c.Header.Index)
			}
		}
	}
	fmt.Fprintf(b, "\t}\n\treturn -2\n}\n\n")
}

// loadExpr renders the unaligned little-endian load for one term.
func loadExpr(term MatchTerm) string {
	switch term.Width {
	case 8:
		return fmt.Sprintf("binary.LittleEndian.Uint64(name[%d:])", term.Offset)
	case 4:
		return fmt.Sprintf("uint64(binary.LittleEndian.Uint32(name[%d:]))", term.Offset)
	case 2:
		return fmt.Sprintf("uint64(binary.LittleEndian.Uint16(name[%d:]))", term.Offset)
	default:
		return fmt.Sprintf("uint64(name[%d])", term.Offset)
	}
}

// emitHPACK lowers the static-index dispatch to a lookup array: the known
// request header's bit index, -1 for Content-Length, -2 for indices with no
// registered header.
func emitHPACK(b *bytes.Buffer) {
	fmt.Fprintf(b, "// hpackDispatch maps RFC 7541 static-table indices to request bit\n")
	fmt.Fprintf(b, "// indices (-1 Content-Length, -2 no known header).\n")
	fmt.Fprintf(b, "var hpackDispatch = [%d]int8{\n", StaticTableSize+1)
	d := HPACKDispatch()
	for i := 1; i <= StaticTableSize; i++ {
		v := -2
		if d[i] != nil {
			v = d[i].Index
		}
		fmt.Fprintf(b, "\t%d: %d, // %s\n", i, v, staticTable[i].Name)
	}
	fmt.Fprintf(b, "}\n\n")
}

func emitAccessors(b *bytes.Buffer, t *Table) {
	recv := map[Direction]string{
		DirRequest:  "RequestHeaders",
		DirResponse: "ResponseHeaders",
		DirTrailer:  "ResponseTrailers",
	}[t.Direction]

	for _, h := range t.Headers {
		if h == t.ContentLength {
			continue
		}
		fmt.Fprintf(b, "func (h *%s) %s() string { return h.known(%d) }\n",
			recv, h.Identifier, h.Index)
		fmt.Fprintf(b, "func (h *%s) Set%s(v string) { h.setKnown(%d, v) }\n",
			recv, h.Identifier, h.Index)
		if h.ExistenceCheck {
			fmt.Fprintf(b, "func (h *%s) Has%s() bool { return h.bits&(1<<%d) != 0 }\n",
				recv, h.Identifier, h.Index)
		}
		if h.FastCount {
			fmt.Fprintf(b, "func (h *%s) %sCount() int { return h.knownCount(%d) }\n",
				recv, h.Identifier, h.Index)
		}
		if h.EnhancedSetter {
			fmt.Fprintf(b, "func (h *%s) SetRaw%s(v string, raw []byte) { h.setKnownRaw(%d, v, raw) }\n",
				recv, h.Identifier, h.Index)
		}
	}
	if t.ContentLength != nil {
		fmt.Fprintf(b, "func (h *%s) ContentLength() int64 { return h.contentLength }\n", recv)
		fmt.Fprintf(b, "func (h *%s) SetContentLength(v int64) { h.contentLength = v }\n", recv)
	}
	fmt.Fprintf(b, "\n")
}
