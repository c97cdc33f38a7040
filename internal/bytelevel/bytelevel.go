// Package bytelevel builds the bytes<->unicode table shared by the
// ByteLevel pre-tokenizer and the ByteLevel decoder: a
// 1-to-1 mapping from the 256 byte values to 256 printable Unicode code
// points, computed once and shared by reference (see spec §4.3, §4.8 and
// the Glossary). Ported from the teacher's byte-mapping table, generalized
// from a package-init singleton into an explicit constructor so multiple
// tokenizer configurations never share mutable state.
package bytelevel

import "strings"

// Table is the immutable bytes<->unicode mapping.
type Table struct {
	byteToRune [256]rune
	runeToByte map[rune]byte
}

var shared = New()

// Shared returns the process-wide bytes<->unicode table. The mapping is a
// fixed constant (it does not depend on any tokenizer configuration), so
// every component may reference this single instance.
func Shared() *Table { return shared }

// New builds the table from scratch. Exposed mainly for tests; production
// code should use Shared().
func New() *Table {
	bs := make([]int, 0, 256)
	for i := '!'; i <= '~'; i++ {
		bs = append(bs, int(i))
	}
	for i := '¡'; i <= '¬'; i++ {
		bs = append(bs, int(i))
	}
	for i := '®'; i <= 'ÿ'; i++ {
		bs = append(bs, int(i))
	}

	cs := make([]int, len(bs))
	copy(cs, bs)

	present := make(map[int]bool, len(bs))
	for _, v := range bs {
		present[v] = true
	}

	n := 0
	for b := 0; b < 256; b++ {
		if present[b] {
			continue
		}
		bs = append(bs, b)
		cs = append(cs, 256+n)
		n++
	}

	t := &Table{runeToByte: make(map[rune]byte, 256)}
	for i, b := range bs {
		t.byteToRune[b] = rune(cs[i])
		t.runeToByte[rune(cs[i])] = byte(b)
	}
	return t
}

// EncodeByte returns the printable code point a raw byte is mapped to.
func (t *Table) EncodeByte(b byte) rune { return t.byteToRune[b] }

// DecodeRune returns the raw byte a printable code point maps back to, and
// whether r is part of the table at all.
func (t *Table) DecodeRune(r rune) (byte, bool) {
	b, ok := t.runeToByte[r]
	return b, ok
}

// Encode converts raw bytes into the byte-level string representation.
func (t *Table) Encode(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		sb.WriteRune(t.byteToRune[b])
	}
	return sb.String()
}

// Decode converts a byte-level string representation back to raw bytes.
// Runes outside the table are skipped.
func (t *Table) Decode(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if b, ok := t.runeToByte[r]; ok {
			out = append(out, b)
		}
	}
	return out
}
