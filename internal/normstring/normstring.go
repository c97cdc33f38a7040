// Package normstring implements the NormalizedString alignment primitive:
// a text buffer that can be freely mutated (erased, grown, shrunk, padded,
// replaced) while keeping an exact byte-level mapping back to the original
// input that produced it.
package normstring

import "unicode/utf8"

// ByteRange is a half-open byte interval [Start, End).
type ByteRange struct {
	Start int
	End   int
}

// Len reports the number of bytes the range spans.
func (r ByteRange) Len() int { return r.End - r.Start }

// CodePointRange records where a single code point of the normalized text
// sits within that text's own UTF-8 encoding: ByteStart is the offset of
// its first byte, ByteLen the number of bytes it occupies.
type CodePointRange struct {
	ByteStart int
	ByteLen   int
}

// NormalizedString is the current (mutated) text plus the alignment tables
// needed to map any byte range of it back to a byte range of the original
// input. Code points are the unit of mutation (see Transform-style methods
// below); byte-level offsets and ranges are derived from the rune slice on
// demand and cached until the next mutation.
type NormalizedString struct {
	original string
	runes    []rune
	// origRanges holds one entry per rune in runes: the byte range of the
	// *original* input that this rune is aligned to. Several runes may
	// point at the same original range (insertions) or a rune may point at
	// a multi-byte range that used to be several original code points
	// (merges), but the ranges always stay within [0, len(original)).
	origRanges []ByteRange

	// cached derived tables, invalidated on every mutation.
	normalizedCache string
	rangesCache     []CodePointRange
	bytesCache      []ByteRange
	dirty           bool
}

// New builds a fresh NormalizedString whose normalized text is identical to
// original and whose alignment is the identity mapping.
func New(original string) *NormalizedString {
	n := &NormalizedString{original: original}
	n.runes = make([]rune, 0, len(original))
	n.origRanges = make([]ByteRange, 0, len(original))
	byteStart := 0
	for _, r := range original {
		l := utf8.RuneLen(r)
		n.runes = append(n.runes, r)
		n.origRanges = append(n.origRanges, ByteRange{byteStart, byteStart + l})
		byteStart += l
	}
	n.dirty = true
	return n
}

// FromAligned builds a NormalizedString directly from already-mutated runes
// and their original alignment. Used when carving a Split out of a larger
// NormalizedString: the sub-slice inherits its parent's alignment verbatim.
func FromAligned(original string, runes []rune, origRanges []ByteRange) *NormalizedString {
	n := &NormalizedString{
		original:   original,
		runes:      runes,
		origRanges: origRanges,
		dirty:      true,
	}
	return n
}

// Original returns the untouched input this NormalizedString was built from.
func (n *NormalizedString) Original() string { return n.original }

// Len returns the number of code points in the current normalized text.
func (n *NormalizedString) Len() int { return len(n.runes) }

// Runes exposes the current code points. Callers must not mutate the
// returned slice; use the Transform-style methods instead.
func (n *NormalizedString) Runes() []rune { return n.runes }

func (n *NormalizedString) recompute() {
	if !n.dirty {
		return
	}
	n.normalizedCache = string(n.runes)
	n.rangesCache = make([]CodePointRange, len(n.runes))
	n.bytesCache = make([]ByteRange, 0, len(n.normalizedCache))
	byteStart := 0
	for i, r := range n.runes {
		l := utf8.RuneLen(r)
		n.rangesCache[i] = CodePointRange{ByteStart: byteStart, ByteLen: l}
		for j := 0; j < l; j++ {
			n.bytesCache = append(n.bytesCache, n.origRanges[i])
		}
		byteStart += l
	}
	n.dirty = false
}

// Normalized returns the current mutated text.
func (n *NormalizedString) Normalized() string {
	n.recompute()
	return n.normalizedCache
}

// OffsetRanges returns, one entry per code point, the byte range that code
// point occupies within Normalized()'s UTF-8 encoding.
func (n *NormalizedString) OffsetRanges() []CodePointRange {
	n.recompute()
	return n.rangesCache
}

// ByteOffsets returns, one entry per byte of Normalized(), the byte range of
// Original() that byte is aligned to.
func (n *NormalizedString) ByteOffsets() []ByteRange {
	n.recompute()
	return n.bytesCache
}

// OriginalRange maps a byte range [byteStart, byteEnd) of Normalized() back
// to the byte range of Original() it was produced from. An empty range maps
// to a zero-length range anchored at the nearest original position.
func (n *NormalizedString) OriginalRange(byteStart, byteEnd int) ByteRange {
	offs := n.ByteOffsets()
	if len(offs) == 0 || byteStart >= byteEnd {
		if byteStart < len(offs) {
			return ByteRange{offs[byteStart].Start, offs[byteStart].Start}
		}
		return ByteRange{len(n.original), len(n.original)}
	}
	start := offs[byteStart].Start
	end := offs[byteEnd-1].End
	if end < start {
		end = start
	}
	return ByteRange{start, end}
}

// RuneByteRange reports the byte range within Normalized() that the rune at
// index i occupies.
func (n *NormalizedString) RuneByteRange(i int) ByteRange {
	ranges := n.OffsetRanges()
	r := ranges[i]
	return ByteRange{r.ByteStart, r.ByteStart + r.ByteLen}
}

func (n *NormalizedString) originAt(i int) ByteRange {
	if i < len(n.origRanges) {
		return n.origRanges[i]
	}
	if len(n.origRanges) > 0 {
		last := n.origRanges[len(n.origRanges)-1]
		return ByteRange{last.End, last.End}
	}
	return ByteRange{0, 0}
}

// RemoveRange erases the code points [start, end) — the "erase" transform.
func (n *NormalizedString) RemoveRange(start, end int) {
	if start >= end {
		return
	}
	n.runes = append(n.runes[:start], n.runes[end:]...)
	n.origRanges = append(n.origRanges[:start], n.origRanges[end:]...)
	n.dirty = true
}

// ReplaceRange replaces the code points [start, end) with s — the "replace"
// (or, when end == start, the "add"/"grow") transform. A one-for-one
// replacement (s has as many runes as the range) keeps each rune's own
// original alignment; otherwise every new rune inherits the alignment of
// the first replaced rune, or, if the range was empty, that of the
// insertion point.
func (n *NormalizedString) ReplaceRange(start, end int, s string) {
	var inherited ByteRange
	if start < end {
		inherited = n.origRanges[start]
	} else {
		inherited = n.originAt(start)
	}
	newRunes := []rune(s)
	newOrigin := make([]ByteRange, len(newRunes))
	for i := range newOrigin {
		if len(newRunes) == end-start {
			newOrigin[i] = n.origRanges[start+i]
		} else {
			newOrigin[i] = inherited
		}
	}

	tailRunes := append([]rune(nil), n.runes[end:]...)
	tailOrigin := append([]ByteRange(nil), n.origRanges[end:]...)

	n.runes = append(n.runes[:start], newRunes...)
	n.runes = append(n.runes, tailRunes...)
	n.origRanges = append(n.origRanges[:start], newOrigin...)
	n.origRanges = append(n.origRanges, tailOrigin...)
	n.dirty = true
}

// InsertAt inserts s before rune index i — the "add" transform.
func (n *NormalizedString) InsertAt(i int, s string) {
	n.ReplaceRange(i, i, s)
}

// Pad wraps the rune at index i with left and right strings (typically a
// single space each), the "pad" transform used to isolate CJK characters.
// Both spacers inherit the original alignment of the wrapped rune.
func (n *NormalizedString) Pad(i int, left, right string) {
	origin := n.originAt(i)
	if right != "" {
		n.InsertAt(i+1, right)
		n.origRanges[i+1] = origin
	}
	if left != "" {
		n.InsertAt(i, left)
		n.origRanges[i] = origin
	}
}

// Slice carves out a sub-NormalizedString covering runes [start, end), with
// its own copy of the alignment so it can be mutated independently (used by
// split() and by AddedVocabulary when re-normalizing an unmatched span).
func (n *NormalizedString) Slice(start, end int) *NormalizedString {
	runes := append([]rune(nil), n.runes[start:end]...)
	origins := append([]ByteRange(nil), n.origRanges[start:end]...)
	return FromAligned(n.original, runes, origins)
}
