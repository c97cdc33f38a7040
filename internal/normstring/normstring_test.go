package normstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentityAlignment(t *testing.T) {
	n := New("hello")
	assert.Equal(t, "hello", n.Normalized())
	assert.Equal(t, ByteRange{1, 3}, n.OriginalRange(1, 3))
}

func TestReplaceRangeShiftsAlignmentOfInsertedRunes(t *testing.T) {
	n := New("hello world")
	// Uppercase "hello" -> "HELLO", one-for-one, alignment unchanged.
	n.ReplaceRange(0, 5, "HELLO")
	assert.Equal(t, "HELLO world", n.Normalized())
	assert.Equal(t, ByteRange{0, 5}, n.OriginalRange(0, 5))
}

func TestReplaceRangeGrowInheritsInsertionPointAlignment(t *testing.T) {
	n := New("ab")
	// Insert two runes at index 1 (the "grow" transform): both inherit
	// origRanges[1], the alignment of the rune they're inserted before.
	n.ReplaceRange(1, 1, "XY")
	assert.Equal(t, "aXYb", n.Normalized())
	// The inserted span maps back to 'b''s original byte range [1, 2).
	got := n.OriginalRange(1, 3)
	assert.Equal(t, 1, got.Start)
	assert.Equal(t, 2, got.End)
}

func TestRemoveRangeErasesRunesAndAlignment(t *testing.T) {
	n := New("hello world")
	n.RemoveRange(5, 6) // drop the space
	assert.Equal(t, "helloworld", n.Normalized())
	assert.Equal(t, 10, n.Len())
}

func TestSliceRetainsOriginalAlignment(t *testing.T) {
	n := New("hello world")
	sub := n.Slice(6, 11) // "world"
	assert.Equal(t, "world", sub.Normalized())
	assert.Equal(t, "hello world", sub.Original())
	// A byte range local to the slice's own normalized text still resolves
	// to the true original offsets, the alignment invariant the facade's
	// flatten() relies on.
	assert.Equal(t, ByteRange{6, 11}, sub.OriginalRange(0, 5))
}

func TestSliceThenMutateKeepsOriginalAlignment(t *testing.T) {
	n := New("Hello World")
	sub := n.Slice(0, 5) // "Hello"
	sub.ReplaceRange(0, 5, "hello")
	assert.Equal(t, "hello", sub.Normalized())
	assert.Equal(t, ByteRange{0, 5}, sub.OriginalRange(0, 5))
}

func TestPadWrapsRuneAndInheritsItsAlignment(t *testing.T) {
	n := New("中")
	n.Pad(0, " ", " ")
	assert.Equal(t, " 中 ", n.Normalized())
	require.Equal(t, 3, n.Len())
	// All three runes (the padding and the original) map back to the same
	// single original code point.
	assert.Equal(t, ByteRange{0, 3}, n.OriginalRange(0, n.RuneByteRange(2).End))
}

func TestOriginalRangeEmptyRangeAnchorsAtPosition(t *testing.T) {
	n := New("hello")
	got := n.OriginalRange(2, 2)
	assert.Equal(t, got.Start, got.End)
}
