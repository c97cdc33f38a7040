package truncation

import (
	"github.com/lexigraph/tokenizer/internal/encoding"
	"github.com/lexigraph/tokenizer/internal/normstring"
)

// PadStrategy selects how Padding picks its target length.
type PadStrategy int

const (
	// PadToLongest pads every Encoding in a batch up to the longest one.
	PadToLongest PadStrategy = iota
	// PadToFixed pads (and leaves alone, if already long enough) every
	// Encoding up to FixedLength.
	PadToFixed
)

// Padding brings every Encoding in a batch to a common length by appending
// (or, with Direction == Left, prepending) a pad token. Ported from the
// reference pad()/Padding::pad_encoding() pair: padding also recurses into
// each Encoding's Overflowing entries, since those are themselves complete
// Encodings a caller may feed downstream on their own.
type Padding struct {
	Direction       Direction
	Strategy        PadStrategy
	FixedLength     int
	PadID           int
	PadTypeID       int
	PadToken        string
	PadToMultipleOf int
}

// PadBatch computes the batch's target length (per Strategy) and pads every
// Encoding in place, returning the same slice for convenience.
func (p Padding) PadBatch(batch []*encoding.Encoding) []*encoding.Encoding {
	target := p.FixedLength
	if p.Strategy == PadToLongest {
		target = 0
		for _, e := range batch {
			if e.Len() > target {
				target = e.Len()
			}
		}
	}
	target = roundUpToMultiple(target, p.PadToMultipleOf)

	for _, e := range batch {
		p.padOne(e, target)
	}
	return batch
}

// Pad pads a single Encoding to length (used outside a batch context, e.g.
// the facade's single-sequence Encode path with a fixed pad length).
func (p Padding) Pad(e *encoding.Encoding, length int) {
	p.padOne(e, roundUpToMultiple(length, p.PadToMultipleOf))
}

func (p Padding) padOne(e *encoding.Encoding, target int) {
	for i := range e.Overflowing {
		p.padOne(&e.Overflowing[i], target)
	}
	need := target - e.Len()
	if need <= 0 {
		return
	}

	padIDs := make([]int, need)
	padType := make([]int, need)
	padTok := make([]string, need)
	padWords := make([]int, need)
	padOffsets := make([]normstring.ByteRange, need)
	padSpecial := make([]int, need)
	padAttn := make([]int, need)
	for i := 0; i < need; i++ {
		padIDs[i] = p.PadID
		padType[i] = p.PadTypeID
		padTok[i] = p.PadToken
		padWords[i] = 0
		padSpecial[i] = 1
	}

	if p.Direction == Left {
		e.IDs = append(padIDs, e.IDs...)
		e.TypeIDs = append(padType, e.TypeIDs...)
		e.Tokens = append(padTok, e.Tokens...)
		e.Words = append(padWords, e.Words...)
		e.Offsets = append(padOffsets, e.Offsets...)
		e.SpecialTokensMask = append(padSpecial, e.SpecialTokensMask...)
		e.AttentionMask = append(padAttn, e.AttentionMask...)
	} else {
		e.IDs = append(e.IDs, padIDs...)
		e.TypeIDs = append(e.TypeIDs, padType...)
		e.Tokens = append(e.Tokens, padTok...)
		e.Words = append(e.Words, padWords...)
		e.Offsets = append(e.Offsets, padOffsets...)
		e.SpecialTokensMask = append(e.SpecialTokensMask, padSpecial...)
		e.AttentionMask = append(e.AttentionMask, padAttn...)
	}
}

func roundUpToMultiple(n, multiple int) int {
	if multiple <= 1 || n%multiple == 0 {
		return n
	}
	return n + (multiple - n%multiple)
}
