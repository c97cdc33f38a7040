package postprocessor

import (
	"github.com/lexigraph/tokenizer/internal/encoding"
)

// byteLevelSpace is the code point ByteLevel pre-tokenization encodes an
// ASCII space (0x20) as: 'Ġ' (U+0120) in internal/bytelevel's table, repeated
// here as a literal constant to avoid this package depending on
// internal/bytelevel solely for one rune value (0x20 is outside the
// printable range the table passes through unchanged).
const byteLevelSpace = 'Ġ'

// ByteLevelProcessing optionally trims the byte-level space markers
// ByteLevel pre-tokenization leaves at segment boundaries back out of each
// token's reported offsets, so offsets reflect the "real" word rather than
// the marker glyphs the model actually saw.
type ByteLevelProcessing struct {
	AddPrefixSpace bool
	TrimOffsets    bool
}

func (b ByteLevelProcessing) Process(enc, pair *encoding.Encoding, addSpecialTokens bool) *encoding.Encoding {
	if b.TrimOffsets {
		trimByteLevelOffsets(enc, b.AddPrefixSpace)
	}
	return enc
}

// trimByteLevelOffsets shrinks every non-special token's offsets to exclude
// leading/trailing encoded-space runs, except a leading space on the very
// first token when AddPrefixSpace is false (that space is meaningful
// content, not an artifact of the prefix-space insertion).
func trimByteLevelOffsets(enc *encoding.Encoding, addPrefixSpace bool) {
	for i, tok := range enc.Tokens {
		if enc.SpecialTokensMask[i] == 1 {
			continue
		}
		leading := countLeadingSpaces(tok)
		trailing := countTrailingSpaces(tok)
		if i == 0 && !addPrefixSpace && leading > 0 {
			leading--
		}
		r := enc.Offsets[i]
		r.Start += leading
		r.End -= trailing
		if r.End < r.Start {
			r.End = r.Start
		}
		enc.Offsets[i] = r
	}
}

func countLeadingSpaces(s string) int {
	n := 0
	for _, r := range s {
		if r != byteLevelSpace {
			break
		}
		n++
	}
	return n
}

func countTrailingSpaces(s string) int {
	runes := []rune(s)
	n := 0
	for i := len(runes) - 1; i >= 0 && runes[i] == byteLevelSpace; i-- {
		n++
	}
	return n
}
