// Package postprocessor implements the PostProcessor family (spec §4.6):
// shaping a raw Model-produced Encoding into its final form by inserting
// template special tokens, trimming byte-level offsets, or both.
package postprocessor

import (
	"github.com/lexigraph/tokenizer/internal/encoding"
)

// PostProcessor is the single-method polymorphic family from spec §4.6.
type PostProcessor interface {
	Process(enc *encoding.Encoding, pair *encoding.Encoding, addSpecialTokens bool) *encoding.Encoding
}

// Sequence composes post-processors left to right.
type Sequence struct {
	Processors []PostProcessor
}

func (s Sequence) Process(enc, pair *encoding.Encoding, addSpecialTokens bool) *encoding.Encoding {
	for _, p := range s.Processors {
		enc = p.Process(enc, pair, addSpecialTokens)
	}
	return enc
}
