package postprocessor

import (
	"github.com/lexigraph/tokenizer/internal/encoding"
	"github.com/lexigraph/tokenizer/internal/normstring"
)

// SeqID identifies which input sequence a template's Sequence piece re-emits.
type SeqID int

const (
	SeqA SeqID = iota
	SeqB
)

// Piece is one element of a TemplateProcessing template: either a
// placeholder for one of the input sequences, or a literal special token.
type Piece struct {
	IsSpecial bool
	Sequence  SeqID  // meaningful when !IsSpecial
	Content   string // special token content; meaningful when IsSpecial
	TypeID    int
}

// SpecialTokenEntry resolves a template's special-token Content to the
// concrete (id, surface form) pairs to emit — usually one, but a "piece"
// can expand to more than one physical token.
type SpecialTokenEntry struct {
	IDs    []int
	Tokens []string
}

// TemplateProcessing inserts special tokens and stamps type_ids according to
// a pair of ordered piece templates (spec §4.6).
type TemplateProcessing struct {
	Single        []Piece
	Pair          []Piece
	SpecialTokens map[string]SpecialTokenEntry
}

func (t TemplateProcessing) Process(enc, pair *encoding.Encoding, addSpecialTokens bool) *encoding.Encoding {
	enc.SetSequenceIDs(0)
	if pair != nil {
		pair.SetSequenceIDs(0)
	}

	template := t.Single
	if pair != nil {
		template = t.Pair
	}

	out := encoding.New(0)
	for _, piece := range template {
		if piece.IsSpecial {
			if !addSpecialTokens {
				continue
			}
			entry := t.SpecialTokens[piece.Content]
			for i, id := range entry.IDs {
				out.Append(id, piece.TypeID, entry.Tokens[i], encoding.NoWord, normstring.ByteRange{}, true)
			}
			continue
		}
		src := enc
		if piece.Sequence == SeqB {
			src = pair
		}
		if src == nil {
			continue
		}
		out.Merge(src, piece.TypeID)
	}
	return out
}
