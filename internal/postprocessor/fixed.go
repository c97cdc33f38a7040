package postprocessor

import "github.com/lexigraph/tokenizer/internal/encoding"

// BertProcessing wraps a single sequence as `[CLS] seq [SEP]` and a pair as
// `[CLS] seq_a [SEP] seq_b [SEP]`, the fixed BERT template.
type BertProcessing struct {
	SepID, SepContent string
	SepTokenID        int
	ClsID, ClsContent string
	ClsTokenID        int
}

func (b BertProcessing) asTemplate() TemplateProcessing {
	specials := map[string]SpecialTokenEntry{
		b.ClsContent: {IDs: []int{b.ClsTokenID}, Tokens: []string{b.ClsContent}},
		b.SepContent: {IDs: []int{b.SepTokenID}, Tokens: []string{b.SepContent}},
	}
	return TemplateProcessing{
		Single: []Piece{
			{IsSpecial: true, Content: b.ClsContent},
			{Sequence: SeqA},
			{IsSpecial: true, Content: b.SepContent},
		},
		Pair: []Piece{
			{IsSpecial: true, Content: b.ClsContent},
			{Sequence: SeqA},
			{IsSpecial: true, Content: b.SepContent},
			{Sequence: SeqB, TypeID: 1},
			{IsSpecial: true, Content: b.SepContent, TypeID: 1},
		},
		SpecialTokens: specials,
	}
}

func (b BertProcessing) Process(enc, pair *encoding.Encoding, addSpecialTokens bool) *encoding.Encoding {
	return b.asTemplate().Process(enc, pair, addSpecialTokens)
}

// RobertaProcessing is BertProcessing's RoBERTa counterpart: a pair is
// `<s> seq_a </s></s> seq_b </s>` (two separators between sequences, no
// type-id segmentation — every token stays type_id 0), plus the
// trim_offsets/add_prefix_space flags original_source carries that the
// distilled spec's template description omits.
type RobertaProcessing struct {
	SepContent, ClsContent string
	SepTokenID, ClsTokenID int
	TrimOffsets            bool
	AddPrefixSpace         bool
}

func (r RobertaProcessing) asTemplate() TemplateProcessing {
	specials := map[string]SpecialTokenEntry{
		r.ClsContent: {IDs: []int{r.ClsTokenID}, Tokens: []string{r.ClsContent}},
		r.SepContent: {IDs: []int{r.SepTokenID}, Tokens: []string{r.SepContent}},
	}
	return TemplateProcessing{
		Single: []Piece{
			{IsSpecial: true, Content: r.ClsContent},
			{Sequence: SeqA},
			{IsSpecial: true, Content: r.SepContent},
		},
		Pair: []Piece{
			{IsSpecial: true, Content: r.ClsContent},
			{Sequence: SeqA},
			{IsSpecial: true, Content: r.SepContent},
			{IsSpecial: true, Content: r.SepContent},
			{Sequence: SeqB},
			{IsSpecial: true, Content: r.SepContent},
		},
		SpecialTokens: specials,
	}
}

func (r RobertaProcessing) Process(enc, pair *encoding.Encoding, addSpecialTokens bool) *encoding.Encoding {
	out := r.asTemplate().Process(enc, pair, addSpecialTokens)
	if r.TrimOffsets {
		trimByteLevelOffsets(out, r.AddPrefixSpace)
	}
	return out
}
