package config

import (
	"github.com/lexigraph/tokenizer/internal/addedvocab"
	"github.com/lexigraph/tokenizer/internal/normalizer"
)

// BuildAddedVocabulary constructs an AddedVocabulary from the top-level
// "added_tokens" list, registering each under the already-built Normalizer
// so its normalized trie matches post-normalization text.
func BuildAddedVocabulary(defs []AddedTokenDef, norm normalizer.Normalizer) *addedvocab.AddedVocabulary {
	av := addedvocab.New()
	tokens := make([]addedvocab.AddedToken, 0, len(defs))
	for _, d := range defs {
		tokens = append(tokens, addedvocab.AddedToken{
			ID:         d.ID,
			Content:    d.Content,
			SingleWord: d.SingleWord,
			LStrip:     d.LStrip,
			RStrip:     d.RStrip,
			Normalized: d.Normalized,
			Special:    d.Special,
		})
	}
	av.Add(tokens, norm)
	return av
}
