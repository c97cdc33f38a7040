// Package model implements the Model stage of the tokenization pipeline
// (spec §4.4, §4.5): turning one pre-tokenized Split's text into a sequence
// of vocabulary Tokens. WordPiece and BPE are the two concrete strategies.
package model

import "github.com/lexigraph/tokenizer/internal/pretok"

// Model is the single-method polymorphic family consumed by the tokenizer
// facade: given one pre-token's text, produce the vocabulary Tokens it
// decomposes into, offsets relative to that text's own start.
type Model interface {
	Tokenize(text string) ([]pretok.Token, error)
}
