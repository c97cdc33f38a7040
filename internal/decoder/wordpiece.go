package decoder

import "strings"

// WordPieceDecoder reverses WordPiece's continuing_subword_prefix: the first
// token of the sequence is left alone, every later token has its prefix stripped
// (or, if absent, gets a leading space so it rejoins as a new word). Cleanup
// then undoes the common "token boundary" spacing artifacts BERT-style
// tokenizers leave around punctuation.
type WordPieceDecoder struct {
	Prefix  string
	Cleanup bool
}

func (w WordPieceDecoder) DecodeChain(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if i == 0 {
			out[i] = tok
			continue
		}
		if w.Prefix != "" && strings.HasPrefix(tok, w.Prefix) {
			out[i] = strings.TrimPrefix(tok, w.Prefix)
		} else {
			out[i] = " " + tok
		}
	}
	if w.Cleanup {
		for i, tok := range out {
			out[i] = cleanupWordPiece(tok)
		}
	}
	return out
}

// cleanupWordPiece undoes the detokenization spacing artifacts BERT's
// WordPiece tokenizer leaves around punctuation, per the canonical
// replacement list (WordPieceDecoderTest.Cleanup in the reference tests).
func cleanupWordPiece(s string) string {
	s = strings.ReplaceAll(s, " .", ".")
	s = strings.ReplaceAll(s, " ?", "?")
	s = strings.ReplaceAll(s, " !", "!")
	s = strings.ReplaceAll(s, " ,", ",")
	s = strings.ReplaceAll(s, " ' ", "'")
	s = strings.ReplaceAll(s, " n't", "n't")
	s = strings.ReplaceAll(s, " 'm", "'m")
	s = strings.ReplaceAll(s, " do not", " don't")
	s = strings.ReplaceAll(s, " 's", "'s")
	s = strings.ReplaceAll(s, " 've", "'ve")
	s = strings.ReplaceAll(s, " 're", "'re")
	return s
}
