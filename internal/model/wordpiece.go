package model

import (
	"fmt"

	"github.com/lexigraph/tokenizer/internal/normstring"
	"github.com/lexigraph/tokenizer/internal/pretok"
)

// WordPiece implements greedy longest-match-from-left tokenization (spec
// §4.4): repeatedly take the longest vocabulary prefix of the remaining
// text (prefixing ContinuingSubwordPrefix onto every piece after the
// first), falling back to a single UnkToken for the whole word if any
// position can't be matched at all.
type WordPiece struct {
	Vocab  map[string]int
	VocabR map[int]string

	UnkToken                string
	ContinuingSubwordPrefix string
	MaxInputCharsPerWord    int

	cache wordCache
}

// NewWordPiece builds a WordPiece model. maxInputChars <= 0 means no limit;
// cacheSize == 0 disables caching.
func NewWordPiece(vocab map[string]int, unkToken, continuingSubwordPrefix string, maxInputChars, cacheSize int) *WordPiece {
	vocabR := make(map[int]string, len(vocab))
	for tok, id := range vocab {
		vocabR[id] = tok
	}
	w := &WordPiece{
		Vocab:                   vocab,
		VocabR:                  vocabR,
		UnkToken:                unkToken,
		ContinuingSubwordPrefix: continuingSubwordPrefix,
		MaxInputCharsPerWord:    maxInputChars,
	}
	if cacheSize != 0 {
		w.cache = newLRUWordCache(cacheSize)
	}
	return w
}

// Tokenize runs the greedy longest-match algorithm over one pre-token.
func (w *WordPiece) Tokenize(text string) ([]pretok.Token, error) {
	if text == "" {
		return nil, nil
	}
	if w.cache != nil {
		if cached, ok := w.cache.Get(text); ok {
			return cached, nil
		}
	}

	runes := []rune(text)
	if w.MaxInputCharsPerWord > 0 && len(runes) > w.MaxInputCharsPerWord {
		unkID, ok := w.Vocab[w.UnkToken]
		if !ok {
			return nil, fmt.Errorf("model: wordpiece: unk_token %q not in vocabulary", w.UnkToken)
		}
		tok := []pretok.Token{{ID: unkID, Value: w.UnkToken, Offsets: normstring.ByteRange{Start: 0, End: len(text)}}}
		if w.cache != nil {
			w.cache.Put(text, tok)
		}
		return tok, nil
	}

	byteOf := runeByteOffsets(runes)
	var tokens []pretok.Token
	start := 0
	for start < len(runes) {
		end := len(runes)
		var piece string
		found := false
		for end > start {
			sub := string(runes[start:end])
			if start > 0 && w.ContinuingSubwordPrefix != "" {
				sub = w.ContinuingSubwordPrefix + sub
			}
			if _, ok := w.Vocab[sub]; ok {
				piece = sub
				found = true
				break
			}
			end--
		}
		if !found {
			unkID, ok := w.Vocab[w.UnkToken]
			if !ok {
				return nil, fmt.Errorf("model: wordpiece: unk_token %q not in vocabulary", w.UnkToken)
			}
			tok := []pretok.Token{{ID: unkID, Value: w.UnkToken, Offsets: normstring.ByteRange{Start: 0, End: len(text)}}}
			if w.cache != nil {
				w.cache.Put(text, tok)
			}
			return tok, nil
		}
		id := w.Vocab[piece]
		tokens = append(tokens, pretok.Token{ID: id, Value: piece, Offsets: normstring.ByteRange{Start: byteOf[start], End: byteOf[end]}})
		start = end
	}

	if w.cache != nil {
		w.cache.Put(text, tokens)
	}
	return tokens, nil
}

func runeByteOffsets(runes []rune) []int {
	offs := make([]int, len(runes)+1)
	b := 0
	for i, r := range runes {
		offs[i] = b
		b += utf8RuneLen(r)
	}
	offs[len(runes)] = b
	return offs
}

func utf8RuneLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}
