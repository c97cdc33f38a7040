package model

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/lexigraph/tokenizer/internal/normstring"
	"github.com/lexigraph/tokenizer/internal/pretok"
)

// BPE implements byte-pair-encoding tokenization (spec §4.5): repeatedly
// merge the highest-ranked adjacent pair in a word until no ranked pair
// remains, per the vocabulary's frozen merge list.
type BPE struct {
	Vocab  map[string]int
	VocabR map[int]string

	merges map[pairKey]mergeRule

	UnkToken                string
	ContinuingSubwordPrefix string
	EndOfWordSuffix         string
	Dropout                 float64
	FuseUnk                 bool
	ByteFallback            bool
	IgnoreMerges            bool

	cache wordCache
	rng   func() float64
}

// MergeRule is one ordered (pair, rank) entry as read from a merges list,
// where rank is the entry's position (lower merges first).
type MergeRule struct {
	Left, Right string
	Rank        int
}

// NewBPE builds a BPE model from a vocabulary and ordered merge list. cacheSize
// of 0 disables caching (useful for dropout-enabled instances, where caching
// a stochastic result would make it deterministic after the first hit).
func NewBPE(vocab map[string]int, merges []MergeRule, cacheSize int) (*BPE, error) {
	vocabR := make(map[int]string, len(vocab))
	for tok, id := range vocab {
		vocabR[id] = tok
	}
	m := make(map[pairKey]mergeRule, len(merges))
	for i, r := range merges {
		leftID, ok := vocab[r.Left]
		if !ok {
			return nil, fmt.Errorf("model: bpe merge %q+%q: left piece not in vocabulary", r.Left, r.Right)
		}
		rightID, ok := vocab[r.Right]
		if !ok {
			return nil, fmt.Errorf("model: bpe merge %q+%q: right piece not in vocabulary", r.Left, r.Right)
		}
		result := r.Left + r.Right
		resultID, ok := vocab[result]
		if !ok {
			return nil, fmt.Errorf("model: bpe merge %q+%q: merged piece %q not in vocabulary", r.Left, r.Right, result)
		}
		m[pairKey{left: leftID, right: rightID}] = mergeRule{rank: i, resultID: resultID, result: result}
	}
	b := &BPE{Vocab: vocab, VocabR: vocabR, merges: m, rng: rand.Float64}
	if cacheSize != 0 {
		b.cache = newLRUWordCache(cacheSize)
	}
	return b, nil
}

// Tokenize runs the BPE algorithm over one pre-token, returning vocabulary
// Tokens with offsets relative to text's own start.
func (b *BPE) Tokenize(text string) ([]pretok.Token, error) {
	if text == "" {
		return nil, nil
	}
	if b.IgnoreMerges {
		if id, ok := b.Vocab[text]; ok {
			return []pretok.Token{{ID: id, Value: text, Offsets: byteRange(0, len(text))}}, nil
		}
	}
	if b.cache != nil {
		if cached, ok := b.cache.Get(text); ok {
			return cached, nil
		}
	}

	w := b.buildWord(text)
	dropout := b.Dropout
	if b.cache != nil {
		dropout = 0 // a cached result must be reproducible; see NewBPE cacheSize note
	}
	mergeAll(w, b.merges, dropout, b.rng)

	tokens, err := b.wordToTokens(w)
	if err != nil {
		return nil, err
	}
	if b.cache != nil {
		b.cache.Put(text, tokens)
	}
	return tokens, nil
}

// buildWord constructs the initial per-symbol chain, applying
// continuing_subword_prefix/end_of_word_suffix decoration and resolving
// each symbol's starting vocabulary id (falling back under byte_fallback to
// the rune's hex byte form, e.g. "<0xE2><0x82><0xAC>", looked up as one
// vocabulary entry, or leaving id -1 for the caller to treat as unknown).
// A multi-byte rune is not split into one symbol per byte. Each symbol's
// len stays the byte length of its undecorated rune, so token offsets
// cover only the split's own text.
func (b *BPE) buildWord(text string) *word {
	w := newWord(text)
	n := len(w.symbols)
	for i := range w.symbols {
		s := &w.symbols[i]
		piece := s.text
		if b.ContinuingSubwordPrefix != "" && i > 0 {
			piece = b.ContinuingSubwordPrefix + piece
		}
		if b.EndOfWordSuffix != "" && i == n-1 {
			piece = piece + b.EndOfWordSuffix
		}
		if id, ok := b.Vocab[piece]; ok {
			s.id = id
			s.text = piece
			continue
		}
		if b.ByteFallback {
			if id, ok := b.Vocab[byteFallbackToken(s.text)]; ok {
				s.id = id
				s.text = byteFallbackToken(s.text)
				continue
			}
		}
		s.id = -1 // unknown; resolved against UnkToken in wordToTokens
	}
	return w
}

func byteFallbackToken(piece string) string {
	var sb strings.Builder
	for i := 0; i < len(piece); i++ {
		fmt.Fprintf(&sb, "<0x%02X>", piece[i])
	}
	return sb.String()
}

// wordToTokens converts a merged chain into Tokens with byte offsets into
// text, resolving unknown symbols to UnkToken and optionally fusing runs of
// consecutive unknowns into a single token (FuseUnk).
func (b *BPE) wordToTokens(w *word) ([]pretok.Token, error) {
	symbols := w.flatten()
	tokens := make([]pretok.Token, 0, len(symbols))
	pos := 0
	for i := 0; i < len(symbols); i++ {
		s := symbols[i]
		if s.id == -1 {
			if b.UnkToken == "" {
				return nil, fmt.Errorf("model: bpe: no vocabulary entry for %q and no unk_token configured", s.text)
			}
			unkID, ok := b.Vocab[b.UnkToken]
			if !ok {
				return nil, fmt.Errorf("model: bpe: unk_token %q not in vocabulary", b.UnkToken)
			}
			start := pos
			end := pos + s.len
			if b.FuseUnk {
				for i+1 < len(symbols) && symbols[i+1].id == -1 {
					i++
					end += symbols[i].len
				}
			}
			tokens = append(tokens, pretok.Token{ID: unkID, Value: b.UnkToken, Offsets: byteRange(start, end)})
			pos = end
			continue
		}
		tokens = append(tokens, pretok.Token{ID: s.id, Value: s.text, Offsets: byteRange(pos, pos+s.len)})
		pos += s.len
	}
	return tokens, nil
}

func byteRange(start, end int) normstring.ByteRange {
	return normstring.ByteRange{Start: start, End: end}
}
