// Package addedvocab implements AddedVocabulary (spec §4.7): user-added and
// special tokens that must be recognized and pulled out of the input text
// before normalization and pre-tokenization ever see it, regardless of what
// those stages would otherwise have done with the same characters.
package addedvocab

import (
	"github.com/lexigraph/tokenizer/internal/normalizer"
	"github.com/lexigraph/tokenizer/internal/normstring"
	"github.com/lexigraph/tokenizer/internal/pretok"
)

// AddedToken is one entry in the added vocabulary.
type AddedToken struct {
	ID         int
	Content    string
	SingleWord bool // only match at a word boundary
	LStrip     bool // absorb whitespace immediately before the match into it
	RStrip     bool // absorb whitespace immediately after the match into it
	Normalized bool // match against normalized text instead of raw input
	Special    bool
}

// AddedVocabulary holds the added tokens, split into a trie matched against
// raw input (Normalized == false) and a trie matched against normalized text
// (Normalized == true). Where multiple added tokens could match at a
// position, the longest one wins — confirmed against original_source, which
// is not first-match or insertion-order.
type AddedVocabulary struct {
	byContent map[string]*AddedToken
	rawTrie   *trieNode
	normTrie  *trieNode
}

func New() *AddedVocabulary {
	return &AddedVocabulary{
		byContent: make(map[string]*AddedToken),
		rawTrie:   newTrieNode(),
		normTrie:  newTrieNode(),
	}
}

// Add registers tokens, returning the ones not already present (by content).
func (av *AddedVocabulary) Add(tokens []AddedToken, norm normalizer.Normalizer) []AddedToken {
	var added []AddedToken
	for i := range tokens {
		tok := tokens[i]
		if _, exists := av.byContent[tok.Content]; exists {
			continue
		}
		stored := tok
		av.byContent[tok.Content] = &stored
		if tok.Normalized && norm != nil {
			av.normTrie.insert([]rune(normalizeLiteral(norm, tok.Content)), &stored)
		} else {
			av.rawTrie.insert([]rune(tok.Content), &stored)
		}
		added = append(added, tok)
	}
	return added
}

// Token looks up an added token by its exact content.
func (av *AddedVocabulary) Token(content string) (AddedToken, bool) {
	tok, ok := av.byContent[content]
	if !ok {
		return AddedToken{}, false
	}
	return *tok, true
}

// ExtractAndNormalize builds the initial PreTokenizedString for text: raw
// added tokens are found first (against the untouched input), then every
// remaining span is normalized and searched again for normalized added
// tokens, matching original_source's two-pass structure.
func (av *AddedVocabulary) ExtractAndNormalize(norm normalizer.Normalizer, text string) *pretok.PreTokenizedString {
	p := pretok.New(normstring.New(text))

	applyTrie(p, av.rawTrie)

	for _, s := range p.Splits {
		if s.Origin == pretok.OriginAdded || norm == nil {
			continue
		}
		s.Normalized = norm.Normalize(s.Normalized)
	}

	applyTrie(p, av.normTrie)
	return p
}

// applyTrie replaces every not-yet-resolved Split in p with the pieces
// t's longest-match scan produces over that Split's current text, assigning
// Tokens directly to matched pieces rather than re-deriving them from text
// afterward (lstrip/rstrip mean a matched span's text can include absorbed
// whitespace the token's own Value does not).
func applyTrie(p *pretok.PreTokenizedString, t *trieNode) {
	var next []*pretok.Split
	for _, s := range p.Splits {
		if len(s.Tokens) > 0 || s.Origin == pretok.OriginAdded {
			next = append(next, s)
			continue
		}
		runes := s.Normalized.Runes()
		matches := scanMatches(t, runes)
		if len(matches) == 0 {
			next = append(next, s)
			continue
		}
		last := 0
		for _, m := range matches {
			if m.start > last {
				next = append(next, subSplit(s, last, m.start))
			}
			sub := subSplit(s, m.start, m.end)
			sub.Origin = pretok.OriginAdded
			sub.Tokens = []pretok.Token{{ID: m.tok.ID, Value: m.tok.Content, Offsets: normstring.ByteRange{Start: 0, End: len(sub.Text())}}}
			next = append(next, sub)
			last = m.end
		}
		if last < len(runes) {
			next = append(next, subSplit(s, last, len(runes)))
		}
	}
	p.Splits = next
}

// subSplit carves runes [runeStart, runeEnd) of s out into its own Split,
// offset relative to p's containing normalized text.
func subSplit(s *pretok.Split, runeStart, runeEnd int) *pretok.Split {
	sub := s.Normalized.Slice(runeStart, runeEnd)
	byteStart := s.Offsets.Start
	if runeStart > 0 {
		byteStart += s.Normalized.RuneByteRange(runeStart).Start
	}
	byteEnd := s.Offsets.Start + len(s.Normalized.Normalized())
	if runeEnd < len(s.Normalized.Runes()) {
		byteEnd = s.Offsets.Start + s.Normalized.RuneByteRange(runeEnd).Start
	}
	return &pretok.Split{
		Normalized: sub,
		Offsets:    normstring.ByteRange{Start: byteStart, End: byteEnd},
	}
}

func normalizeLiteral(norm normalizer.Normalizer, s string) string {
	return norm.Normalize(normstring.New(s)).Normalized()
}
