// Package pretok implements PreTokenizedString: the working collection of
// Splits that PreTokenizers progressively refine and the Model stage fills
// in with Tokens.
package pretok

import (
	"github.com/lexigraph/tokenizer/internal/normstring"
)

// Token is one sub-word unit produced by a Model. Offsets are relative to
// the Split that produced it, not to the original input.
type Token struct {
	ID      int
	Value   string
	Offsets normstring.ByteRange
	// An AddedVocabulary pre-assigned token (in an OriginAdded Split)
	// never gets a "word index" of its own further down the pipeline: the
	// facade gives it encoding.NoWord.
}

// SplitOrigin distinguishes a Split carved out of an already-matched
// AddedVocabulary occurrence (whose Tokens are pre-assigned and must not be
// touched by PreTokenizer/Model stages) from ordinary text.
type SplitOrigin int

const (
	OriginNormal SplitOrigin = iota
	OriginAdded
)

// Split is one contiguous piece of the (post-normalization) text: its own
// NormalizedString, its byte offsets into the containing PreTokenizedString,
// and — once the Model stage has run — the Tokens it tokenized to.
type Split struct {
	Normalized *normstring.NormalizedString
	Offsets    normstring.ByteRange // into the containing PreTokenizedString's normalized text
	Tokens     []Token
	Origin     SplitOrigin
}

// Text returns the split's current normalized text.
func (s *Split) Text() string { return s.Normalized.Normalized() }

// PreTokenizedString is the normalized text plus the current partition of
// it into Splits. It starts life as a single Split spanning the whole text.
type PreTokenizedString struct {
	Normalized *normstring.NormalizedString
	Splits     []*Split
}

// New wraps a NormalizedString as a single initial Split.
func New(normalized *normstring.NormalizedString) *PreTokenizedString {
	return &PreTokenizedString{
		Normalized: normalized,
		Splits: []*Split{{
			Normalized: normalized,
			Offsets:    normstring.ByteRange{Start: 0, End: len(normalized.Normalized())},
		}},
	}
}

// Behavior controls how split() treats delimiter matches.
type Behavior int

const (
	// Removed drops matched spans, keeping only the non-matching pieces.
	Removed Behavior = iota
	// Isolated keeps both matching and non-matching spans, each its own Split.
	Isolated
)

// Interval is one ((start,end), isMatch) tile returned by a SplitFunc; start
// and end are byte offsets into the Split's normalized text.
type Interval struct {
	Start, End int
	IsMatch    bool
}

// SplitFunc tiles a string into an ordered, contiguous, non-overlapping
// sequence of Intervals covering it exactly.
type SplitFunc func(text string) []Interval

// Split replaces every Split whose Tokens list is still empty with the
// sub-Splits split_fn produces for it, honoring Behavior. Splits that
// already carry Tokens (AddedVocabulary pre-assignments) are left untouched.
func (p *PreTokenizedString) Split(splitFn SplitFunc, behavior Behavior) {
	var next []*Split
	for _, s := range p.Splits {
		if len(s.Tokens) > 0 || s.Origin == OriginAdded {
			next = append(next, s)
			continue
		}
		text := s.Text()
		intervals := splitFn(text)
		runeStarts := byteToRuneIndex(text)
		for _, iv := range intervals {
			if iv.IsMatch && behavior == Removed {
				continue
			}
			if iv.Start == iv.End {
				continue
			}
			rs, re := runeStarts[iv.Start], runeStarts[iv.End]
			sub := s.Normalized.Slice(rs, re)
			next = append(next, &Split{
				Normalized: sub,
				Offsets:    normstring.ByteRange{Start: s.Offsets.Start + iv.Start, End: s.Offsets.Start + iv.End},
			})
		}
	}
	p.Splits = next
}

// byteToRuneIndex returns, for every byte offset 0..len(text) that falls on
// a rune boundary, the corresponding rune index. Byte offsets produced by a
// SplitFunc are always rune boundaries since they tile a Go string's runes.
func byteToRuneIndex(text string) map[int]int {
	m := make(map[int]int, len(text)+1)
	idx := 0
	byteOff := 0
	for _, r := range text {
		m[byteOff] = idx
		byteOff += runeLen(r)
		idx++
	}
	m[byteOff] = idx
	return m
}

func runeLen(r rune) int {
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
