// Package pretokenizer implements the PreTokenizer family (spec §4.3):
// splitting a PreTokenizedString's Splits further, down to words/pieces,
// using the shared split() primitive from package pretok.
package pretokenizer

import (
	"unicode"

	"github.com/lexigraph/tokenizer/internal/pretok"
)

// PreTokenizer is the single-method polymorphic family from spec §4.3.
type PreTokenizer interface {
	PreTokenize(p *pretok.PreTokenizedString)
}

// Sequence composes pre-tokenizers left to right.
type Sequence struct {
	PreTokenizers []PreTokenizer
}

func (s Sequence) PreTokenize(p *pretok.PreTokenizedString) {
	for _, child := range s.PreTokenizers {
		child.PreTokenize(p)
	}
}

// WhitespaceSplit splits on runs of Unicode whitespace, dropping them.
type WhitespaceSplit struct{}

func (WhitespaceSplit) PreTokenize(p *pretok.PreTokenizedString) {
	p.Split(splitByPredicate(unicode.IsSpace), pretok.Removed)
}

// Whitespace splits on the word-boundary pattern `\w+|[^\w\s]+`: runs of
// "word" characters (letters, digits, underscore) and runs of non-word,
// non-space characters each become their own Split; whitespace is dropped.
type Whitespace struct{}

func (Whitespace) PreTokenize(p *pretok.PreTokenizedString) {
	p.Split(splitWhitespaceWord, pretok.Removed)
}

func splitWhitespaceWord(text string) []pretok.Interval {
	var out []pretok.Interval
	runes := []rune(text)
	byteOf := byteOffsets(text)
	i := 0
	classOf := func(r rune) int {
		switch {
		case unicode.IsSpace(r):
			return 0
		case isWordRune(r):
			return 1
		default:
			return 2
		}
	}
	for i < len(runes) {
		cls := classOf(runes[i])
		j := i + 1
		for j < len(runes) && classOf(runes[j]) == cls {
			j++
		}
		out = append(out, pretok.Interval{Start: byteOf[i], End: byteOf[j], IsMatch: cls == 0})
		i = j
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Punctuation isolates every Unicode punctuation code point as its own
// Split, leaving runs of non-punctuation text as the surrounding Splits.
type Punctuation struct{}

func (Punctuation) PreTokenize(p *pretok.PreTokenizedString) {
	p.Split(splitIsolateRunes(unicode.IsPunct), pretok.Isolated)
}

// BertPreTokenizer splits on whitespace (removed) then isolates punctuation.
type BertPreTokenizer struct{}

func (BertPreTokenizer) PreTokenize(p *pretok.PreTokenizedString) {
	WhitespaceSplit{}.PreTokenize(p)
	Punctuation{}.PreTokenize(p)
}

// Digits splits runs of decimal digits into their own Splits. If
// IndividualDigits is set, each digit becomes its own Split.
type Digits struct {
	IndividualDigits bool
}

func (d Digits) PreTokenize(p *pretok.PreTokenizedString) {
	if d.IndividualDigits {
		p.Split(splitIsolateRunes(unicode.IsDigit), pretok.Isolated)
		return
	}
	p.Split(splitByPredicate(unicode.IsDigit), pretok.Isolated)
}

// CharDelimiterSplit splits on every occurrence of a single delimiter rune,
// which is dropped.
type CharDelimiterSplit struct {
	Delimiter rune
}

func (c CharDelimiterSplit) PreTokenize(p *pretok.PreTokenizedString) {
	p.Split(splitByPredicate(func(r rune) bool { return r == c.Delimiter }), pretok.Removed)
}

// UnicodeScripts splits whenever the Unicode script of the current run
// changes (e.g. separating Han from Latin text without relying on
// whitespace).
type UnicodeScripts struct{}

func (UnicodeScripts) PreTokenize(p *pretok.PreTokenizedString) {
	p.Split(splitByScript, pretok.Isolated)
}

func splitByScript(text string) []pretok.Interval {
	var out []pretok.Interval
	runes := []rune(text)
	byteOf := byteOffsets(text)
	if len(runes) == 0 {
		return nil
	}
	i := 0
	for i < len(runes) {
		s := scriptOf(runes[i])
		j := i + 1
		for j < len(runes) && (scriptOf(runes[j]) == s || unicode.IsSpace(runes[j])) {
			j++
		}
		out = append(out, pretok.Interval{Start: byteOf[i], End: byteOf[j]})
		i = j
	}
	return out
}

func scriptOf(r rune) string {
	for name, table := range unicode.Scripts {
		if unicode.Is(table, r) {
			return name
		}
	}
	return ""
}

// splitByPredicate groups runs of runes matching pred into "match"
// intervals and everything else into non-match intervals.
func splitByPredicate(pred func(rune) bool) pretok.SplitFunc {
	return func(text string) []pretok.Interval {
		var out []pretok.Interval
		runes := []rune(text)
		byteOf := byteOffsets(text)
		i := 0
		for i < len(runes) {
			m := pred(runes[i])
			j := i + 1
			for j < len(runes) && pred(runes[j]) == m {
				j++
			}
			out = append(out, pretok.Interval{Start: byteOf[i], End: byteOf[j], IsMatch: m})
			i = j
		}
		return out
	}
}

// splitIsolateRunes isolates every individual rune matching pred into its
// own single-rune interval, leaving runs of non-matching runes grouped.
func splitIsolateRunes(pred func(rune) bool) pretok.SplitFunc {
	return func(text string) []pretok.Interval {
		var out []pretok.Interval
		runes := []rune(text)
		byteOf := byteOffsets(text)
		i := 0
		for i < len(runes) {
			if pred(runes[i]) {
				out = append(out, pretok.Interval{Start: byteOf[i], End: byteOf[i+1], IsMatch: true})
				i++
				continue
			}
			j := i + 1
			for j < len(runes) && !pred(runes[j]) {
				j++
			}
			out = append(out, pretok.Interval{Start: byteOf[i], End: byteOf[j]})
			i = j
		}
		return out
	}
}

// byteOffsets returns, for each rune index 0..len(runes), the byte offset
// of that rune's start (with one trailing entry for the end of text).
func byteOffsets(text string) []int {
	offs := make([]int, 0, len(text)+1)
	b := 0
	for _, r := range text {
		offs = append(offs, b)
		b += utf8Len(r)
	}
	offs = append(offs, b)
	return offs
}

func utf8Len(r rune) int {
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
