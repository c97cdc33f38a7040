// Package normalizer implements the Normalizer family (spec §4.2): text
// cleanup and Unicode normalization applied to a NormalizedString before
// pre-tokenization, each variant updating the NormalizedString's alignment
// as it mutates the text.
package normalizer

import (
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/lexigraph/tokenizer/internal/normstring"
	"github.com/lexigraph/tokenizer/internal/restring"
)

// Normalizer is the single-method polymorphic family from spec §4.2.
type Normalizer interface {
	Normalize(n *normstring.NormalizedString) *normstring.NormalizedString
}

// Func adapts a plain function to the Normalizer interface.
type Func func(*normstring.NormalizedString) *normstring.NormalizedString

func (f Func) Normalize(n *normstring.NormalizedString) *normstring.NormalizedString { return f(n) }

// Sequence composes normalizers left to right.
type Sequence struct {
	Normalizers []Normalizer
}

func (s Sequence) Normalize(n *normstring.NormalizedString) *normstring.NormalizedString {
	for _, child := range s.Normalizers {
		n = child.Normalize(n)
	}
	return n
}

// Lowercase lowercases every code point.
type Lowercase struct{}

func (Lowercase) Normalize(n *normstring.NormalizedString) *normstring.NormalizedString {
	return replaceAll(n, unicode.ToLower)
}

// Prepend inserts a fixed string at position 0 (the "add" transform).
type Prepend struct{ Content string }

func (p Prepend) Normalize(n *normstring.NormalizedString) *normstring.NormalizedString {
	if p.Content != "" {
		n.InsertAt(0, p.Content)
	}
	return n
}

// StripAccents drops Unicode category Mn (non-spacing mark) code points.
// Callers normally run this after NFD so accents have been decomposed into
// standalone combining marks.
type StripAccents struct{}

func (StripAccents) Normalize(n *normstring.NormalizedString) *normstring.NormalizedString {
	removeRunesWhere(n, func(r rune) bool { return unicode.Is(unicode.Mn, r) })
	return n
}

// Strip removes leading and/or trailing whitespace.
type Strip struct {
	Left  bool
	Right bool
}

func (s Strip) Normalize(n *normstring.NormalizedString) *normstring.NormalizedString {
	runes := n.Runes()
	start, end := 0, len(runes)
	if s.Left {
		for start < end && unicode.IsSpace(runes[start]) {
			start++
		}
	}
	if s.Right {
		for end > start && unicode.IsSpace(runes[end-1]) {
			end--
		}
	}
	if end < len(runes) {
		n.RemoveRange(end, len(runes))
	}
	if start > 0 {
		n.RemoveRange(0, start)
	}
	return n
}

// Replace substitutes every pattern occurrence with content (the "replace"
// transform, one call per match per spec §4.2).
type Replace struct {
	Pattern restring.Pattern
	Content string
}

func (r Replace) Normalize(n *normstring.NormalizedString) *normstring.NormalizedString {
	for {
		text := n.Normalized()
		matches := r.Pattern.FindAll(text)
		if len(matches) == 0 {
			return n
		}
		// Apply matches right-to-left so earlier byte offsets stay valid
		// across replacements within one pass.
		runeIdx := byteToRune(text)
		for i := len(matches) - 1; i >= 0; i-- {
			m := matches[i]
			n.ReplaceRange(runeIdx[m.Start], runeIdx[m.End], r.Content)
		}
		return n
	}
}

// NFC, NFD, NFKC, NFKD apply the corresponding Unicode normalization form.
type NFC struct{}
type NFD struct{}
type NFKC struct{}
type NFKD struct{}

func (NFC) Normalize(n *normstring.NormalizedString) *normstring.NormalizedString {
	return applyForm(n, norm.NFC)
}
func (NFD) Normalize(n *normstring.NormalizedString) *normstring.NormalizedString {
	return applyForm(n, norm.NFD)
}
func (NFKC) Normalize(n *normstring.NormalizedString) *normstring.NormalizedString {
	return applyForm(n, norm.NFKC)
}
func (NFKD) Normalize(n *normstring.NormalizedString) *normstring.NormalizedString {
	return applyForm(n, norm.NFKD)
}

// applyForm runs the whole current text through the normalization form at
// once, using norm.Iter to walk it segment by segment: each segment is a
// maximal run of runes that combine under the form (a starter plus its
// trailing combining marks), which is exactly the unit composition needs to
// recognize a base+mark pair and collapse it into one precomposed rune.
// Normalizing rune-by-rune can only ever decompose, since composition
// requires seeing the base and mark together.
//
// Every segment is applied as a single ReplaceRange covering the input
// runes it consumed, so a composed (shrinking) or decomposed (growing) run
// of output runes inherits the origin of the first source rune in the
// segment, matching spec §4.1's grow/shrink rows.
func applyForm(n *normstring.NormalizedString, f norm.Form) *normstring.NormalizedString {
	text := n.Normalized()
	if text == "" {
		return n
	}
	runeAt := byteToRune(text)

	type segment struct {
		startRune, endRune int
		in, out            string
	}
	var segments []segment

	var it norm.Iter
	it.InitString(f, text)
	pos := it.Pos()
	for !it.Done() {
		out := it.Next()
		newPos := it.Pos()
		segments = append(segments, segment{
			startRune: runeAt[pos],
			endRune:   runeAt[newPos],
			in:        text[pos:newPos],
			out:       string(out),
		})
		pos = newPos
	}

	// Apply back-to-front so indices into the still-unmodified prefix
	// remain valid.
	for i := len(segments) - 1; i >= 0; i-- {
		s := segments[i]
		if s.out != s.in {
			n.ReplaceRange(s.startRune, s.endRune, s.out)
		}
	}
	return n
}

func replaceAll(n *normstring.NormalizedString, f func(rune) rune) *normstring.NormalizedString {
	runes := n.Runes()
	for i := len(runes) - 1; i >= 0; i-- {
		mapped := f(runes[i])
		if mapped != runes[i] {
			n.ReplaceRange(i, i+1, string(mapped))
		}
	}
	return n
}

func removeRunesWhere(n *normstring.NormalizedString, pred func(rune) bool) {
	runes := n.Runes()
	for i := len(runes) - 1; i >= 0; i-- {
		if pred(runes[i]) {
			n.RemoveRange(i, i+1)
		}
	}
}

func byteToRune(text string) map[int]int {
	m := make(map[int]int, len(text)+1)
	idx, byteOff := 0, 0
	for _, r := range text {
		m[byteOff] = idx
		byteOff += len(string(r))
		idx++
	}
	m[byteOff] = idx
	return m
}
