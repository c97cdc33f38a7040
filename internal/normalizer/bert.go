package normalizer

import (
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/lexigraph/tokenizer/internal/normstring"
)

// BertNormalizer is the BERT-style cleanup pipeline: clean_text,
// handle_chinese_chars, strip_accents (implied by lowercase), lowercase —
// applied in that fixed order (spec §4.2).
type BertNormalizer struct {
	CleanText          bool
	HandleChineseChars bool
	StripAccents       bool
	Lowercase          bool
}

func (b BertNormalizer) Normalize(n *normstring.NormalizedString) *normstring.NormalizedString {
	if b.CleanText {
		n = cleanText(n)
	}
	if b.HandleChineseChars {
		n = padChineseChars(n)
	}
	stripAccents := b.StripAccents || b.Lowercase
	if stripAccents {
		n = applyForm(n, norm.NFD)
		StripAccents{}.Normalize(n)
	}
	if b.Lowercase {
		Lowercase{}.Normalize(n)
	}
	return n
}

// cleanText erases code point 0, U+FFFD and C0/C1 control characters, and
// maps whitespace-class characters (space, tab, newline, carriage return,
// and anything Unicode classifies as a space separator) to a plain ASCII
// space. original_source's BertNormalizer::do_clean_text treats \t/\n/\r as
// whitespace distinctly from other control characters, which are dropped.
func cleanText(n *normstring.NormalizedString) *normstring.NormalizedString {
	runes := n.Runes()
	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i]
		switch {
		case r == 0 || r == 0xFFFD:
			n.RemoveRange(i, i+1)
		case r == '\t' || r == '\n' || r == '\r':
			if r != ' ' {
				n.ReplaceRange(i, i+1, " ")
			}
		case isControl(r):
			n.RemoveRange(i, i+1)
		case unicode.IsSpace(r):
			if r != ' ' {
				n.ReplaceRange(i, i+1, " ")
			}
		}
	}
	return n
}

func isControl(r rune) bool {
	if r == '\t' || r == '\n' || r == '\r' {
		return false
	}
	return unicode.IsControl(r)
}

// padChineseChars wraps every CJK code point with a space on each side, so
// a later whitespace-splitting PreTokenizer treats each CJK character as
// its own word (spec §4.2's CJK ranges).
func padChineseChars(n *normstring.NormalizedString) *normstring.NormalizedString {
	runes := n.Runes()
	for i := len(runes) - 1; i >= 0; i-- {
		if isChineseChar(runes[i]) {
			n.Pad(i, " ", " ")
		}
	}
	return n
}

func isChineseChar(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF,
		r >= 0x3400 && r <= 0x4DBF,
		r >= 0x20000 && r <= 0x2A6DF,
		r >= 0x2A700 && r <= 0x2B73F,
		r >= 0x2B740 && r <= 0x2B81F,
		r >= 0x2B920 && r <= 0x2CEAF,
		r >= 0xF900 && r <= 0xFAFF,
		r >= 0x2F800 && r <= 0x2FA1F:
		return true
	default:
		return false
	}
}
