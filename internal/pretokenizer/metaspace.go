package pretokenizer

import "github.com/lexigraph/tokenizer/internal/pretok"

// defaultMetaspaceReplacement is the "▁" (U+2581 LOWER ONE EIGHTH BLOCK)
// glyph SentencePiece-style tokenizers use to mark word-initial spaces.
const defaultMetaspaceReplacement = '▁'

// Metaspace replaces spaces with a marker rune and folds it into the start
// of the following word, so with AddPrefixSpace set "Hello World" splits into
// "▁Hello", "▁World" (without it, the first word stays "Hello") (spec §4.3).
type Metaspace struct {
	Replacement    rune
	AddPrefixSpace bool
}

// NewMetaspace returns a Metaspace pre-tokenizer with the canonical "▁"
// replacement glyph.
func NewMetaspace(addPrefixSpace bool) Metaspace {
	return Metaspace{Replacement: defaultMetaspaceReplacement, AddPrefixSpace: addPrefixSpace}
}

func (m Metaspace) PreTokenize(p *pretok.PreTokenizedString) {
	repl := m.Replacement
	if repl == 0 {
		repl = defaultMetaspaceReplacement
	}
	if m.AddPrefixSpace {
		addPrefixSpace(p)
	}
	for _, s := range p.Splits {
		if len(s.Tokens) > 0 {
			continue
		}
		runes := append([]rune(nil), s.Normalized.Runes()...)
		for i := len(runes) - 1; i >= 0; i-- {
			if runes[i] == ' ' {
				s.Normalized.ReplaceRange(i, i+1, string(repl))
			}
		}
	}
	p.Split(splitAtMarker(repl), pretok.Isolated)
}

// splitAtMarker starts a new segment at every occurrence of marker,
// including the marker rune itself in the segment it introduces — the
// opposite convention from Removed/Isolated delimiters, so it is
// implemented directly rather than through splitByPredicate.
func splitAtMarker(marker rune) pretok.SplitFunc {
	return func(text string) []pretok.Interval {
		runes := []rune(text)
		byteOf := byteOffsets(text)
		var starts []int
		for i, r := range runes {
			if r == marker {
				starts = append(starts, i)
			}
		}
		if len(starts) == 0 {
			return []pretok.Interval{{Start: 0, End: len(text)}}
		}
		var out []pretok.Interval
		if starts[0] > 0 {
			out = append(out, pretok.Interval{Start: 0, End: byteOf[starts[0]]})
		}
		for i, s := range starts {
			end := len(runes)
			if i+1 < len(starts) {
				end = starts[i+1]
			}
			out = append(out, pretok.Interval{Start: byteOf[s], End: byteOf[end]})
		}
		return out
	}
}
