package pretokenizer

import (
	"github.com/lexigraph/tokenizer/internal/pretok"
	"github.com/lexigraph/tokenizer/internal/restring"
)

// Split is the general regex-driven pre-tokenizer: every Pattern match (or,
// if Invert is set, every non-match) becomes a delimiter, handled per
// Behavior (spec §4.3).
type Split struct {
	Pattern  restring.Pattern
	Behavior pretok.Behavior
	Invert   bool
}

func (s Split) PreTokenize(p *pretok.PreTokenizedString) {
	p.Split(s.splitFunc(), s.Behavior)
}

func (s Split) splitFunc() pretok.SplitFunc {
	return func(text string) []pretok.Interval {
		matches := s.Pattern.FindAll(text)
		var out []pretok.Interval
		last := 0
		for _, m := range matches {
			if m.Start > last {
				out = append(out, pretok.Interval{Start: last, End: m.Start, IsMatch: s.Invert})
			}
			if m.End > m.Start {
				out = append(out, pretok.Interval{Start: m.Start, End: m.End, IsMatch: !s.Invert})
			}
			last = m.End
		}
		if last < len(text) {
			out = append(out, pretok.Interval{Start: last, End: len(text), IsMatch: s.Invert})
		}
		return out
	}
}
