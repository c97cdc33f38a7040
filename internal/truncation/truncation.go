// Package truncation implements Truncation and Padding (spec §4.9): the
// length-shaping pass applied to an Encoding after the Model and
// PostProcessor stages.
package truncation

import (
	"github.com/lexigraph/tokenizer/internal/encoding"
	"github.com/lexigraph/tokenizer/internal/normstring"
)

// Direction is shared by Truncation and Padding.
type Direction int

const (
	Right Direction = iota
	Left
)

// Strategy selects which sequence(s) a multi-sequence Truncation may shorten.
type Strategy int

const (
	LongestFirst Strategy = iota
	OnlyFirst
	OnlySecond
)

// Truncation shortens an Encoding (which may already carry a pair merged
// into it by a PostProcessor, or be truncated before pairing — callers
// decide) to MaxLength, stashing the cut-off remainder as Overflowing
// entries with Stride tokens of repeated context between consecutive parts.
type Truncation struct {
	Direction Direction
	Strategy  Strategy
	MaxLength int
	Stride    int
}

// Truncate shortens enc per the configured strategy. Ported directly from
// the reference truncate()/truncate_encoding() pair: MaxLength == 0 means
// "drop everything past zero, no primary content kept, no overflow window";
// otherwise only LongestFirst and OnlyFirst produce a truncated result here
// (OnlySecond needs a second sequence and is applied by the caller against
// the pair's own Encoding, not this one).
func (t Truncation) Truncate(enc *encoding.Encoding) *encoding.Encoding {
	if t.MaxLength == 0 {
		return truncate(enc, 0, t.Stride, t.Direction)
	}
	if enc.Len() <= t.MaxLength {
		return enc
	}
	toRemove := enc.Len() - t.MaxLength
	switch t.Strategy {
	case LongestFirst:
		return truncate(enc, enc.Len()-toRemove, t.Stride, t.Direction)
	case OnlyFirst:
		if enc.Len() > toRemove {
			return truncate(enc, t.MaxLength, t.Stride, t.Direction)
		}
	}
	return enc
}

// TruncatePair applies a two-sequence LongestFirst/OnlyFirst/OnlySecond
// truncation to a sequence pair, each still a separate Encoding (before a
// PostProcessor merges them). LongestFirst alternates removing from whichever
// of the two is currently longer so both end up as close to equal length as
// the budget allows; OnlyFirst/OnlySecond only ever shorten their named side.
func (t Truncation) TruncatePair(a, b *encoding.Encoding) (*encoding.Encoding, *encoding.Encoding) {
	total := a.Len() + b.Len()
	if total <= t.MaxLength {
		return a, b
	}
	toRemove := total - t.MaxLength

	switch t.Strategy {
	case OnlyFirst:
		if a.Len() >= toRemove {
			return truncate(a, a.Len()-toRemove, t.Stride, t.Direction), b
		}
		return truncate(a, 0, t.Stride, t.Direction), b
	case OnlySecond:
		if b.Len() >= toRemove {
			return a, truncate(b, b.Len()-toRemove, t.Stride, t.Direction)
		}
		return a, truncate(b, 0, t.Stride, t.Direction)
	default: // LongestFirst
		for i := 0; i < toRemove; i++ {
			if a.Len() >= b.Len() && a.Len() > 0 {
				a = truncate(a, a.Len()-1, t.Stride, t.Direction)
			} else if b.Len() > 0 {
				b = truncate(b, b.Len()-1, t.Stride, t.Direction)
			}
		}
		return a, b
	}
}

// truncate carves enc into max_length-sized, stride-overlapping windows from
// Direction's end, returning the primary window with the rest attached as
// Overflowing. maxLength == 0 returns an empty primary encoding with no
// overflow, matching the reference implementation's drop-everything case.
func truncate(enc *encoding.Encoding, maxLength, stride int, direction Direction) *encoding.Encoding {
	n := enc.Len()
	if maxLength >= n && maxLength != 0 {
		return enc
	}
	if maxLength == 0 {
		c := enc.Clone()
		c.IDs, c.TypeIDs, c.Tokens, c.Words, c.Offsets, c.SpecialTokensMask, c.AttentionMask =
			nil, nil, nil, nil, nil, nil, nil
		c.Overflowing = nil
		return c
	}

	offset := maxLength - stride
	if offset <= 0 {
		offset = maxLength
	}
	type window struct{ start, end int }
	var windows []window

	if direction == Right {
		end := false
		for start := 0; start < n; start += offset {
			if end {
				break
			}
			stop := start + maxLength
			if stop > n {
				stop = n
			}
			end = stop == n
			windows = append(windows, window{start, stop})
		}
	} else {
		start := false
		for last := n - 1; last >= 0; last -= offset {
			stop := last + 1
			begin := stop - maxLength
			if begin < 0 {
				begin = 0
			}
			start = begin == 0
			windows = append(windows, window{begin, stop})
			if start {
				break
			}
		}
	}
	if len(windows) == 0 {
		windows = append(windows, window{0, n})
	}

	primary := slice(enc, windows[0].start, windows[0].end)
	for _, w := range windows[1:] {
		primary.Overflowing = append(primary.Overflowing, *slice(enc, w.start, w.end))
	}
	return primary
}

func slice(enc *encoding.Encoding, start, end int) *encoding.Encoding {
	return &encoding.Encoding{
		IDs:               append([]int(nil), enc.IDs[start:end]...),
		TypeIDs:           append([]int(nil), enc.TypeIDs[start:end]...),
		Tokens:            append([]string(nil), enc.Tokens[start:end]...),
		Words:             append([]int(nil), enc.Words[start:end]...),
		Offsets:           append([]normstring.ByteRange(nil), enc.Offsets[start:end]...),
		SpecialTokensMask: append([]int(nil), enc.SpecialTokensMask[start:end]...),
		AttentionMask:     append([]int(nil), enc.AttentionMask[start:end]...),
	}
}
