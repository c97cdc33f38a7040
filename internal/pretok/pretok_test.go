package pretok

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexigraph/tokenizer/internal/normstring"
)

func TestNewWrapsWholeTextAsOneSplit(t *testing.T) {
	n := normstring.New("hello world")
	p := New(n)
	require.Len(t, p.Splits, 1)
	assert.Equal(t, "hello world", p.Splits[0].Text())
}

// splitOnSpaces is a minimal SplitFunc: whitespace runs are match intervals.
func splitOnSpaces(text string) []Interval {
	var out []Interval
	start := 0
	inSpace := false
	for i, r := range text {
		isSpace := unicode.IsSpace(r)
		if i == 0 {
			inSpace = isSpace
			continue
		}
		if isSpace != inSpace {
			out = append(out, Interval{Start: start, End: i, IsMatch: inSpace})
			start = i
			inSpace = isSpace
		}
	}
	out = append(out, Interval{Start: start, End: len(text), IsMatch: inSpace})
	return out
}

func TestSplitRemovedDropsMatchedDelimiters(t *testing.T) {
	p := New(normstring.New("hello world"))
	p.Split(splitOnSpaces, Removed)

	require.Len(t, p.Splits, 2)
	assert.Equal(t, "hello", p.Splits[0].Text())
	assert.Equal(t, "world", p.Splits[1].Text())
}

func TestSplitIsolatedKeepsDelimitersAsOwnSplits(t *testing.T) {
	p := New(normstring.New("hello world"))
	p.Split(splitOnSpaces, Isolated)

	require.Len(t, p.Splits, 3)
	assert.Equal(t, "hello", p.Splits[0].Text())
	assert.Equal(t, " ", p.Splits[1].Text())
	assert.Equal(t, "world", p.Splits[2].Text())
}

func TestSplitLeavesAlreadyTokenizedSplitsUntouched(t *testing.T) {
	p := New(normstring.New("hello world"))
	p.Splits[0].Tokens = []Token{{ID: 1, Value: "hello world"}}

	p.Split(splitOnSpaces, Removed)

	require.Len(t, p.Splits, 1)
	assert.Equal(t, "hello world", p.Splits[0].Text())
}

func TestSplitSubSplitsRetainOriginalOffsetAlignment(t *testing.T) {
	p := New(normstring.New("hello world"))
	p.Split(splitOnSpaces, Removed)

	// "world" starts at byte 6 in the original text.
	got := p.Splits[1].Normalized.OriginalRange(0, 5)
	assert.Equal(t, normstring.ByteRange{Start: 6, End: 11}, got)
}
