package truncation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexigraph/tokenizer/internal/encoding"
	"github.com/lexigraph/tokenizer/internal/normstring"
)

func sequenceEncoding(n int) *encoding.Encoding {
	e := encoding.New(n)
	for i := 0; i < n; i++ {
		e.IDs[i] = i
		e.Tokens[i] = string(rune('a' + i))
		e.Offsets[i] = normstring.ByteRange{Start: i, End: i + 1}
	}
	return e
}

func TestTruncateRightKeepsOverflowWithStride(t *testing.T) {
	e := sequenceEncoding(10)
	tr := Truncation{Direction: Right, Strategy: LongestFirst, MaxLength: 4, Stride: 2}
	out := tr.Truncate(e)

	assert.Equal(t, []int{0, 1, 2, 3}, out.IDs)
	require.NotEmpty(t, out.Overflowing)
	// offset = maxLength - stride = 2, so the next window starts at 2.
	assert.Equal(t, []int{2, 3, 4, 5}, out.Overflowing[0].IDs)
}

func TestTruncateLeftKeepsTailAndOverflowsHead(t *testing.T) {
	e := sequenceEncoding(10)
	tr := Truncation{Direction: Left, Strategy: LongestFirst, MaxLength: 4, Stride: 0}
	out := tr.Truncate(e)

	assert.Equal(t, []int{6, 7, 8, 9}, out.IDs)
}

func TestTruncateNoopWhenAlreadyShortEnough(t *testing.T) {
	e := sequenceEncoding(3)
	tr := Truncation{Strategy: LongestFirst, MaxLength: 10}
	out := tr.Truncate(e)
	assert.Same(t, e, out)
}

func TestTruncateOnlyFirstShortensToMaxLength(t *testing.T) {
	e := sequenceEncoding(3)
	tr := Truncation{Strategy: OnlyFirst, MaxLength: 2}
	out := tr.Truncate(e)
	// toRemove=1, enc.Len()=3 > toRemove=1, so truncation proceeds to MaxLength.
	assert.Equal(t, []int{0, 1}, out.IDs)
}

func TestTruncatePairLongestFirstBalancesBothSides(t *testing.T) {
	a := sequenceEncoding(6)
	b := sequenceEncoding(4)
	tr := Truncation{Strategy: LongestFirst, MaxLength: 6}
	ra, rb := tr.TruncatePair(a, b)
	assert.Equal(t, 6, ra.Len()+rb.Len())
	// a starts longer, so it should give up tokens first until balanced.
	assert.LessOrEqual(t, ra.Len(), 4)
}

func TestTruncatePairOnlySecondLeavesFirstIntact(t *testing.T) {
	a := sequenceEncoding(5)
	b := sequenceEncoding(5)
	tr := Truncation{Strategy: OnlySecond, MaxLength: 7}
	ra, rb := tr.TruncatePair(a, b)
	assert.Equal(t, 5, ra.Len())
	assert.Equal(t, 2, rb.Len())
}

func TestPadBatchPadsToLongestOnRight(t *testing.T) {
	short := sequenceEncoding(2)
	long := sequenceEncoding(5)
	p := Padding{Direction: Right, Strategy: PadToLongest, PadID: 99, PadToken: "[PAD]"}
	p.PadBatch([]*encoding.Encoding{short, long})

	require.Equal(t, 5, short.Len())
	assert.Equal(t, []int{0, 1, 99, 99, 99}, short.IDs)
	assert.Equal(t, []string{"[PAD]", "[PAD]", "[PAD]"}, short.Tokens[2:])
	assert.Equal(t, []int{1, 1, 0, 0, 0}, short.AttentionMask)
	assert.Equal(t, []int{0, 0, 1, 1, 1}, short.SpecialTokensMask)
}

func TestPadBatchPadsOnLeft(t *testing.T) {
	short := sequenceEncoding(2)
	p := Padding{Direction: Left, Strategy: PadToFixed, FixedLength: 4, PadID: 99}
	p.PadBatch([]*encoding.Encoding{short})
	assert.Equal(t, []int{99, 99, 0, 1}, short.IDs)
}

func TestPadRoundsUpToMultipleOf(t *testing.T) {
	e := sequenceEncoding(3)
	p := Padding{Strategy: PadToFixed, FixedLength: 5, PadToMultipleOf: 4, PadID: 0}
	p.Pad(e, 5)
	assert.Equal(t, 8, e.Len())
}

func TestPadRecursesIntoOverflowing(t *testing.T) {
	e := sequenceEncoding(2)
	e.Overflowing = []encoding.Encoding{*sequenceEncoding(1)}
	p := Padding{Strategy: PadToFixed, FixedLength: 3, PadID: 0}
	p.Pad(e, 3)
	assert.Equal(t, 3, e.Len())
	assert.Equal(t, 3, e.Overflowing[0].Len())
}
