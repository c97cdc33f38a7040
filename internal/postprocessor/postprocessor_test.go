package postprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexigraph/tokenizer/internal/encoding"
	"github.com/lexigraph/tokenizer/internal/normstring"
)

func singleTokenEncoding(id int, tok string, start, end int) *encoding.Encoding {
	e := encoding.New(0)
	e.Append(id, 0, tok, 0, normstring.ByteRange{Start: start, End: end}, false)
	return e
}

func TestBertProcessingWrapsSingleSequence(t *testing.T) {
	bp := BertProcessing{ClsContent: "[CLS]", ClsTokenID: 101, SepContent: "[SEP]", SepTokenID: 102}
	enc := singleTokenEncoding(2001, "hello", 0, 5)

	out := bp.Process(enc, nil, true)

	require.Equal(t, 3, out.Len())
	assert.Equal(t, []string{"[CLS]", "hello", "[SEP]"}, out.Tokens)
	assert.Equal(t, []int{101, 2001, 102}, out.IDs)
	assert.Equal(t, []int{1, 0, 1}, out.SpecialTokensMask)
}

func TestBertProcessingSkipsSpecialTokensWhenDisabled(t *testing.T) {
	bp := BertProcessing{ClsContent: "[CLS]", ClsTokenID: 101, SepContent: "[SEP]", SepTokenID: 102}
	enc := singleTokenEncoding(2001, "hello", 0, 5)

	out := bp.Process(enc, nil, false)

	require.Equal(t, 1, out.Len())
	assert.Equal(t, []string{"hello"}, out.Tokens)
}

func TestBertProcessingPairStampsSecondSegment(t *testing.T) {
	bp := BertProcessing{ClsContent: "[CLS]", ClsTokenID: 101, SepContent: "[SEP]", SepTokenID: 102}
	a := singleTokenEncoding(2001, "hello", 0, 5)
	b := singleTokenEncoding(3001, "world", 0, 5)

	out := bp.Process(a, b, true)

	require.Equal(t, 5, out.Len())
	assert.Equal(t, []string{"[CLS]", "hello", "[SEP]", "world", "[SEP]"}, out.Tokens)
	assert.Equal(t, []int{0, 0, 0, 1, 1}, out.TypeIDs)
}

func TestRobertaProcessingPairUsesDoubleSeparator(t *testing.T) {
	rp := RobertaProcessing{ClsContent: "<s>", ClsTokenID: 0, SepContent: "</s>", SepTokenID: 2}
	a := singleTokenEncoding(10, "hello", 0, 5)
	b := singleTokenEncoding(11, "world", 0, 5)

	out := rp.Process(a, b, true)

	assert.Equal(t, []string{"<s>", "hello", "</s>", "</s>", "world", "</s>"}, out.Tokens)
	for _, id := range out.TypeIDs {
		assert.Equal(t, 0, id)
	}
}

func TestByteLevelProcessingTrimsLeadingMarkerSpace(t *testing.T) {
	enc := encoding.New(0)
	enc.Append(0, 0, "hello", 0, normstring.ByteRange{Start: 0, End: 5}, false)
	enc.Append(1, 0, "Ġworld", 0, normstring.ByteRange{Start: 5, End: 11}, false)

	proc := ByteLevelProcessing{TrimOffsets: true, AddPrefixSpace: false}
	out := proc.Process(enc, nil, true)

	assert.Equal(t, 6, out.Offsets[1].Start)
	assert.Equal(t, 11, out.Offsets[1].End)
}

func TestByteLevelProcessingKeepsFirstTokenLeadingSpaceWithoutPrefixSpace(t *testing.T) {
	enc := encoding.New(0)
	enc.Append(1, 0, "ĠĠboth", 0, normstring.ByteRange{Start: 0, End: 8}, false)

	proc := ByteLevelProcessing{TrimOffsets: true, AddPrefixSpace: false}
	out := proc.Process(enc, nil, true)

	// AddPrefixSpace is false, so no space was inserted: one leading space
	// of the first token is kept as real content and the other is trimmed.
	assert.Equal(t, 1, out.Offsets[0].Start)
}
