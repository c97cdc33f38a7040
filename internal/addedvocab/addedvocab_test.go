package addedvocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexigraph/tokenizer/internal/normalizer"
)

func TestExtractAndNormalizeSplitsOutRawAddedTokens(t *testing.T) {
	av := New()
	av.Add([]AddedToken{{ID: 0, Content: "[CLS]"}, {ID: 1, Content: "[SEP]"}}, nil)

	p := av.ExtractAndNormalize(nil, "[CLS]hello world[SEP]")

	require.Len(t, p.Splits, 3)
	assert.Equal(t, "[CLS]", p.Splits[0].Text())
	assert.Equal(t, 0, p.Splits[0].Tokens[0].ID)
	assert.Equal(t, "hello world", p.Splits[1].Text())
	assert.Empty(t, p.Splits[1].Tokens)
	assert.Equal(t, "[SEP]", p.Splits[2].Text())
	assert.Equal(t, 1, p.Splits[2].Tokens[0].ID)
}

func TestExtractAndNormalizeLongestMatchWins(t *testing.T) {
	av := New()
	av.Add([]AddedToken{{ID: 0, Content: "a"}, {ID: 1, Content: "ab"}, {ID: 2, Content: "abc"}}, nil)

	p := av.ExtractAndNormalize(nil, "abcd")

	require.Len(t, p.Splits, 2)
	assert.Equal(t, "abc", p.Splits[0].Text())
	assert.Equal(t, 2, p.Splits[0].Tokens[0].ID)
	assert.Equal(t, "d", p.Splits[1].Text())
}

func TestExtractAndNormalizeSingleWordRejectsMidWordMatch(t *testing.T) {
	av := New()
	av.Add([]AddedToken{{ID: 0, Content: "cat", SingleWord: true}}, nil)

	p := av.ExtractAndNormalize(nil, "concatenate cat")

	var matched []string
	for _, s := range p.Splits {
		if len(s.Tokens) > 0 {
			matched = append(matched, s.Text())
		}
	}
	assert.Equal(t, []string{"cat"}, matched)
}

func TestExtractAndNormalizeLStripAbsorbsLeadingSpace(t *testing.T) {
	av := New()
	av.Add([]AddedToken{{ID: 0, Content: "[MASK]", LStrip: true}}, nil)

	p := av.ExtractAndNormalize(nil, "hello   [MASK]")

	last := p.Splits[len(p.Splits)-1]
	assert.Equal(t, "   [MASK]", last.Text())
	assert.Equal(t, "[MASK]", last.Tokens[0].Value)
}

func TestExtractAndNormalizeMatchesAgainstNormalizedContent(t *testing.T) {
	av := New()
	av.Add([]AddedToken{{ID: 0, Content: "hello", Normalized: true}}, normalizer.Lowercase{})

	p := av.ExtractAndNormalize(normalizer.Lowercase{}, "HELLO world")

	require.Len(t, p.Splits, 2)
	assert.Equal(t, 0, p.Splits[0].Tokens[0].ID)
	assert.Equal(t, " world", p.Splits[1].Text())
}
