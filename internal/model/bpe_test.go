package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallBPEVocab() map[string]int {
	return map[string]int{
		"l": 0, "o": 1, "w": 2, "e": 3, "r": 4, "n": 5, "s": 6, "t": 7,
		"lo": 8, "low": 9, "er": 10, "est": 11, "<unk>": 12,
	}
}

func TestBPETokenizeMergesGreedily(t *testing.T) {
	vocab := smallBPEVocab()
	merges := []MergeRule{
		{Left: "l", Right: "o", Rank: 0},
		{Left: "lo", Right: "w", Rank: 1},
		{Left: "e", Right: "r", Rank: 2},
	}
	bpe, err := NewBPE(vocab, merges, 0)
	require.NoError(t, err)

	tokens, err := bpe.Tokenize("lower")
	require.NoError(t, err)

	var values []string
	for _, tok := range tokens {
		values = append(values, tok.Value)
	}
	assert.Equal(t, []string{"low", "er"}, values)
	assert.Equal(t, 0, tokens[0].Offsets.Start)
	assert.Equal(t, 3, tokens[0].Offsets.End)
	assert.Equal(t, 3, tokens[1].Offsets.Start)
	assert.Equal(t, 5, tokens[1].Offsets.End)
}

func TestBPETokenizeUnknownFallsBackToUnkToken(t *testing.T) {
	vocab := smallBPEVocab()
	bpe, err := NewBPE(vocab, nil, 0)
	require.NoError(t, err)
	bpe.UnkToken = "<unk>"

	tokens, err := bpe.Tokenize("x")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "<unk>", tokens[0].Value)
}

func TestBPEFuseUnkCoalescesConsecutiveUnknowns(t *testing.T) {
	vocab := smallBPEVocab()
	bpe, err := NewBPE(vocab, nil, 0)
	require.NoError(t, err)
	bpe.UnkToken = "<unk>"
	bpe.FuseUnk = true

	tokens, err := bpe.Tokenize("xy")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "<unk>", tokens[0].Value)
	assert.Equal(t, 0, tokens[0].Offsets.Start)
	assert.Equal(t, 2, tokens[0].Offsets.End)
}

func TestBPEByteFallbackEmitsHexTokens(t *testing.T) {
	vocab := map[string]int{"<0x78>": 0}
	bpe, err := NewBPE(vocab, nil, 0)
	require.NoError(t, err)
	bpe.ByteFallback = true

	tokens, err := bpe.Tokenize("x")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "<0x78>", tokens[0].Value)
}

func TestBPEIgnoreMergesShortCircuitsWholeWordHit(t *testing.T) {
	vocab := map[string]int{"lower": 0, "l": 1, "o": 2, "w": 3, "e": 4, "r": 5}
	merges := []MergeRule{}
	bpe, err := NewBPE(vocab, merges, 0)
	require.NoError(t, err)
	bpe.IgnoreMerges = true

	tokens, err := bpe.Tokenize("lower")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "lower", tokens[0].Value)
}

func TestBPEDropoutZeroIsDeterministic(t *testing.T) {
	vocab := smallBPEVocab()
	merges := []MergeRule{
		{Left: "l", Right: "o", Rank: 0},
		{Left: "lo", Right: "w", Rank: 1},
	}
	bpe, err := NewBPE(vocab, merges, 0)
	require.NoError(t, err)

	first, err := bpe.Tokenize("low")
	require.NoError(t, err)
	second, err := bpe.Tokenize("low")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBPECacheBypassesDropoutNondeterminism(t *testing.T) {
	vocab := smallBPEVocab()
	merges := []MergeRule{
		{Left: "l", Right: "o", Rank: 0},
		{Left: "lo", Right: "w", Rank: 1},
	}
	bpe, err := NewBPE(vocab, merges, 16)
	require.NoError(t, err)
	bpe.Dropout = 1 // would skip every merge if honored
	bpe.rng = func() float64 { return 0 }

	first, err := bpe.Tokenize("low")
	require.NoError(t, err)
	second, err := bpe.Tokenize("low")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNewBPERejectsMergeOutsideVocab(t *testing.T) {
	vocab := map[string]int{"a": 0, "b": 1}
	_, err := NewBPE(vocab, []MergeRule{{Left: "a", Right: "b", Rank: 0}}, 0)
	assert.Error(t, err)
}
