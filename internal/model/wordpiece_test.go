package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallWordPieceVocab() map[string]int {
	return map[string]int{
		"un":     0,
		"##aff":  1,
		"##able": 2,
		"[UNK]":  3,
	}
}

func TestWordPieceTokenizeGreedyLongestMatch(t *testing.T) {
	w := NewWordPiece(smallWordPieceVocab(), "[UNK]", "##", 0, 0)

	tokens, err := w.Tokenize("unaffable")
	require.NoError(t, err)

	var values []string
	for _, tok := range tokens {
		values = append(values, tok.Value)
	}
	assert.Equal(t, []string{"un", "##aff", "##able"}, values)
	assert.Equal(t, 0, tokens[0].Offsets.Start)
	assert.Equal(t, 2, tokens[0].Offsets.End)
	assert.Equal(t, 9, tokens[2].Offsets.End)
}

func TestWordPieceTokenizeFallsBackToUnkWhenNoPrefixMatches(t *testing.T) {
	w := NewWordPiece(smallWordPieceVocab(), "[UNK]", "##", 0, 0)

	tokens, err := w.Tokenize("xyz")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "[UNK]", tokens[0].Value)
	assert.Equal(t, 0, tokens[0].Offsets.Start)
	assert.Equal(t, 3, tokens[0].Offsets.End)
}

func TestWordPieceTokenizeRespectsMaxInputCharsPerWord(t *testing.T) {
	w := NewWordPiece(smallWordPieceVocab(), "[UNK]", "##", 3, 0)

	tokens, err := w.Tokenize("unaffable")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "[UNK]", tokens[0].Value)
}

func TestWordPieceTokenizeCachesResult(t *testing.T) {
	w := NewWordPiece(smallWordPieceVocab(), "[UNK]", "##", 0, 8)

	first, err := w.Tokenize("unaffable")
	require.NoError(t, err)
	second, err := w.Tokenize("unaffable")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWordPieceTokenizeEmptyStringReturnsNoTokens(t *testing.T) {
	w := NewWordPiece(smallWordPieceVocab(), "[UNK]", "##", 0, 0)
	tokens, err := w.Tokenize("")
	require.NoError(t, err)
	assert.Nil(t, tokens)
}
