package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bertWordPieceJSON = `{
  "version": "1.0",
  "added_tokens": [
    {"id": 0, "content": "[UNK]", "special": true},
    {"id": 1, "content": "[CLS]", "special": true},
    {"id": 2, "content": "[SEP]", "special": true}
  ],
  "normalizer": {"type": "BertNormalizer", "lowercase": true, "clean_text": true, "handle_chinese_chars": true},
  "pre_tokenizer": {"type": "BertPreTokenizer"},
  "post_processor": {
    "type": "BertProcessing",
    "sep": ["[SEP]", 2],
    "cls": ["[CLS]", 1]
  },
  "decoder": {"type": "WordPiece", "prefix": "##", "cleanup": true},
  "model": {
    "type": "WordPiece",
    "unk_token": "[UNK]",
    "continuing_subword_prefix": "##",
    "max_input_chars_per_word": 100,
    "vocab": {"[UNK]": 0, "[CLS]": 1, "[SEP]": 2, "hello": 3, "world": 4, "##ing": 5, "play": 6}
  }
}`

const bpeJSON = `{
  "version": "1.0",
  "model": {
    "type": "BPE",
    "unk_token": "<unk>",
    "fuse_unk": true,
    "vocab": {"<unk>": 0, "a": 1, "b": 2, "ab": 3},
    "merges": ["a b"]
  }
}`

func TestNewRejectsEmptySource(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewRejectsMalformedInlineJSON(t *testing.T) {
	_, err := New(`{"model": `)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestNewRejectsUnreadablePath(t *testing.T) {
	_, err := New("/no/such/tokenizer.json")
	var ioerr *IOError
	require.ErrorAs(t, err, &ioerr)
}

func TestNewRejectsUnknownModelType(t *testing.T) {
	_, err := New(`{"model": {"type": "Unigram"}}`)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "model", cerr.Field)
}

func TestEncodeGreedyWordPieceMatchesWholeWords(t *testing.T) {
	tk, err := New(bertWordPieceJSON)
	require.NoError(t, err)

	enc, err := tk.Encode("hello world", true)
	require.NoError(t, err)

	assert.Equal(t, []string{"[CLS]", "hello", "world", "[SEP]"}, enc.Tokens)
	assert.Equal(t, []int{1, 3, 4, 2}, enc.IDs)
	assert.Equal(t, []int{1, 0, 0, 1}, enc.SpecialTokensMask)
}

func TestEncodeUnknownWordFallsBackToUnk(t *testing.T) {
	tk, err := New(bertWordPieceJSON)
	require.NoError(t, err)

	enc, err := tk.Encode("hello xyzzy", false)
	require.NoError(t, err)

	assert.Contains(t, enc.Tokens, "[UNK]")
}

func TestEncodeWithoutSpecialTokensOmitsTemplate(t *testing.T) {
	tk, err := New(bertWordPieceJSON)
	require.NoError(t, err)

	enc, err := tk.Encode("hello world", false)
	require.NoError(t, err)

	assert.Equal(t, []string{"hello", "world"}, enc.Tokens)
}

func TestEncodePairJoinsWithBertTemplate(t *testing.T) {
	tk, err := New(bertWordPieceJSON)
	require.NoError(t, err)

	enc, err := tk.EncodePair("hello", "world", true)
	require.NoError(t, err)

	assert.Equal(t, []string{"[CLS]", "hello", "[SEP]", "world", "[SEP]"}, enc.Tokens)
	assert.Equal(t, []int{0, 0, 0, 1, 1}, enc.TypeIDs)
}

func TestEncodeBatchPadsToLongestWhenConfigured(t *testing.T) {
	tk, err := New(`{
		"padding": {"strategy": "BatchLongest", "direction": "Right", "pad_id": 0, "pad_token": "[PAD]"},
		"pre_tokenizer": {"type": "WhitespaceSplit"},
		"model": {"type": "WordPiece", "unk_token": "[UNK]", "vocab": {"[UNK]": 0, "hello": 1, "world": 2}}
	}`)
	require.NoError(t, err)

	out, err := tk.EncodeBatch([]string{"hello world", "hello"}, false)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, out[0].Len(), out[1].Len())
	assert.Equal(t, []string{"hello", "[PAD]"}, out[1].Tokens)
}

func TestEncodeBPEFusesUnknown(t *testing.T) {
	tk, err := New(bpeJSON)
	require.NoError(t, err)

	enc, err := tk.Encode("ab c", false)
	require.NoError(t, err)
	assert.Contains(t, enc.Tokens, "ab")
	// " " and "c" are both out of vocabulary and fuse into one <unk>.
	assert.Equal(t, []string{"ab", "<unk>"}, enc.Tokens)
}

func TestDecodeReassemblesWordPieceText(t *testing.T) {
	tk, err := New(bertWordPieceJSON)
	require.NoError(t, err)

	enc, err := tk.Encode("hello world", true)
	require.NoError(t, err)

	out := tk.Decode(enc.IDs, true)
	assert.Equal(t, "hello world", out)
}

func TestDecodeKeepsSpecialTokensWhenNotSkipped(t *testing.T) {
	tk, err := New(bertWordPieceJSON)
	require.NoError(t, err)

	enc, err := tk.Encode("hello world", true)
	require.NoError(t, err)

	out := tk.Decode(enc.IDs, false)
	assert.Contains(t, out, "[CLS]")
	assert.Contains(t, out, "[SEP]")
}

func TestAddTokensRegistersNewAddedToken(t *testing.T) {
	tk, err := New(bertWordPieceJSON)
	require.NoError(t, err)

	n := tk.AddTokens([]AddedToken{{ID: 7, Content: "newword"}})
	assert.Equal(t, 1, n)

	_, ok := tk.addedVocab.Token("newword")
	assert.True(t, ok)
}

func TestAddSpecialTokensMarksSpecial(t *testing.T) {
	tk, err := New(bertWordPieceJSON)
	require.NoError(t, err)

	n := tk.AddSpecialTokens([]AddedToken{{ID: 8, Content: "[MASK]"}})
	assert.Equal(t, 1, n)

	tok, ok := tk.addedVocab.Token("[MASK]")
	require.True(t, ok)
	assert.True(t, tok.Special)
}
