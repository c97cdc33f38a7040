package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexigraph/tokenizer/internal/normstring"
	"github.com/lexigraph/tokenizer/internal/restring"
)

func TestLowercaseMapsEveryRune(t *testing.T) {
	n := normstring.New("Hello WORLD")
	out := Lowercase{}.Normalize(n)
	assert.Equal(t, "hello world", out.Normalized())
}

func TestPrependInsertsAtStart(t *testing.T) {
	n := normstring.New("world")
	out := Prepend{Content: "_"}.Normalize(n)
	assert.Equal(t, "_world", out.Normalized())
}

func TestStripTrimsBothEndsByDefault(t *testing.T) {
	n := normstring.New("  hi  ")
	out := Strip{Left: true, Right: true}.Normalize(n)
	assert.Equal(t, "hi", out.Normalized())
}

func TestStripLeftOnlyKeepsTrailingWhitespace(t *testing.T) {
	n := normstring.New("  hi  ")
	out := Strip{Left: true}.Normalize(n)
	assert.Equal(t, "hi  ", out.Normalized())
}

func TestStripAccentsDropsCombiningMarksAfterNFD(t *testing.T) {
	n := normstring.New("café")
	n = NFD{}.Normalize(n)
	out := StripAccents{}.Normalize(n)
	assert.Equal(t, "cafe", out.Normalized())
}

func TestSequenceComposesLeftToRight(t *testing.T) {
	n := normstring.New("  CAFÉ  ")
	seq := Sequence{Normalizers: []Normalizer{
		Strip{Left: true, Right: true},
		NFD{},
		StripAccents{},
		Lowercase{},
	}}
	out := seq.Normalize(n)
	assert.Equal(t, "cafe", out.Normalized())
}

func TestReplaceSubstitutesEveryOccurrence(t *testing.T) {
	n := normstring.New("a.b.c")
	r := Replace{Pattern: restring.NewString("."), Content: "-"}
	out := r.Normalize(n)
	assert.Equal(t, "a-b-c", out.Normalized())
}

func TestNFCRecomposesDecomposedForm(t *testing.T) {
	// "e" + combining acute accent (U+0301) decomposed form.
	n := normstring.New("é")
	out := NFC{}.Normalize(n)
	assert.Equal(t, "é", out.Normalized())
}

func TestBertNormalizerLowercasesAndStripsAccents(t *testing.T) {
	n := normstring.New("Café")
	b := BertNormalizer{CleanText: true, Lowercase: true}
	out := b.Normalize(n)
	assert.Equal(t, "cafe", out.Normalized())
}

func TestBertNormalizerCleanTextMapsTabsAndNewlinesToSpace(t *testing.T) {
	n := normstring.New("a\tb\nc")
	out := BertNormalizer{CleanText: true}.Normalize(n)
	assert.Equal(t, "a b c", out.Normalized())
}

func TestBertNormalizerHandleChineseCharsPadsWithSpaces(t *testing.T) {
	n := normstring.New("你好")
	out := BertNormalizer{HandleChineseChars: true}.Normalize(n)
	assert.Equal(t, " 你  好 ", out.Normalized())
}

func TestBertNormalizerDropsNullAndReplacementChars(t *testing.T) {
	n := normstring.New("a\x00b�c")
	out := BertNormalizer{CleanText: true}.Normalize(n)
	assert.Equal(t, "abc", out.Normalized())
}

func TestNFKDDecomposesCompatibilityForm(t *testing.T) {
	// U+FB01 LATIN SMALL LIGATURE FI decomposes to "fi" under NFKD.
	n := normstring.New("ﬁ")
	out := NFKD{}.Normalize(n)
	require.Equal(t, "fi", out.Normalized())
}
