package pretokenizer

import (
	"unicode"

	"github.com/lexigraph/tokenizer/internal/bytelevel"
	"github.com/lexigraph/tokenizer/internal/normstring"
	"github.com/lexigraph/tokenizer/internal/pretok"
	"github.com/lexigraph/tokenizer/internal/restring"
)

// gpt2Pattern is the canonical GPT-2 pre-tokenization regex (spec §4.3).
// The trailing `\s+(?!\S)` alternative needs lookahead, which is why this
// runtime compiles patterns with dlclark/regexp2 instead of stdlib regexp.
const gpt2Pattern = `'s|'t|'re|'ve|'m|'ll|'d| ?\p{L}+| ?\p{N}+| ?[^\s\p{L}\p{N}]+|\s+(?!\S)|\s+`

// ByteLevel splits text with the GPT-2 regex (when UseRegex is set) and then
// re-expresses every resulting Split's bytes through the bytes<->unicode
// table, so the model never sees a raw UTF-8 byte outside the printable
// range the vocabulary was trained on (spec §4.3, Glossary).
type ByteLevel struct {
	AddPrefixSpace bool
	UseRegex       bool

	table *bytelevel.Table
}

// NewByteLevel builds a ByteLevel pre-tokenizer sharing the process-wide
// bytes<->unicode table.
func NewByteLevel(addPrefixSpace, useRegex bool) *ByteLevel {
	return &ByteLevel{AddPrefixSpace: addPrefixSpace, UseRegex: useRegex, table: bytelevel.Shared()}
}

var gpt2RE = mustCompileGPT2()

func mustCompileGPT2() restring.Pattern {
	p, err := restring.NewRegex(gpt2Pattern)
	if err != nil {
		panic("pretokenizer: invalid GPT-2 pattern: " + err.Error())
	}
	return p
}

func (b *ByteLevel) PreTokenize(p *pretok.PreTokenizedString) {
	if b.AddPrefixSpace {
		addPrefixSpace(p)
	}
	if b.UseRegex {
		p.Split(Split{Pattern: gpt2RE, Behavior: pretok.Isolated}.splitFunc(), pretok.Isolated)
	}
	table := b.table
	if table == nil {
		table = bytelevel.Shared()
	}
	for _, s := range p.Splits {
		encodeSplitBytes(s, table)
	}
}

// addPrefixSpace prepends a space to every split whose text doesn't already
// start with whitespace (applied before any regex split, so in the common
// single-Split case it prepends to the whole input once).
func addPrefixSpace(p *pretok.PreTokenizedString) {
	for _, s := range p.Splits {
		if len(s.Tokens) > 0 {
			continue
		}
		text := s.Text()
		if text == "" {
			continue
		}
		if r := []rune(text)[0]; unicode.IsSpace(r) {
			continue
		}
		s.Normalized.InsertAt(0, " ")
	}
}

// encodeSplitBytes replaces a Split's NormalizedString with one whose code
// points are the byte-level encoding of the original's UTF-8 bytes. Each new
// rune inherits the original alignment of the byte it was derived from, so
// offset tracking survives the byte-level transform exactly.
func encodeSplitBytes(s *pretok.Split, table *bytelevel.Table) {
	text := s.Normalized.Normalized()
	byteOffs := s.Normalized.ByteOffsets()
	newRunes := make([]rune, len(text))
	newOrigins := make([]normstring.ByteRange, len(text))
	for i := 0; i < len(text); i++ {
		newRunes[i] = table.EncodeByte(text[i])
		newOrigins[i] = byteOffs[i]
	}
	s.Normalized = normstring.FromAligned(s.Normalized.Original(), newRunes, newOrigins)
}
