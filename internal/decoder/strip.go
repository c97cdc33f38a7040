package decoder

import (
	"strings"

	"github.com/lexigraph/tokenizer/internal/restring"
)

// StripDecoder strips up to Start leading and up to Stop trailing
// occurrences of Content from each token, each end counted and stripped
// independently (confirmed against original_source: a token consisting
// entirely of Content can have both ends stripped, not just whichever the
// implementation happens to check first).
type StripDecoder struct {
	Content string
	Start   int
	Stop    int
}

func (s StripDecoder) DecodeChain(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = stripRune(tok, s.Content, s.Start, s.Stop)
	}
	return out
}

func stripRune(tok, content string, start, stop int) string {
	for i := 0; i < start && strings.HasPrefix(tok, content); i++ {
		tok = tok[len(content):]
	}
	for i := 0; i < stop && strings.HasSuffix(tok, content); i++ {
		tok = tok[:len(tok)-len(content)]
	}
	return tok
}

// ReplaceDecoder substitutes every Pattern match in each token with Content.
type ReplaceDecoder struct {
	Pattern restring.Pattern
	Content string
}

func (r ReplaceDecoder) DecodeChain(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = replaceAllMatches(r.Pattern, tok, r.Content)
	}
	return out
}

func replaceAllMatches(p restring.Pattern, text, content string) string {
	matches := p.FindAll(text)
	if len(matches) == 0 {
		return text
	}
	var sb strings.Builder
	last := 0
	for _, m := range matches {
		sb.WriteString(text[last:m.Start])
		sb.WriteString(content)
		last = m.End
	}
	sb.WriteString(text[last:])
	return sb.String()
}
