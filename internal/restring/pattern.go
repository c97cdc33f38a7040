// Package restring implements the {"String": ...} / {"Regex": ...} pattern
// abstraction used by Normalizer.Replace, PreTokenizer.Split and the Replace
// decoder. Regexes are compiled with dlclark/regexp2 rather than
// the standard library's regexp: several of the patterns this runtime must
// support (the GPT-2 ByteLevel split pattern's `\s+(?!\S)`, in particular)
// require lookahead, which Go's RE2-based regexp cannot express.
package restring

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Pattern is either a literal substring or a compiled regular expression.
type Pattern struct {
	literal string
	isRegex bool
	re      *regexp2.Regexp
}

// NewString builds a literal-substring Pattern.
func NewString(s string) Pattern {
	return Pattern{literal: s}
}

// NewRegex compiles pattern with .NET/PCRE-style syntax (supports
// lookahead/lookbehind, unlike stdlib regexp).
func NewRegex(pattern string) (Pattern, error) {
	re, err := regexp2.Compile(pattern, regexp2.Unicode|regexp2.RE2)
	if err != nil {
		// RE2 compatibility mode rejects some lookaround constructs;
		// retry without it so lookahead patterns like `(?!\S)` compile.
		re, err = regexp2.Compile(pattern, regexp2.Unicode)
		if err != nil {
			return Pattern{}, err
		}
	}
	return Pattern{isRegex: true, re: re}, nil
}

// Match is one occurrence of the pattern: byte offsets into the searched text.
type Match struct {
	Start, End int
}

// FindAll returns every non-overlapping occurrence of the pattern in text,
// in left-to-right order.
func (p Pattern) FindAll(text string) []Match {
	if !p.isRegex {
		return findAllLiteral(text, p.literal)
	}
	// regexp2 reports rune positions; map them to byte offsets.
	runeToByte := make([]int, 0, len(text)+1)
	for i := range text {
		runeToByte = append(runeToByte, i)
	}
	runeToByte = append(runeToByte, len(text))

	var out []Match
	m, err := p.re.FindStringMatch(text)
	for err == nil && m != nil {
		out = append(out, Match{runeToByte[m.Index], runeToByte[m.Index+m.Length]})
		m, err = p.re.FindNextMatch(m)
	}
	return out
}

func findAllLiteral(text, literal string) []Match {
	if literal == "" {
		return nil
	}
	var out []Match
	start := 0
	for {
		idx := indexAt(text, literal, start)
		if idx < 0 {
			break
		}
		out = append(out, Match{idx, idx + len(literal)})
		start = idx + len(literal)
	}
	return out
}

func indexAt(text, sub string, from int) int {
	if from >= len(text) {
		return -1
	}
	rel := strings.Index(text[from:], sub)
	if rel < 0 {
		return -1
	}
	return from + rel
}
