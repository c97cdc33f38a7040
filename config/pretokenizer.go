package config

import (
	"github.com/lexigraph/tokenizer/internal/pretok"
	"github.com/lexigraph/tokenizer/internal/pretokenizer"
)

// BuildPreTokenizer translates a PreTokSpec tree into a concrete
// pretokenizer.PreTokenizer, recursing through Sequence nodes.
func BuildPreTokenizer(s *PreTokSpec) (pretokenizer.PreTokenizer, error) {
	if s == nil {
		return pretokenizer.Sequence{}, nil
	}
	switch s.Type {
	case "Sequence":
		children := make([]pretokenizer.PreTokenizer, 0, len(s.PreTokenizers))
		for i := range s.PreTokenizers {
			child, err := BuildPreTokenizer(&s.PreTokenizers[i])
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return pretokenizer.Sequence{PreTokenizers: children}, nil
	case "WhitespaceSplit":
		return pretokenizer.WhitespaceSplit{}, nil
	case "Whitespace":
		return pretokenizer.Whitespace{}, nil
	case "Punctuation":
		return pretokenizer.Punctuation{}, nil
	case "BertPreTokenizer":
		return pretokenizer.BertPreTokenizer{}, nil
	case "Digits":
		return pretokenizer.Digits{IndividualDigits: s.IndividualDigits}, nil
	case "CharDelimiterSplit":
		delim := ' '
		if len(s.Delimiter) > 0 {
			delim = []rune(s.Delimiter)[0]
		}
		return pretokenizer.CharDelimiterSplit{Delimiter: delim}, nil
	case "UnicodeScripts":
		return pretokenizer.UnicodeScripts{}, nil
	case "ByteLevel":
		return pretokenizer.NewByteLevel(s.AddPrefixSpace, s.UseRegex), nil
	case "Metaspace":
		m := pretokenizer.NewMetaspace(s.AddPrefixSpace)
		if s.Replacement != "" {
			m.Replacement = []rune(s.Replacement)[0]
		}
		return m, nil
	case "Split":
		pattern, err := buildPattern(s.Pattern)
		if err != nil {
			return nil, err
		}
		behavior := pretok.Removed
		if s.Behavior == "Isolated" {
			behavior = pretok.Isolated
		}
		return pretokenizer.Split{Pattern: pattern, Behavior: behavior, Invert: s.Invert}, nil
	default:
		return nil, errorf("unknown pre_tokenizer type %q", s.Type)
	}
}
