package config

import (
	"github.com/lexigraph/tokenizer/internal/normalizer"
	"github.com/lexigraph/tokenizer/internal/restring"
)

// BuildNormalizer translates a NormalizerSpec tree into a concrete
// normalizer.Normalizer, recursing through Sequence nodes.
func BuildNormalizer(s *NormalizerSpec) (normalizer.Normalizer, error) {
	if s == nil {
		return normalizer.Sequence{}, nil
	}
	switch s.Type {
	case "Sequence":
		children := make([]normalizer.Normalizer, 0, len(s.Normalizers))
		for i := range s.Normalizers {
			child, err := BuildNormalizer(&s.Normalizers[i])
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return normalizer.Sequence{Normalizers: children}, nil
	case "Lowercase":
		return normalizer.Lowercase{}, nil
	case "Prepend":
		return normalizer.Prepend{Content: s.Prepend}, nil
	case "StripAccents":
		return normalizer.StripAccents{}, nil
	case "Strip":
		return normalizer.Strip{Left: s.Left, Right: s.Right}, nil
	case "Replace":
		pattern, err := buildPattern(s.Pattern)
		if err != nil {
			return nil, err
		}
		return normalizer.Replace{Pattern: pattern, Content: s.Content}, nil
	case "NFC":
		return normalizer.NFC{}, nil
	case "NFD":
		return normalizer.NFD{}, nil
	case "NFKC":
		return normalizer.NFKC{}, nil
	case "NFKD":
		return normalizer.NFKD{}, nil
	case "BertNormalizer":
		stripAccents := s.Lowercase
		if s.StripAccents != nil {
			stripAccents = *s.StripAccents
		}
		return normalizer.BertNormalizer{
			CleanText:          s.CleanText,
			HandleChineseChars: s.HandleChineseChars,
			StripAccents:       stripAccents,
			Lowercase:          s.Lowercase,
		}, nil
	default:
		return nil, errorf("unknown normalizer type %q", s.Type)
	}
}

func buildPattern(p *PatternSpec) (restring.Pattern, error) {
	if p == nil {
		return restring.NewString(""), nil
	}
	if p.Regex != "" {
		return restring.NewRegex(p.Regex)
	}
	return restring.NewString(p.String), nil
}
