package config

import "github.com/lexigraph/tokenizer/internal/decoder"

// BuildDecoder translates a DecoderSpec tree into a concrete decoder.Decoder.
func BuildDecoder(s *DecoderSpec) (decoder.Decoder, error) {
	if s == nil {
		return decoder.Sequence{}, nil
	}
	switch s.Type {
	case "WordPiece":
		prefix := s.Prefix
		if prefix == "" {
			prefix = "##"
		}
		return decoder.WordPieceDecoder{Prefix: prefix, Cleanup: s.Cleanup}, nil
	case "ByteLevel":
		return decoder.ByteLevelDecoder{}, nil
	case "ByteFallback":
		return decoder.ByteFallbackDecoder{}, nil
	case "Fuse":
		return decoder.Fuse{}, nil
	case "Strip":
		return decoder.StripDecoder{Content: s.Content, Start: s.Start, Stop: s.Stop}, nil
	case "Replace":
		pattern, err := buildPattern(s.Pattern)
		if err != nil {
			return nil, err
		}
		return decoder.ReplaceDecoder{Pattern: pattern, Content: s.Content}, nil
	case "Sequence":
		children := make([]decoder.Decoder, 0, len(s.Decoders))
		for i := range s.Decoders {
			child, err := BuildDecoder(&s.Decoders[i])
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return decoder.Sequence{Decoders: children}, nil
	default:
		return nil, errorf("unknown decoder type %q", s.Type)
	}
}
