package config

import (
	"github.com/lexigraph/tokenizer/internal/postprocessor"
)

// BuildPostProcessor translates a PostProcSpec tree into a concrete
// postprocessor.PostProcessor.
func BuildPostProcessor(s *PostProcSpec) (postprocessor.PostProcessor, error) {
	if s == nil {
		return postprocessor.Sequence{}, nil
	}
	switch s.Type {
	case "TemplateProcessing":
		return buildTemplate(s)
	case "BertProcessing":
		content, id, err := sepOrClsPair(s.Sep)
		if err != nil {
			return nil, err
		}
		clsContent, clsID, err := sepOrClsPair(s.Cls)
		if err != nil {
			return nil, err
		}
		return postprocessor.BertProcessing{
			SepContent: content, SepTokenID: id,
			ClsContent: clsContent, ClsTokenID: clsID,
		}, nil
	case "RobertaProcessing":
		content, id, err := sepOrClsPair(s.Sep)
		if err != nil {
			return nil, err
		}
		clsContent, clsID, err := sepOrClsPair(s.Cls)
		if err != nil {
			return nil, err
		}
		return postprocessor.RobertaProcessing{
			SepContent: content, SepTokenID: id,
			ClsContent: clsContent, ClsTokenID: clsID,
			TrimOffsets:    s.TrimOffsets,
			AddPrefixSpace: s.AddPrefixSpace,
		}, nil
	case "ByteLevel":
		return postprocessor.ByteLevelProcessing{
			AddPrefixSpace: s.AddPrefixSpace,
			TrimOffsets:    s.TrimOffsets,
		}, nil
	case "Sequence":
		children := make([]postprocessor.PostProcessor, 0, len(s.Processors))
		for i := range s.Processors {
			child, err := BuildPostProcessor(&s.Processors[i])
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return postprocessor.Sequence{Processors: children}, nil
	default:
		return nil, errorf("unknown post_processor type %q", s.Type)
	}
}

func buildTemplate(s *PostProcSpec) (postprocessor.TemplateProcessing, error) {
	single, err := buildPieces(s.Single)
	if err != nil {
		return postprocessor.TemplateProcessing{}, err
	}
	pair, err := buildPieces(s.Pair)
	if err != nil {
		return postprocessor.TemplateProcessing{}, err
	}
	specials := make(map[string]postprocessor.SpecialTokenEntry, len(s.SpecialTokens))
	for content, entry := range s.SpecialTokens {
		specials[content] = postprocessor.SpecialTokenEntry{IDs: entry.IDs, Tokens: entry.Tokens}
	}
	return postprocessor.TemplateProcessing{Single: single, Pair: pair, SpecialTokens: specials}, nil
}

func buildPieces(items []PostProcItemSpec) ([]postprocessor.Piece, error) {
	out := make([]postprocessor.Piece, 0, len(items))
	for _, item := range items {
		switch {
		case item.Sequence != nil:
			seq := postprocessor.SeqA
			if item.Sequence.ID == "B" {
				seq = postprocessor.SeqB
			}
			out = append(out, postprocessor.Piece{Sequence: seq, TypeID: item.Sequence.TypeID})
		case item.SpecialToken != nil:
			out = append(out, postprocessor.Piece{
				IsSpecial: true,
				Content:   item.SpecialToken.ID,
				TypeID:    item.SpecialToken.TypeID,
			})
		default:
			return nil, errorf("template piece has neither Sequence nor SpecialToken")
		}
	}
	return out, nil
}

// sepOrClsPair reads a BertProcessing/RobertaProcessing "sep"/"cls" tuple,
// encoded in tokenizer.json as a 2-element array: [content, id].
func sepOrClsPair(raw []interface{}) (content string, id int, err error) {
	if len(raw) != 2 {
		return "", 0, errorf("expected a [content, id] pair, got %d elements", len(raw))
	}
	content, ok := raw[0].(string)
	if !ok {
		return "", 0, errorf("pair content must be a string")
	}
	switch v := raw[1].(type) {
	case float64:
		id = int(v)
	case int:
		id = v
	default:
		return "", 0, errorf("pair id must be numeric")
	}
	return content, id, nil
}
