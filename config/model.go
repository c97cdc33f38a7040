package config

import (
	"strings"

	"github.com/lexigraph/tokenizer/internal/model"
)

const defaultCacheCapacity = 10000

// BuildModel translates a ModelSpec into the concrete Model the facade
// tokenizes words with.
func BuildModel(s ModelSpec) (model.Model, error) {
	cacheCap := s.CacheCapacity
	if cacheCap == 0 {
		cacheCap = defaultCacheCapacity
	}
	switch s.Type {
	case "WordPiece":
		maxChars := s.MaxInputCharsPerWord
		if maxChars == 0 {
			maxChars = 100
		}
		prefix := s.ContinuingSubwordPrefix
		if prefix == "" {
			prefix = "##"
		}
		return model.NewWordPiece(s.Vocab, s.UnkToken, prefix, maxChars, cacheCap), nil
	case "BPE":
		merges, err := parseMerges(s.Merges)
		if err != nil {
			return nil, err
		}
		bpe, err := model.NewBPE(s.Vocab, merges, cacheCap)
		if err != nil {
			return nil, err
		}
		bpe.UnkToken = s.UnkToken
		bpe.ContinuingSubwordPrefix = s.ContinuingSubwordPrefix
		bpe.EndOfWordSuffix = s.EndOfWordSuffix
		bpe.FuseUnk = s.FuseUnk
		bpe.ByteFallback = s.ByteFallback
		bpe.IgnoreMerges = s.IgnoreMerges
		if s.Dropout != nil {
			bpe.Dropout = *s.Dropout
		}
		return bpe, nil
	default:
		return nil, errorf("unknown model type %q", s.Type)
	}
}

// parseMerges turns tokenizer.json's "left right" merge string list into
// MergeRule values ranked by their position in the list; NewBPE resolves
// each side against the vocabulary itself.
func parseMerges(merges []string) ([]model.MergeRule, error) {
	out := make([]model.MergeRule, 0, len(merges))
	for rank, m := range merges {
		parts := strings.SplitN(m, " ", 2)
		if len(parts) != 2 {
			return nil, errorf("malformed merge rule %q at rank %d", m, rank)
		}
		out = append(out, model.MergeRule{Left: parts[0], Right: parts[1], Rank: rank})
	}
	return out, nil
}
