package config

import "github.com/lexigraph/tokenizer/internal/truncation"

// BuildTruncation translates a TruncationSpec into a truncation.Truncation.
// A nil spec means no truncation is configured.
func BuildTruncation(s *TruncationSpec) (*truncation.Truncation, error) {
	if s == nil {
		return nil, nil
	}
	direction := truncation.Right
	if s.Direction == "Left" {
		direction = truncation.Left
	}
	strategy := truncation.LongestFirst
	switch s.Strategy {
	case "OnlyFirst":
		strategy = truncation.OnlyFirst
	case "OnlySecond":
		strategy = truncation.OnlySecond
	case "", "LongestFirst":
		strategy = truncation.LongestFirst
	default:
		return nil, errorf("unknown truncation strategy %q", s.Strategy)
	}
	return &truncation.Truncation{
		Direction: direction,
		Strategy:  strategy,
		MaxLength: s.MaxLength,
		Stride:    s.Stride,
	}, nil
}

// BuildPadding translates a PaddingSpec into a truncation.Padding. A nil
// spec means no padding is configured.
func BuildPadding(s *PaddingSpec) (*truncation.Padding, error) {
	if s == nil {
		return nil, nil
	}
	direction := truncation.Right
	if s.Direction == "Left" {
		direction = truncation.Left
	}
	strategy := truncation.PadToLongest
	switch s.Strategy {
	case "Fixed":
		strategy = truncation.PadToFixed
	case "", "BatchLongest":
		strategy = truncation.PadToLongest
	default:
		return nil, errorf("unknown padding strategy %q", s.Strategy)
	}
	return &truncation.Padding{
		Direction:       direction,
		Strategy:        strategy,
		FixedLength:     s.FixedLength,
		PadID:           s.PadID,
		PadTypeID:       s.PadTypeID,
		PadToken:        s.PadToken,
		PadToMultipleOf: s.PadToMultipleOf,
	}, nil
}
