// Package config parses a tokenizer.json-shaped configuration tree and
// builds the concrete pipeline components (normalizer, pre-tokenizer,
// model, post-processor, decoder, added vocabulary, truncation, padding)
// the facade wires together (spec §6).
package config

import "github.com/goccy/go-json"

// File is the top-level shape of a tokenizer configuration document,
// mirroring HuggingFace's tokenizer.json layout.
type File struct {
	Version       string          `json:"version"`
	Truncation    *TruncationSpec `json:"truncation"`
	Padding       *PaddingSpec    `json:"padding"`
	AddedTokens   []AddedTokenDef `json:"added_tokens"`
	Normalizer    *NormalizerSpec `json:"normalizer"`
	PreTokenizer  *PreTokSpec     `json:"pre_tokenizer"`
	PostProcessor *PostProcSpec   `json:"post_processor"`
	Decoder       *DecoderSpec    `json:"decoder"`
	Model         ModelSpec       `json:"model"`
}

// Parse decodes raw tokenizer.json bytes into a File.
func Parse(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, wrapf(err, "parse tokenizer config")
	}
	return &f, nil
}

// AddedTokenDef is one entry of the top-level "added_tokens" list.
type AddedTokenDef struct {
	ID         int    `json:"id"`
	Content    string `json:"content"`
	SingleWord bool   `json:"single_word"`
	LStrip     bool   `json:"lstrip"`
	RStrip     bool   `json:"rstrip"`
	Normalized bool   `json:"normalized"`
	Special    bool   `json:"special"`
}

// PatternSpec is a regex-or-literal value as tokenizer.json encodes it:
// {"Regex": "..."} or {"String": "..."}.
type PatternSpec struct {
	Regex  string `json:"Regex,omitempty"`
	String string `json:"String,omitempty"`
}

// NormalizerSpec is the JSON shape of one Normalizer node; Type selects
// which fields apply, mirroring the tagged-union the reference format uses.
type NormalizerSpec struct {
	Type               string           `json:"type"`
	Lowercase          bool             `json:"lowercase"`
	CleanText          bool             `json:"clean_text"`
	HandleChineseChars bool             `json:"handle_chinese_chars"`
	StripAccents       *bool            `json:"strip_accents"`
	Left               bool             `json:"left"`
	Right              bool             `json:"right"`
	Prepend            string           `json:"prepend"`
	Pattern            *PatternSpec     `json:"pattern"`
	Content             string          `json:"content"`
	Normalizers        []NormalizerSpec `json:"normalizers"`
}

// PreTokSpec is the JSON shape of one PreTokenizer node.
type PreTokSpec struct {
	Type             string       `json:"type"`
	AddPrefixSpace   bool         `json:"add_prefix_space"`
	UseRegex         bool         `json:"use_regex"`
	IndividualDigits bool         `json:"individual_digits"`
	Delimiter        string       `json:"delimiter"`
	Pattern          *PatternSpec `json:"pattern"`
	Behavior         string       `json:"behavior"`
	Invert           bool         `json:"invert"`
	Replacement      string       `json:"replacement"`
	PreTokenizers    []PreTokSpec `json:"pretokenizers"`
}

// ModelSpec is the JSON shape of the "model" node: WordPiece or BPE.
type ModelSpec struct {
	Type                    string         `json:"type"`
	Vocab                   map[string]int `json:"vocab"`
	Merges                  []string       `json:"merges"`
	UnkToken                string         `json:"unk_token"`
	ContinuingSubwordPrefix string         `json:"continuing_subword_prefix"`
	MaxInputCharsPerWord    int            `json:"max_input_chars_per_word"`
	FuseUnk                 bool           `json:"fuse_unk"`
	ByteFallback            bool           `json:"byte_fallback"`
	IgnoreMerges            bool           `json:"ignore_merges"`
	Dropout                 *float64       `json:"dropout"`
	EndOfWordSuffix         string         `json:"end_of_word_suffix"`
	CacheCapacity           int            `json:"cache_capacity"`
}

// PostProcItemSpec is one element of a TemplateProcessing piece list.
type PostProcItemSpec struct {
	Sequence *struct {
		ID     string `json:"id"`
		TypeID int    `json:"type_id"`
	} `json:"Sequence,omitempty"`
	SpecialToken *struct {
		ID     string `json:"id"`
		TypeID int    `json:"type_id"`
	} `json:"SpecialToken,omitempty"`
}

// PostProcSpecialTokenSpec resolves a template special-token id to its
// concrete (ids, surface tokens) pair.
type PostProcSpecialTokenSpec struct {
	IDs    []int    `json:"ids"`
	Tokens []string `json:"tokens"`
}

// PostProcSpec is the JSON shape of the "post_processor" node.
type PostProcSpec struct {
	Type          string                              `json:"type"`
	Single        []PostProcItemSpec                  `json:"single"`
	Pair          []PostProcItemSpec                  `json:"pair"`
	SpecialTokens map[string]PostProcSpecialTokenSpec  `json:"special_tokens"`
	Sep           []interface{}                        `json:"sep"`
	Cls           []interface{}                        `json:"cls"`
	TrimOffsets   bool                                 `json:"trim_offsets"`
	AddPrefixSpace bool                                `json:"add_prefix_space"`
	Processors    []PostProcSpec                       `json:"processors"`
}

// DecoderSpec is the JSON shape of the "decoder" node.
type DecoderSpec struct {
	Type     string        `json:"type"`
	Prefix   string        `json:"prefix"`
	Cleanup  bool          `json:"cleanup"`
	Content  string        `json:"content"`
	Start    int           `json:"start"`
	Stop     int           `json:"stop"`
	Pattern  *PatternSpec  `json:"pattern"`
	Decoders []DecoderSpec `json:"decoders"`
}

// TruncationSpec is the JSON shape of the "truncation" node.
type TruncationSpec struct {
	MaxLength int    `json:"max_length"`
	Stride    int    `json:"stride"`
	Strategy  string `json:"strategy"`
	Direction string `json:"direction"`
}

// PaddingSpec is the JSON shape of the "padding" node.
type PaddingSpec struct {
	Strategy        string `json:"strategy"` // "BatchLongest" or "Fixed"
	Direction       string `json:"direction"`
	PadToMultipleOf int    `json:"pad_to_multiple_of"`
	PadID           int    `json:"pad_id"`
	PadTypeID       int    `json:"pad_type_id"`
	PadToken        string `json:"pad_token"`
	FixedLength     int    `json:"length"`
}
