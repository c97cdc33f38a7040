// Package tokenizer provides a configurable subword tokenizer runtime:
// normalization, pre-tokenization, WordPiece/BPE model tokenization,
// post-processing, and decoding, wired together from a tokenizer.json-style
// configuration document.
package tokenizer

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/lexigraph/tokenizer/config"
	"github.com/lexigraph/tokenizer/internal/addedvocab"
	"github.com/lexigraph/tokenizer/internal/decoder"
	"github.com/lexigraph/tokenizer/internal/encoding"
	"github.com/lexigraph/tokenizer/internal/model"
	"github.com/lexigraph/tokenizer/internal/normalizer"
	"github.com/lexigraph/tokenizer/internal/normstring"
	"github.com/lexigraph/tokenizer/internal/postprocessor"
	"github.com/lexigraph/tokenizer/internal/pretok"
	"github.com/lexigraph/tokenizer/internal/pretokenizer"
	"github.com/lexigraph/tokenizer/internal/truncation"
)

// Encoding is the tokenizer's output record, re-exported so callers never
// need to import the internal package directly.
type Encoding = encoding.Encoding

// AddedToken mirrors internal/addedvocab.AddedToken so callers of
// AddTokens/AddSpecialTokens never need to import an internal package.
type AddedToken = addedvocab.AddedToken

// Tokenizer is immutable after construction; Encode/Decode may be called
// concurrently from many goroutines (spec §5) — the only mutable state
// touched during a call is the model's internal result cache (BPE and
// WordPiece each keep one), which guards its own access.
type Tokenizer struct {
	normalizer    normalizer.Normalizer
	preTokenizer  pretokenizer.PreTokenizer
	model         model.Model
	postProcessor postprocessor.PostProcessor
	decoder       decoder.Decoder
	addedVocab    *addedvocab.AddedVocabulary
	truncation    *truncation.Truncation
	padding       *truncation.Padding

	idToToken map[int]string
}

// tokenizerConfig accumulates New's functional options before construction.
type tokenizerConfig struct {
	logger bool
}

// Option configures a Tokenizer at construction time.
type Option func(*tokenizerConfig)

// WithRuntimeLogging makes New log one debug line (model type and vocabulary
// size) via the global zerolog logger once the tokenizer is built. Encode
// and Decode calls are not logged.
func WithRuntimeLogging() Option {
	return func(c *tokenizerConfig) { c.logger = true }
}

// New builds a Tokenizer from a configuration source: a path to a
// tokenizer.json-shaped file, or an inline JSON document. It fails with
// ErrInvalidArgument if source is empty, a *ParseError (matching ErrParse)
// on malformed JSON, a *ConfigError on an unknown component tag or invalid
// component settings, and an *IOError (matching ErrIO) if a path is given
// but unreadable.
func New(source string, opts ...Option) (*Tokenizer, error) {
	if source == "" {
		return nil, ErrInvalidArgument
	}
	cfg := &tokenizerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	data := []byte(source)
	if looksLikePath(source) {
		raw, err := os.ReadFile(source)
		if err != nil {
			return nil, &IOError{Path: source, Err: err}
		}
		data = raw
	}

	file, err := config.Parse(data)
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}

	norm, err := config.BuildNormalizer(file.Normalizer)
	if err != nil {
		return nil, &ConfigError{Field: "normalizer", Err: err}
	}
	pre, err := config.BuildPreTokenizer(file.PreTokenizer)
	if err != nil {
		return nil, &ConfigError{Field: "pre_tokenizer", Err: err}
	}
	mdl, err := config.BuildModel(file.Model)
	if err != nil {
		return nil, &ConfigError{Field: "model", Err: err}
	}
	post, err := config.BuildPostProcessor(file.PostProcessor)
	if err != nil {
		return nil, &ConfigError{Field: "post_processor", Err: err}
	}
	dec, err := config.BuildDecoder(file.Decoder)
	if err != nil {
		return nil, &ConfigError{Field: "decoder", Err: err}
	}
	tr, err := config.BuildTruncation(file.Truncation)
	if err != nil {
		return nil, &ConfigError{Field: "truncation", Err: err}
	}
	pad, err := config.BuildPadding(file.Padding)
	if err != nil {
		return nil, &ConfigError{Field: "padding", Err: err}
	}

	av := config.BuildAddedVocabulary(file.AddedTokens, norm)

	idToToken := make(map[int]string, len(file.Model.Vocab)+len(file.AddedTokens))
	for tok, id := range file.Model.Vocab {
		idToToken[id] = tok
	}
	for _, at := range file.AddedTokens {
		idToToken[at.ID] = at.Content
	}

	if cfg.logger {
		log.Debug().Str("model", file.Model.Type).Int("vocab_size", len(file.Model.Vocab)).Msg("tokenizer loaded")
	}

	return &Tokenizer{
		normalizer:    norm,
		preTokenizer:  pre,
		model:         mdl,
		postProcessor: post,
		decoder:       dec,
		addedVocab:    av,
		truncation:    tr,
		padding:       pad,
		idToToken:     idToToken,
	}, nil
}

// looksLikePath is a simple heuristic distinguishing a file path from an
// inline JSON document: config documents always start with '{' once
// whitespace is trimmed, and a path never does.
func looksLikePath(source string) bool {
	for _, r := range source {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return r != '{'
		}
	}
	return true
}

// Encode runs the full pipeline (spec §4.10): AddedVocabulary extraction,
// normalization, pre-tokenization, model tokenization, truncation,
// post-processing, and padding.
func (t *Tokenizer) Encode(sequence string, addSpecialTokens bool) (*Encoding, error) {
	enc, err := t.encodeSequence(sequence)
	if err != nil {
		return nil, err
	}
	if t.truncation != nil {
		enc = t.truncation.Truncate(enc)
	}
	if t.postProcessor != nil {
		enc = t.postProcessor.Process(enc, nil, addSpecialTokens)
	}
	if t.padding != nil && t.padding.Strategy == truncation.PadToFixed {
		t.padding.Pad(enc, t.padding.FixedLength)
	}
	return enc, nil
}

// EncodePair runs the pipeline over a sequence pair, joined by the
// post-processor's Pair template (e.g. BERT's `[CLS] A [SEP] B [SEP]`).
func (t *Tokenizer) EncodePair(sequence, pair string, addSpecialTokens bool) (*Encoding, error) {
	encA, err := t.encodeSequence(sequence)
	if err != nil {
		return nil, err
	}
	encB, err := t.encodeSequence(pair)
	if err != nil {
		return nil, err
	}
	if t.truncation != nil {
		encA, encB = t.truncation.TruncatePair(encA, encB)
	}
	var out *Encoding
	if t.postProcessor != nil {
		out = t.postProcessor.Process(encA, encB, addSpecialTokens)
	} else {
		out = encA
		out.Merge(encB, 1)
	}
	if t.padding != nil && t.padding.Strategy == truncation.PadToFixed {
		t.padding.Pad(out, t.padding.FixedLength)
	}
	return out, nil
}

// EncodeBatch encodes every sequence independently, then — if Padding is
// configured for BatchLongest — pads them all up to the longest result.
// Batch handling beyond this is explicitly out of scope (spec: batch
// scheduling is trivial fan-out over single-sequence encode).
func (t *Tokenizer) EncodeBatch(sequences []string, addSpecialTokens bool) ([]*Encoding, error) {
	out := make([]*Encoding, len(sequences))
	for i, seq := range sequences {
		enc, err := t.Encode(seq, addSpecialTokens)
		if err != nil {
			return nil, err
		}
		out[i] = enc
	}
	if t.padding != nil && t.padding.Strategy == truncation.PadToLongest {
		t.padding.PadBatch(out)
	}
	return out, nil
}

// encodeSequence runs AddedVocabulary extraction through model tokenization
// and flattens the result into an Encoding, before truncation/post-processing/
// padding.
func (t *Tokenizer) encodeSequence(sequence string) (*Encoding, error) {
	var pre *pretok.PreTokenizedString
	if t.addedVocab != nil {
		pre = t.addedVocab.ExtractAndNormalize(t.normalizer, sequence)
	} else {
		n := normstring.New(sequence)
		if t.normalizer != nil {
			n = t.normalizer.Normalize(n)
		}
		pre = pretok.New(n)
	}

	if t.preTokenizer != nil {
		t.preTokenizer.PreTokenize(pre)
	}

	if t.model != nil {
		for _, s := range pre.Splits {
			if len(s.Tokens) > 0 {
				continue
			}
			toks, err := t.model.Tokenize(s.Text())
			if err != nil {
				return nil, err
			}
			s.Tokens = toks
		}
	}

	return flatten(pre), nil
}

// flatten assembles the per-Split Tokens into a single Encoding, rebasing
// each Token's Split-relative offsets back to the original input via its
// Split's own NormalizedString alignment table (spec §4.10 step 4).
func flatten(pre *pretok.PreTokenizedString) *Encoding {
	enc := encoding.New(0)
	word := 0
	for _, s := range pre.Splits {
		if len(s.Tokens) == 0 {
			continue
		}
		isWord := s.Origin != pretok.OriginAdded
		for _, tok := range s.Tokens {
			offsets := s.Normalized.OriginalRange(tok.Offsets.Start, tok.Offsets.End)
			w := encoding.NoWord
			if isWord {
				w = word
			}
			enc.Append(tok.ID, 0, tok.Value, w, offsets, !isWord)
		}
		if isWord {
			word++
		}
	}
	return enc
}

// AddTokens registers new ordinary added tokens, returning how many were
// actually new (tokens already present by content are skipped).
func (t *Tokenizer) AddTokens(tokens []AddedToken) int {
	added := t.addedVocab.Add(tokens, t.normalizer)
	for _, at := range added {
		t.idToToken[at.ID] = at.Content
	}
	return len(added)
}

// AddSpecialTokens registers new added tokens with Special set, so Decode's
// skipSpecialTokens path will drop them.
func (t *Tokenizer) AddSpecialTokens(tokens []AddedToken) int {
	for i := range tokens {
		tokens[i].Special = true
	}
	return t.AddTokens(tokens)
}

// VocabSize reports the total number of ids the tokenizer can produce or
// decode, model vocabulary plus added tokens.
func (t *Tokenizer) VocabSize() int {
	return len(t.idToToken)
}

// Decode converts ids back to text (spec §4.10): each id resolves through
// the added vocabulary first, then the model vocabulary; ids resolving to
// neither are silently skipped. Special tokens are dropped when
// skipSpecialTokens is set.
func (t *Tokenizer) Decode(ids []int, skipSpecialTokens bool) string {
	tokens := make([]string, 0, len(ids))
	for _, id := range ids {
		tok, ok := t.idToToken[id]
		if !ok {
			continue
		}
		if skipSpecialTokens {
			if at, ok := t.addedVocab.Token(tok); ok && at.Special {
				continue
			}
		}
		tokens = append(tokens, tok)
	}
	if t.decoder != nil {
		tokens = t.decoder.DecodeChain(tokens)
	}
	out := ""
	for _, tok := range tokens {
		out += tok
	}
	return out
}
