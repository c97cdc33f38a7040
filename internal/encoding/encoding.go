// Package encoding defines Encoding, the output record every pipeline stage
// from the Model onward produces, extends, or reshapes (spec §3). It is its
// own package (rather than living on the root facade) so PostProcessor and
// Truncation/Padding can both depend on the type without an import
// cycle back to the facade that wires them together.
package encoding

import "github.com/lexigraph/tokenizer/internal/normstring"

// NoWord marks a token that doesn't belong to any input word (added/special
// tokens), the "none" case of the spec's `words: sequence of optional int`.
const NoWord = -1

// Encoding is the tokenizer's output record. All seven primary sequences
// (Ids, TypeIDs, Tokens, Words, Offsets, SpecialTokensMask, AttentionMask)
// must stay equal length.
type Encoding struct {
	IDs               []int
	TypeIDs           []int
	Tokens            []string
	Words             []int
	Offsets           []normstring.ByteRange
	SpecialTokensMask []int
	AttentionMask     []int
	Overflowing       []Encoding
}

// Len reports the token count.
func (e *Encoding) Len() int { return len(e.IDs) }

// New builds an Encoding with all sequences pre-sized to n, AttentionMask
// defaulted to all-1 (real tokens) and everything else zero-valued.
func New(n int) *Encoding {
	e := &Encoding{
		IDs:               make([]int, n),
		TypeIDs:           make([]int, n),
		Tokens:            make([]string, n),
		Words:             make([]int, n),
		Offsets:           make([]normstring.ByteRange, n),
		SpecialTokensMask: make([]int, n),
		AttentionMask:     make([]int, n),
	}
	for i := range e.AttentionMask {
		e.AttentionMask[i] = 1
	}
	return e
}

// Append adds one token's worth of fields in lockstep.
func (e *Encoding) Append(id, typeID int, token string, word int, offsets normstring.ByteRange, special bool) {
	e.IDs = append(e.IDs, id)
	e.TypeIDs = append(e.TypeIDs, typeID)
	e.Tokens = append(e.Tokens, token)
	e.Words = append(e.Words, word)
	e.Offsets = append(e.Offsets, offsets)
	mask := 0
	if special {
		mask = 1
	}
	e.SpecialTokensMask = append(e.SpecialTokensMask, mask)
	e.AttentionMask = append(e.AttentionMask, 1)
}

// Merge concatenates other onto e in place, re-stamping other's TypeIDs to
// typeID (used by TemplateProcessing's pair sequence piece).
func (e *Encoding) Merge(other *Encoding, typeID int) {
	for i := 0; i < other.Len(); i++ {
		e.Append(other.IDs[i], typeID, other.Tokens[i], other.Words[i], other.Offsets[i], other.SpecialTokensMask[i] == 1)
	}
}

// SetSequenceIDs overwrites every TypeID in e to id.
func (e *Encoding) SetSequenceIDs(id int) {
	for i := range e.TypeIDs {
		e.TypeIDs[i] = id
	}
}

// Clone returns a deep copy so callers can reshape (truncate/pad) without
// mutating a shared original.
func (e *Encoding) Clone() *Encoding {
	c := &Encoding{
		IDs:               append([]int(nil), e.IDs...),
		TypeIDs:           append([]int(nil), e.TypeIDs...),
		Tokens:            append([]string(nil), e.Tokens...),
		Words:             append([]int(nil), e.Words...),
		Offsets:           append([]normstring.ByteRange(nil), e.Offsets...),
		SpecialTokensMask: append([]int(nil), e.SpecialTokensMask...),
		AttentionMask:     append([]int(nil), e.AttentionMask...),
		Overflowing:       append([]Encoding(nil), e.Overflowing...),
	}
	return c
}
