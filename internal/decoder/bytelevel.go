package decoder

import "github.com/lexigraph/tokenizer/internal/bytelevel"

// ByteLevelDecoder inverts ByteLevel pre-tokenization's bytes<->unicode
// table: concatenate all tokens, then map each rune back to its original
// byte and decode the result as UTF-8.
type ByteLevelDecoder struct{}

func (ByteLevelDecoder) DecodeChain(tokens []string) []string {
	joined := ""
	for _, t := range tokens {
		joined += t
	}
	raw := bytelevel.Shared().Decode(joined)
	return []string{string(raw)}
}

// ByteFallbackDecoder recognizes `<0xNN>` hex-byte tokens (emitted by a BPE
// model's byte_fallback path) and reassembles runs of them into their
// original UTF-8 bytes, leaving every other token untouched.
type ByteFallbackDecoder struct{}

func (ByteFallbackDecoder) DecodeChain(tokens []string) []string {
	var out []string
	var pending []byte
	flush := func() {
		if len(pending) > 0 {
			out = append(out, string(pending))
			pending = nil
		}
	}
	for _, tok := range tokens {
		if b, ok := decodeByteFallbackToken(tok); ok {
			pending = append(pending, b)
			continue
		}
		flush()
		out = append(out, tok)
	}
	flush()
	return out
}

func decodeByteFallbackToken(tok string) (byte, bool) {
	if len(tok) != 6 || tok[0] != '<' || tok[1] != '0' || tok[2] != 'x' || tok[5] != '>' {
		return 0, false
	}
	hi, ok := hexDigit(tok[3])
	if !ok {
		return 0, false
	}
	lo, ok := hexDigit(tok[4])
	if !ok {
		return 0, false
	}
	return hi<<4 | lo, true
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}
