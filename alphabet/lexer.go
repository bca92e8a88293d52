package alphabet

// Operator bytes recognized by the preprocessor and every downstream
// pipeline stage. '.', the concatenation marker, is deliberately absent:
// an explicit dot in the raw pattern is rejected as BadPatternChar.
const (
	OpOr    byte = '|'
	OpPlus  byte = '+'
	OpStar  byte = '*'
	OpLParen byte = '('
	OpRParen byte = ')'
)

func isOperator(b byte) bool {
	switch b {
	case OpOr, OpPlus, OpStar, OpLParen, OpRParen:
		return true
	default:
		return false
	}
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	default:
		return false
	}
}

// Preprocess rewrites both epsilon encodings (the five-byte ASCII form
// "<eps>" and the two-byte UTF-8 sequence 0xCE 0xB5) to the internal
// Epsilon sentinel, discards whitespace and newline bytes, and validates
// every surviving byte against alpha: it must be an alphabet symbol, an
// operator, or the sentinel itself. The result is non-empty.
func Preprocess(pattern string, alpha *Alphabet) ([]byte, error) {
	raw := []byte(pattern)
	out := make([]byte, 0, len(raw))

	for i := 0; i < len(raw); i++ {
		b := raw[i]

		if isWhitespace(b) {
			continue
		}

		if b == '<' && i+4 < len(raw) && string(raw[i:i+5]) == "<eps>" {
			out = append(out, Epsilon)
			i += 4
			continue
		}

		if b == 0xCE && i+1 < len(raw) && raw[i+1] == 0xB5 {
			out = append(out, Epsilon)
			i++
			continue
		}

		out = append(out, b)
	}

	if len(out) == 0 {
		return nil, &Error{Kind: BadPatternChar, Message: "pattern is empty after preprocessing"}
	}

	for _, b := range out {
		if b == Epsilon || isOperator(b) || alpha.Contains(b) {
			continue
		}
		if b >= 128 {
			return nil, &Error{Kind: NonAsciiPatternByte, Message: "non-ASCII byte in pattern after epsilon rewriting"}
		}
		return nil, &Error{Kind: BadPatternChar, Message: "pattern byte is not an alphabet symbol, operator, or epsilon"}
	}

	return out, nil
}
