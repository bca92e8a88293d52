// Package alphabet validates the symbol set Σ and preprocesses a raw
// pattern line into a byte stream the syntax normalizer can tokenize.
//
// Σ is an ordered sequence of distinct single-byte symbols. The ordering
// supplied by the caller is preserved end to end: it is the column order
// of every transition row the compiler ultimately emits.
package alphabet

import "github.com/coregx/regdfa/limits"

// Epsilon is the internal sentinel byte standing in for the empty string.
// It is NUL (0x00), a value no alphabet symbol can take since every symbol
// must be printable (>= 32); it therefore can never collide with a real
// symbol or with an operator byte.
const Epsilon byte = 0x00

// forbidden holds the regex meta-operator bytes that cannot appear as
// alphabet symbols.
var forbidden = map[byte]bool{
	'|': true, '+': true, '*': true, '(': true, ')': true,
	'.': true, ',': true, ';': true, ':': true, '-': true, '>': true,
	'{': true, '}': true,
}

// Alphabet is the validated, ordered symbol set Σ.
type Alphabet struct {
	symbols []byte
	index   map[byte]int
}

// Len returns |Σ|.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbols returns Σ in declared order. The returned slice must not be
// mutated by the caller.
func (a *Alphabet) Symbols() []byte {
	return a.symbols
}

// Contains reports whether b is a symbol of Σ.
func (a *Alphabet) Contains(b byte) bool {
	_, ok := a.index[b]
	return ok
}

// IndexOf returns the canonical column index of b in Σ, or -1 if b ∉ Σ.
func (a *Alphabet) IndexOf(b byte) int {
	if i, ok := a.index[b]; ok {
		return i
	}
	return -1
}

// Parse tokenizes an alphabet specification line, treating whitespace,
// comma, and semicolon as separators (any other byte is a symbol), and
// validates it: empty, duplicate, forbidden, non-printable, and
// out-of-range counts are all rejected with BadAlphabet.
func Parse(spec string, lim limits.Limits) (*Alphabet, error) {
	var symbols []byte
	for i := 0; i < len(spec); i++ {
		b := spec[i]
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == ',' || b == ';' {
			continue
		}
		symbols = append(symbols, b)
	}

	if len(symbols) == 0 {
		return nil, &Error{Kind: BadAlphabet, Message: "alphabet specification is empty"}
	}
	if len(symbols) > lim.MaxAlphabet {
		return nil, &Error{Kind: BadAlphabet, Message: "alphabet exceeds maximum size"}
	}

	index := make(map[byte]int, len(symbols))
	for i, b := range symbols {
		if b < 32 {
			return nil, &Error{Kind: BadAlphabet, Message: "alphabet symbol is not printable"}
		}
		if forbidden[b] {
			return nil, &Error{Kind: BadAlphabet, Message: "alphabet symbol is a reserved operator"}
		}
		if _, dup := index[b]; dup {
			return nil, &Error{Kind: BadAlphabet, Message: "duplicate alphabet symbol"}
		}
		index[b] = i
	}

	return &Alphabet{symbols: symbols, index: index}, nil
}
