package dfa

import "encoding/binary"

// Bitset is a fixed-width bit vector over NFA state ids, used to
// represent ε-closed subsets during subset construction. Width is fixed
// at allocation time and the set is never resized, matching the
// ownership model of the pre-minimization DFA: each bitset belongs to
// exactly one DFA state and is never shared or grown after it is built.
type Bitset struct {
	words []uint64
	n     int
}

// NewBitset allocates a bitset able to hold bit indices in [0, n).
func NewBitset(n int) *Bitset {
	return &Bitset{words: make([]uint64, (n+63)/64), n: n}
}

// Set marks bit i as present.
func (b *Bitset) Set(i int) {
	b.words[i/64] |= 1 << uint(i%64)
}

// Test reports whether bit i is present.
func (b *Bitset) Test(i int) bool {
	return b.words[i/64]&(1<<uint(i%64)) != 0
}

// IsEmpty reports whether no bits are set.
func (b *Bitset) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Key returns a content-addressable key for this bitset's exact bit
// pattern, suitable for map-keyed deduplication of ε-closed subsets. An
// exact byte key (rather than a hash) avoids collision handling
// entirely; subset construction is a single-shot batch pass, not a hot
// path the way a runtime lazy-DFA cache is, so the simplicity is free.
func (b *Bitset) Key() string {
	buf := make([]byte, len(b.words)*8)
	for i, w := range b.words {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return string(buf)
}
