// Package dfa implements the subset constructor and the completer +
// minimizer: it turns a Thompson ε-NFA into a complete, minimal DFA over
// Σ, numbered per the discovery-order and class-ordering rules of the
// specification.
package dfa

// Missing is the transition-cell sentinel meaning no NFA state is
// reachable on that symbol from the owning pre-minimization DFA state.
// A plain int sentinel is used here rather than a sum type: the design
// notes suggest a dedicated "missing vs index" type for transition
// cells, but every cell is either rewritten to a concrete target by
// Complete or read only after completion, so the extra type carries no
// behavior an int constant doesn't already give cleanly.
const Missing = -1

// DFA is a (possibly partial, possibly non-minimal) deterministic finite
// automaton over Σ. Trans[i][j] is the target state for symbol column j
// from state i, or Missing if the pre-minimization DFA left that cell
// unreached.
type DFA struct {
	Alphabet  []byte // Σ in declared order; column j corresponds to Alphabet[j]
	Start     int
	NumStates int
	Accept    []bool  // len == NumStates
	Trans     [][]int // len == NumStates, each row len == len(Alphabet)
}

// IndexOf returns the column index of b in Alphabet, or -1 if absent.
func (d *DFA) IndexOf(b byte) int {
	for i, s := range d.Alphabet {
		if s == b {
			return i
		}
	}
	return -1
}

// IsComplete reports whether every transition cell is a concrete state,
// i.e. no cell equals Missing.
func (d *DFA) IsComplete() bool {
	for _, row := range d.Trans {
		for _, c := range row {
			if c == Missing {
				return false
			}
		}
	}
	return true
}

// Accepts runs the DFA over s and reports whether s is accepted. It
// requires a complete DFA (see Complete); every byte of s must be a
// symbol of Alphabet.
func (d *DFA) Accepts(s []byte) (bool, error) {
	cur := d.Start
	for _, b := range s {
		col := d.IndexOf(b)
		if col < 0 {
			return false, &Error{Kind: InternalInvariant, Message: "byte not in DFA alphabet"}
		}
		cur = d.Trans[cur][col]
		if cur == Missing {
			return false, &Error{Kind: InternalInvariant, Message: "transition cell still Missing in a supposedly complete DFA"}
		}
	}
	return d.Accept[cur], nil
}
