package dfa

// Complete scans every transition cell of d; if any is Missing, it
// appends a non-accepting dead state that self-loops on every symbol and
// rewrites every Missing cell to it. If d has no Missing cells, d is
// returned unchanged.
func Complete(d *DFA) *DFA {
	if d.IsComplete() {
		return d
	}

	deadIdx := d.NumStates
	k := len(d.Alphabet)

	trans := make([][]int, d.NumStates+1)
	for i, row := range d.Trans {
		nr := make([]int, len(row))
		for j, c := range row {
			if c == Missing {
				c = deadIdx
			}
			nr[j] = c
		}
		trans[i] = nr
	}

	deadRow := make([]int, k)
	for j := range deadRow {
		deadRow[j] = deadIdx
	}
	trans[deadIdx] = deadRow

	accept := make([]bool, d.NumStates+1)
	copy(accept, d.Accept)
	accept[deadIdx] = false

	return &DFA{
		Alphabet:  d.Alphabet,
		Start:     d.Start,
		NumStates: d.NumStates + 1,
		Accept:    accept,
		Trans:     trans,
	}
}
