package dfa

import (
	"sort"

	"github.com/coregx/regdfa/internal/sparse"
)

// Minimize runs Hopcroft partition refinement over a complete DFA and
// returns the minimal equivalent. d must have no Missing cells (see
// Complete); violating that is an InternalInvariant, since the minimizer
// has no sink to route an incomplete cell to.
//
// Worklist tie-break note: when a split produces Y1/Y2 and Y is not
// already queued, whichever of {Y1, Y2} is smaller is queued and, on an
// exact tie, Y2 (the newly appended block) is queued. The choice only
// affects processing order; the smaller-half rule's correctness and the
// final partition are unaffected by which side of a tie is chosen.
func Minimize(d *DFA) (*DFA, error) {
	if !d.IsComplete() {
		return nil, &Error{Kind: InternalInvariant, Message: "Minimize requires a complete DFA"}
	}

	n := d.NumStates
	k := len(d.Alphabet)

	var accepting, rejecting []int
	for s := 0; s < n; s++ {
		if d.Accept[s] {
			accepting = append(accepting, s)
		} else {
			rejecting = append(rejecting, s)
		}
	}

	if len(accepting) == 0 || len(rejecting) == 0 {
		// One side is empty: every state collapses to a single class.
		row := make([]int, k)
		return &DFA{
			Alphabet:  d.Alphabet,
			Start:     0,
			NumStates: 1,
			Accept:    []bool{len(accepting) > 0},
			Trans:     [][]int{row},
		}, nil
	}

	// inv[sym][q] = { p : δ(p, sym) = q }
	inv := make([][][]int, k)
	for sym := 0; sym < k; sym++ {
		inv[sym] = make([][]int, n)
		for p := 0; p < n; p++ {
			q := d.Trans[p][sym]
			inv[sym][q] = append(inv[sym][q], p)
		}
	}

	classOf := make([]int, n)
	var blocks [][]int

	newBlock := func(members []int) int {
		id := len(blocks)
		blocks = append(blocks, members)
		for _, q := range members {
			classOf[q] = id
		}
		return id
	}

	fID := newBlock(accepting)
	nfID := newBlock(rejecting)

	// Worklist of block ids awaiting refinement. At most n blocks are
	// ever created, so a SparseSet sized to n is always large enough;
	// O(1) Contains lets the split step ask "is this block already
	// queued" without a side table.
	w := sparse.NewSparseSet(uint32(n + 1))
	if len(accepting) <= len(rejecting) {
		w.Insert(uint32(fID))
	} else {
		w.Insert(uint32(nfID))
	}

	popBlock := func() int {
		vals := w.Values()
		id := int(vals[len(vals)-1])
		w.Remove(uint32(id))
		return id
	}

	for !w.IsEmpty() {
		a := popBlock()

		for sym := 0; sym < k; sym++ {
			mark := make(map[int]bool)
			for _, q := range blocks[a] {
				for _, p := range inv[sym][q] {
					mark[p] = true
				}
			}
			if len(mark) == 0 {
				continue
			}

			touched := make(map[int]bool)
			for p := range mark {
				touched[classOf[p]] = true
			}

			// Iterate touched blocks in ascending id order, not map
			// order: the reference compiler walks blocks as
			// `for(int yi=0; yi<Pn; yi++)`, and map iteration order is
			// randomized per run, which would otherwise make split
			// order (and hence final class numbering) nondeterministic
			// across runs on identical input.
			touchedIDs := make([]int, 0, len(touched))
			for id := range touched {
				touchedIDs = append(touchedIDs, id)
			}
			sort.Ints(touchedIDs)

			for _, yID := range touchedIDs {
				yBlock := blocks[yID]
				var y1, y2 []int
				for _, q := range yBlock {
					if mark[q] {
						y1 = append(y1, q)
					} else {
						y2 = append(y2, q)
					}
				}
				if len(y1) == 0 || len(y2) == 0 {
					continue
				}

				blocks[yID] = y1
				for _, q := range y1 {
					classOf[q] = yID
				}
				newID := newBlock(y2)

				if w.Contains(uint32(yID)) {
					w.Insert(uint32(newID))
				} else if len(y1) < len(y2) {
					w.Insert(uint32(yID))
				} else {
					w.Insert(uint32(newID))
				}
			}
		}
	}

	numClasses := len(blocks)
	accept := make([]bool, numClasses)
	trans := make([][]int, numClasses)
	for c := 0; c < numClasses; c++ {
		rep := blocks[c][0]
		for _, q := range blocks[c] {
			if q < rep {
				rep = q
			}
		}
		accept[c] = d.Accept[rep]
		row := make([]int, k)
		for sym := 0; sym < k; sym++ {
			row[sym] = classOf[d.Trans[rep][sym]]
		}
		trans[c] = row
	}

	return &DFA{
		Alphabet:  d.Alphabet,
		Start:     classOf[d.Start],
		NumStates: numClasses,
		Accept:    accept,
		Trans:     trans,
	}, nil
}
