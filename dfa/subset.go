package dfa

import (
	"github.com/coregx/regdfa/alphabet"
	"github.com/coregx/regdfa/internal/sparse"
	"github.com/coregx/regdfa/limits"
	"github.com/coregx/regdfa/nfa"
)

// epsilonClosure computes the ε-closure of seeds as a fixpoint over a
// bitset, following ε-edges until saturation. The BFS frontier is a
// SparseSet: states are pushed once (the O(1) Contains check prevents
// requeuing), and since SparseSet.Values() is backed by a growing dense
// slice, iterating it by index while new states are inserted is exactly
// the BFS worklist this computation needs.
func epsilonClosure(n *nfa.NFA, seeds []nfa.StateID) *Bitset {
	bs := NewBitset(n.NumStates())
	frontier := sparse.NewSparseSet(uint32(n.NumStates()))

	for _, s := range seeds {
		if !bs.Test(int(s)) {
			bs.Set(int(s))
			frontier.Insert(uint32(s))
		}
	}

	for i := 0; i < frontier.Size(); i++ {
		state := n.State(nfa.StateID(frontier.Values()[i]))
		for _, e := range state.Edges {
			if e.Symbol != nfa.EpsilonSymbol {
				continue
			}
			if !bs.Test(int(e.Target)) {
				bs.Set(int(e.Target))
				frontier.Insert(uint32(e.Target))
			}
		}
	}

	return bs
}

// move unions the targets of every symbol-labeled edge out of a state in
// bs's closure, for the given alphabet column.
func move(n *nfa.NFA, bs *Bitset, symbol int) []nfa.StateID {
	var targets []nfa.StateID
	for i := 0; i < n.NumStates(); i++ {
		if !bs.Test(i) {
			continue
		}
		for _, e := range n.State(nfa.StateID(i)).Edges {
			if e.Symbol == symbol {
				targets = append(targets, e.Target)
			}
		}
	}
	return targets
}

// dfaSubsetState is one discovered DFA state during subset construction:
// its ε-closed NFA state set and whether that set contains the NFA's
// accept state.
type dfaSubsetState struct {
	closure *Bitset
	accept  bool
}

// Build runs subset construction: it computes ε-closure({s0}) as d0, and
// for every dequeued state and every symbol in declared alphabet order,
// computes Move then re-closes it, deduplicating ε-closed bitsets by
// exact set equality (existing states are reused). DFA states are
// numbered in discovery order, so d0 is always 0.
func Build(n *nfa.NFA, alpha *alphabet.Alphabet, lim limits.Limits) (*DFA, error) {
	k := alpha.Len()

	var states []dfaSubsetState
	seen := make(map[string]int)
	var trans [][]int

	add := func(cl *Bitset) (int, error) {
		key := cl.Key()
		if idx, ok := seen[key]; ok {
			return idx, nil
		}
		if len(states) >= lim.MaxDFAStates {
			return 0, &Error{Kind: DfaTooLarge, Message: "DFA state count exceeds configured limit"}
		}
		idx := len(states)
		seen[key] = idx
		states = append(states, dfaSubsetState{closure: cl, accept: cl.Test(int(n.Accept))})
		trans = append(trans, make([]int, k))
		return idx, nil
	}

	startClosure := epsilonClosure(n, []nfa.StateID{n.Start})
	if _, err := add(startClosure); err != nil {
		return nil, err
	}

	worklist := []int{0}
	for len(worklist) > 0 {
		d := worklist[0]
		worklist = worklist[1:]

		for sym := 0; sym < k; sym++ {
			targets := move(n, states[d].closure, sym)
			if len(targets) == 0 {
				trans[d][sym] = Missing
				continue
			}
			cl := epsilonClosure(n, targets)
			before := len(states)
			idx, err := add(cl)
			if err != nil {
				return nil, err
			}
			if idx == before {
				worklist = append(worklist, idx)
			}
			trans[d][sym] = idx
		}
	}

	accept := make([]bool, len(states))
	for i, s := range states {
		accept[i] = s.accept
	}

	return &DFA{
		Alphabet:  alpha.Symbols(),
		Start:     0,
		NumStates: len(states),
		Accept:    accept,
		Trans:     trans,
	}, nil
}
