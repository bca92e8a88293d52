package nfa

import (
	"github.com/coregx/regdfa/alphabet"
	"github.com/coregx/regdfa/internal/conv"
	"github.com/coregx/regdfa/limits"
	"github.com/coregx/regdfa/syntax"
)

// fragment is a Thompson fragment: a subgraph with exactly one entry
// state and one exit (accept) state.
type fragment struct {
	entry, exit StateID
}

type builder struct {
	states []State
	lim    limits.Limits
}

func (b *builder) newState() (StateID, error) {
	if len(b.states) >= b.lim.MaxNFAStates {
		return 0, &Error{Kind: NfaTooLarge, Message: "NFA state count exceeds configured limit"}
	}
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{ID: id})
	return id, nil
}

func (b *builder) addEdge(from StateID, symbol int, to StateID) {
	s := &b.states[from]
	s.Edges = append(s.Edges, Edge{Symbol: symbol, Target: to})
}

// Build evaluates a postfix token stream against a fragment stack,
// following the Thompson construction rules for symbols, epsilon,
// concatenation, union, and Kleene star. The stack must hold exactly one
// fragment at the end; that fragment's entry/exit become the NFA's start
// and accept states.
func Build(postfix []syntax.Token, alpha *alphabet.Alphabet, lim limits.Limits) (*NFA, error) {
	b := &builder{lim: lim}
	var stack []fragment

	pop := func() (fragment, error) {
		if len(stack) == 0 {
			return fragment{}, &Error{Kind: MalformedPostfix, Message: "fragment stack underflow"}
		}
		n := len(stack) - 1
		f := stack[n]
		stack = stack[:n]
		return f, nil
	}

	for _, tok := range postfix {
		switch tok.Kind {
		case syntax.Symbol:
			s, err := b.newState()
			if err != nil {
				return nil, err
			}
			t, err := b.newState()
			if err != nil {
				return nil, err
			}
			b.addEdge(s, alpha.IndexOf(tok.Value), t)
			stack = append(stack, fragment{entry: s, exit: t})

		case syntax.Eps:
			s, err := b.newState()
			if err != nil {
				return nil, err
			}
			t, err := b.newState()
			if err != nil {
				return nil, err
			}
			b.addEdge(s, EpsilonSymbol, t)
			stack = append(stack, fragment{entry: s, exit: t})

		case syntax.Concat:
			f2, err := pop()
			if err != nil {
				return nil, err
			}
			f1, err := pop()
			if err != nil {
				return nil, err
			}
			b.addEdge(f1.exit, EpsilonSymbol, f2.entry)
			stack = append(stack, fragment{entry: f1.entry, exit: f2.exit})

		case syntax.Or:
			f2, err := pop()
			if err != nil {
				return nil, err
			}
			f1, err := pop()
			if err != nil {
				return nil, err
			}
			s, err := b.newState()
			if err != nil {
				return nil, err
			}
			t, err := b.newState()
			if err != nil {
				return nil, err
			}
			b.addEdge(s, EpsilonSymbol, f1.entry)
			b.addEdge(s, EpsilonSymbol, f2.entry)
			b.addEdge(f1.exit, EpsilonSymbol, t)
			b.addEdge(f2.exit, EpsilonSymbol, t)
			stack = append(stack, fragment{entry: s, exit: t})

		case syntax.Star:
			f, err := pop()
			if err != nil {
				return nil, err
			}
			s, err := b.newState()
			if err != nil {
				return nil, err
			}
			t, err := b.newState()
			if err != nil {
				return nil, err
			}
			b.addEdge(s, EpsilonSymbol, f.entry)
			b.addEdge(s, EpsilonSymbol, t)
			b.addEdge(f.exit, EpsilonSymbol, f.entry)
			b.addEdge(f.exit, EpsilonSymbol, t)
			stack = append(stack, fragment{entry: s, exit: t})

		default:
			return nil, &Error{Kind: MalformedPostfix, Message: "unexpected token in postfix stream"}
		}
	}

	if len(stack) != 1 {
		return nil, &Error{Kind: MalformedPostfix, Message: "postfix evaluation did not leave exactly one fragment"}
	}

	final := stack[0]
	return &NFA{States: b.states, Start: final.entry, Accept: final.exit}, nil
}
