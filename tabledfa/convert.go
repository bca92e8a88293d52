// Package tabledfa converts a human-authored transition-function listing
// ("Start: q0", "Accept: {q0, q2}", "(q0, a) -> q1" lines) into the
// canonical DFA table the compiler and comparator share. It is a
// straightforward adapter, ported closely from the reference converter
// rather than re-architected: its alphabet validation differs from the
// compiler's own (it takes no separators and forbids a narrower
// punctuation set) and it is deliberately lenient about junk tokens
// in the Accept set, exactly mirroring the reference behavior.
package tabledfa

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/coregx/regdfa/dfa"
)

// forbidden holds the punctuation bytes the reference converter rejects
// in an alphabet string. Notably narrower than the compiler's own
// alphabet.Parse forbidden set: it does not reject '|', '+', '*', '.',
// or ';', since those never appear in a converter's single CLI argument
// the way they do in a pattern line.
var forbidden = map[byte]bool{
	'(': true, ')': true, '{': true, '}': true,
	',': true, '-': true, '>': true, ':': true,
}

// ParseAlphabetString validates a single contiguous alphabet string (as
// passed on the converter's CLI, with no separators) and returns its
// symbols in declared order plus a byte->column index.
func ParseAlphabetString(s string) ([]byte, map[byte]int, error) {
	if len(s) == 0 || len(s) > 128 {
		return nil, nil, &Error{Kind: BadAlphabet, Message: "alphabet string length must be in [1, 128]"}
	}
	index := make(map[byte]int, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 32 {
			return nil, nil, &Error{Kind: BadAlphabet, Message: "alphabet has non-printable byte"}
		}
		if forbidden[b] {
			return nil, nil, &Error{Kind: BadAlphabet, Message: "alphabet contains forbidden punctuation"}
		}
		if _, dup := index[b]; dup {
			return nil, nil, &Error{Kind: BadAlphabet, Message: "alphabet has duplicate symbol"}
		}
		index[b] = i
	}
	return []byte(s), index, nil
}

func parseQState(tok string) (int, bool) {
	if len(tok) < 2 || tok[0] != 'q' {
		return 0, false
	}
	v := 0
	for i := 1; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, false
		}
		v = v*10 + int(tok[i]-'0')
		if v > 1_000_000 {
			return 0, false
		}
	}
	return v, true
}

func trimPunct(tok string) string {
	return strings.TrimRight(tok, ",})")
}

// parseTransitionLine tolerantly scans a "(qX, a) -> qY" line the way
// the reference converter does: it looks for '(' anywhere on the line,
// reads a state, a comma, a single symbol byte, an arrow "->", and a
// final state, without requiring a matching ')' at all. matched is false
// (with a nil error) for a line that contains no '(' at all — such a
// line is silently skipped, mirroring the reference's "unknown line"
// tolerance.
func parseTransitionLine(line string, index map[byte]int) (from, col, to int, matched bool, err error) {
	i := strings.IndexByte(line, '(')
	if i < 0 {
		return 0, 0, 0, false, nil
	}
	p := strings.TrimLeft(line[i+1:], " \t")
	if len(p) == 0 || p[0] != 'q' {
		return 0, 0, 0, true, fmt.Errorf("bad transition (missing q)")
	}
	p = p[1:]
	j := 0
	for j < len(p) && p[j] >= '0' && p[j] <= '9' {
		j++
	}
	if j == 0 {
		return 0, 0, 0, true, fmt.Errorf("bad from-state")
	}
	fromVal, _ := strconv.Atoi(p[:j])
	p = p[j:]

	ci := strings.IndexByte(p, ',')
	if ci < 0 {
		return 0, 0, 0, true, fmt.Errorf("missing comma")
	}
	p = strings.TrimLeft(p[ci+1:], " \t")
	if len(p) == 0 {
		return 0, 0, 0, true, fmt.Errorf("missing symbol")
	}
	sym := p[0]
	p = p[1:]

	symCol, inAlpha := index[sym]
	if !inAlpha {
		return 0, 0, 0, true, fmt.Errorf("symbol %q not in alphabet", sym)
	}

	ai := strings.Index(p, "->")
	if ai < 0 {
		return 0, 0, 0, true, fmt.Errorf("missing ->")
	}
	p = strings.TrimLeft(p[ai+2:], " \t")
	if len(p) == 0 || p[0] != 'q' {
		return 0, 0, 0, true, fmt.Errorf("bad to-state")
	}
	p = p[1:]
	j = 0
	for j < len(p) && p[j] >= '0' && p[j] <= '9' {
		j++
	}
	if j == 0 {
		return 0, 0, 0, true, fmt.Errorf("bad to-state digits")
	}
	toVal, _ := strconv.Atoi(p[:j])

	return fromVal, symCol, toVal, true, nil
}

// ParseUserSpec reads a transition-function listing from r and produces
// a complete DFA: missing transitions are filled by appending a dead
// state via dfa.Complete, exactly as the reference converter does.
func ParseUserSpec(r io.Reader, symbols []byte, index map[byte]int) (*dfa.DFA, error) {
	k := len(symbols)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var accept []bool
	var trans [][]int

	ensure := func(q int) error {
		if q < 0 {
			return &Error{Kind: BadUserSpec, Message: "negative state index"}
		}
		for len(accept) <= q {
			accept = append(accept, false)
			row := make([]int, k)
			for j := range row {
				row[j] = dfa.Missing
			}
			trans = append(trans, row)
		}
		return nil
	}

	start := -1
	haveStart := false
	haveAccept := false
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if hasCIPrefix(line, "start:") {
			rest := strings.TrimSpace(line[strings.IndexByte(line, ':')+1:])
			fields := strings.Fields(rest)
			if len(fields) == 0 {
				return nil, &Error{Kind: BadUserSpec, Message: "Start line must be: Start: q<number>"}
			}
			q, ok := parseQState(trimPunct(fields[0]))
			if !ok {
				return nil, &Error{Kind: BadUserSpec, Message: "Start line must be: Start: q<number>"}
			}
			if err := ensure(q); err != nil {
				return nil, err
			}
			start = q
			haveStart = true
			continue
		}

		if hasCIPrefix(line, "accept:") {
			rest := line[strings.IndexByte(line, ':')+1:]
			rest = strings.NewReplacer("{", " ", "}", " ", ",", " ").Replace(rest)
			for _, tok := range strings.Fields(rest) {
				tok = trimPunct(tok)
				if q, ok := parseQState(tok); ok {
					if err := ensure(q); err != nil {
						return nil, err
					}
					accept[q] = true
				}
				// Non-q<digits> junk tokens are silently ignored, matching
				// the reference converter's leniency here.
			}
			haveAccept = true
			continue
		}

		from, col, to, matched, perr := parseTransitionLine(line, index)
		if perr != nil {
			return nil, &Error{Kind: BadUserSpec, Message: fmt.Sprintf("line %d: %v", lineNo, perr)}
		}
		if !matched {
			continue
		}
		if err := ensure(from); err != nil {
			return nil, err
		}
		if err := ensure(to); err != nil {
			return nil, err
		}
		if trans[from][col] != dfa.Missing && trans[from][col] != to {
			return nil, &Error{Kind: NondeterministicTransition, Message: fmt.Sprintf("line %d: nondeterministic transition for (q%d,%c)", lineNo, from, symbols[col])}
		}
		trans[from][col] = to
	}
	if err := sc.Err(); err != nil {
		return nil, &Error{Kind: BadUserSpec, Message: "reading user spec", Cause: err}
	}

	if !haveStart {
		return nil, &Error{Kind: BadUserSpec, Message: "missing Start line"}
	}
	if !haveAccept {
		return nil, &Error{Kind: BadUserSpec, Message: "missing Accept line"}
	}

	pre := &dfa.DFA{
		Alphabet:  symbols,
		Start:     start,
		NumStates: len(accept),
		Accept:    accept,
		Trans:     trans,
	}
	return dfa.Complete(pre), nil
}

func hasCIPrefix(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}
