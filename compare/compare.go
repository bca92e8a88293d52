// Package compare implements the DFA behavioral comparator: given a
// reference DFA and a user-supplied DFA over the same alphabet, it runs
// both against a labeled set of test strings and reports the first
// string on which their accept/reject behavior diverges. It is ported
// from the reference comparator rather than re-architected: alphabet
// equality is checked up front as a hard precondition, test strings
// containing a byte outside the shared alphabet are a parse error (not
// a silent reject), and a test string whose declared label disagrees
// with the reference DFA's own verdict is reported as a non-fatal
// warning, never a failure.
package compare

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/coregx/regdfa/dfa"
)

// Divergence describes the first test string on which the reference and
// user DFAs disagree.
type Divergence struct {
	Line       int
	String     string
	RefAccept  bool
	UserAccept bool
	Label      bool
}

// LabelWarning records a test line whose declared label disagrees with
// the reference DFA's own verdict, even though the reference and user
// DFAs agreed with each other. This never fails a comparison run.
type LabelWarning struct {
	Line      int
	String    string
	Label     bool
	RefAccept bool
}

// Result summarizes a comparison run.
type Result struct {
	Total    int
	Mismatch *Divergence
	Warnings []LabelWarning
}

// Passed reports whether every test string produced identical
// reference/user verdicts.
func (r *Result) Passed() bool {
	return r.Mismatch == nil
}

// sameAlphabet checks two DFAs declare byte-identical alphabets in the
// same order, matching the reference comparator's same_alphabet check.
func sameAlphabet(a, b *dfa.DFA) bool {
	if len(a.Alphabet) != len(b.Alphabet) {
		return false
	}
	for i := range a.Alphabet {
		if a.Alphabet[i] != b.Alphabet[i] {
			return false
		}
	}
	return true
}

// runDFA drives d over s from its start state, returning the final
// accept verdict. ok is false if s contains a byte outside d's
// alphabet, mirroring the reference's run_dfa returning -1.
func runDFA(d *dfa.DFA, s string) (accept bool, ok bool) {
	cur := d.Start
	for i := 0; i < len(s); i++ {
		col := d.IndexOf(s[i])
		if col < 0 {
			return false, false
		}
		cur = d.Trans[cur][col]
	}
	return d.Accept[cur], true
}

// Compare runs ref and user over every labeled test string in tests,
// stopping at the first divergence. tests is a line-oriented file: each
// non-blank, non-'#'-prefixed line is "<label> <string>", where label is
// "0" or "1" and string is either a literal test string or the token
// "<eps>" denoting the empty string.
func Compare(ref, user *dfa.DFA, tests io.Reader) (*Result, error) {
	if !sameAlphabet(ref, user) {
		return nil, &Error{Kind: AlphabetMismatch, Message: "reference and user DFAs declare different alphabets"}
	}

	sc := bufio.NewScanner(tests)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	result := &Result{}
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &Error{Kind: BadTestsFile, Message: fmt.Sprintf("line %d: expected \"<label> <string>\"", lineNo)}
		}
		labelTok, strTok := fields[0], fields[1]
		if labelTok != "0" && labelTok != "1" {
			return nil, &Error{Kind: BadTestsFile, Message: fmt.Sprintf("line %d: label must be 0 or 1", lineNo)}
		}
		label := labelTok == "1"

		w := strTok
		if w == "<eps>" {
			w = ""
		}

		refAccept, ok := runDFA(ref, w)
		if !ok {
			return nil, &Error{Kind: SymbolNotInAlphabet, Message: fmt.Sprintf("line %d: string contains symbol not in alphabet", lineNo)}
		}
		userAccept, ok := runDFA(user, w)
		if !ok {
			return nil, &Error{Kind: SymbolNotInAlphabet, Message: fmt.Sprintf("line %d: string contains symbol not in alphabet", lineNo)}
		}

		result.Total++

		if refAccept != userAccept {
			result.Mismatch = &Divergence{
				Line:       lineNo,
				String:     strTok,
				RefAccept:  refAccept,
				UserAccept: userAccept,
				Label:      label,
			}
			return result, nil
		}

		if refAccept != label {
			result.Warnings = append(result.Warnings, LabelWarning{
				Line:      lineNo,
				String:    strTok,
				Label:     label,
				RefAccept: refAccept,
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &Error{Kind: BadTestsFile, Message: "reading tests file", Cause: err}
	}

	return result, nil
}
