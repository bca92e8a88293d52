// Package dfafile implements the strict canonical `.dfa` text format
// shared by the compiler, the table converter, and the comparator:
//
//	ALPHABET <k> <symbols>
//	STATES <n>
//	START <s>
//	ACCEPT <m> <a0> <a1> … <a_{m-1}>
//	TRANS
//	<n rows, each exactly k whitespace-separated non-negative integers>
//	END
//
// Any deviation from this grammar is a parse error; the format has no
// tolerant or lenient reading mode by design, since all three tools
// must agree on exactly the same bytes.
package dfafile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/coregx/regdfa/dfa"
)

// Encode writes d to w in canonical form, including the trailing newline
// after END.
func Encode(w io.Writer, d *dfa.DFA) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "ALPHABET %d %s\n", len(d.Alphabet), string(d.Alphabet)); err != nil {
		return &Error{Kind: IoError, Message: "writing ALPHABET line", Cause: err}
	}
	if _, err := fmt.Fprintf(bw, "STATES %d\n", d.NumStates); err != nil {
		return &Error{Kind: IoError, Message: "writing STATES line", Cause: err}
	}
	if _, err := fmt.Fprintf(bw, "START %d\n", d.Start); err != nil {
		return &Error{Kind: IoError, Message: "writing START line", Cause: err}
	}

	var accepting []int
	for i, ok := range d.Accept {
		if ok {
			accepting = append(accepting, i)
		}
	}
	parts := make([]string, 0, len(accepting)+1)
	parts = append(parts, fmt.Sprintf("ACCEPT %d", len(accepting)))
	for _, a := range accepting {
		parts = append(parts, strconv.Itoa(a))
	}
	if _, err := fmt.Fprintln(bw, strings.Join(parts, " ")); err != nil {
		return &Error{Kind: IoError, Message: "writing ACCEPT line", Cause: err}
	}

	if _, err := fmt.Fprintln(bw, "TRANS"); err != nil {
		return &Error{Kind: IoError, Message: "writing TRANS line", Cause: err}
	}
	for _, row := range d.Trans {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = strconv.Itoa(c)
		}
		if _, err := fmt.Fprintln(bw, strings.Join(cells, " ")); err != nil {
			return &Error{Kind: IoError, Message: "writing transition row", Cause: err}
		}
	}
	if _, err := fmt.Fprintln(bw, "END"); err != nil {
		return &Error{Kind: IoError, Message: "writing END line", Cause: err}
	}

	if err := bw.Flush(); err != nil {
		return &Error{Kind: IoError, Message: "flushing output", Cause: err}
	}
	return nil
}

// Decode parses canonical `.dfa` text from r. Any deviation from the
// grammar — a missing section, a wrong field count, a target out of
// range — is rejected with BadFormat.
func Decode(r io.Reader) (*dfa.DFA, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	nextLine := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

	line, ok := nextLine()
	if !ok {
		return nil, &Error{Kind: BadFormat, Message: "missing ALPHABET line"}
	}
	fields := strings.Fields(line)
	if len(fields) != 3 || fields[0] != "ALPHABET" {
		return nil, &Error{Kind: BadFormat, Message: "malformed ALPHABET line"}
	}
	k, err := strconv.Atoi(fields[1])
	if err != nil || k < 0 {
		return nil, &Error{Kind: BadFormat, Message: "malformed ALPHABET count"}
	}
	if len(fields[2]) != k {
		return nil, &Error{Kind: BadFormat, Message: "ALPHABET symbol count mismatch"}
	}
	symbols := []byte(fields[2])

	line, ok = nextLine()
	if !ok {
		return nil, &Error{Kind: BadFormat, Message: "missing STATES line"}
	}
	fields = strings.Fields(line)
	if len(fields) != 2 || fields[0] != "STATES" {
		return nil, &Error{Kind: BadFormat, Message: "malformed STATES line"}
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 0 {
		return nil, &Error{Kind: BadFormat, Message: "malformed STATES count"}
	}

	line, ok = nextLine()
	if !ok {
		return nil, &Error{Kind: BadFormat, Message: "missing START line"}
	}
	fields = strings.Fields(line)
	if len(fields) != 2 || fields[0] != "START" {
		return nil, &Error{Kind: BadFormat, Message: "malformed START line"}
	}
	start, err := strconv.Atoi(fields[1])
	if err != nil || start < 0 || start >= n {
		return nil, &Error{Kind: BadFormat, Message: "START state out of range"}
	}

	line, ok = nextLine()
	if !ok {
		return nil, &Error{Kind: BadFormat, Message: "missing ACCEPT line"}
	}
	fields = strings.Fields(line)
	if len(fields) < 2 || fields[0] != "ACCEPT" {
		return nil, &Error{Kind: BadFormat, Message: "malformed ACCEPT line"}
	}
	m, err := strconv.Atoi(fields[1])
	if err != nil || m < 0 || m > n {
		return nil, &Error{Kind: BadFormat, Message: "malformed ACCEPT count"}
	}
	if len(fields) != 2+m {
		return nil, &Error{Kind: BadFormat, Message: "ACCEPT entry count mismatch"}
	}
	accept := make([]bool, n)
	for _, f := range fields[2:] {
		a, err := strconv.Atoi(f)
		if err != nil || a < 0 || a >= n {
			return nil, &Error{Kind: BadFormat, Message: "ACCEPT state out of range"}
		}
		accept[a] = true
	}

	line, ok = nextLine()
	if !ok || line != "TRANS" {
		return nil, &Error{Kind: BadFormat, Message: "missing TRANS line"}
	}

	trans := make([][]int, n)
	for i := 0; i < n; i++ {
		line, ok = nextLine()
		if !ok {
			return nil, &Error{Kind: BadFormat, Message: "truncated TRANS section"}
		}
		fields = strings.Fields(line)
		if len(fields) != k {
			return nil, &Error{Kind: BadFormat, Message: "transition row has wrong column count"}
		}
		row := make([]int, k)
		for j, f := range fields {
			c, err := strconv.Atoi(f)
			if err != nil || c < 0 || c >= n {
				return nil, &Error{Kind: BadFormat, Message: "transition target out of range"}
			}
			row[j] = c
		}
		trans[i] = row
	}

	line, ok = nextLine()
	if !ok || line != "END" {
		return nil, &Error{Kind: BadFormat, Message: "missing END line"}
	}

	if err := sc.Err(); err != nil {
		return nil, &Error{Kind: IoError, Message: "reading input", Cause: err}
	}

	return &dfa.DFA{
		Alphabet:  symbols,
		Start:     start,
		NumStates: n,
		Accept:    accept,
		Trans:     trans,
	}, nil
}
