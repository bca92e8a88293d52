package tabledfa_test

import (
	"strings"
	"testing"

	"github.com/coregx/regdfa/tabledfa"
)

func TestParseAlphabetStringOrder(t *testing.T) {
	symbols, index, err := tabledfa.ParseAlphabetString("ab01")
	if err != nil {
		t.Fatalf("ParseAlphabetString: %v", err)
	}
	if string(symbols) != "ab01" {
		t.Fatalf("symbols = %q, want %q", symbols, "ab01")
	}
	if index['0'] != 2 {
		t.Fatalf("index['0'] = %d, want 2", index['0'])
	}
}

func TestParseAlphabetStringRejectsForbiddenPunctuation(t *testing.T) {
	for _, s := range []string{"a(b", "a)b", "a{b", "a}b", "a,b", "a-b", "a>b", "a:b"} {
		if _, _, err := tabledfa.ParseAlphabetString(s); err == nil {
			t.Fatalf("ParseAlphabetString(%q): expected error", s)
		}
	}
}

func TestParseAlphabetStringAllowsOperatorBytes(t *testing.T) {
	// Unlike the compiler's own alphabet parser, the converter's
	// narrower forbidden set does not reject these.
	if _, _, err := tabledfa.ParseAlphabetString("a|b"); err != nil {
		t.Fatalf("ParseAlphabetString(\"a|b\"): %v", err)
	}
}

func TestParseUserSpecBasic(t *testing.T) {
	symbols, index, err := tabledfa.ParseAlphabetString("ab")
	if err != nil {
		t.Fatalf("ParseAlphabetString: %v", err)
	}
	spec := `
Start: q0
Accept: {q0, q2}
(q0, a) -> q1
(q1, a) -> q1
(q1, b) -> q2
(q2, a) -> q2
(q2, b) -> q2
`
	d, err := tabledfa.ParseUserSpec(strings.NewReader(spec), symbols, index)
	if err != nil {
		t.Fatalf("ParseUserSpec: %v", err)
	}
	if !d.IsComplete() {
		t.Fatal("result must be complete")
	}
	if d.Start != 0 {
		t.Fatalf("Start = %d, want 0", d.Start)
	}
	if !d.Accept[0] || !d.Accept[2] {
		t.Fatal("q0 and q2 should be accepting")
	}
}

func TestParseUserSpecCompletesMissingTransitions(t *testing.T) {
	symbols, index, err := tabledfa.ParseAlphabetString("ab")
	if err != nil {
		t.Fatalf("ParseAlphabetString: %v", err)
	}
	spec := `
Start: q0
Accept: q0
(q0, a) -> q0
`
	d, err := tabledfa.ParseUserSpec(strings.NewReader(spec), symbols, index)
	if err != nil {
		t.Fatalf("ParseUserSpec: %v", err)
	}
	if d.NumStates != 2 {
		t.Fatalf("NumStates = %d, want 2 (original + dead)", d.NumStates)
	}
	if d.Accept[1] {
		t.Fatal("dead state must not be accepting")
	}
}

func TestParseUserSpecRejectsNondeterminism(t *testing.T) {
	symbols, index, err := tabledfa.ParseAlphabetString("ab")
	if err != nil {
		t.Fatalf("ParseAlphabetString: %v", err)
	}
	spec := `
Start: q0
Accept: q0
(q0, a) -> q0
(q0, a) -> q1
`
	_, err = tabledfa.ParseUserSpec(strings.NewReader(spec), symbols, index)
	if err == nil {
		t.Fatal("expected NondeterministicTransition error")
	}
}

func TestParseUserSpecIgnoresJunkAcceptTokens(t *testing.T) {
	symbols, index, err := tabledfa.ParseAlphabetString("ab")
	if err != nil {
		t.Fatalf("ParseAlphabetString: %v", err)
	}
	spec := `
Start: q0
Accept: {q0, banana, q1}
(q0, a) -> q1
(q1, b) -> q1
`
	d, err := tabledfa.ParseUserSpec(strings.NewReader(spec), symbols, index)
	if err != nil {
		t.Fatalf("ParseUserSpec: %v", err)
	}
	if !d.Accept[0] || !d.Accept[1] {
		t.Fatal("q0 and q1 should be accepting despite the junk token")
	}
}

func TestParseUserSpecRequiresStartAndAccept(t *testing.T) {
	symbols, index, err := tabledfa.ParseAlphabetString("a")
	if err != nil {
		t.Fatalf("ParseAlphabetString: %v", err)
	}
	if _, err := tabledfa.ParseUserSpec(strings.NewReader("(q0, a) -> q0\n"), symbols, index); err == nil {
		t.Fatal("expected BadUserSpec for missing Start/Accept")
	}
}
