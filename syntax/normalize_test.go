package syntax

import (
	"testing"

	"github.com/coregx/regdfa/alphabet"
	"github.com/coregx/regdfa/limits"
)

func mustAlphabetForTest(t *testing.T, spec string) *alphabet.Alphabet {
	t.Helper()
	a, err := alphabet.Parse(spec, limits.Default())
	if err != nil {
		t.Fatalf("alphabet.Parse(%q): %v", spec, err)
	}
	return a
}

func postfixString(t *testing.T, pattern string) string {
	t.Helper()
	a := mustAlphabetForTest(t, "abc")
	raw, err := alphabet.Preprocess(pattern, a)
	if err != nil {
		t.Fatalf("Preprocess(%q): %v", pattern, err)
	}
	tokens := InsertConcat(Tokenize(raw))
	if err := CheckBalanced(tokens); err != nil {
		t.Fatalf("CheckBalanced(%q): %v", pattern, err)
	}
	post, err := ToPostfix(tokens)
	if err != nil {
		t.Fatalf("ToPostfix(%q): %v", pattern, err)
	}
	s := ""
	for _, tok := range post {
		s += tok.String()
	}
	return s
}

func TestInsertConcatBasic(t *testing.T) {
	if got, want := postfixString(t, "ab"), "ab."; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInsertConcatWithStarAndParen(t *testing.T) {
	if got, want := postfixString(t, "(a|b)*abb"), "ab|*a.b.b."; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPlusIsUnionSynonym(t *testing.T) {
	or := postfixString(t, "a|b")
	plus := postfixString(t, "a+b")
	if or != plus {
		t.Fatalf("a|b -> %q, a+b -> %q; expected identical postfix", or, plus)
	}
}

func TestUnbalancedParensExtraOpen(t *testing.T) {
	a := mustAlphabetForTest(t, "ab")
	raw, err := alphabet.Preprocess("(ab", a)
	if err != nil {
		t.Fatalf("Preprocess: %v", err)
	}
	tokens := InsertConcat(Tokenize(raw))
	if err := CheckBalanced(tokens); err == nil {
		t.Fatal("expected UnbalancedParens")
	}
}

func TestUnbalancedParensExtraClose(t *testing.T) {
	a := mustAlphabetForTest(t, "ab")
	raw, err := alphabet.Preprocess("ab)", a)
	if err != nil {
		t.Fatalf("Preprocess: %v", err)
	}
	tokens := InsertConcat(Tokenize(raw))
	if err := CheckBalanced(tokens); err == nil {
		t.Fatal("expected UnbalancedParens")
	}
}
