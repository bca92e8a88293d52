package compile_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/coregx/regdfa/compile"
	"github.com/coregx/regdfa/limits"
)

func TestCompileAStar(t *testing.T) {
	d, err := compile.Compile("a*", "a")
	require.NoError(t, err)
	require.Equal(t, 1, d.NumStates)
	require.Equal(t, 0, d.Start)
	require.True(t, d.Accept[0])
	require.Equal(t, []int{0}, d.Trans[0])
}

func TestCompileEpsilon(t *testing.T) {
	// Spec §8: <eps>, Σ=a -> STATES 2, START 0, ACCEPT {0}, row0=1, row1=1.
	d, err := compile.Compile("<eps>", "a")
	require.NoError(t, err)
	require.Equal(t, 2, d.NumStates)
	require.Equal(t, 0, d.Start)
	require.True(t, d.Accept[0])
	require.False(t, d.Accept[1])
	require.Equal(t, 1, d.Trans[0][0])
	require.Equal(t, 1, d.Trans[1][0])
}

func TestCompileAOrEpsilon(t *testing.T) {
	// a|<eps>, Σ=a -> 3 states: start and after-"a" both accepting, then
	// a dead state, so "aa" is rejected.
	d, err := compile.Compile("a|<eps>", "a")
	require.NoError(t, err)
	require.Equal(t, 3, d.NumStates)
	require.True(t, d.Accept[d.Start])
	afterA := d.Trans[d.Start][0]
	require.True(t, d.Accept[afterA])
	dead := d.Trans[afterA][0]
	require.False(t, d.Accept[dead])
	require.Equal(t, dead, d.Trans[dead][0])
}

func TestCompileAOrB(t *testing.T) {
	// a|b, Σ=ab -> 3 states (start, accept, dead): the after-"a" and
	// after-"b" states are equivalent and merge into one accepting state.
	d, err := compile.Compile("a|b", "ab")
	require.NoError(t, err)
	require.Equal(t, 3, d.NumStates)
	accepting := 0
	for _, ok := range d.Accept {
		if ok {
			accepting++
		}
	}
	require.Equal(t, 1, accepting)
}

func TestCompileUnionBlockParensStar(t *testing.T) {
	// Spec §8: (a|b)*abb, Σ=ab -> exactly 4 states, one of them accepting.
	d, err := compile.Compile("(a|b)*abb", "ab")
	require.NoError(t, err)
	require.Equal(t, 4, d.NumStates)
	accepting := 0
	for _, ok := range d.Accept {
		if ok {
			accepting++
		}
	}
	require.Equal(t, 1, accepting)

	for _, s := range []string{"abb", "aabb", "babb", "abababb"} {
		ok, err := d.Accepts([]byte(s))
		require.NoError(t, err)
		require.Truef(t, ok, "%q should be accepted", s)
	}
	for _, s := range []string{"", "ab", "abbb", "ba"} {
		ok, err := d.Accepts([]byte(s))
		require.NoError(t, err)
		require.Falsef(t, ok, "%q should not be accepted", s)
	}
}

func TestCompileADeterministicAcrossRuns(t *testing.T) {
	// Invariant 4: identical pattern/alphabet input yields identical output.
	d1, err := compile.Compile("a(b|c)*", "abc")
	require.NoError(t, err)
	d2, err := compile.Compile("a(b|c)*", "abc")
	require.NoError(t, err)
	if diff := cmp.Diff(d1, d2); diff != "" {
		t.Fatalf("compilation is not deterministic: %s", diff)
	}
}

func TestCompilePlusIsUnion(t *testing.T) {
	withOr, err := compile.Compile("a|b", "ab")
	require.NoError(t, err)
	withPlus, err := compile.Compile("a+b", "ab")
	require.NoError(t, err)
	if diff := cmp.Diff(withOr, withPlus); diff != "" {
		t.Fatalf("'+' should behave identically to '|': %s", diff)
	}
}

func TestCompileRejectsBadAlphabet(t *testing.T) {
	_, err := compile.Compile("a", "a|b")
	require.Error(t, err)
}

func TestCompileRejectsUnbalancedParens(t *testing.T) {
	_, err := compile.Compile("(a", "a")
	require.Error(t, err)
}

func TestCompileRejectsOversizedAlphabet(t *testing.T) {
	_, err := compile.Compile("a", "abc", compile.WithLimits(limits.Default().WithMaxAlphabet(2)))
	require.Error(t, err)
}
