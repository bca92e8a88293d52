package dfa

import "testing"

func TestCompleteNoopWhenAlreadyComplete(t *testing.T) {
	d := &DFA{
		Alphabet:  []byte("a"),
		Start:     0,
		NumStates: 1,
		Accept:    []bool{true},
		Trans:     [][]int{{0}},
	}
	got := Complete(d)
	if got != d {
		t.Fatal("Complete should return the same DFA when already complete")
	}
}

func TestCompleteAppendsDeadState(t *testing.T) {
	d := &DFA{
		Alphabet:  []byte("ab"),
		Start:     0,
		NumStates: 2,
		Accept:    []bool{false, true},
		Trans: [][]int{
			{1, Missing},
			{Missing, Missing},
		},
	}
	got := Complete(d)
	if got.NumStates != 3 {
		t.Fatalf("NumStates = %d, want 3", got.NumStates)
	}
	if got.Accept[2] {
		t.Fatal("dead state must not be accepting")
	}
	for _, c := range got.Trans[2] {
		if c != 2 {
			t.Fatalf("dead state must self-loop on every symbol, got %d", c)
		}
	}
	if got.Trans[0][1] != 2 || got.Trans[1][0] != 2 || got.Trans[1][1] != 2 {
		t.Fatal("Missing cells must be rewritten to the dead state")
	}
	if !got.IsComplete() {
		t.Fatal("result must be complete")
	}
}
