package dfa

import (
	"testing"

	"github.com/coregx/automata/symbol"
)

// strStateDFA builds a tiny DFA over string states accepting exactly "ab",
// exercising Renumber's ability to relabel an arbitrary comparable state
// type down to ints.
func strStateDFA(alphabet symbol.Alphabet) *DFA[string] {
	d, err := New(alphabet, []string{"start", "mid", "done", "dead"}, "start", []string{"done"},
		map[string]map[symbol.Symbol]string{
			"start": {symbol.Of('a'): "mid", symbol.Of('b'): "dead"},
			"mid":   {symbol.Of('a'): "dead", symbol.Of('b'): "done"},
			"done":  {symbol.Of('a'): "dead", symbol.Of('b'): "dead"},
			"dead":  {symbol.Of('a'): "dead", symbol.Of('b'): "dead"},
		})
	if err != nil {
		panic(err)
	}
	return d
}

func TestRenumberPreservesLanguage(t *testing.T) {
	alphabet := ab()
	original := strStateDFA(alphabet)
	renumbered, err := Renumber(original, DefaultConfig())
	if err != nil {
		t.Fatalf("Renumber: %v", err)
	}
	if renumbered.Initial != 0 {
		t.Errorf("renumbered.Initial = %d, want 0", renumbered.Initial)
	}
	for _, c := range []struct {
		s      string
		accept bool
	}{
		{"ab", true},
		{"a", false},
		{"ba", false},
		{"", false},
	} {
		t.Run(c.s, func(t *testing.T) {
			if got := renumbered.Accepts(word(c.s)); got != c.accept {
				t.Errorf("Accepts(%q) = %v, want %v", c.s, got, c.accept)
			}
		})
	}
}

func TestNullAcceptsNothing(t *testing.T) {
	n := Null(ab())
	for _, s := range []string{"", "a", "ab"} {
		t.Run(s, func(t *testing.T) {
			if n.Accepts(word(s)) {
				t.Errorf("Null().Accepts(%q) = true, want false", s)
			}
		})
	}
}

func TestEpsilonAcceptsOnlyEmptyString(t *testing.T) {
	e := Epsilon(ab())
	if !e.Accepts(word("")) {
		t.Error("Epsilon().Accepts(\"\") = false, want true")
	}
	if e.Accepts(word("a")) {
		t.Error("Epsilon().Accepts(\"a\") = true, want false")
	}
}
