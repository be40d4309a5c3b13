package dfa

import (
	"testing"

	"github.com/coregx/automata/symbol"
)

func ab() symbol.Alphabet {
	return symbol.Runes("ab", false)
}

func TestNewRejectsBadInitial(t *testing.T) {
	_, err := New(ab(), []int{0, 1}, 2, nil, map[int]map[symbol.Symbol]int{})
	if err == nil {
		t.Fatal("expected error for initial state outside the state set")
	}
	if _, ok := err.(*StructuralError); !ok {
		t.Errorf("got %T, want *StructuralError", err)
	}
}

func TestNewRejectsBadFinal(t *testing.T) {
	_, err := New(ab(), []int{0, 1}, 0, []int{5}, map[int]map[symbol.Symbol]int{})
	if err == nil {
		t.Fatal("expected error for final state outside the state set")
	}
}

func TestNewRejectsBadTransitionTarget(t *testing.T) {
	_, err := New(ab(), []int{0, 1}, 0, nil, map[int]map[symbol.Symbol]int{
		0: {symbol.Of('a'): 99},
	})
	if err == nil {
		t.Fatal("expected error for transition target outside the state set")
	}
}

func TestAcceptsSimpleDFA(t *testing.T) {
	alphabet := ab()
	d, err := New(alphabet, []int{0, 1, 2}, 0, []int{1}, map[int]map[symbol.Symbol]int{
		0: {symbol.Of('a'): 1, symbol.Of('b'): 2},
		1: {symbol.Of('a'): 2, symbol.Of('b'): 2},
		2: {symbol.Of('a'): 2, symbol.Of('b'): 2},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cases := []struct {
		word   string
		accept bool
	}{
		{"a", true},
		{"", false},
		{"b", false},
		{"aa", false},
	}
	for _, c := range cases {
		t.Run(c.word, func(t *testing.T) {
			word := make([]symbol.Symbol, len(c.word))
			for i, r := range c.word {
				word[i] = symbol.Of(r)
			}
			if got := d.Accepts(word); got != c.accept {
				t.Errorf("Accepts(%q) = %v, want %v", c.word, got, c.accept)
			}
		})
	}
}
