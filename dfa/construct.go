package dfa

import (
	"fmt"

	"github.com/coregx/automata/symbol"
)

// Renumber returns an automaton equivalent to a but with states relabeled
// to a contiguous range 0..N-1, in order of discovery from the initial
// state. The algebraic operations in this package take DFA[int] operands
// and do not call Renumber themselves; a caller with a DFA over another
// state type applies Renumber first. States are deduplicated by their "%v"
// formatting, which is injective for every state label type this package
// itself ever produces or that a caller would reasonably pass (ints,
// strings, small comparable structs).
func Renumber[S comparable](a *DFA[S], cfg Config) (*DFA[int], error) {
	return Crawl(a.Alphabet, cfg, a.Initial,
		func(s S) string { return fmt.Sprintf("%v", s) },
		a.IsFinal,
		func(s S, sym symbol.Symbol) S {
			next, ok := a.Step(s, sym)
			if !ok {
				// a is not total; Renumber treats a missing transition as
				// leading nowhere useful, which cannot happen for any DFA
				// this package itself produces. Direct callers of New must
				// supply total transition maps for Renumber to behave.
				return s
			}
			return next
		})
}

// Null returns the automaton that accepts no strings at all over alphabet.
func Null(alphabet symbol.Alphabet) *DFA[int] {
	d, _ := New(alphabet, []int{0}, 0, nil, map[int]map[symbol.Symbol]int{
		0: deadRow(alphabet),
	})
	return d
}

// Epsilon returns the automaton that accepts exactly the empty string and
// nothing else.
func Epsilon(alphabet symbol.Alphabet) *DFA[int] {
	d, _ := New(alphabet, []int{0, 1}, 0, []int{0}, map[int]map[symbol.Symbol]int{
		0: deadRowTo(alphabet, 1),
		1: deadRowTo(alphabet, 1),
	})
	return d
}

// deadRow builds a transition row that loops every symbol back to state 0,
// i.e. the row of a dead (non-final, self-looping) state.
func deadRow(alphabet symbol.Alphabet) map[symbol.Symbol]int {
	return deadRowTo(alphabet, 0)
}

// deadRowTo builds a transition row that sends every symbol to dead,
// where dead is expected to itself loop to itself.
func deadRowTo(alphabet symbol.Alphabet, dead int) map[symbol.Symbol]int {
	row := make(map[symbol.Symbol]int, alphabet.Len()+1)
	for _, sym := range alphabet.Sorted() {
		row[sym] = dead
	}
	if alphabet.HasAnyElse() {
		row[symbol.AnyElse] = dead
	}
	return row
}
