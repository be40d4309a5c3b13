package dfa

import (
	"strconv"

	"github.com/coregx/automata/symbol"
)

// Complement returns the automaton accepting exactly the strings over a's
// alphabet that a does not accept.
//
// Every state's finality is flipped. A transition missing from a's map
// (possible for a DFA built directly via New with a partial map) leads to
// a reified dead state, which is non-final in a and therefore final here,
// and which loops to itself on every symbol.
func Complement(a *DFA[int], cfg Config) (*DFA[int], error) {
	// dead is one past a's largest state, so it is never a state of a.
	dead := 0
	for s := range a.States {
		if s >= dead {
			dead = s + 1
		}
	}
	crawled, err := Crawl(a.Alphabet, cfg, a.Initial,
		func(s int) string { return strconv.Itoa(s) },
		func(s int) bool { return !a.IsFinal(s) },
		func(s int, sym symbol.Symbol) int {
			next, ok := a.Step(s, sym)
			if !ok {
				return dead
			}
			return next
		})
	if err != nil {
		return nil, err
	}
	return Reduce(crawled, cfg)
}
