package dfa

import (
	"github.com/coregx/automata/internal/conv"
	"github.com/coregx/automata/symbol"
)

// Crawl performs generic subset construction: starting from a single
// meta-state, it repeatedly calls follow to discover every meta-state
// reachable from it, assigning each a fresh int index the first time it
// is seen and recording the resulting transitions. Every algebraic
// operation in this package (Concat, Star, Union, ...) is an
// instantiation of this one driver over a different meta-state shape M.
//
// key must return a canonical string for a meta-state such that two
// meta-states are equal (for deduplication purposes) exactly when their
// keys are equal. M is intentionally not constrained to comparable: many
// operations' meta-states (e.g. Concat's set of live right-operand
// states) have no natural comparable representation, only a canonical
// string one, so key carries that canonicalization explicitly rather
// than forcing every caller to contort M into a comparable shape.
//
// Crawl aborts with a TooManyStatesError once more than cfg.MaxStates
// concrete states have been discovered, rather than expanding without
// bound.
func Crawl[M any](alphabet symbol.Alphabet, cfg Config, initial M, key func(M) string, isFinal func(M) bool, follow func(M, symbol.Symbol) M) (*DFA[int], error) {
	order := alphabet.Sorted()

	indexOf := make(map[string]int)
	metaOf := []M{initial}
	indexOf[key(initial)] = 0

	transitions := make(map[int]map[symbol.Symbol]int)

	for i := 0; i < len(metaOf); i++ {
		if i >= cfg.MaxStates {
			return nil, &TooManyStatesError{Limit: cfg.MaxStates}
		}
		meta := metaOf[i]
		row := make(map[symbol.Symbol]int, len(order))
		for _, sym := range order {
			next := follow(meta, sym)
			nextKey := key(next)
			idx, seen := indexOf[nextKey]
			if !seen {
				idx = len(metaOf)
				indexOf[nextKey] = idx
				metaOf = append(metaOf, next)
			}
			row[sym] = idx
		}
		transitions[i] = row
	}
	if len(metaOf) > cfg.MaxStates {
		return nil, &TooManyStatesError{Limit: cfg.MaxStates}
	}

	states := make([]int, len(metaOf))
	var finals []int
	for i, meta := range metaOf {
		states[i] = i
		if isFinal(meta) {
			finals = append(finals, i)
		}
		_ = conv.IntToUint32(i) // guard: every discovered index must fit a uint32-sized state space
	}

	return New(alphabet, states, 0, finals, transitions)
}
