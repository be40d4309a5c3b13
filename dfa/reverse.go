package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/automata/symbol"
)

// Reverse returns the automaton accepting the reverse of every string a
// accepts. The result is generally not minimal even when a is; call
// Reduce for a minimized reversal.
//
// The construction is subset construction over a's *reversed* transition
// relation: the meta-state is the set of a-states that could reach the
// current meta-state's "future" (i.e. what's already been consumed,
// read backwards) by following one more symbol. The initial meta-state
// is a's set of final states, since reversal swaps the roles of start
// and finish; the result is final exactly when the meta-state contains
// a's original initial state.
func Reverse(a *DFA[int], cfg Config) (*DFA[int], error) {
	alphabet := a.Alphabet

	predecessors := buildPredecessorIndex(a, alphabet)

	initial := map[int]struct{}{}
	for s := range a.Finals {
		initial[s] = struct{}{}
	}

	isFinal := func(m map[int]struct{}) bool {
		_, ok := m[a.Initial]
		return ok
	}

	follow := func(m map[int]struct{}, sym symbol.Symbol) map[int]struct{} {
		next := map[int]struct{}{}
		for s := range m {
			for _, p := range predecessors[predKey{state: s, sym: sym}] {
				next[p] = struct{}{}
			}
		}
		return next
	}

	return Crawl(alphabet, cfg, initial, intSetKey, isFinal, follow)
}

// Reduce returns a's minimal equivalent automaton, via Brzozowski's
// double-reversal construction: reversing a DFA and determinizing it
// (which Reverse's subset construction already does) yields an automaton
// whose *reachable* states correspond exactly to a's distinguishable
// states, so doing that twice yields a's minimal form.
func Reduce(a *DFA[int], cfg Config) (*DFA[int], error) {
	once, err := Reverse(a, cfg)
	if err != nil {
		return nil, err
	}
	return Reverse(once, cfg)
}

type predKey struct {
	state int
	sym   symbol.Symbol
}

// buildPredecessorIndex inverts a's transition relation: for every
// (state, symbol) pair it records which states transition into state on
// symbol.
func buildPredecessorIndex(a *DFA[int], alphabet symbol.Alphabet) map[predKey][]int {
	idx := make(map[predKey][]int)
	order := alphabet.Sorted()
	for s := range a.States {
		for _, sym := range order {
			next, ok := a.Step(s, sym)
			if !ok {
				continue
			}
			k := predKey{state: next, sym: sym}
			idx[k] = append(idx[k], s)
		}
	}
	return idx
}

func intSetKey(m map[int]struct{}) string {
	ids := make([]int, 0, len(m))
	for s := range m {
		ids = append(ids, s)
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, v := range ids {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
