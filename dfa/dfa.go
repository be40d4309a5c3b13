// Package dfa implements deterministic finite automata as an algebra:
// values that combine under concatenation, union, intersection, symmetric
// difference, complement, reversal and integer multiplication to produce
// new automata, plus the analyses (emptiness, equivalence, enumeration)
// that make the algebra useful.
//
// A DFA is total over its alphabet plus the ANY_ELSE sentinel (see
// package symbol): every state has an outgoing transition for every
// symbol the alphabet recognizes, directly or through ANY_ELSE. This
// lets every operation below build its result alphabet once, up front,
// and never special-case a missing transition except where the algebra
// itself calls for one (Complement's dead-state reification, for
// instance).
package dfa

import (
	"sort"

	"github.com/coregx/automata/symbol"
)

// DFA is a deterministic finite automaton over states of type S. States
// are opaque, user-chosen identifiers compared for set membership by
// ordinary Go equality; the algebraic operations in this package always
// return automata over int states (see Renumber), but a DFA can be built
// directly over any comparable state type.
type DFA[S comparable] struct {
	Alphabet    symbol.Alphabet
	States      map[S]struct{}
	Initial     S
	Finals      map[S]struct{}
	Transitions map[S]map[symbol.Symbol]S
}

// New builds a DFA and validates the structural invariants required of
// every automaton in this package: the initial state is a member of
// States, every final state is a member of States, and every transition
// target is a member of States. Violating any of these is a
// StructuralError, never a panic, since a caller may be constructing a
// DFA directly from untrusted data.
func New[S comparable](alphabet symbol.Alphabet, states []S, initial S, finals []S, transitions map[S]map[symbol.Symbol]S) (*DFA[S], error) {
	stateSet := make(map[S]struct{}, len(states))
	for _, s := range states {
		stateSet[s] = struct{}{}
	}
	if _, ok := stateSet[initial]; !ok {
		return nil, &StructuralError{Message: "initial state is not a member of the state set"}
	}
	finalSet := make(map[S]struct{}, len(finals))
	for _, f := range finals {
		if _, ok := stateSet[f]; !ok {
			return nil, &StructuralError{Message: "final state is not a member of the state set"}
		}
		finalSet[f] = struct{}{}
	}
	for from, row := range transitions {
		if _, ok := stateSet[from]; !ok {
			return nil, &StructuralError{Message: "transition source is not a member of the state set"}
		}
		for _, to := range row {
			if _, ok := stateSet[to]; !ok {
				return nil, &StructuralError{Message: "transition target is not a member of the state set"}
			}
		}
	}
	return &DFA[S]{
		Alphabet:    alphabet,
		States:      stateSet,
		Initial:     initial,
		Finals:      finalSet,
		Transitions: transitions,
	}, nil
}

// IsFinal reports whether state is an accepting state.
func (d *DFA[S]) IsFinal(state S) bool {
	_, ok := d.Finals[state]
	return ok
}

// Step follows the transition from state on sym, substituting ANY_ELSE
// when the alphabet does not recognize sym directly. It returns the
// target state and ok=false if no such transition exists. That happens
// for a DFA built directly via New with a partial transition map, and for
// any DFA when sym is outside an alphabet that lacks ANY_ELSE; every
// automaton produced by an algebraic operation in this package is total,
// so for those Step succeeds on every symbol of the alphabet.
func (d *DFA[S]) Step(state S, sym symbol.Symbol) (S, bool) {
	row, ok := d.Transitions[state]
	if !ok {
		var zero S
		return zero, false
	}
	effective := d.Alphabet.Effective(sym)
	to, ok := row[effective]
	return to, ok
}

// Accepts reports whether the automaton accepts the given string of
// symbols, i.e. whether following Step from the initial state through
// every symbol in order lands on a final state. An out-of-alphabet
// symbol is resolved to ANY_ELSE before stepping, per the symbol model.
func (d *DFA[S]) Accepts(word []symbol.Symbol) bool {
	state := d.Initial
	for _, sym := range word {
		next, ok := d.Step(state, sym)
		if !ok {
			return false
		}
		state = next
	}
	return d.IsFinal(state)
}

// sortedStates returns d's states in a stable, deterministic order. It is
// used by String and by any analysis that must iterate states
// reproducibly; it requires S to expose a total order via less, so
// callers without one (arbitrary S) should use SortedIntStates on a
// Renumber'd DFA instead.
func sortedStates[S comparable](d *DFA[S], less func(a, b S) bool) []S {
	out := make([]S, 0, len(d.States))
	for s := range d.States {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// SortedIntStates returns the states of a DFA[int] in ascending order.
func SortedIntStates(d *DFA[int]) []int {
	return sortedStates(d, func(a, b int) bool { return a < b })
}
