package dfa

import (
	"github.com/coregx/automata/internal/sparse"
	"github.com/coregx/automata/symbol"
)

// IsLive reports whether any final state is reachable from state. A
// state from which no final state can be reached can never contribute to
// an accepted string, no matter what follows it.
//
// When d is a DFA[int] — the case for every automaton this package's
// algebraic operations produce — the walk is tracked with a sparse.IntSet
// over the dense 0..N-1 state space instead of a map, matching how the
// teacher tracks reachability during its own NFA walks.
func (d *DFA[S]) IsLive(state S) bool {
	if di, ok := any(d).(*DFA[int]); ok {
		return isLiveInt(di, any(state).(int))
	}
	visited := map[S]struct{}{state: {}}
	queue := []S{state}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if d.IsFinal(s) {
			return true
		}
		for _, sym := range d.Alphabet.Sorted() {
			next, ok := d.Step(s, sym)
			if !ok {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return false
}

// isLiveInt is IsLive specialized for DFA[int], using a sparse.IntSet
// bounded by the state count instead of a map for visited-tracking.
func isLiveInt(d *DFA[int], state int) bool {
	visited := sparse.New(len(d.States))
	visited.Insert(state)
	queue := []int{state}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if d.IsFinal(s) {
			return true
		}
		for _, sym := range d.Alphabet.Sorted() {
			next, ok := d.Step(s, sym)
			if !ok {
				continue
			}
			if visited.Contains(next) {
				continue
			}
			visited.Insert(next)
			queue = append(queue, next)
		}
	}
	return false
}

// Empty reports whether d accepts no strings at all, i.e. whether its
// initial state is not live.
func (d *DFA[S]) Empty() bool {
	return !d.IsLive(d.Initial)
}

// Equivalent reports whether a and b accept exactly the same language.
// Both must already be DFA[int] (apply Renumber first if not); it is
// computed as the emptiness of their symmetric difference.
func Equivalent(a, b *DFA[int], cfg Config) (bool, error) {
	diff, err := SymmetricDifference(a, b, cfg)
	if err != nil {
		return false, err
	}
	return diff.Empty(), nil
}

// stringsQueueItem is one pending path in the Strings breadth-first
// enumeration: the state reached so far and the symbols read to reach it.
type stringsQueueItem struct {
	state int
	word  []symbol.Symbol
}

// liveSet computes every state of d from which some final state is
// reachable, in a single backward breadth-first walk from d.Finals over
// the reversed transition relation — the same definition IsLive checks
// per state, computed once for every state instead of once per query.
// Strings uses this to prune dead-end branches (states that can never
// reach a final state, e.g. a reified dead state that only self-loops)
// before they are ever enqueued, so enumeration cannot wander forever
// down a branch that will never yield an accepted word.
func liveSet(d *DFA[int]) map[int]struct{} {
	predecessors := make(map[int][]int, len(d.States))
	order := d.Alphabet.Sorted()
	for s := range d.States {
		for _, sym := range order {
			next, ok := d.Step(s, sym)
			if !ok {
				continue
			}
			predecessors[next] = append(predecessors[next], s)
		}
	}

	live := make(map[int]struct{}, len(d.Finals))
	queue := make([]int, 0, len(d.Finals))
	for f := range d.Finals {
		live[f] = struct{}{}
		queue = append(queue, f)
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, p := range predecessors[s] {
			if _, seen := live[p]; seen {
				continue
			}
			live[p] = struct{}{}
			queue = append(queue, p)
		}
	}
	return live
}

// Strings enumerates strings accepted by d, in length-then-lexicographic
// order, stopping once limit strings have been produced. A negative
// limit means unbounded, which only terminates if d's language is
// finite. If the alphabet carries ANY_ELSE, emitted words may contain
// the literal symbol.AnyElse value unchanged — it is not expanded into,
// or suppressed in favor of, any concrete symbol.
//
// The enumeration is a FIFO breadth-first walk over (state, word) pairs,
// seeded only from live states and only ever stepping into live states:
// because every item of a given word length is enqueued before any item
// of the next length, dequeuing in FIFO order visits every length-k
// string (in the alphabet's symbol order) before any length-(k+1)
// string, which is exactly length-then-lexicographic order.
func Strings(d *DFA[int], limit int) [][]symbol.Symbol {
	var out [][]symbol.Symbol
	order := d.Alphabet.Sorted()
	live := liveSet(d)

	if _, ok := live[d.Initial]; !ok {
		return out
	}

	queue := []stringsQueueItem{{state: d.Initial}}
	for len(queue) > 0 && (limit < 0 || len(out) < limit) {
		item := queue[0]
		queue = queue[1:]
		if d.IsFinal(item.state) {
			out = append(out, item.word)
		}
		for _, sym := range order {
			next, ok := d.Step(item.state, sym)
			if !ok {
				continue
			}
			if _, ok := live[next]; !ok {
				continue
			}
			word := make([]symbol.Symbol, len(item.word)+1)
			copy(word, item.word)
			word[len(item.word)] = sym
			queue = append(queue, stringsQueueItem{state: next, word: word})
		}
	}
	return out
}
