package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/automata/symbol"
)

// Concat returns the automaton accepting exactly the strings formed by
// concatenating a string accepted by a with a string accepted by b. Both
// operands must already be total DFAs over the same alphabet, which every
// automaton produced by this package's Crawl-based operations is.
//
// The natural-looking meta-state (aState, bState) is not sufficient: once
// a reaches a final state, b's initial state becomes live *alongside*
// whatever state a is in, and subsequent symbols may advance several
// previously-spawned copies of b at once if a passes through several
// final states along the way (e.g. concatenating b after a pattern like
// (x|xxx) that can finish early). The right operand must therefore be
// tracked as a *set* of concurrently live states, one per place the
// boundary between a and b could currently be.
func Concat(a, b *DFA[int], cfg Config) (*DFA[int], error) {
	if !a.Alphabet.Equal(b.Alphabet) {
		return nil, &AlphabetMismatchError{Op: "Concat"}
	}
	alphabet := a.Alphabet

	bInitialSet := map[int]struct{}{}
	if a.IsFinal(a.Initial) {
		bInitialSet[b.Initial] = struct{}{}
	}
	initial := concatMeta{aState: a.Initial, bStates: bInitialSet}

	isFinal := func(m concatMeta) bool {
		for bs := range m.bStates {
			if b.IsFinal(bs) {
				return true
			}
		}
		return false
	}

	follow := func(m concatMeta, sym symbol.Symbol) concatMeta {
		nextA, _ := a.Step(m.aState, sym)
		nextB := make(map[int]struct{}, len(m.bStates)+1)
		for bs := range m.bStates {
			nb, _ := b.Step(bs, sym)
			nextB[nb] = struct{}{}
		}
		if a.IsFinal(nextA) {
			nextB[b.Initial] = struct{}{}
		}
		return concatMeta{aState: nextA, bStates: nextB}
	}

	crawled, err := Crawl(alphabet, cfg, initial, concatKey, isFinal, follow)
	if err != nil {
		return nil, err
	}
	return Reduce(crawled, cfg)
}

// concatMeta is Concat's meta-state: the left operand's current state plus
// the set of right-operand states simultaneously reachable by having
// split off from a at every final state passed through so far.
type concatMeta struct {
	aState  int
	bStates map[int]struct{}
}

func concatKey(m concatMeta) string {
	ids := make([]int, 0, len(m.bStates))
	for bs := range m.bStates {
		ids = append(ids, bs)
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, v := range ids {
		parts[i] = strconv.Itoa(v)
	}
	return strconv.Itoa(m.aState) + "|" + strings.Join(parts, ",")
}
