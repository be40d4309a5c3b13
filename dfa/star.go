package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/automata/symbol"
)

// Star returns the automaton accepting the Kleene closure of a: zero or
// more concatenations of strings accepted by a.
//
// The meta-state is the set of a-states simultaneously live, exactly as
// in Concat, except the initial meta-state is distinguished as the
// "omega" state, which behaves like {a.Initial} for following symbols but
// is additionally always final (it accepts the empty string, which plain
// {a.Initial} would only accept if a.Initial were itself final). Treating
// the omega state as its own meta-state, rather than folding it into
// {a.Initial}, avoids ever conflating "haven't started yet" with "just
// finished a loop and a.Initial happens to be non-final".
func Star(a *DFA[int], cfg Config) (*DFA[int], error) {
	alphabet := a.Alphabet

	omega := starMeta{omega: true}
	isFinal := func(m starMeta) bool {
		if m.omega {
			return true
		}
		for s := range m.states {
			if a.IsFinal(s) {
				return true
			}
		}
		return false
	}

	follow := func(m starMeta, sym symbol.Symbol) starMeta {
		current := m.states
		if m.omega {
			current = map[int]struct{}{a.Initial: {}}
		}
		next := make(map[int]struct{}, len(current)+1)
		sawFinal := false
		for s := range current {
			ns, _ := a.Step(s, sym)
			next[ns] = struct{}{}
			if a.IsFinal(ns) {
				sawFinal = true
			}
		}
		if sawFinal {
			next[a.Initial] = struct{}{}
		}
		return starMeta{states: next}
	}

	crawled, err := Crawl(alphabet, cfg, omega, starKey, isFinal, follow)
	if err != nil {
		return nil, err
	}
	return Reduce(crawled, cfg)
}

// starMeta is Star's meta-state: either the distinguished omega state, or
// a concrete set of simultaneously-live a-states.
type starMeta struct {
	omega  bool
	states map[int]struct{}
}

func starKey(m starMeta) string {
	if m.omega {
		return "omega"
	}
	ids := make([]int, 0, len(m.states))
	for s := range m.states {
		ids = append(ids, s)
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, v := range ids {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
