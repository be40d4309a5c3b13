package dfa

import (
	"fmt"

	"github.com/coregx/automata/symbol"
)

// pairMeta is the meta-state shared by Union, Intersect and
// SymmetricDifference: the pair of operand states reached by following
// the same symbol sequence through both operands in lockstep. The three
// operations differ only in which combinations of (a-final, b-final)
// they treat as final.
type pairMeta struct {
	a, b int
}

func pairKey(m pairMeta) string {
	return fmt.Sprintf("%d,%d", m.a, m.b)
}

// combine runs the shared lockstep-pair construction used by Union,
// Intersect and SymmetricDifference, varying only in isFinal.
func combine(a, b *DFA[int], cfg Config, op string, isFinal func(aFinal, bFinal bool) bool) (*DFA[int], error) {
	if !a.Alphabet.Equal(b.Alphabet) {
		return nil, &AlphabetMismatchError{Op: op}
	}
	alphabet := a.Alphabet
	initial := pairMeta{a: a.Initial, b: b.Initial}

	follow := func(m pairMeta, sym symbol.Symbol) pairMeta {
		na, _ := a.Step(m.a, sym)
		nb, _ := b.Step(m.b, sym)
		return pairMeta{a: na, b: nb}
	}

	crawled, err := Crawl(alphabet, cfg, initial, pairKey,
		func(m pairMeta) bool { return isFinal(a.IsFinal(m.a), b.IsFinal(m.b)) },
		follow)
	if err != nil {
		return nil, err
	}
	return Reduce(crawled, cfg)
}

// Union returns the automaton accepting strings accepted by a or b (or
// both).
func Union(a, b *DFA[int], cfg Config) (*DFA[int], error) {
	return combine(a, b, cfg, "Union", func(af, bf bool) bool { return af || bf })
}

// Intersect returns the automaton accepting strings accepted by both a
// and b.
func Intersect(a, b *DFA[int], cfg Config) (*DFA[int], error) {
	return combine(a, b, cfg, "Intersect", func(af, bf bool) bool { return af && bf })
}

// SymmetricDifference returns the automaton accepting strings accepted by
// exactly one of a and b.
func SymmetricDifference(a, b *DFA[int], cfg Config) (*DFA[int], error) {
	return combine(a, b, cfg, "SymmetricDifference", func(af, bf bool) bool { return af != bf })
}
