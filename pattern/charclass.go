package pattern

import (
	"github.com/coregx/automata/dfa"
	"github.com/coregx/automata/symbol"
)

// Charclass is a finite set of runes, optionally negated: a negated
// Charclass matches every rune *not* in its set (and, crucially, matches
// symbol.AnyElse too, since AnyElse by construction never belongs to any
// explicit literal set).
type Charclass struct {
	runes   map[rune]struct{}
	negated bool
}

// NewCharclass builds a Charclass containing exactly the given runes.
func NewCharclass(negated bool, runes ...rune) Charclass {
	set := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		set[r] = struct{}{}
	}
	return Charclass{runes: set, negated: negated}
}

// Literals returns the explicit rune set c was built from and whether it
// is negated. It exists so a Pattern's implied alphabet (see Alphabet)
// can be computed without exposing c's internal representation: the
// caller needs the literal runes mentioned anywhere in the pattern, plus
// whether any class negates them (which is when symbol.AnyElse must join
// the alphabet, since AnyElse never belongs to an explicit literal set).
func (c Charclass) Literals() (runes []rune, negated bool) {
	out := make([]rune, 0, len(c.runes))
	for r := range c.runes {
		out = append(out, r)
	}
	return out, c.negated
}

// Contains reports whether sym matches this class.
func (c Charclass) Contains(sym symbol.Symbol) bool {
	r, ok := sym.Rune()
	if !ok {
		return c.negated
	}
	_, inSet := c.runes[r]
	return inSet != c.negated
}

// Union returns the class matching any rune matched by c or by other.
func (c Charclass) Union(other Charclass) Charclass {
	switch {
	case !c.negated && !other.negated:
		merged := cloneRuneSet(c.runes)
		for r := range other.runes {
			merged[r] = struct{}{}
		}
		return Charclass{runes: merged, negated: false}
	case c.negated && other.negated:
		// complement(A) | complement(B) = complement(A & B)
		merged := map[rune]struct{}{}
		for r := range c.runes {
			if _, ok := other.runes[r]; ok {
				merged[r] = struct{}{}
			}
		}
		return Charclass{runes: merged, negated: true}
	case c.negated:
		return Charclass{runes: subtractRunes(c.runes, other.runes), negated: true}
	default:
		return Charclass{runes: subtractRunes(other.runes, c.runes), negated: true}
	}
}

// Intersect returns the class matching any rune matched by both c and other.
func (c Charclass) Intersect(other Charclass) Charclass {
	return c.Negate().Union(other.Negate()).Negate()
}

// Negate returns the class matching every rune c does not match.
func (c Charclass) Negate() Charclass {
	return Charclass{runes: cloneRuneSet(c.runes), negated: !c.negated}
}

// ToDFA converts c into a three-state automaton over alphabet: an initial
// non-final state, a final state reached by a single matching symbol,
// and a reified dead state that every other transition (from either
// state) falls into. Spec §6 calls this a "two-state DFA" describing the
// accept/reject roles; a third, explicit dead state is required to keep
// the automaton total once more than one symbol is read, per §9's
// implicit-dead-state note.
func (c Charclass) ToDFA(alphabet symbol.Alphabet) (*dfa.DFA[int], error) {
	const (
		start = 0
		final = 1
		dead  = 2
	)
	transitions := map[int]map[symbol.Symbol]int{
		start: {},
		final: {},
		dead:  {},
	}
	for _, sym := range alphabet.Sorted() {
		transitions[final][sym] = dead
		transitions[dead][sym] = dead
		if c.Contains(sym) {
			transitions[start][sym] = final
		} else {
			transitions[start][sym] = dead
		}
	}
	return dfa.New(alphabet, []int{start, final, dead}, start, []int{final}, transitions)
}

func cloneRuneSet(m map[rune]struct{}) map[rune]struct{} {
	out := make(map[rune]struct{}, len(m))
	for r := range m {
		out[r] = struct{}{}
	}
	return out
}

func subtractRunes(a, b map[rune]struct{}) map[rune]struct{} {
	out := make(map[rune]struct{}, len(a))
	for r := range a {
		if _, ok := b[r]; !ok {
			out[r] = struct{}{}
		}
	}
	return out
}
