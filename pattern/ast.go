package pattern

import (
	"github.com/coregx/automata/dfa"
	"github.com/coregx/automata/symbol"
)

// Multiplicand is anything a Mult can apply a repeat range to: a nested
// Pattern, from a parenthesized group, or a Charclass.
type Multiplicand interface {
	toDFA(alphabet symbol.Alphabet, cfg dfa.Config) (*dfa.DFA[int], error)
	collectAlphabet(runes map[rune]struct{}, anyElse *bool)
}

// toDFA lets Charclass satisfy Multiplicand.
func (c Charclass) toDFA(alphabet symbol.Alphabet, cfg dfa.Config) (*dfa.DFA[int], error) {
	return c.ToDFA(alphabet)
}

// collectAlphabet records c's literal runes into runes, and requests
// AnyElse in the implied alphabet if c is negated (a negated class's
// complement always includes AnyElse, since AnyElse never belongs to any
// explicit literal set).
func (c Charclass) collectAlphabet(runes map[rune]struct{}, anyElse *bool) {
	lits, negated := c.Literals()
	for _, r := range lits {
		runes[r] = struct{}{}
	}
	if negated {
		*anyElse = true
	}
}

// Mult is a multiplicand with a repeat range applied to it.
type Mult struct {
	Of         Multiplicand
	Multiplier Multiplier
}

// ToDFA converts m into an automaton: lower concatenated copies of its
// multiplicand, followed either by (upper-lower) further optional copies
// or, when upper is Inf, by a Kleene star of the multiplicand.
func (m Mult) ToDFA(alphabet symbol.Alphabet, cfg dfa.Config) (*dfa.DFA[int], error) {
	if err := m.Multiplier.Validate(); err != nil {
		return nil, err
	}
	unit, err := m.Of.toDFA(alphabet, cfg)
	if err != nil {
		return nil, err
	}

	lower, _ := m.Multiplier.Lower.Finite()
	head, err := dfa.Multiply(unit, lower, cfg)
	if err != nil {
		return nil, err
	}

	if m.Multiplier.Upper.IsInf() {
		tail, err := dfa.Star(unit, cfg)
		if err != nil {
			return nil, err
		}
		return dfa.Concat(head, tail, cfg)
	}

	upper, _ := m.Multiplier.Upper.Finite()
	optionalCopies := upper - lower
	if optionalCopies == 0 {
		return head, nil
	}
	optionalUnit, err := dfa.Union(unit, dfa.Epsilon(alphabet), cfg)
	if err != nil {
		return nil, err
	}
	tail, err := dfa.Multiply(optionalUnit, optionalCopies, cfg)
	if err != nil {
		return nil, err
	}
	return dfa.Concat(head, tail, cfg)
}

// collectAlphabet delegates to m's multiplicand; the multiplier itself
// (a repeat count) never contributes symbols.
func (m Mult) collectAlphabet(runes map[rune]struct{}, anyElse *bool) {
	m.Of.collectAlphabet(runes, anyElse)
}

// Conc is a sequence of Mults, concatenated in order. An empty Conc
// converts to the automaton accepting only the empty string.
type Conc struct {
	Mults []Mult
}

func (c Conc) collectAlphabet(runes map[rune]struct{}, anyElse *bool) {
	for _, m := range c.Mults {
		m.collectAlphabet(runes, anyElse)
	}
}

// ToDFA concatenates the DFAs of every Mult in order.
func (c Conc) ToDFA(alphabet symbol.Alphabet, cfg dfa.Config) (*dfa.DFA[int], error) {
	result := dfa.Epsilon(alphabet)
	for _, m := range c.Mults {
		next, err := m.ToDFA(alphabet, cfg)
		if err != nil {
			return nil, err
		}
		merged, err := dfa.Concat(result, next, cfg)
		if err != nil {
			return nil, err
		}
		result = merged
	}
	return result, nil
}

// Pattern is an alternation of Concs. A Pattern must have at least one
// Conc; an empty Pattern is invalid and ToDFA reports a ParseError for it
// since the grammar never produces one (pattern := conc ('|' conc)*
// always yields at least the first conc).
type Pattern struct {
	Concs []Conc
}

// toDFA lets Pattern satisfy Multiplicand, so a parenthesized group can
// itself be a Mult's multiplicand.
func (p Pattern) toDFA(alphabet symbol.Alphabet, cfg dfa.Config) (*dfa.DFA[int], error) {
	return p.ToDFA(alphabet, cfg)
}

func (p Pattern) collectAlphabet(runes map[rune]struct{}, anyElse *bool) {
	for _, c := range p.Concs {
		c.collectAlphabet(runes, anyElse)
	}
}

// Alphabet returns the alphabet implied by p: every literal rune named by
// any Charclass anywhere in the tree, plus symbol.AnyElse if any
// Charclass in the tree is negated. This is the alphabet ToDFA should be
// called with for a pattern whose caller has no independently-chosen
// alphabet in mind (the common case for Compile).
func (p Pattern) Alphabet() symbol.Alphabet {
	runes := map[rune]struct{}{}
	anyElse := false
	p.collectAlphabet(runes, &anyElse)
	symbols := make([]symbol.Symbol, 0, len(runes)+1)
	for r := range runes {
		symbols = append(symbols, symbol.Of(r))
	}
	if anyElse {
		symbols = append(symbols, symbol.AnyElse)
	}
	return symbol.New(symbols...)
}

// ToDFA unions the DFAs of every alternative Conc.
func (p Pattern) ToDFA(alphabet symbol.Alphabet, cfg dfa.Config) (*dfa.DFA[int], error) {
	if len(p.Concs) == 0 {
		return nil, &ParseError{Message: "pattern has no alternatives", Index: -1}
	}
	result, err := p.Concs[0].ToDFA(alphabet, cfg)
	if err != nil {
		return nil, err
	}
	for _, c := range p.Concs[1:] {
		next, err := c.ToDFA(alphabet, cfg)
		if err != nil {
			return nil, err
		}
		merged, err := dfa.Union(result, next, cfg)
		if err != nil {
			return nil, err
		}
		result = merged
	}
	return result, nil
}
