// Package automata ties the regex surface syntax in package pattern to
// the DFA algebra in package dfa: Compile parses a pattern, infers the
// alphabet its charclasses imply, and folds the pattern tree down to a
// single minimized automaton ready for Accepts, Strings, and every other
// operation package dfa exports.
//
// coregex's own Compile/MustCompile pair inspired this facade's shape
// (parse once, wrap a single error path, panic with pattern context on
// Must); this package's Compile returns the automaton itself rather than
// a handle wrapping a matching engine, since this library computes
// languages rather than match positions.
package automata

import (
	"fmt"

	"github.com/coregx/automata/dfa"
	"github.com/coregx/automata/pattern"
)

// Compile parses source as a regex pattern (see package pattern for the
// surface grammar) and converts it to a minimized DFA over the alphabet
// implied by the literal runes and negated classes appearing in source.
//
// Compile is equivalent to CompileWithConfig(source, pattern.DefaultConfig(), dfa.DefaultConfig()).
func Compile(source string) (*dfa.DFA[int], error) {
	return CompileWithConfig(source, pattern.DefaultConfig(), dfa.DefaultConfig())
}

// CompileWithConfig is Compile with caller-supplied parser recursion and
// crawl resource limits.
func CompileWithConfig(source string, pcfg pattern.Config, dcfg dfa.Config) (*dfa.DFA[int], error) {
	if err := dcfg.Validate(); err != nil {
		return nil, err
	}
	pat, err := pattern.ParseWithConfig(source, pcfg)
	if err != nil {
		return nil, err
	}
	alphabet := pat.Alphabet()
	d, err := pat.ToDFA(alphabet, dcfg)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// MustCompile is like Compile but panics if source cannot be compiled.
// It is intended for patterns known to be valid at compile time, such as
// ones embedded as Go string literals.
func MustCompile(source string) *dfa.DFA[int] {
	d, err := Compile(source)
	if err != nil {
		panic(fmt.Sprintf("automata: Compile(%q): %v", source, err))
	}
	return d
}
