// Package symbol provides the alphabet model shared by every automaton in
// this module: concrete symbols drawn from a user-chosen domain (commonly a
// character), plus the distinguished AnyElse sentinel standing for "any
// symbol not otherwise named".
package symbol

import (
	"sort"
	"strconv"
)

// Symbol is a single element of a DFA alphabet. A Symbol is either a
// concrete rune or the distinguished AnyElse sentinel. The zero value is
// the concrete rune 0 (NUL), not AnyElse; use AnyElse or Of to construct
// symbols explicitly.
type Symbol struct {
	r       rune
	anyElse bool
}

// AnyElse is the sentinel standing for "any symbol not in the alphabet".
// When an alphabet containing AnyElse is asked to transition on a symbol it
// does not otherwise list, the engine substitutes AnyElse for the lookup.
var AnyElse = Symbol{anyElse: true}

// Of wraps a concrete rune as a Symbol.
func Of(r rune) Symbol {
	return Symbol{r: r}
}

// IsAnyElse reports whether s is the AnyElse sentinel.
func (s Symbol) IsAnyElse() bool {
	return s.anyElse
}

// Rune returns the concrete rune this Symbol wraps, and false if s is
// AnyElse (in which case the returned rune is meaningless).
func (s Symbol) Rune() (r rune, ok bool) {
	if s.anyElse {
		return 0, false
	}
	return s.r, true
}

// String renders the symbol for debugging and for the textual DFA table.
// AnyElse has no canonical printable form in the domain it represents, so
// it renders as a fixed placeholder.
func (s Symbol) String() string {
	if s.anyElse {
		return "<anyElse>"
	}
	quoted := strconv.QuoteRune(s.r)
	return quoted[1 : len(quoted)-1]
}

// Less orders a before b, placing AnyElse strictly after every concrete
// symbol. This total order is used everywhere a deterministic symbol
// enumeration is required: crawl's per-state transition scan, textual
// pretty-printing, and word enumeration.
func Less(a, b Symbol) bool {
	if a.anyElse != b.anyElse {
		return !a.anyElse
	}
	if a.anyElse {
		return false
	}
	return a.r < b.r
}

// Alphabet is a finite set of Symbols. The AnyElse sentinel may or may not
// be a member; when present, it stands for "any symbol not otherwise
// named". Every DFA carries its own Alphabet value.
type Alphabet struct {
	set map[Symbol]struct{}
}

// New builds an Alphabet containing exactly the given symbols (duplicates
// collapse).
func New(symbols ...Symbol) Alphabet {
	set := make(map[Symbol]struct{}, len(symbols))
	for _, s := range symbols {
		set[s] = struct{}{}
	}
	return Alphabet{set: set}
}

// Runes builds an Alphabet of concrete rune symbols, optionally including
// AnyElse.
func Runes(runes string, anyElse bool) Alphabet {
	set := make(map[Symbol]struct{}, len(runes)+1)
	for _, r := range runes {
		set[Of(r)] = struct{}{}
	}
	if anyElse {
		set[AnyElse] = struct{}{}
	}
	return Alphabet{set: set}
}

// Contains reports whether sym is a member of the alphabet.
func (a Alphabet) Contains(sym Symbol) bool {
	_, ok := a.set[sym]
	return ok
}

// HasAnyElse reports whether the alphabet includes the AnyElse sentinel.
func (a Alphabet) HasAnyElse() bool {
	return a.Contains(AnyElse)
}

// Len returns the number of symbols in the alphabet.
func (a Alphabet) Len() int {
	return len(a.set)
}

// Sorted returns the alphabet's symbols in the deterministic order defined
// by Less: concrete symbols by natural rune order, AnyElse last.
func (a Alphabet) Sorted() []Symbol {
	out := make([]Symbol, 0, len(a.set))
	for s := range a.set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

// Equal reports whether a and b contain exactly the same symbols. Binary
// DFA operations require their operands' alphabets to be Equal.
func (a Alphabet) Equal(b Alphabet) bool {
	if len(a.set) != len(b.set) {
		return false
	}
	for s := range a.set {
		if _, ok := b.set[s]; !ok {
			return false
		}
	}
	return true
}

// Effective returns the symbol the engine should actually look up in a
// transition map for an observed input symbol: sym itself if it belongs to
// the alphabet, otherwise AnyElse if the alphabet carries it, otherwise sym
// unchanged (in which case the lookup is guaranteed to miss, i.e. dead
// state).
func (a Alphabet) Effective(sym Symbol) Symbol {
	if a.Contains(sym) {
		return sym
	}
	if a.HasAnyElse() {
		return AnyElse
	}
	return sym
}
