package pattern

import "github.com/coregx/automata/symbol"

func symOf(r rune) symbol.Symbol {
	return symbol.Of(r)
}
