package dfa

import "github.com/coregx/automata/symbol"

// lit builds the DFA accepting exactly the single literal string s over
// alphabet, used throughout the operation tests below as small,
// easy-to-reason-about operands.
func lit(alphabet symbol.Alphabet, s string) *DFA[int] {
	runes := []rune(s)
	n := len(runes)
	states := make([]int, n+2)
	for i := range states {
		states[i] = i
	}
	dead := n + 1
	transitions := make(map[int]map[symbol.Symbol]int, n+2)
	for i := 0; i <= n; i++ {
		row := make(map[symbol.Symbol]int, alphabet.Len())
		for _, sym := range alphabet.Sorted() {
			row[sym] = dead
		}
		if i < n {
			row[symbol.Of(runes[i])] = i + 1
		}
		transitions[i] = row
	}
	deadRowMap := make(map[symbol.Symbol]int, alphabet.Len())
	for _, sym := range alphabet.Sorted() {
		deadRowMap[sym] = dead
	}
	transitions[dead] = deadRowMap

	d, err := New(alphabet, states, 0, []int{n}, transitions)
	if err != nil {
		panic(err)
	}
	return d
}

func word(s string) []symbol.Symbol {
	word := make([]symbol.Symbol, len(s))
	for i, r := range s {
		word[i] = symbol.Of(r)
	}
	return word
}
