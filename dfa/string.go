package dfa

import (
	"fmt"
	"strings"
)

// String renders d as a table: one row per state, one column per
// alphabet symbol in sorted order (ANY_ELSE last when the alphabet
// contains it), with cells separated by tabs and the initial
// state marked by a leading "*" and final states marked by a trailing
// "*". It exists for debugging and test failure output, not as a
// serialization format.
func (d *DFA[S]) String() string {
	states := sortedStates(d, func(a, b S) bool {
		return fmt.Sprintf("%v", a) < fmt.Sprintf("%v", b)
	})
	order := d.Alphabet.Sorted()

	var b strings.Builder
	header := []string{"state"}
	for _, sym := range order {
		header = append(header, sym.String())
	}
	fmt.Fprintln(&b, strings.Join(header, "\t"))

	for _, s := range states {
		marker := " "
		if s == d.Initial {
			marker = "*"
		}
		row := []string{fmt.Sprintf("%s%v", marker, s)}
		for _, sym := range order {
			next, ok := d.Step(s, sym)
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, fmt.Sprintf("%v", next))
		}
		if d.IsFinal(s) {
			row[0] += "*"
		}
		fmt.Fprintln(&b, strings.Join(row, "\t"))
	}
	return b.String()
}
