package dfa

import (
	"strconv"
	"testing"

	"github.com/coregx/automata/symbol"
)

// evenAs builds, via Crawl, the DFA accepting strings over {a,b} with an
// even number of a's. The meta-state is the parity bit itself.
func evenAs(t *testing.T) *DFA[int] {
	t.Helper()
	d, err := Crawl(ab(), DefaultConfig(), 0,
		func(parity int) string { return strconv.Itoa(parity) },
		func(parity int) bool { return parity == 0 },
		func(parity int, sym symbol.Symbol) int {
			if sym == symbol.Of('a') {
				return 1 - parity
			}
			return parity
		})
	if err != nil {
		t.Fatalf("Crawl: %v", err)
	}
	return d
}

func TestCrawlKeyCollapsesAllMetaStatesToOne(t *testing.T) {
	// The key function below is deliberately broken (constant), so Crawl
	// must collapse every meta-state to a single DFA state. This directly
	// exercises the "two meta-states are equal iff their keys are equal"
	// contract, not the usual happy path.
	d, err := Crawl(ab(), DefaultConfig(), 0,
		func(int) string { return "same" },
		func(int) bool { return true },
		func(s int, sym symbol.Symbol) int { return s + 1 })
	if err != nil {
		t.Fatalf("Crawl: %v", err)
	}
	if len(d.States) != 1 {
		t.Errorf("len(States) = %d, want 1", len(d.States))
	}
}

func TestCrawlEvenAsAccepts(t *testing.T) {
	d := evenAs(t)
	cases := []struct {
		word   string
		accept bool
	}{
		{"", true},
		{"a", false},
		{"aa", true},
		{"aba", true},
		{"abab", true},
		{"b", true},
		{"bb", true},
	}
	for _, c := range cases {
		t.Run(c.word, func(t *testing.T) {
			word := make([]symbol.Symbol, len(c.word))
			for i, r := range c.word {
				word[i] = symbol.Of(r)
			}
			if got := d.Accepts(word); got != c.accept {
				t.Errorf("Accepts(%q) = %v, want %v", c.word, got, c.accept)
			}
		})
	}
}

func TestCrawlRespectsMaxStates(t *testing.T) {
	cfg := Config{MaxStates: 1}
	_, err := Crawl(ab(), cfg, 0,
		func(n int) string { return string(rune(n)) },
		func(n int) bool { return false },
		func(n int, sym symbol.Symbol) int { return n + 1 })
	if err == nil {
		t.Fatal("expected TooManyStatesError")
	}
	if _, ok := err.(*TooManyStatesError); !ok {
		t.Errorf("got %T, want *TooManyStatesError", err)
	}
}
