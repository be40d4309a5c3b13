package dfa

import (
	"fmt"
	"testing"

	"github.com/coregx/automata/symbol"
)

func TestEmpty(t *testing.T) {
	alphabet := ab()
	t.Run("null", func(t *testing.T) {
		if !Null(alphabet).Empty() {
			t.Error("Null should be empty")
		}
	})
	t.Run("epsilon", func(t *testing.T) {
		if Epsilon(alphabet).Empty() {
			t.Error("Epsilon should not be empty")
		}
	})
	t.Run("literal", func(t *testing.T) {
		if lit(alphabet, "a").Empty() {
			t.Error("lit(\"a\") should not be empty")
		}
	})
}

func TestEquivalent(t *testing.T) {
	alphabet := ab()
	cfg := DefaultConfig()

	t.Run("a_or_a_equivalent_a", func(t *testing.T) {
		a, err := Union(lit(alphabet, "a"), lit(alphabet, "a"), cfg)
		if err != nil {
			t.Fatalf("Union: %v", err)
		}
		eq, err := Equivalent(a, lit(alphabet, "a"), cfg)
		if err != nil {
			t.Fatalf("Equivalent: %v", err)
		}
		if !eq {
			t.Error("a|a should be equivalent to a")
		}
	})

	t.Run("a_not_equivalent_b", func(t *testing.T) {
		notEq, err := Equivalent(lit(alphabet, "a"), lit(alphabet, "b"), cfg)
		if err != nil {
			t.Fatalf("Equivalent: %v", err)
		}
		if notEq {
			t.Error("a should not be equivalent to b")
		}
	})
}

func renderWord(w []symbol.Symbol) string {
	runes := make([]rune, len(w))
	for i, sym := range w {
		r, _ := sym.Rune()
		runes[i] = r
	}
	return string(runes)
}

func TestStringsEnumeratesLengthThenLex(t *testing.T) {
	alphabet := ab()
	cfg := DefaultConfig()
	union, err := Union(lit(alphabet, "a"), lit(alphabet, "b"), cfg)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	star, err := Star(union, cfg)
	if err != nil {
		t.Fatalf("Star: %v", err)
	}

	got := Strings(star, 7)
	want := []string{"", "a", "b", "aa", "ab", "ba", "bb"}
	if len(got) != len(want) {
		t.Fatalf("len(Strings) = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		t.Run(fmt.Sprintf("index_%d", i), func(t *testing.T) {
			if renderWord(got[i]) != w {
				t.Errorf("Strings()[%d] = %q, want %q", i, renderWord(got[i]), w)
			}
		})
	}
}

func TestStringsRespectsLimit(t *testing.T) {
	got := Strings(Epsilon(ab()), 0)
	if len(got) != 0 {
		t.Errorf("Strings with limit 0 should return nothing, got %v", got)
	}
}
