package dfa

import "testing"

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"structural", &StructuralError{Message: "bad state"}, "dfa: structural error: bad state"},
		{"alphabet mismatch", &AlphabetMismatchError{Op: "Union"}, "dfa: Union: operand alphabets disagree"},
		{"domain", &DomainError{Message: "n must be non-negative"}, "dfa: domain error: n must be non-negative"},
		{"too many states", &TooManyStatesError{Limit: 10}, "dfa: crawl exceeded MaxStates limit (10)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.err.Error(); got != c.want {
				t.Errorf("Error() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("default is valid", func(t *testing.T) {
		if err := DefaultConfig().Validate(); err != nil {
			t.Errorf("DefaultConfig should validate: %v", err)
		}
	})
	t.Run("zero MaxStates is invalid", func(t *testing.T) {
		if err := (Config{MaxStates: 0}).Validate(); err == nil {
			t.Error("MaxStates: 0 should fail validation")
		}
	})
}
