package pattern

// Multiplier is a repeat range applied to a multiplicand: Lower to Upper
// repetitions, inclusive, with Upper possibly Inf.
type Multiplier struct {
	Lower, Upper Bound
}

// Symbolic multipliers for the "?", "*", "+" and empty-suffix quantifiers.
var (
	QuestionMark = Multiplier{Lower: NewBound(0), Upper: NewBound(1)}
	Asterisk     = Multiplier{Lower: NewBound(0), Upper: Inf}
	Plus         = Multiplier{Lower: NewBound(1), Upper: Inf}
	Once         = Multiplier{Lower: NewBound(1), Upper: NewBound(1)}
)

// Validate reports whether m is well-formed: Lower must not exceed Upper.
func (m Multiplier) Validate() error {
	if m.Upper.Less(m.Lower) {
		return &ParseError{Message: "multiplier upper bound is less than its lower bound", Index: -1}
	}
	return nil
}
