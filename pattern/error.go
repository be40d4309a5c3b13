package pattern

import "fmt"

// ParseError reports that the parser could not match the current
// production. The same type is used internally for backtracking between
// alternatives (e.g. trying a charclass production and falling back to a
// group production); it only ever reaches a caller from Parse itself,
// when the entire input was not consumed, in which case Index identifies
// the offending position.
type ParseError struct {
	Message string
	Index   int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("pattern: parse error at index %d: %s", e.Index, e.Message)
	}
	return fmt.Sprintf("pattern: parse error: %s", e.Message)
}
