package substat

import (
	"errors"
	"fmt"
)

// Reasons reported by MalformedLineError.
var (
	ErrMissingSeparator = errors.New("missing '+' separator")
	ErrInvalidNumber    = errors.New("invalid number")
)

// MalformedLineError reports a line that could not be turned into a Substat.
// Line is 1-based and counts every line of the block, blank ones included.
type MalformedLineError struct {
	Line int
	Text string
	Err  error
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *MalformedLineError) Unwrap() error {
	return e.Err
}
