package notes

import (
	"errors"
	"fmt"
)

// ErrNoMatch is reported in strict mode for a note that does not fit the format.
var ErrNoMatch = errors.New("note does not match format")

// ErrInvalidClock indicates a time token that looks like HH:MM but is not a valid clock time.
var ErrInvalidClock = errors.New("invalid clock time")

// ErrInvalidDate indicates a date token that looks like YYYY-MM-DD but is not a calendar date.
var ErrInvalidDate = errors.New("invalid date")

// ParseError reports the note that stopped a strict parse.
type ParseError struct {
	Line int // 1-based
	Note string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Note)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
