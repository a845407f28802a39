package deadline

import "fmt"

// Kind classifies why a deadline expression failed to parse.
type Kind int

const (
	// InvalidTime means the time fragment matched no accepted time form.
	InvalidTime Kind = iota + 1
	// UnrecognizedDate means the date fragment is neither a known keyword
	// nor a numeric M/D/YY date.
	UnrecognizedDate
	// InvalidCalendarDate means the date fragment had the M/D/YY shape but
	// does not denote a real calendar date (e.g. 2/30/24).
	InvalidCalendarDate
)

// Error reports the fragment of the input that could not be resolved.
// Callers branch on Kind via errors.As rather than matching message text.
type Error struct {
	Kind     Kind
	Fragment string
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidTime:
		return fmt.Sprintf("invalid time format: %q", e.Fragment)
	case InvalidCalendarDate:
		return fmt.Sprintf("invalid calendar date: %q", e.Fragment)
	default:
		return fmt.Sprintf("unrecognized date: %q", e.Fragment)
	}
}
