package interpreter

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedGrid  = errors.New("malformed grid")
	ErrMalformedRobot = errors.New("malformed robot")
	ErrUnknownHeading = errors.New("unknown heading")
	ErrUnknownCommand = errors.New("unknown command")
)

// ParseError describes a line of input that could not be parsed. Kind is one
// of the Err* sentinels above, so errors.Is works on it directly.
type ParseError struct {
	Kind  error
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v %q: %v", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("%v %q", e.Kind, e.Input)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newParseError(kind error, input string, cause error) *ParseError {
	return &ParseError{Kind: kind, Input: input, Err: cause}
}

// LineError attaches the 1-based input line number to a failure.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
