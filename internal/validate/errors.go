package validate

import (
	"errors"
	"fmt"
)

// Errors returned by input validation.
var (
	// ErrNotANumber indicates the input text is not parseable as a number.
	ErrNotANumber = errors.New("not a valid number")

	// ErrExceedsLimit indicates the input magnitude exceeds the configured bound.
	ErrExceedsLimit = errors.New("exceeds maximum allowed value")
)

// Error represents a rejected operand.
type Error struct {
	Input string  // The raw input text
	Limit float64 // The configured bound (set for ErrExceedsLimit)
	Err   error   // Underlying sentinel error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if errors.Is(e.Err, ErrExceedsLimit) {
		return fmt.Sprintf("input %s exceeds maximum allowed value %g", e.Input, e.Limit)
	}
	return fmt.Sprintf("%q is not a valid number", e.Input)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements errors.Is for Error.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*Error); ok {
		return e == t
	}
	return errors.Is(e.Err, target)
}
