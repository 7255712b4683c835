package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration loading.
var (
	// ErrInvalidValue indicates a setting could not be parsed or is out of range.
	ErrInvalidValue = errors.New("invalid configuration value")
)

// Error represents an invalid configuration setting.
type Error struct {
	Key   string // The setting name (env var or JSON key)
	Value string // The raw offending value
	Err   error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("config %s=%q: %v", e.Key, e.Value, e.Err)
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
