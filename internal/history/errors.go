package history

import (
	"errors"
	"fmt"
)

// Errors returned by history persistence.
var (
	// ErrMissingColumn indicates a required CSV column is absent.
	ErrMissingColumn = errors.New("missing required column")

	// ErrBadRow indicates a CSV row could not be parsed into a record.
	ErrBadRow = errors.New("malformed history row")
)

// Error represents an I/O or parse failure during save or load.
type Error struct {
	Op   string // "save" or "load"
	Path string // The history file path
	Row  int    // 1-based data row number for parse failures, 0 otherwise
	Err  error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Row > 0 {
		return fmt.Sprintf("%s history %s: row %d: %v", e.Op, e.Path, e.Row, e.Err)
	}
	return fmt.Sprintf("%s history %s: %v", e.Op, e.Path, e.Err)
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
