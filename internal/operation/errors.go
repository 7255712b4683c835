package operation

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by arithmetic operations.
var (
	// ErrUnknownOperation indicates the operation name is not registered.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrDivisionByZero indicates a zero divisor or denominator.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrZerothRoot indicates a root operation with degree zero.
	ErrZerothRoot = errors.New("cannot calculate 0th root")

	// ErrEvenRootOfNegative indicates an even root of a negative number.
	ErrEvenRootOfNegative = errors.New("cannot calculate even root of negative number")

	// ErrNonFiniteResult indicates the mathematical result is not a finite real.
	ErrNonFiniteResult = errors.New("result is not a finite real number")
)

// UnknownError is returned when an operation name is not registered.
type UnknownError struct {
	Name  string   // The requested operation name
	Valid []string // The registered operation names
}

// Error implements the error interface.
func (e *UnknownError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown operation: %s (available operations: %s)",
		e.Name, strings.Join(e.Valid, ", "))
}

// Is implements error matching for UnknownError.
func (e *UnknownError) Is(target error) bool {
	return target == ErrUnknownOperation
}

// Error represents a domain violation within an arithmetic operation.
type Error struct {
	Name     string  // Operation name (e.g., "divide")
	OperandA float64 // First operand
	OperandB float64 // Second operand
	Err      error   // Underlying sentinel error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Name == "" {
		return fmt.Sprintf("operation: %v", e.Err)
	}
	return fmt.Sprintf("%s(%g, %g): %v", e.Name, e.OperandA, e.OperandB, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements errors.Is for Error.
// Matches both the wrapper itself and the wrapped sentinel.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*Error); ok {
		return e == t
	}
	return errors.Is(e.Err, target)
}
