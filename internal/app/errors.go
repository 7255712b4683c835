package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the session should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrUnknownCommand indicates an unrecognized REPL command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInitialization indicates a startup failure.
	ErrInitialization = errors.New("initialization failed")
)

// UsageError indicates a command was invoked with the wrong arguments.
type UsageError struct {
	Command string // The command name
	Usage   string // The expected invocation
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s requires 2 arguments. Usage: %s", e.Command, e.Usage)
}
