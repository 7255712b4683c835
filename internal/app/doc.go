// Package app assembles the calculator session and its interactive loop.
//
// Application owns the wiring: configuration, the file logger, the operand
// validator, the bounded history store, the undo/redo caretaker, and the
// observer notifier. The REPL in repl.go is a thin command dispatcher over
// Application methods, so every command is testable without a terminal.
package app
