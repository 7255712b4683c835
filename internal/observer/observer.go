// Package observer provides synchronous notification of recorded
// calculations.
//
// Observers are registered once at startup and notified in registration
// order. Observer failures must never abort the interactive session, so
// side-effecting observers catch and log their own errors.
package observer

import (
	"github.com/dshills/abacus/internal/history"
)

// Observer receives each successfully recorded calculation.
type Observer interface {
	OnCalculation(c history.Calculation)
}

// Logger is the logging surface observers depend on.
type Logger interface {
	LogCalculation(op string, a, b, result float64)
	LogError(msg string)
}

// Notifier invokes a fixed set of observers synchronously, in
// registration order.
type Notifier struct {
	observers []Observer
}

// NewNotifier creates an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Register appends an observer. Nil observers are ignored.
func (n *Notifier) Register(o Observer) {
	if o != nil {
		n.observers = append(n.observers, o)
	}
}

// Len returns the number of registered observers.
func (n *Notifier) Len() int {
	return len(n.observers)
}

// Notify delivers c to every observer, in registration order.
func (n *Notifier) Notify(c history.Calculation) {
	for _, o := range n.observers {
		o.OnCalculation(c)
	}
}

// LoggingObserver records each calculation through the application logger.
type LoggingObserver struct {
	log Logger
}

// NewLoggingObserver creates a LoggingObserver.
func NewLoggingObserver(log Logger) *LoggingObserver {
	return &LoggingObserver{log: log}
}

// OnCalculation implements Observer.
func (o *LoggingObserver) OnCalculation(c history.Calculation) {
	o.log.LogCalculation(c.Operation, c.OperandA, c.OperandB, c.Result)
}

// AutoSaveObserver persists the history store after each calculation.
// Save failures are logged and swallowed: a persistence hiccup must not
// abort the user's session.
type AutoSaveObserver struct {
	store *history.Store
	path  string
	log   Logger
}

// NewAutoSaveObserver creates an AutoSaveObserver writing to path.
func NewAutoSaveObserver(store *history.Store, path string, log Logger) *AutoSaveObserver {
	return &AutoSaveObserver{store: store, path: path, log: log}
}

// OnCalculation implements Observer.
func (o *AutoSaveObserver) OnCalculation(history.Calculation) {
	if err := o.store.SaveFile(o.path); err != nil {
		o.log.LogError("auto-save failed: " + err.Error())
	}
}
