package app

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/dshills/abacus/internal/config"
	"github.com/dshills/abacus/internal/history"
	"github.com/dshills/abacus/internal/memento"
	"github.com/dshills/abacus/internal/observer"
	"github.com/dshills/abacus/internal/operation"
	"github.com/dshills/abacus/internal/validate"
)

// Options controls Application construction.
type Options struct {
	// ConfigPath is an optional JSON configuration file.
	ConfigPath string
	// LogLevel is the minimum level written to the log file.
	LogLevel LogLevel
	// Debug lowers the log level to debug regardless of LogLevel.
	Debug bool
	// BaseDir anchors relative history/log directories. Empty means the
	// working directory.
	BaseDir string
	// Input and Output are the REPL streams. They default to stdin/stdout.
	Input  io.Reader
	Output io.Writer
}

// Application wires the calculator components into one interactive session:
// validation, operation dispatch, bounded history, undo/redo snapshots, and
// observer notification.
type Application struct {
	cfg    *config.Config
	logger *Logger

	logFile   *os.File
	closeOnce sync.Once

	validator  *validate.Validator
	store      *history.Store
	originator *memento.Originator
	caretaker  *memento.Caretaker
	notifier   *observer.Notifier

	input  io.Reader
	output io.Writer
}

// New creates an Application from the resolved configuration. Any history
// persisted at the configured path is loaded before the baseline snapshot is
// taken, so the session starts where the last one ended.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(
		config.WithFile(opts.ConfigPath),
		config.WithBaseDir(opts.BaseDir),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitialization, err)
	}

	level := opts.LogLevel
	if opts.Debug {
		level = LogLevelDebug
	}
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: open log file: %v", ErrInitialization, err)
	}
	logger := NewLogger(LoggerConfig{
		Level:  level,
		Output: logFile,
		Prefix: "abacus",
	})

	app := &Application{
		cfg:        cfg,
		logger:     logger,
		logFile:    logFile,
		validator:  validate.New(cfg.MaxInputValue),
		store:      history.NewStore(cfg.MaxHistorySize),
		originator: memento.NewOriginator(),
		notifier:   observer.NewNotifier(),
		input:      opts.Input,
		output:     opts.Output,
	}
	if app.input == nil {
		app.input = os.Stdin
	}
	if app.output == nil {
		app.output = os.Stdout
	}
	app.caretaker = memento.NewCaretaker(app.originator)

	if loaded, err := app.store.LoadFile(cfg.HistoryFile); err != nil {
		logger.LogWarning("could not load history: " + err.Error())
	} else if loaded {
		logger.Info("loaded %d history records from %s", app.store.Len(), cfg.HistoryFile)
	}
	app.originator.ReplaceAll(app.store.All())
	app.caretaker.Checkpoint()

	app.notifier.Register(observer.NewLoggingObserver(logger.WithComponent("observer")))
	if cfg.AutoSave {
		app.notifier.Register(observer.NewAutoSaveObserver(
			app.store, cfg.HistoryFile, logger.WithComponent("autosave")))
	}

	logger.Info("session started (max_history=%d, precision=%d, auto_save=%v)",
		cfg.MaxHistorySize, cfg.Precision, cfg.AutoSave)
	return app, nil
}

// Config returns the resolved configuration.
func (a *Application) Config() *config.Config {
	return a.cfg
}

// Perform validates the operand text, executes the named operation, records
// the result, checkpoints the history, and notifies observers.
func (a *Application) Perform(opName, aText, bText string) (history.Calculation, error) {
	x, y, err := a.validator.Pair(aText, bText)
	if err != nil {
		a.logger.LogError(err.Error())
		return history.Calculation{}, err
	}

	fn, err := operation.Resolve(opName)
	if err != nil {
		a.logger.LogError(err.Error())
		return history.Calculation{}, err
	}

	result, err := fn(x, y)
	if err != nil {
		a.logger.LogError(err.Error())
		return history.Calculation{}, err
	}
	result = roundTo(result, a.cfg.Precision)

	c := history.New(strings.ToLower(opName), x, y, result)
	a.store.Add(c)
	a.originator.Append(c)
	a.caretaker.Checkpoint()
	a.notifier.Notify(c)

	return c, nil
}

// History returns a copy of the recorded calculations, oldest first.
func (a *Application) History() []history.Calculation {
	return a.store.All()
}

// ClearHistory empties the history and checkpoints the empty state, so the
// clear itself is undoable.
func (a *Application) ClearHistory() {
	a.store.Clear()
	a.originator.ReplaceAll(nil)
	a.caretaker.Checkpoint()
	a.logger.Info("history cleared")
}

// Undo reverts the history to the previous checkpoint.
// Returns false when there is nothing to undo.
func (a *Application) Undo() bool {
	if !a.caretaker.Undo() {
		return false
	}
	a.store.SetAll(a.originator.All())
	a.logger.Info("undo: history restored to %d records", a.store.Len())
	return true
}

// Redo re-applies the most recently undone checkpoint.
// Returns false when there is nothing to redo.
func (a *Application) Redo() bool {
	if !a.caretaker.Redo() {
		return false
	}
	a.store.SetAll(a.originator.All())
	a.logger.Info("redo: history restored to %d records", a.store.Len())
	return true
}

// SaveHistory persists the history to the configured CSV file.
func (a *Application) SaveHistory() error {
	if err := a.store.SaveFile(a.cfg.HistoryFile); err != nil {
		a.logger.LogError("save failed: " + err.Error())
		return err
	}
	a.logger.Info("saved %d history records to %s", a.store.Len(), a.cfg.HistoryFile)
	return nil
}

// LoadHistory replaces the history with the contents of the configured CSV
// file and checkpoints the loaded state. Returns false when no file exists.
func (a *Application) LoadHistory() (bool, error) {
	loaded, err := a.store.LoadFile(a.cfg.HistoryFile)
	if err != nil {
		a.logger.LogError("load failed: " + err.Error())
		return false, err
	}
	if !loaded {
		return false, nil
	}
	a.originator.ReplaceAll(a.store.All())
	a.caretaker.Checkpoint()
	a.logger.Info("loaded %d history records from %s", a.store.Len(), a.cfg.HistoryFile)
	return true, nil
}

// Shutdown flushes and closes the application's resources. Safe to call
// more than once.
func (a *Application) Shutdown() {
	a.closeOnce.Do(func() {
		a.logger.Info("session ended")
		if a.logFile != nil {
			_ = a.logFile.Close()
		}
	})
}

// roundTo rounds v to the given number of decimal places.
// Non-finite values pass through untouched.
func roundTo(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(int32(places)).InexactFloat64()
}
