package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// dispatch runs one REPL line and fails the test on an unexpected error.
func dispatch(t *testing.T, app *Application, line string) string {
	t.Helper()
	out, err := app.Dispatch(line)
	if err != nil {
		t.Fatalf("Dispatch(%q) failed: %v", line, err)
	}
	return out
}

func TestDispatchOperation(t *testing.T) {
	app := newTestApp(t, Options{})

	out := dispatch(t, app, "add 2 3")
	if !strings.Contains(out, "add(2, 3) = 5") {
		t.Errorf("Dispatch(add 2 3) = %q, want the calculation string", out)
	}
}

func TestDispatchEmptyLine(t *testing.T) {
	app := newTestApp(t, Options{})

	if out := dispatch(t, app, "   "); out != "" {
		t.Errorf("blank line produced output %q", out)
	}
}

func TestDispatchExit(t *testing.T) {
	app := newTestApp(t, Options{})

	for _, line := range []string{"exit", "quit", "EXIT"} {
		if _, err := app.Dispatch(line); err != ErrQuit {
			t.Errorf("Dispatch(%q) error = %v, want ErrQuit", line, err)
		}
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	app := newTestApp(t, Options{})

	_, err := app.Dispatch("frobnicate 1 2")
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("unknown command: error = %v, want ErrUnknownCommand", err)
	}
}

func TestDispatchUsageError(t *testing.T) {
	app := newTestApp(t, Options{})

	_, err := app.Dispatch("add 1")
	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("add with one argument: error = %v, want *UsageError", err)
	}
	if usage.Command != "add" {
		t.Errorf("UsageError.Command = %q, want add", usage.Command)
	}
}

func TestDispatchHistoryAndClear(t *testing.T) {
	app := newTestApp(t, Options{})

	if out := dispatch(t, app, "history"); !strings.Contains(out, "No calculations yet") {
		t.Errorf("empty history output = %q", out)
	}

	dispatch(t, app, "add 1 2")
	dispatch(t, app, "multiply 3 4")
	out := dispatch(t, app, "history")
	if !strings.Contains(out, "add(1, 2) = 3") || !strings.Contains(out, "multiply(3, 4) = 12") {
		t.Errorf("history output missing records:\n%s", out)
	}

	if out := dispatch(t, app, "clear"); !strings.Contains(out, "History cleared") {
		t.Errorf("clear output = %q", out)
	}
	if len(app.History()) != 0 {
		t.Error("clear left records behind")
	}
}

func TestDispatchUndoRedo(t *testing.T) {
	app := newTestApp(t, Options{})

	if out := dispatch(t, app, "undo"); !strings.Contains(out, "Nothing to undo") {
		t.Errorf("undo on empty session = %q", out)
	}
	if out := dispatch(t, app, "redo"); !strings.Contains(out, "Nothing to redo") {
		t.Errorf("redo on empty session = %q", out)
	}

	dispatch(t, app, "add 2 3")
	if out := dispatch(t, app, "undo"); !strings.Contains(out, "History cleared") {
		t.Errorf("undo to empty = %q", out)
	}
	if out := dispatch(t, app, "redo"); !strings.Contains(out, "add(2, 3) = 5") {
		t.Errorf("redo output = %q", out)
	}
}

func TestDispatchSaveLoad(t *testing.T) {
	app := newTestApp(t, Options{})
	dispatch(t, app, "add 2 3")

	if out := dispatch(t, app, "save"); !strings.Contains(out, "Saved 1 records") {
		t.Errorf("save output = %q", out)
	}
	dispatch(t, app, "clear")
	if out := dispatch(t, app, "load"); !strings.Contains(out, "Loaded 1 records") {
		t.Errorf("load output = %q", out)
	}
}

func TestDispatchHelpListsOperations(t *testing.T) {
	app := newTestApp(t, Options{})

	out := dispatch(t, app, "help")
	for _, name := range []string{"add", "abs_diff", "int_divide", "undo", "save"} {
		if !strings.Contains(out, name) {
			t.Errorf("help output missing %q", name)
		}
	}
}

func TestRunLoop(t *testing.T) {
	var out bytes.Buffer
	app := newTestApp(t, Options{
		Input:  strings.NewReader("add 2 3\ndivide 1 0\nexit\n"),
		Output: &out,
	})

	if err := app.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "add(2, 3) = 5") {
		t.Errorf("run output missing result:\n%s", text)
	}
	if !strings.Contains(text, "Error:") {
		t.Errorf("run output missing error line:\n%s", text)
	}
	if !strings.Contains(text, "Goodbye.") {
		t.Errorf("run output missing farewell:\n%s", text)
	}
}

func TestRunLoopEOF(t *testing.T) {
	var out bytes.Buffer
	app := newTestApp(t, Options{
		Input:  strings.NewReader("add 1 1\n"),
		Output: &out,
	})

	if err := app.Run(); err != nil {
		t.Fatalf("Run on EOF failed: %v", err)
	}
}
