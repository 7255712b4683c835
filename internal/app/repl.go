package app

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/abacus/internal/operation"
)

// REPL output styles.
var (
	resultStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
)

const prompt = "abacus> "

// Dispatch parses one input line and executes it, returning the text to
// print. An empty line returns ("", nil). Exit requests return ErrQuit.
func (a *Application) Dispatch(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "help":
		return a.helpText(), nil
	case "exit", "quit":
		return "", ErrQuit
	case "history":
		return a.historyText(), nil
	case "clear":
		a.ClearHistory()
		return noticeStyle.Render("History cleared."), nil
	case "undo":
		if !a.Undo() {
			return noticeStyle.Render("Nothing to undo."), nil
		}
		return noticeStyle.Render("Undone: " + a.currentStateText()), nil
	case "redo":
		if !a.Redo() {
			return noticeStyle.Render("Nothing to redo."), nil
		}
		return noticeStyle.Render("Redone: " + a.currentStateText()), nil
	case "save":
		if err := a.SaveHistory(); err != nil {
			return "", err
		}
		return noticeStyle.Render(fmt.Sprintf("Saved %d records to %s.", a.store.Len(), a.cfg.HistoryFile)), nil
	case "load":
		loaded, err := a.LoadHistory()
		if err != nil {
			return "", err
		}
		if !loaded {
			return noticeStyle.Render("No saved history found."), nil
		}
		return noticeStyle.Render(fmt.Sprintf("Loaded %d records.", a.store.Len())), nil
	}

	if _, err := operation.Resolve(cmd); err != nil {
		return "", fmt.Errorf("%w: %q (try 'help')", ErrUnknownCommand, cmd)
	}
	if len(args) != 2 {
		return "", &UsageError{Command: cmd, Usage: cmd + " <a> <b>"}
	}

	c, err := a.Perform(cmd, args[0], args[1])
	if err != nil {
		return "", err
	}
	return resultStyle.Render(c.String()), nil
}

// Run drives the interactive loop until the input ends or the user exits.
func (a *Application) Run() error {
	fmt.Fprintln(a.output, headingStyle.Render("abacus interactive calculator"))
	fmt.Fprintln(a.output, "Type 'help' for commands, 'exit' to quit.")

	scanner := bufio.NewScanner(a.input)
	for {
		fmt.Fprint(a.output, promptStyle.Render(prompt))
		if !scanner.Scan() {
			break
		}

		out, err := a.Dispatch(scanner.Text())
		switch {
		case errors.Is(err, ErrQuit):
			fmt.Fprintln(a.output, "Goodbye.")
			return nil
		case err != nil:
			fmt.Fprintln(a.output, errorStyle.Render("Error: "+err.Error()))
		case out != "":
			fmt.Fprintln(a.output, out)
		}
	}
	return scanner.Err()
}

// historyText formats the recorded calculations, oldest first.
func (a *Application) historyText() string {
	records := a.History()
	if len(records) == 0 {
		return noticeStyle.Render("No calculations yet.")
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("History"))
	for i, c := range records {
		b.WriteString(fmt.Sprintf("\n%3d. %s", i+1, c.String()))
	}
	return b.String()
}

// currentStateText summarizes the history after an undo or redo.
func (a *Application) currentStateText() string {
	records := a.History()
	if len(records) == 0 {
		return "History cleared"
	}
	last := records[len(records)-1]
	return fmt.Sprintf("%d records, last %s", len(records), last.String())
}

// helpText lists the available commands and operations.
func (a *Application) helpText() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Operations") + "\n")
	for _, name := range operation.Names() {
		b.WriteString(fmt.Sprintf("  %-11s %s <a> <b>\n", name, name))
	}
	b.WriteString(headingStyle.Render("Commands") + "\n")
	b.WriteString("  history     show recorded calculations\n")
	b.WriteString("  clear       clear the history\n")
	b.WriteString("  undo        revert the last change\n")
	b.WriteString("  redo        re-apply an undone change\n")
	b.WriteString("  save        write history to disk\n")
	b.WriteString("  load        read history from disk\n")
	b.WriteString("  help        show this help\n")
	b.WriteString("  exit        quit")
	return b.String()
}
