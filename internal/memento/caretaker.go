package memento

import "sync"

// Caretaker manages undo/redo snapshot stacks for an Originator.
//
// Checkpoint is called after each history mutation, so the top of the undo
// stack always mirrors the originator's last recorded state. Both stacks
// start empty; the first checkpoint becomes the baseline and can never be
// undone past.
type Caretaker struct {
	mu sync.Mutex

	originator *Originator
	undoStack  []Snapshot
	redoStack  []Snapshot
}

// NewCaretaker creates a Caretaker for the given originator.
func NewCaretaker(o *Originator) *Caretaker {
	return &Caretaker{originator: o}
}

// Checkpoint pushes a snapshot of the originator's current state onto the
// undo stack and clears the redo stack: any forward mutation invalidates
// previously undone futures.
func (c *Caretaker) Checkpoint() {
	snap := c.originator.Snapshot()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.undoStack = append(c.undoStack, snap)
	c.redoStack = nil
}

// Undo restores the originator to the previous checkpoint.
// Returns false when fewer than two snapshots exist: the baseline is never
// undone past. Otherwise the current (top) snapshot moves to the redo stack
// and the originator is restored to the new top, which stays on the stack.
func (c *Caretaker) Undo() bool {
	c.mu.Lock()
	if len(c.undoStack) <= 1 {
		c.mu.Unlock()
		return false
	}

	top := c.undoStack[len(c.undoStack)-1]
	c.undoStack = c.undoStack[:len(c.undoStack)-1]
	c.redoStack = append(c.redoStack, top)
	prev := c.undoStack[len(c.undoStack)-1]
	c.mu.Unlock()

	c.originator.Restore(prev)
	return true
}

// Redo restores the originator to the most recently undone checkpoint.
// Returns false when the redo stack is empty. The restored snapshot moves
// back onto the undo stack.
func (c *Caretaker) Redo() bool {
	c.mu.Lock()
	if len(c.redoStack) == 0 {
		c.mu.Unlock()
		return false
	}

	top := c.redoStack[len(c.redoStack)-1]
	c.redoStack = c.redoStack[:len(c.redoStack)-1]
	c.undoStack = append(c.undoStack, top)
	c.mu.Unlock()

	c.originator.Restore(top)
	return true
}

// CanUndo returns true if undo is available.
func (c *Caretaker) CanUndo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.undoStack) > 1
}

// CanRedo returns true if redo is available.
func (c *Caretaker) CanRedo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.redoStack) > 0
}

// UndoCount returns the number of snapshots on the undo stack.
func (c *Caretaker) UndoCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.undoStack)
}

// RedoCount returns the number of snapshots on the redo stack.
func (c *Caretaker) RedoCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.redoStack)
}
