// Package memento provides snapshot-based undo/redo for the calculation
// history.
//
// The Originator owns the live history sequence and can capture it as an
// immutable Snapshot or restore from one. The Caretaker keeps two LIFO
// stacks of snapshots:
//
//	o := memento.NewOriginator()
//	c := memento.NewCaretaker(o)
//
//	o.Append(record)
//	c.Checkpoint() // record the post-mutation state; clears redo
//
//	c.Undo() // pop current state to redo, restore the previous checkpoint
//	c.Redo() // pop from redo, restore, push back onto undo
//
// Snapshots are independent deep copies; no mutable structure is shared
// between the live history and any snapshot, or between snapshots. The
// bottom entry of the undo stack is the baseline and is never undone past:
// Undo fails until at least two checkpoints exist.
//
// Full-history snapshots trade memory for simplicity. History sizes are
// small and bounded, so the O(n) copy per checkpoint avoids the
// reconciliation bugs of incremental undo logs.
package memento
