package memento

import (
	"sync"

	"github.com/dshills/abacus/internal/history"
)

// Snapshot is an immutable copy of the full history sequence at one instant.
type Snapshot struct {
	records []history.Calculation
}

// Records returns a copy of the snapshot's contents.
func (s Snapshot) Records() []history.Calculation {
	return copyRecords(s.records)
}

// Len returns the number of records in the snapshot.
func (s Snapshot) Len() int {
	return len(s.records)
}

// Originator owns the current history sequence for snapshotting.
// Every boundary crossing copies, so callers and snapshots never alias
// the live sequence.
type Originator struct {
	mu      sync.Mutex
	records []history.Calculation
}

// NewOriginator creates an Originator with an empty history.
func NewOriginator() *Originator {
	return &Originator{}
}

// Snapshot returns an independent copy of the current history.
func (o *Originator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Snapshot{records: copyRecords(o.records)}
}

// Restore replaces the current history with an independent copy of the
// snapshot's contents.
func (o *Originator) Restore(s Snapshot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.records = copyRecords(s.records)
}

// Append adds a record to the current history.
func (o *Originator) Append(c history.Calculation) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.records = append(o.records, c)
}

// All returns a copy of the current history.
func (o *Originator) All() []history.Calculation {
	o.mu.Lock()
	defer o.mu.Unlock()
	return copyRecords(o.records)
}

// ReplaceAll replaces the current history with a copy of records.
func (o *Originator) ReplaceAll(records []history.Calculation) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.records = copyRecords(records)
}

// Len returns the current history length.
func (o *Originator) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.records)
}

func copyRecords(records []history.Calculation) []history.Calculation {
	out := make([]history.Calculation, len(records))
	copy(out, records)
	return out
}
