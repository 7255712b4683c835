package history

import "sync"

// DefaultMaxSize is the history bound applied when none is configured.
const DefaultMaxSize = 100

// Store is an ordered, size-bounded collection of Calculation records.
// Insertion order is chronological order. The store never holds more than
// maxSize records; appending beyond the bound drops the oldest entries.
type Store struct {
	mu      sync.Mutex
	records []Calculation
	maxSize int
}

// NewStore creates a Store with the given bound.
// Non-positive bounds fall back to DefaultMaxSize.
func NewStore(maxSize int) *Store {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Store{maxSize: maxSize}
}

// Add appends a record, retaining only the trailing maxSize records.
func (s *Store) Add(c Calculation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, c)
	if len(s.records) > s.maxSize {
		excess := len(s.records) - s.maxSize
		s.records = s.records[excess:]
	}
}

// All returns a copy of the stored records.
// Mutating the result never affects stored state.
func (s *Store) All() []Calculation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Clear empties the store.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}

// SetAll replaces the contents wholesale with a copy of records.
// Used when restoring after undo/redo or after a load.
func (s *Store) SetAll(records []Calculation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]Calculation, len(records))
	copy(s.records, records)
}

// MaxSize returns the configured bound.
func (s *Store) MaxSize() int {
	return s.maxSize
}

// copyLocked returns a copy of the record slice without acquiring the lock.
func (s *Store) copyLocked() []Calculation {
	out := make([]Calculation, len(s.records))
	copy(out, s.records)
	return out
}
