package shell

import (
	"sync"
	"time"
)

// Store holds the live state of every visitor's shells. All transitions
// of one store are serialized, so two actions posted at once (an outside
// click racing a trigger click) both apply.
type Store struct {
	mu      sync.Mutex
	entries map[storeKey]*storeEntry
	now     func() time.Time
}

type storeKey struct {
	visitor string
	shell   string
}

type storeEntry struct {
	state   State
	touched time.Time
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		entries: make(map[storeKey]*storeEntry),
		now:     time.Now,
	}
}

// Get returns the state of a visitor's shell.
func (s *Store) Get(visitor, shell string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[storeKey{visitor, shell}]
	if !ok {
		return State{}, false
	}
	return e.state, true
}

// Update applies fn to the state of a visitor's shell and returns the
// result. A missing entry is created from seed first.
func (s *Store) Update(visitor, shell string, seed func() State, fn func(*State)) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := storeKey{visitor, shell}
	e, ok := s.entries[k]
	if !ok {
		e = &storeEntry{state: seed()}
		s.entries[k] = e
	}
	if fn != nil {
		fn(&e.state)
	}
	e.touched = s.now()
	return e.state
}

// Forget drops every shell state of visitor.
func (s *Store) Forget(visitor string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range s.entries {
		if k.visitor == visitor {
			delete(s.entries, k)
		}
	}
}

// Sweep drops entries untouched for longer than maxIdle and returns how
// many were dropped.
func (s *Store) Sweep(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	n := 0
	for k, e := range s.entries {
		if e.touched.Before(cutoff) {
			delete(s.entries, k)
			n++
		}
	}
	return n
}

// Len returns the number of tracked shell states.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
