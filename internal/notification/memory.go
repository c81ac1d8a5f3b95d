package notification

import (
	"context"
	"sync"
)

// MemoryStore keeps the feed in process memory. Read flags live as long
// as the process.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Item
}

// NewMemoryStore returns a store seeded with items.
func NewMemoryStore(items []Item) *MemoryStore {
	s := &MemoryStore{}
	s.items = append([]Item(nil), items...)
	return s
}

// List implements Store.
func (s *MemoryStore) List(_ context.Context) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Item(nil), s.items...), nil
}

// MarkRead implements Store.
func (s *MemoryStore) MarkRead(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}

// Replace implements Store.
func (s *MemoryStore) Replace(_ context.Context, items []Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	read := make(map[string]bool, len(s.items))
	for _, it := range s.items {
		if it.Read {
			read[it.ID] = true
		}
	}
	next := append([]Item(nil), items...)
	for i := range next {
		next[i].Read = next[i].Read || read[next[i].ID]
	}
	s.items = next
	return nil
}
