package memory

import (
	"context"
	"fmt"
	"sync"

	"finconnect/internal/core"
)

// Store is an in-memory EntryAppender used when no spreadsheet is configured
// and by tests.
type Store struct {
	mu    sync.Mutex
	items []core.SpendingEntry
}

func New() *Store {
	return &Store{}
}

// Append stores the entry and returns a synthetic row reference.
func (s *Store) Append(_ context.Context, e core.SpendingEntry) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, e)
	return fmt.Sprintf("mem:%d", len(s.items)), nil
}

// Entries returns a copy of everything appended so far.
func (s *Store) Entries() []core.SpendingEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.SpendingEntry(nil), s.items...)
}
