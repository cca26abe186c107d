package pagestore

import (
	"context"
	"sync"
)

// MemoryStore keeps pages in a map. It is safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	pages map[string]Page
}

// NewMemoryStore returns an empty store.
func NewMemoryStore(pages ...Page) *MemoryStore {
	s := &MemoryStore{pages: make(map[string]Page, len(pages))}
	for _, p := range pages {
		s.pages[p.Title] = p
	}
	return s
}

// Get returns a page by title.
func (s *MemoryStore) Get(_ context.Context, title string) (Page, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pages[title]
	return p, ok, nil
}

// Put stores a page.
func (s *MemoryStore) Put(_ context.Context, p Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[p.Title] = p
	return nil
}

// Len returns the number of pages.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pages)
}

// Close does nothing.
func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
