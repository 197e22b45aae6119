package cache

import (
	"context"
	"sync"

	"github.com/rathernotsay21/betirement-sub000/domain/model"
	"github.com/rathernotsay21/betirement-sub000/domain/repository"
)

// MemoryStore keeps entries in process memory. Entries are never evicted;
// expired ones stay available as stale fallbacks until Clear.
type MemoryStore[T any] struct {
	mu      sync.RWMutex
	entries map[string]model.CacheEntry[T]
}

func NewMemoryStore[T any]() repository.ICacheStore[T] {
	return &MemoryStore[T]{entries: make(map[string]model.CacheEntry[T])}
}

func (s *MemoryStore[T]) Get(_ context.Context, key string) (model.CacheEntry[T], bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[key]
	return entry, ok, nil
}

func (s *MemoryStore[T]) Set(_ context.Context, key string, entry model.CacheEntry[T]) error {
	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore[T]) Clear(_ context.Context) error {
	s.mu.Lock()
	s.entries = make(map[string]model.CacheEntry[T])
	s.mu.Unlock()
	return nil
}

// Len returns the number of entries held
func (s *MemoryStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
