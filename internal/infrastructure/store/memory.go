package store

import (
	"context"
	"sync"
)

// MemoryStore keeps a collection in process memory. State is lost on restart;
// intended for tests and throwaway deployments.
type MemoryStore[T any] struct {
	mu      sync.RWMutex
	records []T
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{}
}

func (s *MemoryStore[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore[T]) Save(ctx context.Context, records []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]T, len(records))
	copy(s.records, records)
	return nil
}
