package memory

import (
	"context"
	"sync"
)

// Store is a slice-backed store that scans linearly and returns entries in
// insertion order. It backs tests and database-less runs.
type Store[T any] struct {
	mu    sync.Mutex
	items []T
	idOf  func(T) string
}

func NewStore[T any](idOf func(T) string) *Store[T] {
	return &Store[T]{idOf: idOf}
}

func (s *Store[T]) Create(ctx context.Context, entity T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, entity)
	return entity, nil
}

func (s *Store[T]) FindAll(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]T, len(s.items))
	copy(all, s.items)
	return all, nil
}

func (s *Store[T]) FindByID(ctx context.Context, id string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if s.idOf(item) == id {
			return item, nil
		}
	}
	var zero T
	return zero, nil
}

func (s *Store[T]) Update(ctx context.Context, entity T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if s.idOf(item) == s.idOf(entity) {
			s.items[i] = entity
			return entity, nil
		}
	}
	var zero T
	return zero, nil
}

// Save updates the entry in place or appends it when it is new.
func (s *Store[T]) Save(ctx context.Context, entity T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if s.idOf(item) == s.idOf(entity) {
			s.items[i] = entity
			return entity, nil
		}
	}
	s.items = append(s.items, entity)
	return entity, nil
}

func (s *Store[T]) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, item := range s.items {
		if s.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return nil
}

// FindWhere returns every entry matching the predicate, in insertion order.
func (s *Store[T]) FindWhere(ctx context.Context, match func(T) bool) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found []T
	for _, item := range s.items {
		if match(item) {
			found = append(found, item)
		}
	}
	return found, nil
}
