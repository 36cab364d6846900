// Package memstore is a process-local, insertion-ordered record store that
// hands out sequential decimal ids. Every method is safe for concurrent use.
package memstore

import (
	"slices"
	"strconv"
	"sync"
)

// Store keeps records of type T keyed by the id it assigned them.
// Ids start at "1" and are never reused until Reset.
type Store[T any] struct {
	mu    sync.RWMutex
	order []string
	rows  map[string]T
	next  int
}

// New returns an empty Store.
func New[T any]() *Store[T] {
	return &Store[T]{rows: make(map[string]T), next: 1}
}

// List returns a snapshot of every record in insertion order.
func (s *Store[T]) List() []T {
	return s.Find(nil)
}

// Find returns the records for which match reports true, in insertion order.
// A nil match selects everything.
func (s *Store[T]) Find(match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		row := s.rows[id]
		if match == nil || match(row) {
			out = append(out, row)
		}
	}
	return out
}

// Get returns the record stored under id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[id]
	return row, ok
}

// Insert reserves the next id, builds the record with it and stores it.
// Each guard sees every existing record under the same lock; the first
// guard error aborts the insert and the id is not consumed.
func (s *Store[T]) Insert(build func(id string) T, guards ...func(existing T) error) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, guard := range guards {
		for _, id := range s.order {
			if err := guard(s.rows[id]); err != nil {
				var zero T
				return zero, err
			}
		}
	}

	id := strconv.Itoa(s.next)
	row := build(id)
	s.next++
	s.rows[id] = row
	s.order = append(s.order, id)
	return row, nil
}

// Update replaces the record under id with mutate's result.
// It reports false when id is unknown, in which case mutate is not called.
func (s *Store[T]) Update(id string, mutate func(current T) T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return row, false
	}
	row = mutate(row)
	s.rows[id] = row
	return row, true
}

// Delete removes the record under id and reports whether it existed.
func (s *Store[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return false
	}
	delete(s.rows, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return true
}

// Reset drops every record and restarts ids at "1".
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = nil
	s.rows = make(map[string]T)
	s.next = 1
}

// Len returns the number of stored records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.rows)
}
