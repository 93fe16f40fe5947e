package store

import (
	"context"
	"sync"
)

// InMemory is a map-backed Store, used in tests and as a last-resort
// fallback when no database is reachable.
type InMemory struct {
	mutex  sync.RWMutex
	values map[string]string

	// GetErr / SetErr, when set, are returned by every call;
	// used in tests to simulate a broken store.
	GetErr error
	SetErr error
}

func NewInMemory() *InMemory {
	return &InMemory{
		values: make(map[string]string),
	}
}

func (s *InMemory) Get(_ context.Context, key string) (string, error) {
	if s.GetErr != nil {
		return "", s.GetErr
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (s *InMemory) Set(_ context.Context, key, value string) error {
	if s.SetErr != nil {
		return s.SetErr
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.values[key] = value
	return nil
}
