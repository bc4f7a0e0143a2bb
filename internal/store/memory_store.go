package store

import (
	"context"
	"sync"
	"time"
)

type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	hub    *hub
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
		hub:    newHub(),
		now:    time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()

	s.hub.publish(Change{Key: key, Value: value, At: s.now()})
	return nil
}

func (s *MemoryStore) Subscribe(ctx context.Context, keys ...string) (<-chan Change, error) {
	return s.hub.subscribe(ctx, keys), nil
}
