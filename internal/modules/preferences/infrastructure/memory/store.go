package memory

import (
	"context"
	"sort"
	"sync"
)

// Store keeps preferences in process memory. They are lost on restart.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
	sets   map[string]map[string]struct{}
}

func NewStore() *Store {
	return &Store{
		values: make(map[string]string),
		sets:   make(map[string]map[string]struct{}),
	}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

// Members returns the set sorted.
func (s *Store) Members(_ context.Context, set string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.sets[set]))
	for m := range s.sets[set] {
		out = append(out, m)
	}
	sort.Strings(out)
	return out, nil
}

func (s *Store) Replace(_ context.Context, set string, members []string) error {
	next := make(map[string]struct{}, len(members))
	for _, m := range members {
		next[m] = struct{}{}
	}
	s.mu.Lock()
	s.sets[set] = next
	s.mu.Unlock()
	return nil
}
