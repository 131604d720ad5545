package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/quest/pkg/domain"
)

// Store implements ports.SettingsStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Settings
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Settings),
	}
}

// Save persists the settings in memory.
func (s *Store) Save(ctx context.Context, document string, settings *domain.Settings) error {
	// Deep copy to ensure isolation, similar to serialization
	copied := settings.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[document] = copied
	return nil
}

// Load retrieves the settings from memory.
func (s *Store) Load(ctx context.Context, document string) (*domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings, ok := s.data[document]
	if !ok {
		return nil, domain.ErrSettingsNotFound
	}

	// Copy on read so callers can't mutate store state through the pointer
	return settings.Clone(), nil
}

// Delete removes the settings.
func (s *Store) Delete(ctx context.Context, document string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, document)
	return nil
}

// List returns the documents with stored settings, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	documents := make([]string, 0, len(s.data))
	for id := range s.data {
		documents = append(documents, id)
	}
	sort.Strings(documents)
	return documents, nil
}
