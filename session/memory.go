package session

import (
	"context"
	"sync"

	"bistro-api/models"
)

// MemoryStore keeps blobs in process memory. Used when no redis is configured
// and in tests.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) ([]models.CartLine, error) {
	s.mu.Lock()
	data, ok := s.blobs[key(sessionID)]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return decode(data)
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, lines []models.CartLine) error {
	data, err := encode(lines)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.blobs[key(sessionID)] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.blobs, key(sessionID))
	s.mu.Unlock()
	return nil
}
