package store

import (
	"context"
	"strings"
	"sync"
)

// MemoryStore keeps chunks in process memory. It is the backend of choice
// for tests and ephemeral serving.
type MemoryStore struct {
	mutex  sync.RWMutex
	chunks map[string][]byte
	closed bool
}

// NewMemoryStore returns an empty in-memory chunk store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{chunks: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}
	data, ok := s.chunks[key]
	if !ok {
		return nil, ErrChunkNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryStore) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	s.chunks[key] = stored
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	if _, ok := s.chunks[key]; !ok {
		return ErrChunkNotFound
	}
	delete(s.chunks, key)
	return nil
}

func (s *MemoryStore) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}
	keys := make([]string, 0, len(s.chunks))
	for key := range s.chunks {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (s *MemoryStore) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.closed = true
	s.chunks = nil
	return nil
}
