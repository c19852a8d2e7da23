package cache

import (
	"context"
	"sync"
	"time"

	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
)

const defaultMemoryMaxSize = 1000

// MemoryStore armazena entradas serializadas em memória.
// Cada Get devolve uma cópia independente.
type MemoryStore struct {
	data    map[string]*storedEntry
	mu      sync.RWMutex
	maxSize int
}

type storedEntry struct {
	data     []byte
	storedAt time.Time
}

// NewMemoryStore cria o store. Ao atingir maxSize, a entrada gravada há mais tempo sai.
func NewMemoryStore(maxSize int) *MemoryStore {
	if maxSize <= 0 {
		maxSize = defaultMemoryMaxSize
	}
	return &MemoryStore{
		data:    make(map[string]*storedEntry),
		maxSize: maxSize,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (*models.CacheEntry, error) {
	s.mu.RLock()
	stored, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return decodeEntry(stored.data)
}

func (s *MemoryStore) Put(_ context.Context, key string, entry *models.CacheEntry) error {
	data, err := encodeEntry(entry)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[key]; !exists && len(s.data) >= s.maxSize {
		s.evictOldest()
	}

	s.data[key] = &storedEntry{data: data, storedAt: time.Now()}
	return nil
}

// evictOldest remove a entrada mais antiga
func (s *MemoryStore) evictOldest() {
	var oldestKey string
	var oldest time.Time
	for key, stored := range s.data {
		if oldestKey == "" || stored.storedAt.Before(oldest) {
			oldest = stored.storedAt
			oldestKey = key
		}
	}
	if oldestKey != "" {
		delete(s.data, oldestKey)
	}
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

// Size retorna o número de entradas
func (s *MemoryStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
