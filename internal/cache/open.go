package cache

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Backends suportados
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Options seleciona e configura o backend
type Options struct {
	Backend    string
	BadgerPath string
	SQLitePath string
	RedisURL   string
	MemoryMax  int
}

// Open cria o Store do backend escolhido. Backend vazio usa memória.
func Open(ctx context.Context, opts Options) (Store, error) {
	backend := strings.ToLower(strings.TrimSpace(opts.Backend))
	if backend == "" {
		backend = BackendMemory
	}

	log.Info("abrindo cache de oportunidades", "backend", backend)

	switch backend {
	case BackendMemory:
		return NewMemoryStore(opts.MemoryMax), nil
	case BackendBadger:
		store, err := NewBadgerStore(opts.BadgerPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendSQLite:
		store, err := NewSQLiteStore(ctx, opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendRedis:
		if opts.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL é obrigatória para o backend redis")
		}
		store, err := NewRedisStore(ctx, opts.RedisURL)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, opts.Backend)
	}
}
