// Package cache guarda o resultado completo do pipeline por (usuário, tipo de negócio, site).
// O TTL é consultivo: os stores nunca removem entradas vencidas, quem decide é o ResultCache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
)

var (
	ErrNotFound       = errors.New("entrada não encontrada no cache")
	ErrUnknownBackend = errors.New("backend de cache desconhecido")
)

// Store é o armazenamento chave-valor das entradas
type Store interface {
	Get(ctx context.Context, key string) (*models.CacheEntry, error)
	Put(ctx context.Context, key string, entry *models.CacheEntry) error
	Ping(ctx context.Context) error
	Close() error
}

func encodeEntry(entry *models.CacheEntry) ([]byte, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar entrada: %w", err)
	}
	return data, nil
}

func decodeEntry(data []byte) (*models.CacheEntry, error) {
	var entry models.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("erro ao desserializar entrada: %w", err)
	}
	return &entry, nil
}
