package cache

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
)

// DefaultTTL é a validade de um resultado
const DefaultTTL = 7 * 24 * time.Hour

// ResultCache aplica o TTL consultivo sobre um Store.
// Falhas de leitura ou escrita são logadas e tratadas como miss ou escrita ignorada.
type ResultCache struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

// NewResultCache cria o cache. ttl <= 0 usa DefaultTTL; now nil usa time.Now.
func NewResultCache(store Store, ttl time.Duration, now func() time.Time) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &ResultCache{store: store, ttl: ttl, now: now}
}

// Lookup retorna a entrada se existir e tiver menos que o TTL. Nunca remove entradas vencidas.
func (c *ResultCache) Lookup(ctx context.Context, key string) (*models.CacheEntry, bool) {
	entry, err := c.Peek(ctx, key)
	if err != nil || entry == nil {
		return nil, false
	}
	if !c.IsFresh(entry) {
		log.Debug("entrada de cache vencida", "key", key, "age", entry.Age(c.now()))
		return nil, false
	}
	return entry, true
}

// Peek lê a entrada sem considerar o TTL. Retorna nil, nil quando não existe.
func (c *ResultCache) Peek(ctx context.Context, key string) (*models.CacheEntry, error) {
	entry, err := c.store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Warn("falha ao ler cache", "key", key, "error", err)
		return nil, err
	}
	return entry, nil
}

// IsFresh indica se a entrada ainda está dentro do TTL
func (c *ResultCache) IsFresh(entry *models.CacheEntry) bool {
	return entry.Age(c.now()) < c.ttl
}

// Save grava a entrada. Erros são apenas logados.
func (c *ResultCache) Save(ctx context.Context, entry *models.CacheEntry) {
	if err := c.store.Put(ctx, entry.Key, entry); err != nil {
		log.Warn("falha ao gravar cache", "key", entry.Key, "error", err)
	}
}

// Ping verifica o store subjacente
func (c *ResultCache) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}

// Now expõe o relógio do cache para o cálculo da idade das entradas
func (c *ResultCache) Now() time.Time {
	return c.now()
}
