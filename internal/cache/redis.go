package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "seo:opportunities:"

// RedisStore guarda as entradas sem TTL no servidor
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore conecta e valida com PING. Aceita "host:port" ou "redis://...".
func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	if !strings.Contains(redisURL, "://") {
		redisURL = "redis://" + redisURL
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("URL do redis inválida: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("erro ao conectar no redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (*models.CacheEntry, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler do redis: %w", err)
	}
	return decodeEntry(data)
}

func (s *RedisStore) Put(ctx context.Context, key string, entry *models.CacheEntry) error {
	data, err := encodeEntry(entry)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, redisKeyPrefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("erro ao gravar no redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
