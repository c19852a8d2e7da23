package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS opportunity_cache (
	cache_key  TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	timestamp  INTEGER NOT NULL
)`

// SQLiteStore guarda as entradas numa tabela chave/payload
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore abre o banco. path vazio usa ":memory:".
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir sqlite: %w", err)
	}
	// Uma conexão: ":memory:" é por conexão e o sqlite só tem um escritor
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("erro ao aplicar %q: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("erro ao criar schema do cache: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (*models.CacheEntry, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM opportunity_cache WHERE cache_key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler do sqlite: %w", err)
	}
	return decodeEntry([]byte(payload))
}

func (s *SQLiteStore) Put(ctx context.Context, key string, entry *models.CacheEntry) error {
	data, err := encodeEntry(entry)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO opportunity_cache (cache_key, payload, timestamp)
		VALUES (?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			payload = excluded.payload,
			timestamp = excluded.timestamp`
	if _, err := s.db.ExecContext(ctx, query, key, string(data), entry.Timestamp); err != nil {
		return fmt.Errorf("erro ao gravar no sqlite: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
