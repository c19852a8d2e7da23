package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
)

const badgerKeyPrefix = "opportunities:"

// BadgerStore é o store embutido em disco
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore abre o banco em path. path vazio abre em memória.
func NewBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir badger: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Get(_ context.Context, key string) (*models.CacheEntry, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(badgerKeyPrefix + key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler do badger: %w", err)
	}
	return decodeEntry(data)
}

func (s *BadgerStore) Put(_ context.Context, key string, entry *models.CacheEntry) error {
	data, err := encodeEntry(entry)
	if err != nil {
		return err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(badgerKeyPrefix+key), data)
	})
	if err != nil {
		return fmt.Errorf("erro ao gravar no badger: %w", err)
	}
	return nil
}

func (s *BadgerStore) Ping(context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger fechado")
	}
	return nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
