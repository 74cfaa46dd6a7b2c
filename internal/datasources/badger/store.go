package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/jbeshir/movie-userdata/internal/datasources"
)

const snapshotPrefix = "snapshot:"

var _ datasources.SnapshotRepository = (*Store)(nil)

// Store keeps user-data snapshot documents in an embedded BadgerDB.
type Store struct {
	db *badger.DB
}

// Open opens or creates the database in dir. An empty dir keeps everything in memory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badger database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing badger database: %w", err)
	}
	return nil
}

func (s *Store) LoadSnapshot(_ context.Context, key string) ([]byte, error) {
	var doc []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(snapshotPrefix + key))
		if err != nil {
			return err
		}
		doc, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot [%s]: %w", key, err)
	}
	return doc, nil
}

func (s *Store) SaveSnapshot(_ context.Context, key string, doc []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(snapshotPrefix+key), doc)
	})
	if err != nil {
		return fmt.Errorf("saving snapshot [%s]: %w", key, err)
	}
	return nil
}

func (s *Store) ListSnapshotKeys(_ context.Context) ([]string, error) {
	var keys []string
	prefix := []byte(snapshotPrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing snapshot keys: %w", err)
	}
	return keys, nil
}
