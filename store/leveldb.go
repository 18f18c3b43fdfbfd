package store

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
)

var _ Store = &LevelDBStore{}

// LevelDBStore is Store persisted in the LevelDB.
type LevelDBStore struct {
	db *leveldb.DB
}

// NewLevelDBStore opens or creates the LevelDB store at the path.
func NewLevelDBStore(path string) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open leveldb store, path:%s", path)
	}

	return &LevelDBStore{
		db: db,
	}, nil
}

// Get returns the value of the key.
func (s *LevelDBStore) Get(key string) (string, bool, error) {
	value, err := s.db.Get([]byte(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to get value from leveldb store, key:%s", key)
	}

	return string(value), true, nil
}

// Set sets the value of the key.
func (s *LevelDBStore) Set(key, value string) error {
	if err := s.db.Put([]byte(key), []byte(value), nil); err != nil {
		return errors.Wrapf(err, "failed to put value to leveldb store, key:%s", key)
	}

	return nil
}

// Delete removes the key.
func (s *LevelDBStore) Delete(key string) error {
	if err := s.db.Delete([]byte(key), nil); err != nil {
		return errors.Wrapf(err, "failed to delete value from leveldb store, key:%s", key)
	}

	return nil
}

// Close closes the underlying database.
func (s *LevelDBStore) Close() error {
	return errors.WithStack(s.db.Close())
}
