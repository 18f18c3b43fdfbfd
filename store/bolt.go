package store

import (
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

var (
	_ Store = &BoltStore{}

	boltBucketName = []byte("local")
)

// BoltStore is Store persisted in the single bucket of the bbolt database.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens or creates the bbolt store file.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bolt store, path:%s", path)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucketName)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to create bolt bucket, path:%s", path)
	}

	return &BoltStore{
		db: db,
	}, nil
}

// Get returns the value of the key.
func (s *BoltStore) Get(key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		// the value is valid only inside the transaction
		if v := tx.Bucket(boltBucketName).Get([]byte(key)); v != nil {
			value = string(v)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to get value from bolt store, key:%s", key)
	}

	return value, found, nil
}

// Set sets the value of the key.
func (s *BoltStore) Set(key, value string) error {
	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucketName).Put([]byte(key), []byte(value))
	}); err != nil {
		return errors.Wrapf(err, "failed to put value to bolt store, key:%s", key)
	}

	return nil
}

// Delete removes the key.
func (s *BoltStore) Delete(key string) error {
	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucketName).Delete([]byte(key))
	}); err != nil {
		return errors.Wrapf(err, "failed to delete value from bolt store, key:%s", key)
	}

	return nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return errors.WithStack(s.db.Close())
}
