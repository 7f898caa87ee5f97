package storage

import (
	"context"
	"errors"

	bolt "go.etcd.io/bbolt"

	"listing-marketplace/internal/domain"
)

var boltBucket = []byte("kv")

// BoltStore implements KeyValueStore on an embedded bbolt file.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore creates a BoltStore and ensures its bucket exists.
func NewBoltStore(db *bolt.DB) (*BoltStore, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		return nil, wrapErr(BackendBolt, "create bucket", err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Name() string { return BackendBolt }

func (s *BoltStore) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(boltBucket).Get([]byte(key))
		if v == nil {
			return domain.ErrKeyNotFound
		}
		// v is only valid for the life of the transaction
		out = make([]byte, len(v))
		copy(out, v)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, err
		}
		return nil, wrapErr(BackendBolt, "get", err)
	}
	return out, nil
}

func (s *BoltStore) Put(_ context.Context, key string, value []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), value)
	})
	if err != nil {
		return wrapErr(BackendBolt, "put", err)
	}
	return nil
}

func (s *BoltStore) Delete(_ context.Context, key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Delete([]byte(key))
	})
	if err != nil {
		return wrapErr(BackendBolt, "delete", err)
	}
	return nil
}

func (s *BoltStore) Ping(context.Context) error {
	return s.db.View(func(*bolt.Tx) error { return nil })
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
