package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"builtins/internal/port"
)

var (
	bucketObjects = []byte("objects")
	bucketMeta    = []byte("meta")
)

// BoltStore caches per-file extraction results in a bbolt database.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketObjects, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// GetObject returns the cached result for path. The bool is false on a miss.
func (s *BoltStore) GetObject(path string) (port.CachedObject, bool, error) {
	var obj port.CachedObject
	found := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketObjects).Get([]byte(path))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("corrupt cache entry for %s: %w", path, err)
		}
		found = true
		return nil
	})
	return obj, found, err
}

func (s *BoltStore) PutObject(path string, obj port.CachedObject) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketObjects).Put([]byte(path), data)
	})
}

func (s *BoltStore) DeleteObject(path string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketObjects).Delete([]byte(path))
	})
}

// ListPaths returns every cached path in key order.
func (s *BoltStore) ListPaths() ([]string, error) {
	var paths []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketObjects).ForEach(func(k, _ []byte) error {
			paths = append(paths, string(k))
			return nil
		})
	})
	return paths, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
