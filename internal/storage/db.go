// Package storage provides the key-value backends that hold wallet records.
package storage

import "errors"

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("key not found")

// DB is the interface for key-value storage.
type DB interface {
	Get(key []byte) ([]byte, error)
	Put(key, value []byte) error
	Delete(key []byte) error
	Has(key []byte) (bool, error)
	// ForEach iterates over all keys with the given prefix.
	// The callback receives a copy of the key and value.
	// Return a non-nil error from fn to stop iteration early.
	ForEach(prefix []byte, fn func(key, value []byte) error) error
	Close() error
}

// Batch collects writes that are applied together on Commit.
type Batch interface {
	Put(key, value []byte) error
	Delete(key []byte) error
	Commit() error
}

// Batcher is implemented by backends that support atomic batches.
type Batcher interface {
	NewBatch() Batch
}

// Open returns a DB for the named backend. Path is ignored for "memory".
func Open(backend, path string) (DB, error) {
	switch backend {
	case "memory":
		return NewMemory(), nil
	case "badger", "":
		return NewBadger(path)
	default:
		return nil, errors.New("unknown storage backend: " + backend)
	}
}
