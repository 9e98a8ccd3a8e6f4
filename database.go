package kvdb

import (
	"errors"
	"fmt"

	"github.com/davidroman0O/kvdb/store"
)

var (
	// ErrNotFound is returned by Get when no entry exists for a key.
	ErrNotFound = store.ErrNotFound
	// ErrTypeMismatch is wrapped by Get when the entry holds another type.
	ErrTypeMismatch = store.ErrTypeMismatch
)

// Database is the set of operations a storage backend must support.
// store.KVStore and store.LRUStore implement it, as does every Layer.
type Database interface {
	// Insert stores value under key, replacing any existing entry and its type.
	Insert(key string, value any)

	// Lookup returns the type-erased holder stored under key.
	Lookup(key string) (store.Value, bool)

	// Remove deletes key and returns the holder it had.
	Remove(key string) (store.Value, bool)
}

// Key is the set of string-like key types accepted by Insert.
type Key interface {
	~string | ~[]byte
}

// Insert stores value under a string-like key.
func Insert[K Key](db Database, key K, value any) {
	db.Insert(string(key), value)
}

// GetAs returns the value stored under key when its concrete type is exactly
// T. A missing key and a value of another type both yield the zero T and
// false.
//
// Reference types (pointers, maps, slices) are returned as stored, so the
// caller shares them with the database until the entry is overwritten or
// removed. Other values are copies.
func GetAs[T any](db Database, key string) (T, bool) {
	v, ok := db.Lookup(key)
	if !ok {
		var zero T
		return zero, false
	}
	return store.As[T](v)
}

// Get is GetAs with a reason: an error wrapping ErrNotFound for a missing
// key, one wrapping ErrTypeMismatch when the stored type is not T.
func Get[T any](db Database, key string) (T, error) {
	var zero T

	v, ok := db.Lookup(key)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrNotFound, key)
	}

	if err := store.Check(v, store.TypeFor[T]()); err != nil {
		return zero, err
	}

	result, _ := store.As[T](v)
	return result, nil
}

// GetOrDefault retrieves a value of type T for the given key, falling back to
// defaultValue when the key is missing. A type mismatch is still an error.
func GetOrDefault[T any](db Database, key string, defaultValue T) (T, error) {
	value, err := Get[T](db, key)
	if errors.Is(err, ErrNotFound) {
		return defaultValue, nil
	}
	return value, err
}
