package store

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// LRUStore is a bounded store: once full, inserting a new key evicts the
// least recently used entry. Lookups count as use.
type LRUStore struct {
	id      string
	size    int
	cache   *lru.Cache[string, Value]
	onEvict func(key string, value Value)
}

// LRUOption configures an LRUStore.
type LRUOption func(*LRUStore)

// WithEvictCallback registers fn to observe evicted entries. It is not
// called for explicit removals.
func WithEvictCallback(fn func(key string, value Value)) LRUOption {
	return func(s *LRUStore) {
		s.onEvict = fn
	}
}

// WithLRUID overrides the generated instance ID.
func WithLRUID(id string) LRUOption {
	return func(s *LRUStore) {
		s.id = id
	}
}

// NewLRUStore constructs an empty store holding at most size entries.
func NewLRUStore(size int, opts ...LRUOption) (*LRUStore, error) {
	if size <= 0 {
		return nil, fmt.Errorf("lru store size must be positive, got %d", size)
	}

	s := &LRUStore{id: uuid.NewString(), size: size}
	for _, opt := range opts {
		opt(s)
	}

	cache, err := lru.New[string, Value](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	s.cache = cache
	return s, nil
}

// ID returns the instance ID of the store.
func (s *LRUStore) ID() string {
	return s.id
}

// Insert stores value under key, replacing any existing entry. A new key
// on a full store evicts the least recently used entry first.
func (s *LRUStore) Insert(key string, value any) {
	if !s.cache.Contains(key) && s.cache.Len() >= s.size {
		if k, v, ok := s.cache.RemoveOldest(); ok && s.onEvict != nil {
			s.onEvict(k, v)
		}
	}
	s.cache.Add(key, Of(value))
}

// Lookup returns the holder stored under key and marks it recently used.
func (s *LRUStore) Lookup(key string) (Value, bool) {
	return s.cache.Get(key)
}

// Remove deletes key and returns the holder it had.
func (s *LRUStore) Remove(key string) (Value, bool) {
	v, ok := s.cache.Peek(key)
	if !ok {
		return Value{}, false
	}
	s.cache.Remove(key)
	return v, true
}

// Cap returns the maximum number of entries.
func (s *LRUStore) Cap() int {
	return s.size
}

// Len returns the number of entries.
func (s *LRUStore) Len() int {
	return s.cache.Len()
}

// Keys returns every stored key in sorted order.
func (s *LRUStore) Keys() []string {
	keys := s.cache.Keys()
	slices.Sort(keys)
	return keys
}

// Clear removes all entries without reporting them as evictions.
func (s *LRUStore) Clear() {
	s.cache.Purge()
}
