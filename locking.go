package kvdb

import (
	"github.com/davidroman0O/kvdb/store"
	"github.com/sasha-s/go-deadlock"
)

// SynchronizedDatabase guards a Database with a read-write lock so it can be
// shared between goroutines. Backends do no locking of their own; this is
// the lock callers put around them.
type SynchronizedDatabase struct {
	mu   deadlock.RWMutex
	next Database
}

// Synchronized wraps db in a SynchronizedDatabase. Lookup takes the read
// lock, so db's Lookup must be safe for concurrent readers.
func Synchronized(db Database) *SynchronizedDatabase {
	return &SynchronizedDatabase{next: db}
}

// WithLocking returns a Layer that applies Synchronized.
func WithLocking() Layer {
	return func(next Database) Database {
		return Synchronized(next)
	}
}

func (d *SynchronizedDatabase) Insert(key string, value any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.next.Insert(key, value)
}

func (d *SynchronizedDatabase) Lookup(key string) (store.Value, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.next.Lookup(key)
}

func (d *SynchronizedDatabase) Remove(key string) (store.Value, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.next.Remove(key)
}

// Update runs fn with exclusive access to the wrapped Database, for
// read-modify-write sequences that must not interleave with other callers.
// fn must not call back into d.
func (d *SynchronizedDatabase) Update(fn func(db Database)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(d.next)
}
