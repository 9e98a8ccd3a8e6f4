// Package store provides the storage engines behind kvdb.
//
// Values of unrelated Go types live side by side in one store. Each value is
// wrapped in a Value that remembers the concrete reflect.Type it was stored
// with, and reads recover it with As, which only succeeds when the requested
// type is exactly the stored one:
//
//	s := store.NewKVStore()
//	s.Insert("age", int32(42))
//
//	v, _ := s.Lookup("age")
//	age, ok := store.As[int32](v)  // 42, true
//	_, ok = store.As[int64](v)     // 0, false: no conversion between types
//
// Two engines are provided:
//
//   - KVStore: an unbounded map-backed store with introspection helpers
//     (Keys, ListTypes, KeysByType, TypeSchema) and deep cloning
//     (Clone, CopyFrom).
//   - LRUStore: a bounded store that evicts the least recently used entry
//     once full.
//
// KVStore does no locking. A store is owned by one goroutine at a time;
// shared use needs an external lock such as kvdb.Synchronized.
package store
