// Package kvdb provides a heterogeneous in-process key-value database.
//
// One database holds values of unrelated Go types under string keys. The
// caller names the type it expects when reading, and the read succeeds only
// when the stored value has exactly that type:
//
//	db := store.NewKVStore()
//	db.Insert("dog", "annie")
//	db.Insert("age", int32(42))
//
//	name, ok := kvdb.GetAs[string](db, "dog")  // "annie", true
//	_, ok = kvdb.GetAs[int64](db, "age")       // 0, false
//
// Core components include:
//   - Database: the capability interface every backend implements
//   - GetAs, Get, GetOrDefault: typed reads over any Database
//   - Layers: logging, external locking, Prometheus metrics and
//     OpenTelemetry tracing wrapped around a backend
//   - Config and Open: environment-driven assembly of a backend and layers
//
// GetAs does not say why a read failed: a missing key and a stored value of
// another type both come back as false. Get reports the two cases as
// ErrNotFound and ErrTypeMismatch.
package kvdb
