package kvdb

// Layer wraps a Database in another Database that adds a cross-cutting
// concern. Layers compose like middleware: each one calls through to the
// Database it wraps.
type Layer func(next Database) Database

// Chain applies layers to db. The first layer is the outermost, so it sees
// every call first.
func Chain(db Database, layers ...Layer) Database {
	for i := len(layers) - 1; i >= 0; i-- {
		if layers[i] == nil {
			continue
		}
		db = layers[i](db)
	}
	return db
}
