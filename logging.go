package kvdb

import (
	"github.com/davidroman0O/kvdb/store"
)

type loggingDatabase struct {
	next   Database
	logger Logger
}

// WithLogging returns a Layer that logs every operation at debug level.
func WithLogging(logger Logger) Layer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return func(next Database) Database {
		return &loggingDatabase{next: next, logger: logger}
	}
}

func (d *loggingDatabase) Insert(key string, value any) {
	d.logger.Debug("insert key=%q type=%s", key, store.Of(value))
	d.next.Insert(key, value)
}

func (d *loggingDatabase) Lookup(key string) (store.Value, bool) {
	v, ok := d.next.Lookup(key)
	if !ok {
		d.logger.Debug("lookup key=%q miss", key)
		return v, ok
	}
	d.logger.Debug("lookup key=%q type=%s", key, v)
	return v, ok
}

func (d *loggingDatabase) Remove(key string) (store.Value, bool) {
	v, ok := d.next.Remove(key)
	if !ok {
		d.logger.Debug("remove key=%q miss", key)
		return v, ok
	}
	d.logger.Debug("remove key=%q type=%s", key, v)
	return v, ok
}
