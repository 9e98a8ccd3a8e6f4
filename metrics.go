package kvdb

import (
	"errors"
	"fmt"

	"github.com/davidroman0O/kvdb/store"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultOK   = "ok"
	resultMiss = "miss"
)

type metricsDatabase struct {
	next Database
	ops  *prometheus.CounterVec
}

// WithMetrics returns a Layer that counts operations in
// kvdb_operations_total, labelled by operation and result. The counter is
// registered with reg; a counter already registered under that name is
// reused, so several databases may share one registry.
func WithMetrics(reg prometheus.Registerer) (Layer, error) {
	if reg == nil {
		return nil, errors.New("metrics registerer cannot be nil")
	}

	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kvdb",
		Name:      "operations_total",
		Help:      "Database operations by operation and result.",
	}, []string{"operation", "result"})

	if err := reg.Register(ops); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, fmt.Errorf("register operations counter: %w", err)
		}
		existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("register operations counter: existing collector is %T", already.ExistingCollector)
		}
		ops = existing
	}

	return func(next Database) Database {
		return &metricsDatabase{next: next, ops: ops}
	}, nil
}

func (d *metricsDatabase) Insert(key string, value any) {
	d.next.Insert(key, value)
	d.ops.WithLabelValues("insert", resultOK).Inc()
}

func (d *metricsDatabase) Lookup(key string) (store.Value, bool) {
	v, ok := d.next.Lookup(key)
	d.ops.WithLabelValues("lookup", result(ok)).Inc()
	return v, ok
}

func (d *metricsDatabase) Remove(key string) (store.Value, bool) {
	v, ok := d.next.Remove(key)
	d.ops.WithLabelValues("remove", result(ok)).Inc()
	return v, ok
}

func result(found bool) string {
	if found {
		return resultOK
	}
	return resultMiss
}
