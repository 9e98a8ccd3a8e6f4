package kvdb

import (
	"fmt"

	"github.com/davidroman0O/kvdb/store"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

// Option is a function that configures Open
type Option func(*openOptions)

type openOptions struct {
	logger     Logger
	registerer prometheus.Registerer
	tracer     trace.Tracer
	traceOpts  []TracingOption
}

// WithLogger sets the logger used for operation logs and LRU evictions.
// Operation logs are only written when a logger is set or Config.Debug is on.
func WithLogger(logger Logger) Option {
	return func(o *openOptions) {
		o.logger = logger
	}
}

// WithRegisterer enables the metrics layer, registering with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *openOptions) {
		o.registerer = reg
	}
}

// WithTracer enables the tracing layer.
func WithTracer(tracer trace.Tracer, opts ...TracingOption) Option {
	return func(o *openOptions) {
		o.tracer = tracer
		o.traceOpts = opts
	}
}

// Open builds the backend named by cfg and wraps it in the configured
// layers. From the outside in: locking, tracing, metrics, logging.
func Open(cfg Config, opts ...Option) (Database, error) {
	o := openOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil && cfg.Debug {
		logger = NewStdLogger(nil)
	}

	var backend Database
	switch cfg.Backend {
	case BackendMemory, "":
		s := store.NewKVStore()
		if logger != nil {
			logger.Debug("opened memory store id=%s", s.ID())
		}
		backend = s

	case BackendLRU:
		var lruOpts []store.LRUOption
		if logger != nil {
			lruOpts = append(lruOpts, store.WithEvictCallback(func(key string, value store.Value) {
				logger.Info("evicted key=%q type=%s", key, value)
			}))
		}
		s, err := store.NewLRUStore(cfg.Capacity, lruOpts...)
		if err != nil {
			return nil, fmt.Errorf("open lru backend: %w", err)
		}
		if logger != nil {
			logger.Debug("opened lru store id=%s capacity=%d", s.ID(), s.Cap())
		}
		backend = s

	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	var layers []Layer
	if cfg.Synchronized {
		layers = append(layers, WithLocking())
	}
	if o.tracer != nil {
		layers = append(layers, WithTracing(o.tracer, o.traceOpts...))
	}
	if o.registerer != nil {
		metrics, err := WithMetrics(o.registerer)
		if err != nil {
			return nil, err
		}
		layers = append(layers, metrics)
	}
	if logger != nil {
		layers = append(layers, WithLogging(logger))
	}

	return Chain(backend, layers...), nil
}
