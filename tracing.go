package kvdb

import (
	"context"

	"github.com/davidroman0O/kvdb/store"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/davidroman0O/kvdb"

// TracingOption configures the tracing layer.
type TracingOption func(*tracingDatabase)

// WithParentSpan makes every recorded span a child of sc. An invalid span
// context leaves spans as roots.
func WithParentSpan(sc trace.SpanContext) TracingOption {
	return func(d *tracingDatabase) {
		d.parent = sc
	}
}

type tracingDatabase struct {
	tracer trace.Tracer
	parent trace.SpanContext
	next   Database
}

// WithTracing returns a Layer that records one span per operation. A nil
// tracer uses the global provider.
func WithTracing(tracer trace.Tracer, opts ...TracingOption) Layer {
	if tracer == nil {
		tracer = otel.Tracer(instrumentationName)
	}
	return func(next Database) Database {
		d := &tracingDatabase{tracer: tracer, next: next}
		for _, opt := range opts {
			opt(d)
		}
		return d
	}
}

func (d *tracingDatabase) start(name string, attrs ...attribute.KeyValue) trace.Span {
	ctx := context.Background()
	if d.parent.IsValid() {
		ctx = trace.ContextWithSpanContext(ctx, d.parent)
	}
	_, span := d.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return span
}

func (d *tracingDatabase) Insert(key string, value any) {
	span := d.start("kvdb.Insert",
		attribute.String("kvdb.key", key),
		attribute.String("kvdb.type", store.Of(value).String()),
	)
	defer span.End()

	d.next.Insert(key, value)
}

func (d *tracingDatabase) Lookup(key string) (store.Value, bool) {
	span := d.start("kvdb.Lookup", attribute.String("kvdb.key", key))
	defer span.End()

	v, ok := d.next.Lookup(key)
	span.SetAttributes(attribute.Bool("kvdb.found", ok))
	if ok {
		span.SetAttributes(attribute.String("kvdb.type", v.String()))
	}
	return v, ok
}

func (d *tracingDatabase) Remove(key string) (store.Value, bool) {
	span := d.start("kvdb.Remove", attribute.String("kvdb.key", key))
	defer span.End()

	v, ok := d.next.Remove(key)
	span.SetAttributes(attribute.Bool("kvdb.found", ok))
	if ok {
		span.SetAttributes(attribute.String("kvdb.type", v.String()))
	}
	return v, ok
}
