package store

import (
	"fmt"
	"reflect"
)

// Value is a type-erased holder for exactly one stored value. It keeps the
// concrete reflect.Type captured when the value was stored so reads can be
// checked against the type the caller asks for.
//
// The zero Value holds nothing and reports IsZero.
type Value struct {
	typ   reflect.Type
	value any
	set   bool
}

// Of wraps v, capturing its concrete type. A nil interface produces a set
// Value with a nil type.
func Of(v any) Value {
	return Value{typ: reflect.TypeOf(v), value: v, set: true}
}

// Type returns the concrete type captured at construction.
func (v Value) Type() reflect.Type {
	return v.typ
}

// Interface returns the held value as an interface.
func (v Value) Interface() any {
	return v.value
}

// IsZero reports whether v holds nothing.
func (v Value) IsZero() bool {
	return !v.set
}

// String returns the name of the held type, for logs.
func (v Value) String() string {
	if !v.set {
		return "<absent>"
	}
	if v.typ == nil {
		return "<nil>"
	}
	return v.typ.String()
}

// TypeFor returns the reflect.Type of T, including interface types.
func TypeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// As recovers the held value as T. It succeeds only when the stored type is
// exactly T: no conversion between related types and no interface
// satisfaction.
func As[T any](v Value) (T, bool) {
	var zero T
	if !v.set || v.typ == nil {
		return zero, false
	}

	if v.typ != TypeFor[T]() {
		return zero, false
	}

	result, ok := v.value.(T)
	if !ok {
		return zero, false
	}
	return result, true
}

// mismatch describes why v could not be read as want.
func mismatch(v Value, want reflect.Type) error {
	return fmt.Errorf("%w: wanted %v (kind: %v), got %v", ErrTypeMismatch, want, want.Kind(), v)
}
