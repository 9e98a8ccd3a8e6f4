package store

import (
	"errors"
	"reflect"
)

var (
	// ErrNotFound is returned when no entry exists for a key.
	ErrNotFound = errors.New("key not found")
	// ErrTypeMismatch is returned when an entry exists but holds a different type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrUnsupportedType is returned when a stored type has no JSON Schema form.
	ErrUnsupportedType = errors.New("unsupported type")
)

// Check reports why v cannot be read as want: ErrNotFound for an absent
// holder, a wrapped ErrTypeMismatch for a different type, nil on a match.
func Check(v Value, want reflect.Type) error {
	if v.IsZero() {
		return ErrNotFound
	}
	if v.typ != want {
		return mismatch(v, want)
	}
	return nil
}
