package store

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"
)

// KVStore is a type-aware in-memory store. It holds every value behind a
// Value and performs no locking: a KVStore belongs to one goroutine at a
// time, and callers that share one must guard it themselves.
type KVStore struct {
	id   string
	data map[string]Value
}

// Option configures a KVStore.
type Option func(*KVStore)

// WithID overrides the generated instance ID.
func WithID(id string) Option {
	return func(s *KVStore) {
		s.id = id
	}
}

// NewKVStore constructs an empty store.
func NewKVStore(opts ...Option) *KVStore {
	s := &KVStore{
		id:   uuid.NewString(),
		data: make(map[string]Value),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the instance ID of the store.
func (s *KVStore) ID() string {
	return s.id
}

// Insert stores value under key, capturing its concrete type. An existing
// entry for key is replaced along with its type.
func (s *KVStore) Insert(key string, value any) {
	s.data[key] = Of(value)
}

// Lookup returns the holder stored under key.
func (s *KVStore) Lookup(key string) (Value, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Remove deletes key and returns the holder it had.
func (s *KVStore) Remove(key string) (Value, bool) {
	v, ok := s.data[key]
	if !ok {
		return Value{}, false
	}
	delete(s.data, key)
	return v, true
}

// Contains reports whether key has an entry.
func (s *KVStore) Contains(key string) bool {
	_, ok := s.data[key]
	return ok
}

// Len returns the number of entries.
func (s *KVStore) Len() int {
	return len(s.data)
}

// Keys returns every stored key in sorted order.
func (s *KVStore) Keys() []string {
	out := make([]string, 0, len(s.data))
	for k := range s.data {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Clear removes all keys from the store.
func (s *KVStore) Clear() {
	s.data = make(map[string]Value)
}

// ListTypes returns the sorted set of concrete type names stored.
func (s *KVStore) ListTypes() []string {
	seen := map[string]struct{}{}
	out := []string{}

	for _, v := range s.data {
		name := v.String()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// KeysByType returns the sorted keys whose stored value has exactly type T.
func KeysByType[T any](s *KVStore) []string {
	want := TypeFor[T]()
	keys := []string{}

	for k, v := range s.data {
		if v.typ == want {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// TypeSchema returns a JSON Schema describing the Go type stored under key.
// Types that have no JSON form are reported with ErrUnsupportedType.
func (s *KVStore) TypeSchema(key string) (map[string]any, error) {
	v, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return TypeToSchema(v.typ)
}

// TypeToSchema converts a reflect.Type to a JSON schema map. A nil type
// yields the null schema. Funcs, channels, complex numbers and unsafe
// pointers anywhere in the type are rejected with ErrUnsupportedType.
func TypeToSchema(t reflect.Type) (map[string]any, error) {
	if t == nil {
		return map[string]any{"type": "null"}, nil
	}

	walk := typeWalk{onPath: map[reflect.Type]bool{}, done: map[reflect.Type]bool{}}
	if err := walk.visit(t); err != nil {
		return nil, fmt.Errorf("schema for %v: %w", t, err)
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	// Inlining a self-referencing type never terminates, so recursive types
	// keep their definitions under $defs and point at them with $ref.
	reflector := jsonschema.Reflector{AllowAdditionalProperties: false}
	if !walk.recursive {
		reflector.DoNotReference = true
		// Only structs are registered as definitions, so only they can be expanded.
		reflector.ExpandedStruct = t.Kind() == reflect.Struct
	}
	schema := reflector.Reflect(reflect.New(t).Interface())

	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("encode schema for %v: %w", t, err)
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode schema for %v: %w", t, err)
	}
	return out, nil
}

// typeWalk visits the types the schema reflector would descend into.
type typeWalk struct {
	onPath    map[reflect.Type]bool
	done      map[reflect.Type]bool
	recursive bool
}

func (w *typeWalk) visit(t reflect.Type) error {
	if w.onPath[t] {
		w.recursive = true
		return nil
	}
	if w.done[t] {
		return nil
	}

	w.onPath[t] = true
	defer func() {
		delete(w.onPath, t)
		w.done[t] = true
	}()

	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return fmt.Errorf("%w: %v", ErrUnsupportedType, t)

	case reflect.Pointer, reflect.Slice, reflect.Array:
		return w.visit(t.Elem())

	case reflect.Map:
		if err := w.visit(t.Key()); err != nil {
			return err
		}
		return w.visit(t.Elem())

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() && !f.Anonymous {
				continue
			}
			if f.Tag.Get("json") == "-" {
				continue
			}
			if err := w.visit(f.Type); err != nil {
				return err
			}
		}
	}
	return nil
}

// Clone returns a new store holding deep copies of every entry. The clone
// gets its own instance ID. Cycles and shared pointers inside a value are
// reproduced in its copy.
func (s *KVStore) Clone() *KVStore {
	c := NewKVStore()
	for k, v := range s.data {
		c.data[k] = v.clone()
	}
	return c
}

// CopyFrom deep-copies the entries of src into s, the same way Clone does.
// Keys already present in s are kept unless overwrite is set.
func (s *KVStore) CopyFrom(src *KVStore, overwrite bool) (copied int, overwritten int) {
	if src == nil || src == s {
		return 0, 0
	}

	for k, v := range src.data {
		_, exists := s.data[k]
		if exists && !overwrite {
			continue
		}
		s.data[k] = v.clone()
		if exists {
			overwritten++
		} else {
			copied++
		}
	}
	return copied, overwritten
}

// clone deep-copies the held value. The stored type is preserved.
func (v Value) clone() Value {
	if v.value == nil {
		return v
	}
	c := copier{seen: map[copyKey]reflect.Value{}}
	return Value{typ: v.typ, value: c.copy(reflect.ValueOf(v.value)).Interface(), set: v.set}
}

// copyKey identifies a pointer, map or slice already copied within one value.
type copyKey struct {
	typ reflect.Type
	ptr uintptr
	len int
}

// copier duplicates pointers, structs, maps, slices, arrays and interface
// values recursively. Unexported struct fields are copied shallowly. A
// pointer, map or slice met twice is copied once, so cycles terminate and
// aliasing is kept.
type copier struct {
	seen map[copyKey]reflect.Value
}

func (c *copier) copy(src reflect.Value) reflect.Value {
	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			return src
		}
		key := copyKey{typ: src.Type(), ptr: src.Pointer()}
		if dst, ok := c.seen[key]; ok {
			return dst
		}
		dst := reflect.New(src.Type().Elem())
		c.seen[key] = dst
		dst.Elem().Set(c.copy(src.Elem()))
		return dst

	case reflect.Struct:
		dst := reflect.New(src.Type()).Elem()
		dst.Set(src)
		for i := 0; i < src.NumField(); i++ {
			if dst.Field(i).CanSet() {
				dst.Field(i).Set(c.copy(src.Field(i)))
			}
		}
		return dst

	case reflect.Map:
		if src.IsNil() {
			return src
		}
		key := copyKey{typ: src.Type(), ptr: src.Pointer()}
		if dst, ok := c.seen[key]; ok {
			return dst
		}
		dst := reflect.MakeMapWithSize(src.Type(), src.Len())
		c.seen[key] = dst
		iter := src.MapRange()
		for iter.Next() {
			dst.SetMapIndex(iter.Key(), c.copy(iter.Value()))
		}
		return dst

	case reflect.Slice:
		if src.IsNil() {
			return src
		}
		key := copyKey{typ: src.Type(), ptr: src.Pointer(), len: src.Len()}
		if dst, ok := c.seen[key]; ok {
			return dst
		}
		dst := reflect.MakeSlice(src.Type(), src.Len(), src.Len())
		c.seen[key] = dst
		for i := 0; i < src.Len(); i++ {
			dst.Index(i).Set(c.copy(src.Index(i)))
		}
		return dst

	case reflect.Array:
		dst := reflect.New(src.Type()).Elem()
		for i := 0; i < src.Len(); i++ {
			dst.Index(i).Set(c.copy(src.Index(i)))
		}
		return dst

	case reflect.Interface:
		if src.IsNil() {
			return src
		}
		dst := reflect.New(src.Type()).Elem()
		dst.Set(c.copy(src.Elem()))
		return dst

	default:
		return src
	}
}
