package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLRUStoreInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		s, err := NewLRUStore(size)
		assert.Error(t, err)
		assert.Nil(t, s)
	}
}

func TestLRUStoreBasics(t *testing.T) {
	s, err := NewLRUStore(4, WithLRUID("bounded"))
	require.NoError(t, err)
	assert.Equal(t, "bounded", s.ID())
	assert.Equal(t, 4, s.Cap())
	assert.Equal(t, 0, s.Len())

	s.Insert("age", 42)
	v, ok := s.Lookup("age")
	require.True(t, ok)
	age, ok := As[int](v)
	assert.True(t, ok)
	assert.Equal(t, 42, age)

	s.Insert("age", "forty-three")
	v, _ = s.Lookup("age")
	_, ok = As[int](v)
	assert.False(t, ok)
	text, ok := As[string](v)
	assert.True(t, ok)
	assert.Equal(t, "forty-three", text)
	assert.Equal(t, 1, s.Len())

	removed, ok := s.Remove("age")
	require.True(t, ok)
	text, _ = As[string](removed)
	assert.Equal(t, "forty-three", text)

	_, ok = s.Lookup("age")
	assert.False(t, ok)
	_, ok = s.Remove("age")
	assert.False(t, ok)
}

func TestLRUStoreEviction(t *testing.T) {
	evicted := map[string]any{}
	s, err := NewLRUStore(2, WithEvictCallback(func(key string, value Value) {
		evicted[key] = value.Interface()
	}))
	require.NoError(t, err)

	s.Insert("a", 1)
	s.Insert("b", 2)

	// Touch "a" so "b" becomes the oldest.
	_, ok := s.Lookup("a")
	require.True(t, ok)

	s.Insert("c", 3)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"a", "c"}, s.Keys())
	assert.Equal(t, map[string]any{"b": 2}, evicted)

	// Overwriting an existing key on a full store evicts nothing.
	s.Insert("c", 30)
	assert.Len(t, evicted, 1)

	// Explicit removals and Clear are not evictions.
	s.Remove("a")
	s.Clear()
	assert.Len(t, evicted, 1)
	assert.Equal(t, 0, s.Len())
}
