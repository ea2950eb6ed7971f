package kv_test

import (
	"errors"
	"testing"

	"summitclub/internal/lib/logger/handlers/slogdiscard"
	"summitclub/internal/storage/kv"
	"summitclub/internal/storage/kv/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newStore() (*kv.Store, *memory.Backend) {
	backend := memory.New()
	return kv.New(backend, slogdiscard.NewDiscardLogger()), backend
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	store, _ := newStore()

	want := []entry{{Name: "a", Count: 1}, {Name: "b", Count: 2}}
	kv.Set(store, "entries", want)

	got := kv.Get(store, "entries", []entry(nil))
	assert.Equal(t, want, got)
}

func TestGetMissingReturnsFallback(t *testing.T) {
	t.Parallel()

	store, _ := newStore()

	fallback := []entry{{Name: "fallback"}}
	got := kv.Get(store, "absent", fallback)

	assert.Equal(t, fallback, got)
}

func TestGetCorruptedEntry(t *testing.T) {
	t.Parallel()

	store, backend := newStore()

	// bypass the adapter, as a crashed writer would
	require.NoError(t, backend.Store("entries", "not valid json"))

	got := kv.Get(store, "entries", []entry{})
	assert.Equal(t, []entry{}, got)

	// the corrupted entry must have been discarded
	_, ok, err := backend.Lookup("entries")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetWrongShapeIsCorruption(t *testing.T) {
	t.Parallel()

	store, backend := newStore()

	require.NoError(t, backend.Store("entries", `{"name":"x"}`))

	got := kv.Get(store, "entries", []entry(nil))
	assert.Nil(t, got)
}

type failingBackend struct {
	data map[string]string
}

func (b *failingBackend) Lookup(key string) (string, bool, error) {
	value, ok := b.data[key]
	return value, ok, nil
}

func (b *failingBackend) Store(string, string) error {
	return errors.New("quota exceeded")
}

func (b *failingBackend) Delete(string) error {
	return errors.New("quota exceeded")
}

func TestSetFailureKeepsPriorState(t *testing.T) {
	t.Parallel()

	backend := &failingBackend{data: map[string]string{"count": "41"}}
	store := kv.New(backend, slogdiscard.NewDiscardLogger())

	kv.Set(store, "count", 42)

	// the write failed silently; the old value survives
	assert.Equal(t, 41, kv.Get(store, "count", 0))
}
