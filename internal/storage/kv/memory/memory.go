// Package memory is the default kv backend: a mutex-guarded map, scoped to
// the process and lost when it exits, mirroring per-tab session storage.
package memory

import "sync"

type Backend struct {
	mu   sync.RWMutex
	data map[string]string
}

func New() *Backend {
	return &Backend{
		data: make(map[string]string),
	}
}

func (b *Backend) Lookup(key string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := b.data[key]

	return value, ok, nil
}

func (b *Backend) Store(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data[key] = value

	return nil
}

func (b *Backend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.data, key)

	return nil
}
