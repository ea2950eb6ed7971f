// Package kv wraps a raw string backend with JSON (de)serialization and
// corruption recovery. Read and write failures never reach the caller:
// corrupted entries are discarded with a warning and replaced by the
// fallback, failed writes are logged and leave the prior state in place.
package kv

import (
	"encoding/json"
	"log/slog"

	"summitclub/internal/lib/logger/sl"
)

// Backend is the raw store underneath the adapter. An absent key is
// (_, false, nil); errors are backend failures, not missing keys.
type Backend interface {
	Lookup(key string) (value string, ok bool, err error)
	Store(key, value string) error
	Delete(key string) error
}

type Store struct {
	backend Backend
	log     *slog.Logger
}

func New(backend Backend, log *slog.Logger) *Store {
	return &Store{
		backend: backend,
		log:     log,
	}
}

// Get reads and decodes the entry at key. A missing entry returns fallback.
// An unparseable entry is deleted, a warning is logged, and fallback is
// returned; the caller cannot tell recovery from absence.
func Get[T any](s *Store, key string, fallback T) T {
	raw, ok, err := s.backend.Lookup(key)
	if err != nil {
		s.log.Warn("failed to read entry", slog.String("key", key), sl.Err(err))
		return fallback
	}
	if !ok {
		return fallback
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		s.log.Warn("discarding corrupted entry", slog.String("key", key), sl.Err(err))

		if err := s.backend.Delete(key); err != nil {
			s.log.Warn("failed to delete corrupted entry", slog.String("key", key), sl.Err(err))
		}

		return fallback
	}

	return value
}

// Set serializes value and writes it at key. On failure the error is logged
// and the previously stored value is kept; the caller is not informed.
func Set(s *Store, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Error("failed to serialize entry", slog.String("key", key), sl.Err(err))
		return
	}

	if err := s.backend.Store(key, string(data)); err != nil {
		s.log.Error("failed to write entry", slog.String("key", key), sl.Err(err))
	}
}

// Delete removes the entry at key, logging on failure.
func (s *Store) Delete(key string) {
	if err := s.backend.Delete(key); err != nil {
		s.log.Error("failed to delete entry", slog.String("key", key), sl.Err(err))
	}
}
