package cache

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Store is the key-value contract the manager runs on. Get reports a miss
// with ok=false and a nil error; errors are reserved for store failures.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// Increment adds one to a counter key, creating it at 1, and applies the
	// TTL so abandoned counters expire.
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
	// KeysByPrefix lists every live key starting with prefix.
	KeysByPrefix(ctx context.Context, prefix string) ([]string, error)
}

// ── in-memory store ──

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore is a process-local Store for tests and single-node use.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// expired reports whether an entry is past its TTL. Zero expiresAt means no
// TTL. Caller holds mu.
func (s *MemoryStore) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && s.now().After(e.expiresAt)
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return "", false, nil
	}
	if s.expired(e) {
		delete(s.entries, key)
		return "", false, nil
	}
	return e.value, true, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.entries[key] = e
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.entries, key)
	}
	return nil
}

func (s *MemoryStore) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	if e, ok := s.entries[key]; ok && !s.expired(e) {
		n, _ = strconv.ParseInt(e.value, 10, 64)
	}
	n++

	e := memoryEntry{value: strconv.FormatInt(n, 10)}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.entries[key] = e
	return n, nil
}

func (s *MemoryStore) KeysByPrefix(ctx context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var keys []string
	for key, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, key)
			continue
		}
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}
