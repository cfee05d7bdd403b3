package cache

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Options tune a single GetOrGenerate call.
type Options struct {
	// TTL for a freshly generated value. Zero means TTLNotation.
	TTL time.Duration
	// SkipCache bypasses the store entirely; the generator always runs and
	// its result is not stored.
	SkipCache bool
}

// Stats is a snapshot of hit/miss counters.
type Stats struct {
	Hits          int64
	Misses        int64
	HitRate       float64
	TotalRequests int64
}

// Manager is a read-through cache for generated sites keyed by notation
// string. Store failures never fail a request: the manager falls back to
// running the generator uncached.
type Manager struct {
	store Store
	// Debug mirrors cache traffic to stderr.
	Debug bool
}

// NewManager returns a Manager over the given store.
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

func (m *Manager) debugf(format string, args ...any) {
	if m.Debug {
		fmt.Fprintf(os.Stderr, "[cache] "+format+"\n", args...)
	}
}

// GetOrGenerate returns the cached value for a notation string, or runs the
// generator and caches its result. cached reports which path served the
// value. Generator errors propagate; store errors downgrade to an uncached
// generator run.
func (m *Manager) GetOrGenerate(ctx context.Context, notation string, generate func(ctx context.Context) (string, error), opts Options) (value string, cached bool, err error) {
	if opts.SkipCache {
		value, err = generate(ctx)
		return value, false, err
	}

	ttl := opts.TTL
	if ttl == 0 {
		ttl = TTLNotation
	}

	key := Key(notation)

	value, ok, getErr := m.store.Get(ctx, key)
	if getErr != nil {
		m.debugf("get error, generating uncached: %v", getErr)
		value, err = generate(ctx)
		return value, false, err
	}
	if ok {
		m.debugf("hit: %s", key)
		m.bumpStat(ctx, "hits")
		return value, true, nil
	}

	m.debugf("miss: %s", key)
	m.bumpStat(ctx, "misses")

	value, err = generate(ctx)
	if err != nil {
		return "", false, err
	}

	if setErr := m.store.Set(ctx, key, value, ttl); setErr != nil {
		m.debugf("set error: %v", setErr)
	}
	return value, false, nil
}

// bumpStat increments a hit/miss counter. Counter failures are not worth
// failing a request over.
func (m *Manager) bumpStat(ctx context.Context, name string) {
	if _, err := m.store.Increment(ctx, BuildKey(PrefixStats, name), TTLStats); err != nil {
		m.debugf("stat %s error: %v", name, err)
	}
}

// Stats reads the hit/miss counters. A store failure reads as zeros.
func (m *Manager) Stats(ctx context.Context) Stats {
	hits := m.readCounter(ctx, "hits")
	misses := m.readCounter(ctx, "misses")

	total := hits + misses
	s := Stats{Hits: hits, Misses: misses, TotalRequests: total}
	if total > 0 {
		s.HitRate = float64(hits) / float64(total)
	}
	return s
}

func (m *Manager) readCounter(ctx context.Context, name string) int64 {
	value, ok, err := m.store.Get(ctx, BuildKey(PrefixStats, name))
	if err != nil || !ok {
		return 0
	}
	var n int64
	fmt.Sscanf(value, "%d", &n)
	return n
}

// ResetStats deletes the hit/miss counters.
func (m *Manager) ResetStats(ctx context.Context) error {
	if err := m.store.Delete(ctx, BuildKey(PrefixStats, "hits"), BuildKey(PrefixStats, "misses")); err != nil {
		return fmt.Errorf("cache: reset stats: %w", err)
	}
	return nil
}

// Invalidate drops the cached value for one notation string.
func (m *Manager) Invalidate(ctx context.Context, notation string) error {
	key := Key(notation)
	if err := m.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("cache: invalidate %s: %w", key, err)
	}
	m.debugf("invalidated: %s", key)
	return nil
}

// ClearAll drops every cached notation value. Counters survive.
func (m *Manager) ClearAll(ctx context.Context) (int, error) {
	keys, err := m.store.KeysByPrefix(ctx, PrefixNotation)
	if err != nil {
		return 0, fmt.Errorf("cache: clear all: %w", err)
	}
	if len(keys) == 0 {
		return 0, nil
	}
	if err := m.store.Delete(ctx, keys...); err != nil {
		return 0, fmt.Errorf("cache: clear all: %w", err)
	}
	m.debugf("cleared %d keys", len(keys))
	return len(keys), nil
}
