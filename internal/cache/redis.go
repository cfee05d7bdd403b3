package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Store backed by a Redis server. The wrapped client is safe
// for concurrent use.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the given Redis address. Password and db follow
// go-redis conventions; an empty password disables auth.
func NewRedisStore(addr, password string, db int) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// NewRedisStoreURL connects using a redis:// or rediss:// URL, the form the
// REDIS_URL environment variable carries.
func NewRedisStoreURL(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("cache: parse redis url: %w", err)
	}
	return &RedisStore{client: redis.NewClient(opts)}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache: redis get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache: redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache: redis del: %w", err)
	}
	return nil
}

func (s *RedisStore) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("cache: redis incr %s: %w", key, err)
	}
	if ttl > 0 {
		if err := s.client.Expire(ctx, key, ttl).Err(); err != nil {
			return n, fmt.Errorf("cache: redis expire %s: %w", key, err)
		}
	}
	return n, nil
}

// KeysByPrefix uses KEYS, which blocks the server on large keyspaces. Fine at
// this cache's scale; switch to SCAN if the keyspace grows.
func (s *RedisStore) KeysByPrefix(ctx context.Context, prefix string) ([]string, error) {
	keys, err := s.client.Keys(ctx, prefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("cache: redis keys %s*: %w", prefix, err)
	}
	return keys, nil
}

// Close releases the underlying client connections.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
