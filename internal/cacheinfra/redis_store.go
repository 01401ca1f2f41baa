package cacheinfra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultQueryTimeout bounds each Redis operation so a slow or
// unreachable backend cannot stall a request; the gateway degrades the
// resulting error to a miss.
const DefaultQueryTimeout = 5 * time.Second

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithPrefix namespaces every key. Useful when the Redis instance is
// shared with other services.
func WithPrefix(prefix string) RedisOption {
	return func(s *RedisStore) { s.prefix = prefix }
}

// WithQueryTimeout overrides the per-operation timeout.
func WithQueryTimeout(d time.Duration) RedisOption {
	return func(s *RedisStore) { s.queryTimeout = d }
}

// RedisStore adapts a shared Redis instance to the byte-oriented store
// contract. Unlike the in-process backend it honors per-entry TTLs;
// ttl <= 0 stores the entry without expiry, leaving eviction to the
// server's policy.
type RedisStore struct {
	client       *redis.Client
	prefix       string
	queryTimeout time.Duration
}

// NewRedisStore wraps an existing client. The caller owns the client's
// lifecycle.
func NewRedisStore(client *redis.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client:       client,
		queryTimeout: DefaultQueryTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

// Get implements cache.Store.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	data, err := s.client.Get(qctx, s.key(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set implements cache.Store.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if ttl < 0 {
		ttl = 0
	}
	return s.client.Set(qctx, s.key(key), value, ttl).Err()
}
