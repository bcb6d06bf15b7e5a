package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// #region config

// RedisConfig configures the Redis-backed store.
type RedisConfig struct {
	Addr   string
	Prefix string        // key prefix, default "calib"
	TTL    time.Duration // 0 = no expiry
}

// #endregion config

// #region redis-store

// RedisStore is a Store backed by Redis string values. Keys are namespaced
// as "{prefix}:{key}".
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	if cfg.Prefix == "" {
		cfg.Prefix = "calib"
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client, prefix: cfg.Prefix, ttl: cfg.TTL}, nil
}

func (r *RedisStore) blobKey(key string) string {
	return r.prefix + ":" + key
}

// Load returns the stored blob, or fallback on a missing key or any error.
func (r *RedisStore) Load(ctx context.Context, key string, fallback []byte) []byte {
	value, err := r.client.Get(ctx, r.blobKey(key)).Bytes()
	if err != nil {
		return fallback
	}
	return value
}

// Save writes the blob for key, honoring the configured TTL.
func (r *RedisStore) Save(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.blobKey(key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Close closes the Redis connection.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

// #endregion redis-store
