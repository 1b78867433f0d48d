package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/SscSPs/money_rates_app/internal/apperrors"
	portsrepo "github.com/SscSPs/money_rates_app/internal/core/ports/repositories"
)

// RedisStore implements the KeyValueStore interface on top of Redis.
// Keys are namespaced with prefix so several stores can share one database.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisClient creates a client for addr.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// NewRedisStore wraps client. Values never expire; freshness is decided by the reader.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// Ensure RedisStore implements the KeyValueStore interface
var _ portsrepo.KeyValueStore = (*RedisStore)(nil)

func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("%w: key %s", apperrors.ErrNotFound, key)
		}
		return "", fmt.Errorf("failed to get %s from redis: %w", key, err)
	}
	return value, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s in redis: %w", key, err)
	}
	return nil
}

// Ping checks connectivity.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
