package exclusion

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/umputun/exclude-pages/pkg/domain"
)

// RedisStore keeps excluded ids as a JSON array in a single redis key
type RedisStore struct {
	client redis.Cmdable
	key    string
}

// NewRedisStore makes a redis-backed store, empty key means domain.SettingExcludedPages
func NewRedisStore(client redis.Cmdable, key string) *RedisStore {
	if key == "" {
		key = domain.SettingExcludedPages
	}
	return &RedisStore{client: client, key: key}
}

// GetExcluded reads the set from redis, missing key is an empty set
func (r *RedisStore) GetExcluded(ctx context.Context) (Set, error) {
	value, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return NewSet(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get excluded pages from redis: %w", err)
	}
	return decodeSet(value)
}

// SetExcluded writes the set to redis without expiration
func (r *RedisStore) SetExcluded(ctx context.Context, ids Set) error {
	value, err := encodeSet(ids)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, value, 0).Err(); err != nil {
		return fmt.Errorf("set excluded pages in redis: %w", err)
	}
	return nil
}
