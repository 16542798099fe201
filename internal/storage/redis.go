package storage

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisBlob stores each collection blob under a prefixed Redis key.
type RedisBlob struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisBlob(redisURL, prefix string) (*RedisBlob, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisBlob{rdb: rdb, prefix: prefix}, nil
}

func (b *RedisBlob) key(key string) string {
	return b.prefix + ":" + key
}

func (b *RedisBlob) Read(ctx context.Context, key string) ([]byte, error) {
	val, err := b.rdb.Get(ctx, b.key(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blob %s: %w", key, err)
	}
	return val, nil
}

func (b *RedisBlob) Write(ctx context.Context, key string, data []byte) error {
	if err := b.rdb.Set(ctx, b.key(key), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set blob %s: %w", key, err)
	}
	return nil
}

func (b *RedisBlob) Delete(ctx context.Context, key string) error {
	if err := b.rdb.Del(ctx, b.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (b *RedisBlob) Close() error {
	return b.rdb.Close()
}
