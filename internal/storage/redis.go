package storage

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fitsync/fitness-tracker/internal/config"

	"github.com/redis/go-redis/v9"
)

// redisStore implements Store on a Redis instance. Snapshots are small
// JSON blobs, so plain string keys with no TTL are enough.
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(cfg config.RedisConfig) (Store, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}
	opt.MaxRetries = 3
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	slog.Info("redis snapshot store connected")

	return &redisStore{client: client, prefix: cfg.KeyPrefix}, nil
}

func (r *redisStore) Save(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *redisStore) Load(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}
