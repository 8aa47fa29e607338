package cache

import (
	"context"
	"encoding/json"
	"time"

	"tutor-scheduling/internal/pkg/config"
	"tutor-scheduling/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errs.New("cache miss")

// NewRedisClient returns nil when the cache is disabled.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to ping redis")
	}

	return client, nil
}

// RedisStore stores JSON payloads. A nil client behaves as an always-empty cache.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string, dest any) error {
	if s.client == nil {
		return ErrCacheMiss
	}

	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errs.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return errs.Wrap(err, "redis get "+key)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return errs.Wrap(err, "unmarshal cache value for "+key)
	}
	return nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if s.client == nil {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return errs.Wrap(err, "marshal cache value for "+key)
	}

	if err := s.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return errs.Wrap(err, "redis set "+key)
	}
	return nil
}
