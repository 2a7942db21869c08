package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

type RedisRegistry struct {
	client *redis.Client
}

func NewRedis(addr, password string, db int) *RedisRegistry {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisRegistry{client: client}
}

func NewRedisFromURL(url string) (*RedisRegistry, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisRegistry{client: redis.NewClient(opts)}, nil
}

func (r *RedisRegistry) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRegistry) Add(ctx context.Context, id string, ttl time.Duration) error {
	return r.client.Set(ctx, keyPrefix+id, "1", ttl).Err()
}

func (r *RedisRegistry) Valid(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Exists(ctx, keyPrefix+id).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RedisRegistry) Revoke(ctx context.Context, id string) error {
	return r.client.Del(ctx, keyPrefix+id).Err()
}
