package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisConfig configures the Redis-backed registry.
type RedisConfig struct {
	URL       string // redis://[:password@]host:port/db
	Password  string // Optional: overrides the password in URL
	KeyPrefix string // Optional: defaults to DefaultKeyPrefix
}

// Redis stores sessions as plain string keys with a TTL.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis creates the client. It does not dial; callers Ping when they want
// to know the server is reachable.
func NewRedis(cfg RedisConfig) (*Redis, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("registry: invalid redis URL: %w", err)
	}

	if cfg.Password != "" {
		opts.Password = cfg.Password
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolTimeout = 4 * time.Second

	return NewRedisFromClient(redis.NewClient(opts), cfg.KeyPrefix), nil
}

// NewRedisFromClient wraps an existing client.
func NewRedisFromClient(client *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) Put(ctx context.Context, userID int64, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}
	if err := r.client.Set(ctx, Key(r.prefix, userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("registry: redis set: %w", err)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, userID int64) (string, error) {
	token, err := r.client.Get(ctx, Key(r.prefix, userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("registry: redis get: %w", err)
	}
	return token, nil
}

func (r *Redis) Delete(ctx context.Context, userID int64) error {
	if err := r.client.Del(ctx, Key(r.prefix, userID)).Err(); err != nil {
		return fmt.Errorf("registry: redis del: %w", err)
	}
	return nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
