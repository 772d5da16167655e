package middlewares

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorage is a fiber.Storage on top of go-redis so limiter counters are
// shared between instances.
type RedisStorage struct {
	rdb     *redis.Client
	prefix  string
	timeout time.Duration
}

type RedisStorageOption func(*RedisStorage)

func WithStoragePrefix(prefix string) RedisStorageOption {
	return func(s *RedisStorage) { s.prefix = strings.Trim(prefix, ":") }
}

func NewRedisStorage(rdb *redis.Client, opts ...RedisStorageOption) *RedisStorage {
	s := &RedisStorage{
		rdb:     rdb,
		prefix:  "academia:ratelimit",
		timeout: time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewRedisStorageFromURL parses a redis:// URL and checks the server is reachable.
func NewRedisStorageFromURL(ctx context.Context, rawURL string, opts ...RedisStorageOption) (*RedisStorage, error) {
	o, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(o)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return NewRedisStorage(rdb, opts...), nil
}

func (s *RedisStorage) key(k string) string {
	return s.prefix + ":" + k
}

func (s *RedisStorage) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// Get returns nil, nil for a missing key as fiber.Storage requires.
func (s *RedisStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := s.ctx()
	defer cancel()

	val, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

// Set with exp == 0 keeps the key forever.
func (s *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	return s.rdb.Set(ctx, s.key(key), val, exp).Err()
}

func (s *RedisStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	return s.rdb.Del(ctx, s.key(key)).Err()
}

// Reset removes only this storage's keys, never FLUSHDB.
func (s *RedisStorage) Reset() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*s.timeout)
	defer cancel()

	iter := s.rdb.Scan(ctx, 0, s.prefix+":*", 100).Iterator()
	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == 100 {
			if err := s.rdb.Del(ctx, batch...).Err(); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return s.rdb.Del(ctx, batch...).Err()
	}
	return nil
}

func (s *RedisStorage) Close() error {
	return s.rdb.Close()
}
