// Package kvstore is the persistence boundary of the server: two logical
// keys (the serialized creations list and the credit balance) behind a
// narrow key-value interface.
package kvstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound - the key has never been written
var ErrNotFound = errors.New("kvstore: key not found")

// Store - minimal key-value access used by the ledger and creation store
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// RedisStore - redis-backed persistence
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	// Values persist until the user deletes them, so no TTL
	return s.rdb.Set(ctx, key, value, 0).Err()
}
