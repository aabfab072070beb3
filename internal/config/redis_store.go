package config

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// hashKey is the single Redis hash this service reads its
// configuration from, one hash key per subsystem (e.g. "vehicle",
// "ble") rather than one key per field.
const hashKey = "mmwave:config"

// RedisStore is a Store backed by a go-redis/v9 client. It loads the
// whole configuration hash once at construction time with HGetAll.
type RedisStore struct {
	values map[string]string
}

// NewRedisStore connects to addr, authenticating with password and
// selecting db, then loads the configuration hash.
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("config: connect to redis: %w", err)
	}

	values, err := client.HGetAll(ctx, hashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", hashKey, err)
	}

	return &RedisStore{values: values}, nil
}

// Get returns the value for key and whether it was present in the
// hash.
func (s *RedisStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}
