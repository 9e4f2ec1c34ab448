package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/ytgap/internal/trend"
)

// RedisStore keeps the saved list under a single Redis key.
type RedisStore struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewRedisStore connects lazily to the Redis server at addr.
func NewRedisStore(addr string, dbIndex int, log zerolog.Logger) *RedisStore {
	return NewRedisStoreFromClient(redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   dbIndex,
	}), log)
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(rdb *redis.Client, log zerolog.Logger) *RedisStore {
	return &RedisStore{rdb: rdb, log: log.With().Str("store", "redis").Logger()}
}

func (s *RedisStore) Load(ctx context.Context) []trend.Trend {
	data, err := s.rdb.Get(ctx, Key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Msg("reading saved trends")
		}
		return []trend.Trend{}
	}
	return decode(data, s.log)
}

func (s *RedisStore) Save(ctx context.Context, trends []trend.Trend) error {
	data, err := encode(trends)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, Key, data, 0).Err(); err != nil {
		return fmt.Errorf("writing saved trends: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, Key).Err(); err != nil {
		return fmt.Errorf("clearing saved trends: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
