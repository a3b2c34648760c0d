package results

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "proofport:result:"

// RedisStore keeps callback payloads in a shared Redis so that multiple
// server instances see the same results. Expiry is delegated to Redis
// key TTLs, so there is no sweep to run.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (s *RedisStore) Set(ctx context.Context, requestID string, payload json.RawMessage) error {
	return s.client.Set(ctx, redisKeyPrefix+requestID, []byte(payload), s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, requestID string) (json.RawMessage, bool, error) {
	val, err := s.client.Get(ctx, redisKeyPrefix+requestID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return json.RawMessage(val), true, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
