package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/interbanking/backend/internal/domain/shared"
)

const defaultIdempotencyPrefix = "interbanking:idempotency:"

// record is the JSON document kept under an idempotency key.
// A nil Response marks an in-flight reservation.
type record struct {
	Response *shared.StoredResponse `json:"response,omitempty"`
}

// RedisIdempotencyStore implements IdempotencyStore using Redis so that
// every instance behind a load balancer sees the same keys
type RedisIdempotencyStore struct {
	client    redis.Cmdable
	keyPrefix string
}

// NewRedisIdempotencyStore creates a store on an existing client.
// The store does not close a shared client.
func NewRedisIdempotencyStore(client redis.Cmdable, keyPrefix string) *RedisIdempotencyStore {
	if keyPrefix == "" {
		keyPrefix = defaultIdempotencyPrefix
	}
	return &RedisIdempotencyStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Reserve claims key with SETNX so that only one request can hold it
func (s *RedisIdempotencyStore) Reserve(ctx context.Context, key string, ttl time.Duration) (*shared.StoredResponse, bool, error) {
	pending, err := json.Marshal(record{})
	if err != nil {
		return nil, false, err
	}

	// The key can expire between SETNX and GET, so try twice.
	for attempt := 0; attempt < 2; attempt++ {
		ok, err := s.client.SetNX(ctx, s.keyPrefix+key, pending, ttl).Result()
		if err != nil {
			return nil, false, fmt.Errorf("failed to reserve idempotency key: %w", err)
		}
		if ok {
			return nil, true, nil
		}

		raw, err := s.client.Get(ctx, s.keyPrefix+key).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, false, fmt.Errorf("failed to read idempotency key: %w", err)
		}

		var rec record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, false, fmt.Errorf("failed to decode idempotency record: %w", err)
		}
		if rec.Response == nil {
			return nil, false, shared.ErrIdempotencyKeyInFlight
		}
		return rec.Response, false, nil
	}
	return nil, false, shared.ErrIdempotencyKeyInFlight
}

// Complete overwrites the reservation with the final response
func (s *RedisIdempotencyStore) Complete(ctx context.Context, key string, resp shared.StoredResponse, ttl time.Duration) error {
	raw, err := json.Marshal(record{Response: &resp})
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.keyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store idempotent response: %w", err)
	}
	return nil
}

// Release deletes the reservation
func (s *RedisIdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}
	return nil
}

// Close is a no-op for stores built on a shared client
func (s *RedisIdempotencyStore) Close() error {
	return nil
}

var _ shared.IdempotencyStore = (*RedisIdempotencyStore)(nil)
