package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interbanking/backend/internal/domain/shared"
	"github.com/interbanking/backend/internal/infrastructure/config"
)

// newTestRedis connects to the server named by IB_TEST_REDIS_ADDR or skips
func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("IB_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("IB_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, client.Ping(context.Background()).Err())
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	_, err := NewRedisClient(context.Background(), config.RedisConfig{Host: "127.0.0.1", Port: 1})
	assert.Error(t, err)
}

func TestRedisIdempotencyStore(t *testing.T) {
	client := newTestRedis(t)
	store := NewRedisIdempotencyStore(client, "test:idempotency:")
	ctx := context.Background()
	key := uuid.NewString()

	_, reserved, err := store.Reserve(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, reserved)

	_, _, err = store.Reserve(ctx, key, time.Minute)
	assert.ErrorIs(t, err, shared.ErrIdempotencyKeyInFlight)

	resp := shared.StoredResponse{StatusCode: 201, ContentType: "application/json", Body: []byte(`{"ok":1}`)}
	require.NoError(t, store.Complete(ctx, key, resp, time.Minute))

	stored, reserved, err := store.Reserve(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.Equal(t, resp, *stored)

	require.NoError(t, store.Release(ctx, key))
	_, reserved, err = store.Reserve(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestRedisRateLimiter(t *testing.T) {
	client := newTestRedis(t)
	limiter := NewRedisRateLimiter(client, 2, time.Minute)
	limiter.keyPrefix = "test:ratelimit:" + uuid.NewString() + ":"
	ctx := context.Background()

	allowed, remaining, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 1, remaining)

	allowed, remaining, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 0, remaining)

	allowed, _, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, _, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 2, limiter.Limit())
}
