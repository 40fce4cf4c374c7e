package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interbanking/backend/internal/domain/shared"
)

func TestInMemoryIdempotencyStore_Reserve(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()

	ctx := context.Background()

	t.Run("reserves a new key", func(t *testing.T) {
		stored, reserved, err := store.Reserve(ctx, "key-1", time.Hour)
		require.NoError(t, err)
		assert.True(t, reserved)
		assert.Nil(t, stored)
	})

	t.Run("rejects a key held by an in-flight request", func(t *testing.T) {
		_, reserved, err := store.Reserve(ctx, "key-2", time.Hour)
		require.NoError(t, err)
		require.True(t, reserved)

		_, reserved, err = store.Reserve(ctx, "key-2", time.Hour)
		assert.ErrorIs(t, err, shared.ErrIdempotencyKeyInFlight)
		assert.False(t, reserved)
	})

	t.Run("returns the completed response", func(t *testing.T) {
		_, _, err := store.Reserve(ctx, "key-3", time.Hour)
		require.NoError(t, err)

		resp := shared.StoredResponse{StatusCode: 201, ContentType: "application/json", Body: []byte(`{"success":true}`)}
		require.NoError(t, store.Complete(ctx, "key-3", resp, time.Hour))

		stored, reserved, err := store.Reserve(ctx, "key-3", time.Hour)
		require.NoError(t, err)
		assert.False(t, reserved)
		require.NotNil(t, stored)
		assert.Equal(t, resp, *stored)
	})

	t.Run("released key can be reserved again", func(t *testing.T) {
		_, _, err := store.Reserve(ctx, "key-4", time.Hour)
		require.NoError(t, err)
		require.NoError(t, store.Release(ctx, "key-4"))

		_, reserved, err := store.Reserve(ctx, "key-4", time.Hour)
		require.NoError(t, err)
		assert.True(t, reserved)
	})

	t.Run("expired reservation can be reserved again", func(t *testing.T) {
		_, _, err := store.Reserve(ctx, "key-5", 10*time.Millisecond)
		require.NoError(t, err)

		time.Sleep(20 * time.Millisecond)

		_, reserved, err := store.Reserve(ctx, "key-5", time.Hour)
		require.NoError(t, err)
		assert.True(t, reserved)
	})
}

func TestInMemoryIdempotencyStore_ConcurrentReserve(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()

	var (
		wg      sync.WaitGroup
		winners atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, reserved, err := store.Reserve(context.Background(), "shared", time.Hour); err == nil && reserved {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}

func TestInMemoryIdempotencyStore_Cleanup(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	_, _, _ = store.Reserve(ctx, "short", time.Minute)
	_, _, _ = store.Reserve(ctx, "long", time.Hour)
	assert.Equal(t, 2, store.Size())

	now = now.Add(2 * time.Minute)
	store.cleanup()
	assert.Equal(t, 1, store.Size())
}

func TestInMemoryIdempotencyStore_CloseTwice(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
