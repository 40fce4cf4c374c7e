package shared

import (
	"context"
	"errors"
	"time"
)

// ErrIdempotencyKeyInFlight is returned by Reserve when another request
// holding the same key has not finished yet.
var ErrIdempotencyKeyInFlight = errors.New("idempotency key is already being processed")

// StoredResponse is a response captured for an idempotency key.
type StoredResponse struct {
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// IdempotencyStore keeps the outcome of write requests keyed by a
// client supplied Idempotency-Key.
type IdempotencyStore interface {
	// Reserve claims a key for processing.
	// When a response is already stored it is returned with reserved=false.
	// When the key is held by an in-flight request ErrIdempotencyKeyInFlight is returned.
	Reserve(ctx context.Context, key string, ttl time.Duration) (stored *StoredResponse, reserved bool, err error)

	// Complete stores the response for a reserved key.
	Complete(ctx context.Context, key string, resp StoredResponse, ttl time.Duration) error

	// Release drops a reservation without storing a response.
	Release(ctx context.Context, key string) error

	// Close closes the store and releases resources
	Close() error
}

// IdempotencyConfig holds configuration for idempotency handling
type IdempotencyConfig struct {
	// TTL is how long a stored response is replayed.
	TTL time.Duration

	// Enabled determines whether idempotency checking is enabled
	Enabled bool
}

// DefaultIdempotencyConfig returns the default idempotency configuration
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		TTL:     24 * time.Hour,
		Enabled: true,
	}
}
