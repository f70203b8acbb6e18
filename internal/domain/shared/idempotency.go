package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers client-supplied Idempotency-Key values so a
// retried create request is not applied twice.
type IdempotencyStore interface {
	// Reserve records the key with a TTL.
	// Returns true if the key was newly reserved, false if it was already seen.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Exists reports whether the key is currently reserved
	Exists(ctx context.Context, key string) (bool, error)

	// Release forgets a key, used when the guarded request failed
	Release(ctx context.Context, key string) error

	// Close closes the store and releases resources
	Close() error
}
