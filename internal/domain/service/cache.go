package service

import (
	"context"
	"time"
)

// CacheStore is a query cache keyed by explicit strings with a staleness
// policy set per entry. Mutating use cases call Delete with the affected
// keys instead of hand-rolling timestamp comparisons.
type CacheStore interface {
	// Get returns the cached bytes for key and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
