package service

import (
	"context"
	"time"
)

// MediaStorage resolves read-only URLs for images held in the object
// store (retailer store photos, player alias images). This service never
// mutates stored objects.
type MediaStorage interface {
	// SignedURL returns a time-limited read URL for the object key.
	SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// Exists reports whether the object key is present in the bucket.
	Exists(ctx context.Context, key string) (bool, error)
}
