// Package storage resolves read-only URLs for media assets held in a
// gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"time"

	"guildhall/config"
	"guildhall/internal/domain/lifecycle"
	"guildhall/internal/domain/service"
	"guildhall/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers registered by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type mediaStorage struct {
	bucket        *blob.Bucket
	defaultExpiry time.Duration
}

// New opens the configured media bucket and wires its lifecycle.
func New(params Params) (service.MediaStorage, error) {
	cfg := params.Config.Media
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("media bucket configuration is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if _, err := bucket.IsAccessible(ctx); err != nil {
				return errors.Wrap(err, "failed to access media bucket")
			}

			params.Logger.Info("Media bucket opened", slog.String("url", cfg.BucketURL))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &mediaStorage{
		bucket:        bucket,
		defaultExpiry: cfg.URLExpiry,
	}, nil
}

// SignedURL returns a time-limited read URL for the object key.
func (s *mediaStorage) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		expiry = s.defaultExpiry
	}

	url, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Expiry: expiry,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to sign media URL")
	}

	return url, nil
}

// Exists reports whether the object key is present in the bucket.
func (s *mediaStorage) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, errors.Wrap(err, "failed to check media object")
	}

	return exists, nil
}
