package usecase

import (
	"context"

	"guildhall/internal/domain/entity"
)

// BlogUsecase defines the interface for the public blog.
type BlogUsecase interface {
	// ListPublished retrieves published posts, newest first.
	ListPublished(ctx context.Context) ([]*entity.Blog, error)

	// GetBySlug retrieves a single published post by its slug.
	GetBySlug(ctx context.Context, slug string) (*entity.Blog, error)
}
