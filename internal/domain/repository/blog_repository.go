package repository

import (
	"context"
	"errors"

	"guildhall/internal/domain/entity"
)

// ErrBlogNotFound is returned when a blog post is not found.
var ErrBlogNotFound = errors.New("blog post not found")

// BlogRepository defines read operations over published blog posts.
type BlogRepository interface {
	// FindPublished retrieves published posts ordered by publish date,
	// newest first.
	FindPublished(ctx context.Context) ([]*entity.Blog, error)

	// FindBySlug retrieves a single published post by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Blog, error)
}
