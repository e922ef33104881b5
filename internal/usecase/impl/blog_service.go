package impl

import (
	"context"

	"guildhall/internal/domain/entity"
	domainerrors "guildhall/internal/domain/errors"
	"guildhall/internal/domain/repository"
	"guildhall/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type blogService struct {
	blogRepo repository.BlogRepository
}

// BlogServiceParams holds dependencies for BlogService, injected by Fx.
type BlogServiceParams struct {
	fx.In

	BlogRepo repository.BlogRepository
}

// NewBlogService creates a new blog service instance
func NewBlogService(params BlogServiceParams) usecase.BlogUsecase {
	return &blogService{
		blogRepo: params.BlogRepo,
	}
}

// ListPublished retrieves published posts, newest first.
func (s *blogService) ListPublished(ctx context.Context) ([]*entity.Blog, error) {
	posts, err := s.blogRepo.FindPublished(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find published posts")
	}

	return posts, nil
}

// GetBySlug retrieves a single published post by its slug.
func (s *blogService) GetBySlug(ctx context.Context, slug string) (*entity.Blog, error) {
	post, err := s.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by slug")
	}

	return post, nil
}
