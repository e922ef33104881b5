package impl

import (
	"context"

	"guildhall/internal/domain/entity"
	"guildhall/internal/domain/repository"
	"guildhall/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type conventionService struct {
	conventionRepo repository.ConventionRepository
}

// ConventionServiceParams holds dependencies for ConventionService, injected by Fx.
type ConventionServiceParams struct {
	fx.In

	ConventionRepo repository.ConventionRepository
}

// NewConventionService creates a new convention service instance
func NewConventionService(params ConventionServiceParams) usecase.ConventionUsecase {
	return &conventionService{
		conventionRepo: params.ConventionRepo,
	}
}

// ListConventions retrieves upcoming or featured conventions.
func (s *conventionService) ListConventions(ctx context.Context, featuredOnly bool) ([]*entity.Convention, error) {
	var conventions []*entity.Convention
	var err error

	if featuredOnly {
		conventions, err = s.conventionRepo.FindFeatured(ctx)
	} else {
		conventions, err = s.conventionRepo.FindUpcoming(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conventions")
	}

	return conventions, nil
}
