package usecase

import (
	"context"

	"guildhall/internal/domain/entity"
)

// ConventionUsecase defines the interface for convention browsing.
type ConventionUsecase interface {
	// ListConventions retrieves conventions, either all upcoming ones or
	// only the featured set.
	ListConventions(ctx context.Context, featuredOnly bool) ([]*entity.Convention, error)
}
