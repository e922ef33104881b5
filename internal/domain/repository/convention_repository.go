package repository

import (
	"context"

	"guildhall/internal/domain/entity"
)

// ConventionRepository defines read operations over convention records.
type ConventionRepository interface {
	// FindUpcoming retrieves conventions whose end date is in the future,
	// ordered by start date.
	FindUpcoming(ctx context.Context) ([]*entity.Convention, error)

	// FindFeatured retrieves conventions flagged for featuring.
	FindFeatured(ctx context.Context) ([]*entity.Convention, error)
}
