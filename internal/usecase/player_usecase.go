package usecase

import (
	"context"

	"guildhall/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries the mutable player profile fields. Nil fields
// are left unchanged.
type UpdateProfileInput struct {
	Alias *string
	City  *string
	State *string
}

// PlayerUsecase defines the interface for player profile use cases
type PlayerUsecase interface {
	// GetProfile retrieves the player profile owned by the auth subject.
	GetProfile(ctx context.Context, authID uuid.UUID) (*entity.Player, error)

	// UpdateProfile applies partial updates to the caller's own profile.
	UpdateProfile(ctx context.Context, authID uuid.UUID, input UpdateProfileInput) (*entity.Player, error)
}
