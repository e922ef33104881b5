package usecase

import (
	"context"

	"guildhall/internal/domain/entity"

	"github.com/google/uuid"
)

// CampaignUsecase defines the interface for campaign browsing and
// membership management.
type CampaignUsecase interface {
	// ListOpen retrieves campaigns open for joining, ordered by title.
	ListOpen(ctx context.Context) ([]*entity.Campaign, error)

	// GetCampaign retrieves a single campaign by ID.
	GetCampaign(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)

	// ListMemberships retrieves the player's active campaign memberships.
	ListMemberships(ctx context.Context, authID, playerID uuid.UUID) ([]*entity.CampaignMembership, error)

	// Join creates or reactivates the player's membership. Joining an
	// already-joined campaign is an idempotent success.
	Join(ctx context.Context, authID, playerID, campaignID uuid.UUID) (*entity.CampaignMembership, error)

	// Leave deactivates the player's membership. Leaving a campaign with no
	// active membership is an idempotent no-op.
	Leave(ctx context.Context, authID, playerID, campaignID uuid.UUID) error
}
