package repository

import (
	"context"
	"errors"

	"guildhall/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for campaign persistence.
var (
	// ErrCampaignNotFound is returned when a campaign is not found.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrMembershipNotFound is returned when a campaign membership edge is not found.
	ErrMembershipNotFound = errors.New("campaign membership not found")
	// ErrDuplicateMembership is returned when the unique (campaign, player)
	// index rejects an insert.
	ErrDuplicateMembership = errors.New("campaign membership already exists")
)

// CampaignRepository defines operations over campaigns and the
// campaign_players join table.
type CampaignRepository interface {
	// FindByID retrieves a single campaign by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)

	// FindOpen retrieves campaigns open for joining, ordered by title.
	FindOpen(ctx context.Context) ([]*entity.Campaign, error)

	// CreateMembership persists a new membership edge.
	CreateMembership(ctx context.Context, m *entity.CampaignMembership) error

	// FindMembership retrieves the edge for a (campaign, player) pair
	// regardless of status.
	FindMembership(ctx context.Context, campaignID, playerID uuid.UUID) (*entity.CampaignMembership, error)

	// FindMembershipsByPlayer retrieves the player's active memberships.
	FindMembershipsByPlayer(ctx context.Context, playerID uuid.UUID) ([]*entity.CampaignMembership, error)

	// CountActiveMembers counts active members of a campaign.
	CountActiveMembers(ctx context.Context, campaignID uuid.UUID) (int64, error)

	// UpdateMembershipStatus flips the status of a membership edge by ID.
	UpdateMembershipStatus(ctx context.Context, id uuid.UUID, status string) error
}
