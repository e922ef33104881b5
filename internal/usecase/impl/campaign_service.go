package impl

import (
	"context"
	"time"

	"guildhall/internal/domain/entity"
	domainerrors "guildhall/internal/domain/errors"
	"guildhall/internal/domain/repository"
	"guildhall/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type campaignService struct {
	playerRepo   repository.PlayerRepository
	campaignRepo repository.CampaignRepository
}

// CampaignServiceParams holds dependencies for CampaignService, injected by Fx.
type CampaignServiceParams struct {
	fx.In

	PlayerRepo   repository.PlayerRepository
	CampaignRepo repository.CampaignRepository
}

// NewCampaignService creates a new campaign service instance
func NewCampaignService(params CampaignServiceParams) usecase.CampaignUsecase {
	return &campaignService{
		playerRepo:   params.PlayerRepo,
		campaignRepo: params.CampaignRepo,
	}
}

// ListOpen retrieves campaigns open for joining.
func (s *campaignService) ListOpen(ctx context.Context) ([]*entity.Campaign, error) {
	campaigns, err := s.campaignRepo.FindOpen(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find open campaigns")
	}

	return campaigns, nil
}

// GetCampaign retrieves a single campaign by ID.
func (s *campaignService) GetCampaign(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, domainerrors.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by ID")
	}

	return campaign, nil
}

// ListMemberships retrieves the player's active campaign memberships.
func (s *campaignService) ListMemberships(ctx context.Context, authID, playerID uuid.UUID) ([]*entity.CampaignMembership, error) {
	if _, err := verifyPlayerOwnership(ctx, s.playerRepo, authID, playerID); err != nil {
		return nil, err
	}

	memberships, err := s.campaignRepo.FindMembershipsByPlayer(ctx, playerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find memberships by player")
	}

	return memberships, nil
}

// Join creates or reactivates the player's membership in a campaign.
func (s *campaignService) Join(ctx context.Context, authID, playerID, campaignID uuid.UUID) (*entity.CampaignMembership, error) {
	if _, err := verifyPlayerOwnership(ctx, s.playerRepo, authID, playerID); err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, domainerrors.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by ID")
	}

	existing, err := s.campaignRepo.FindMembership(ctx, campaignID, playerID)
	if err != nil && !errors.Is(err, repository.ErrMembershipNotFound) {
		return nil, errors.Wrap(err, "failed to find campaign membership")
	}

	// Re-joining an active membership is an idempotent success.
	if existing != nil && existing.Status == "active" {
		return existing, nil
	}

	if err := s.checkCapacity(ctx, campaign); err != nil {
		return nil, err
	}

	if existing != nil {
		if err := s.campaignRepo.UpdateMembershipStatus(ctx, existing.ID, "active"); err != nil {
			return nil, errors.Wrap(err, "failed to reactivate membership")
		}
		existing.Status = "active"
		existing.UpdatedAt = time.Now()

		return existing, nil
	}

	membership := &entity.CampaignMembership{
		CampaignID: campaignID,
		PlayerID:   playerID,
		RoleType:   entity.CampaignRolePlayer,
		Status:     "active",
		JoinedAt:   time.Now(),
	}
	if err := s.campaignRepo.CreateMembership(ctx, membership); err != nil {
		if errors.Is(err, repository.ErrDuplicateMembership) {
			// Lost a race with a concurrent join of the same pair.
			return s.campaignRepo.FindMembership(ctx, campaignID, playerID)
		}

		return nil, errors.Wrap(err, "failed to create membership")
	}

	return membership, nil
}

// Leave deactivates the player's membership.
func (s *campaignService) Leave(ctx context.Context, authID, playerID, campaignID uuid.UUID) error {
	if _, err := verifyPlayerOwnership(ctx, s.playerRepo, authID, playerID); err != nil {
		return err
	}

	membership, err := s.campaignRepo.FindMembership(ctx, campaignID, playerID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			// Nothing to leave; success by idempotence.
			return nil
		}

		return errors.Wrap(err, "failed to find campaign membership")
	}

	if membership.Status != "active" {
		return nil
	}

	if err := s.campaignRepo.UpdateMembershipStatus(ctx, membership.ID, "inactive"); err != nil {
		return errors.Wrap(err, "failed to deactivate membership")
	}

	return nil
}

func (s *campaignService) checkCapacity(ctx context.Context, campaign *entity.Campaign) error {
	if campaign.MaxPlayers <= 0 {
		return nil
	}

	count, err := s.campaignRepo.CountActiveMembers(ctx, campaign.ID)
	if err != nil {
		return errors.Wrap(err, "failed to count campaign members")
	}

	if count >= int64(campaign.MaxPlayers) {
		return domainerrors.ErrCampaignFull
	}

	return nil
}
