package impl

import (
	"context"
	"testing"

	"guildhall/internal/domain/entity"
	domainerrors "guildhall/internal/domain/errors"
	"guildhall/internal/domain/repository"
	mockRepo "guildhall/internal/mocks/repository"
	"guildhall/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCampaignServiceForTest(t *testing.T) (usecase.CampaignUsecase, *mockRepo.MockPlayerRepository, *mockRepo.MockCampaignRepository) {
	t.Helper()

	playerRepo := mockRepo.NewMockPlayerRepository(t)
	campaignRepo := mockRepo.NewMockCampaignRepository(t)
	service := NewCampaignService(CampaignServiceParams{
		PlayerRepo:   playerRepo,
		CampaignRepo: campaignRepo,
	})

	return service, playerRepo, campaignRepo
}

func openCampaign(id uuid.UUID, maxPlayers int) *entity.Campaign {
	return &entity.Campaign{
		ID:         id,
		Title:      "Curse of the Crimson Court",
		Status:     "open",
		MinPlayers: 2,
		MaxPlayers: maxPlayers,
	}
}

func TestCampaignService_Join_NewMembership(t *testing.T) {
	service, playerRepo, campaignRepo := newCampaignServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	campaignID := uuid.New()

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	campaignRepo.EXPECT().
		FindByID(ctx, campaignID).
		Return(openCampaign(campaignID, 6), nil)

	campaignRepo.EXPECT().
		FindMembership(ctx, campaignID, playerID).
		Return(nil, repository.ErrMembershipNotFound)

	campaignRepo.EXPECT().
		CountActiveMembers(ctx, campaignID).
		Return(3, nil)

	campaignRepo.EXPECT().
		CreateMembership(ctx, mock.AnythingOfType("*entity.CampaignMembership")).
		Return(nil)

	membership, err := service.Join(ctx, authID, playerID, campaignID)
	require.NoError(t, err)
	assert.Equal(t, campaignID, membership.CampaignID)
	assert.Equal(t, playerID, membership.PlayerID)
	assert.Equal(t, entity.CampaignRolePlayer, membership.RoleType)
	assert.Equal(t, "active", membership.Status)
}

func TestCampaignService_Join_ActiveMembershipIsIdempotent(t *testing.T) {
	service, playerRepo, campaignRepo := newCampaignServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	campaignID := uuid.New()

	existing := &entity.CampaignMembership{
		ID:         uuid.New(),
		CampaignID: campaignID,
		PlayerID:   playerID,
		RoleType:   entity.CampaignRolePlayer,
		Status:     "active",
	}

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	campaignRepo.EXPECT().
		FindByID(ctx, campaignID).
		Return(openCampaign(campaignID, 6), nil)

	campaignRepo.EXPECT().
		FindMembership(ctx, campaignID, playerID).
		Return(existing, nil)

	membership, err := service.Join(ctx, authID, playerID, campaignID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, membership.ID)
}

func TestCampaignService_Join_CampaignFull(t *testing.T) {
	service, playerRepo, campaignRepo := newCampaignServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	campaignID := uuid.New()

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	campaignRepo.EXPECT().
		FindByID(ctx, campaignID).
		Return(openCampaign(campaignID, 4), nil)

	campaignRepo.EXPECT().
		FindMembership(ctx, campaignID, playerID).
		Return(nil, repository.ErrMembershipNotFound)

	campaignRepo.EXPECT().
		CountActiveMembers(ctx, campaignID).
		Return(4, nil)

	membership, err := service.Join(ctx, authID, playerID, campaignID)
	require.Error(t, err)
	assert.Nil(t, membership)
	assert.ErrorIs(t, err, domainerrors.ErrCampaignFull)
}

func TestCampaignService_Join_ReactivatesInactiveMembership(t *testing.T) {
	service, playerRepo, campaignRepo := newCampaignServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	campaignID := uuid.New()
	membershipID := uuid.New()

	existing := &entity.CampaignMembership{
		ID:         membershipID,
		CampaignID: campaignID,
		PlayerID:   playerID,
		RoleType:   entity.CampaignRolePlayer,
		Status:     "inactive",
	}

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	campaignRepo.EXPECT().
		FindByID(ctx, campaignID).
		Return(openCampaign(campaignID, 6), nil)

	campaignRepo.EXPECT().
		FindMembership(ctx, campaignID, playerID).
		Return(existing, nil)

	campaignRepo.EXPECT().
		CountActiveMembers(ctx, campaignID).
		Return(2, nil)

	campaignRepo.EXPECT().
		UpdateMembershipStatus(ctx, membershipID, "active").
		Return(nil)

	membership, err := service.Join(ctx, authID, playerID, campaignID)
	require.NoError(t, err)
	assert.Equal(t, membershipID, membership.ID)
	assert.Equal(t, "active", membership.Status)
}

func TestCampaignService_Join_OwnershipViolation(t *testing.T) {
	service, playerRepo, _ := newCampaignServiceForTest(t)

	ctx := context.Background()
	playerID := uuid.New()

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(uuid.New(), playerID), nil)

	membership, err := service.Join(ctx, uuid.New(), playerID, uuid.New())
	require.Error(t, err)
	assert.Nil(t, membership)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestCampaignService_Leave_ActiveMembership(t *testing.T) {
	service, playerRepo, campaignRepo := newCampaignServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	campaignID := uuid.New()
	membershipID := uuid.New()

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	campaignRepo.EXPECT().
		FindMembership(ctx, campaignID, playerID).
		Return(&entity.CampaignMembership{
			ID:         membershipID,
			CampaignID: campaignID,
			PlayerID:   playerID,
			Status:     "active",
		}, nil)

	campaignRepo.EXPECT().
		UpdateMembershipStatus(ctx, membershipID, "inactive").
		Return(nil)

	err := service.Leave(ctx, authID, playerID, campaignID)
	require.NoError(t, err)
}

func TestCampaignService_Leave_AbsentMembershipIsIdempotent(t *testing.T) {
	service, playerRepo, campaignRepo := newCampaignServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	campaignID := uuid.New()

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	campaignRepo.EXPECT().
		FindMembership(ctx, campaignID, playerID).
		Return(nil, repository.ErrMembershipNotFound)

	err := service.Leave(ctx, authID, playerID, campaignID)
	require.NoError(t, err)
}

func TestCampaignService_GetCampaign_NotFound(t *testing.T) {
	service, _, campaignRepo := newCampaignServiceForTest(t)

	ctx := context.Background()
	campaignID := uuid.New()

	campaignRepo.EXPECT().
		FindByID(ctx, campaignID).
		Return(nil, repository.ErrCampaignNotFound)

	campaign, err := service.GetCampaign(ctx, campaignID)
	require.Error(t, err)
	assert.Nil(t, campaign)
	assert.ErrorIs(t, err, domainerrors.ErrCampaignNotFound)
}
