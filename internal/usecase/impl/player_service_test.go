package impl

import (
	"context"
	"testing"

	domainerrors "guildhall/internal/domain/errors"
	"guildhall/internal/domain/repository"
	mockRepo "guildhall/internal/mocks/repository"
	"guildhall/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPlayerServiceForTest(t *testing.T) (usecase.PlayerUsecase, *mockRepo.MockPlayerRepository) {
	t.Helper()

	playerRepo := mockRepo.NewMockPlayerRepository(t)
	service := NewPlayerService(PlayerServiceParams{
		PlayerRepo: playerRepo,
	})

	return service, playerRepo
}

func strPtr(s string) *string {
	return &s
}

func TestPlayerService_GetProfile_Success(t *testing.T) {
	service, playerRepo := newPlayerServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()

	playerRepo.EXPECT().
		FindByAuthID(ctx, authID).
		Return(ownedPlayer(authID, playerID), nil)

	player, err := service.GetProfile(ctx, authID)
	require.NoError(t, err)
	assert.Equal(t, playerID, player.ID)
	assert.Equal(t, authID, player.AuthID)
}

func TestPlayerService_GetProfile_NotFound(t *testing.T) {
	service, playerRepo := newPlayerServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()

	playerRepo.EXPECT().
		FindByAuthID(ctx, authID).
		Return(nil, repository.ErrPlayerNotFound)

	player, err := service.GetProfile(ctx, authID)
	require.Error(t, err)
	assert.Nil(t, player)
	assert.ErrorIs(t, err, domainerrors.ErrPlayerNotFound)
}

func TestPlayerService_UpdateProfile_PartialUpdate(t *testing.T) {
	service, playerRepo := newPlayerServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()

	existing := ownedPlayer(authID, playerID)
	existing.Alias = "Old Alias"
	existing.City = "Indianapolis"
	existing.State = "IN"

	playerRepo.EXPECT().
		FindByAuthID(ctx, authID).
		Return(existing, nil)

	playerRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Player")).
		Return(nil)

	player, err := service.UpdateProfile(ctx, authID, usecase.UpdateProfileInput{
		City: strPtr("Bloomington"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Old Alias", player.Alias)
	assert.Equal(t, "Bloomington", player.City)
	assert.Equal(t, "IN", player.State)
}

func TestPlayerService_UpdateProfile_EmptyAliasRejected(t *testing.T) {
	service, playerRepo := newPlayerServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()

	playerRepo.EXPECT().
		FindByAuthID(ctx, authID).
		Return(ownedPlayer(authID, uuid.New()), nil)

	player, err := service.UpdateProfile(ctx, authID, usecase.UpdateProfileInput{
		Alias: strPtr(""),
	})
	require.Error(t, err)
	assert.Nil(t, player)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
