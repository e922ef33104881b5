package impl

import (
	"context"
	"testing"
	"time"

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

func newTournamentServiceForTest(t *testing.T) (usecase.TournamentUsecase, *mockRepo.MockPlayerRepository, *mockRepo.MockTournamentRepository) {
	t.Helper()

	playerRepo := mockRepo.NewMockPlayerRepository(t)
	tournamentRepo := mockRepo.NewMockTournamentRepository(t)
	service := NewTournamentService(TournamentServiceParams{
		PlayerRepo:     playerRepo,
		TournamentRepo: tournamentRepo,
	})

	return service, playerRepo, tournamentRepo
}

func upcomingTournament(id uuid.UUID, maxParticipants int) *entity.Tournament {
	return &entity.Tournament{
		ID:              id,
		Title:           "Winter Open",
		StartDate:       time.Now().Add(72 * time.Hour),
		EndDate:         time.Now().Add(96 * time.Hour),
		MaxParticipants: maxParticipants,
		Status:          "scheduled",
	}
}

func TestTournamentService_Register_NewEntry(t *testing.T) {
	service, playerRepo, tournamentRepo := newTournamentServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	tournamentID := uuid.New()

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	tournamentRepo.EXPECT().
		FindByID(ctx, tournamentID).
		Return(upcomingTournament(tournamentID, 32), nil)

	tournamentRepo.EXPECT().
		FindEntry(ctx, tournamentID, playerID).
		Return(nil, repository.ErrEntryNotFound)

	tournamentRepo.EXPECT().
		CountRegistered(ctx, tournamentID).
		Return(10, nil)

	tournamentRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.TournamentEntry")).
		Return(nil)

	entry, err := service.Register(ctx, authID, playerID, tournamentID)
	require.NoError(t, err)
	assert.Equal(t, tournamentID, entry.TournamentID)
	assert.Equal(t, playerID, entry.PlayerID)
	assert.Equal(t, entity.EntryStatusRegistered, entry.Status)
}

func TestTournamentService_Register_DeadlinePassed(t *testing.T) {
	service, playerRepo, tournamentRepo := newTournamentServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	tournamentID := uuid.New()

	deadline := time.Now().Add(-time.Hour)
	tournament := upcomingTournament(tournamentID, 32)
	tournament.RegistrationDeadline = &deadline

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	tournamentRepo.EXPECT().
		FindByID(ctx, tournamentID).
		Return(tournament, nil)

	entry, err := service.Register(ctx, authID, playerID, tournamentID)
	require.Error(t, err)
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTournamentService_Register_AlreadyStarted(t *testing.T) {
	service, playerRepo, tournamentRepo := newTournamentServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	tournamentID := uuid.New()

	tournament := upcomingTournament(tournamentID, 32)
	tournament.StartDate = time.Now().Add(-time.Hour)

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	tournamentRepo.EXPECT().
		FindByID(ctx, tournamentID).
		Return(tournament, nil)

	entry, err := service.Register(ctx, authID, playerID, tournamentID)
	require.Error(t, err)
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTournamentService_Register_TournamentFull(t *testing.T) {
	service, playerRepo, tournamentRepo := newTournamentServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	tournamentID := uuid.New()

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	tournamentRepo.EXPECT().
		FindByID(ctx, tournamentID).
		Return(upcomingTournament(tournamentID, 16), nil)

	tournamentRepo.EXPECT().
		FindEntry(ctx, tournamentID, playerID).
		Return(nil, repository.ErrEntryNotFound)

	tournamentRepo.EXPECT().
		CountRegistered(ctx, tournamentID).
		Return(16, nil)

	entry, err := service.Register(ctx, authID, playerID, tournamentID)
	require.Error(t, err)
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, domainerrors.ErrTournamentFull)
}

func TestTournamentService_Register_RegisteredEntryIsIdempotent(t *testing.T) {
	service, playerRepo, tournamentRepo := newTournamentServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	tournamentID := uuid.New()

	existing := &entity.TournamentEntry{
		ID:           uuid.New(),
		TournamentID: tournamentID,
		PlayerID:     playerID,
		Status:       entity.EntryStatusRegistered,
	}

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	tournamentRepo.EXPECT().
		FindByID(ctx, tournamentID).
		Return(upcomingTournament(tournamentID, 32), nil)

	tournamentRepo.EXPECT().
		FindEntry(ctx, tournamentID, playerID).
		Return(existing, nil)

	entry, err := service.Register(ctx, authID, playerID, tournamentID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, entry.ID)
}

func TestTournamentService_Register_ReRegistersWithdrawnEntry(t *testing.T) {
	service, playerRepo, tournamentRepo := newTournamentServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	tournamentID := uuid.New()
	entryID := uuid.New()

	existing := &entity.TournamentEntry{
		ID:           entryID,
		TournamentID: tournamentID,
		PlayerID:     playerID,
		Status:       entity.EntryStatusWithdrawn,
	}

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	tournamentRepo.EXPECT().
		FindByID(ctx, tournamentID).
		Return(upcomingTournament(tournamentID, 32), nil)

	tournamentRepo.EXPECT().
		FindEntry(ctx, tournamentID, playerID).
		Return(existing, nil)

	tournamentRepo.EXPECT().
		CountRegistered(ctx, tournamentID).
		Return(10, nil)

	tournamentRepo.EXPECT().
		UpdateEntryStatus(ctx, entryID, entity.EntryStatusRegistered).
		Return(nil)

	entry, err := service.Register(ctx, authID, playerID, tournamentID)
	require.NoError(t, err)
	assert.Equal(t, entryID, entry.ID)
	assert.Equal(t, entity.EntryStatusRegistered, entry.Status)
}

func TestTournamentService_Withdraw_RegisteredEntry(t *testing.T) {
	service, playerRepo, tournamentRepo := newTournamentServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	tournamentID := uuid.New()
	entryID := uuid.New()

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	tournamentRepo.EXPECT().
		FindEntry(ctx, tournamentID, playerID).
		Return(&entity.TournamentEntry{
			ID:           entryID,
			TournamentID: tournamentID,
			PlayerID:     playerID,
			Status:       entity.EntryStatusRegistered,
		}, nil)

	tournamentRepo.EXPECT().
		UpdateEntryStatus(ctx, entryID, entity.EntryStatusWithdrawn).
		Return(nil)

	err := service.Withdraw(ctx, authID, playerID, tournamentID)
	require.NoError(t, err)
}

func TestTournamentService_Withdraw_AbsentEntryIsIdempotent(t *testing.T) {
	service, playerRepo, tournamentRepo := newTournamentServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	tournamentID := uuid.New()

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	tournamentRepo.EXPECT().
		FindEntry(ctx, tournamentID, playerID).
		Return(nil, repository.ErrEntryNotFound)

	err := service.Withdraw(ctx, authID, playerID, tournamentID)
	require.NoError(t, err)
}
