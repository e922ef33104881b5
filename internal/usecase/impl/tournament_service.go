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

type tournamentService struct {
	playerRepo     repository.PlayerRepository
	tournamentRepo repository.TournamentRepository
}

// TournamentServiceParams holds dependencies for TournamentService, injected by Fx.
type TournamentServiceParams struct {
	fx.In

	PlayerRepo     repository.PlayerRepository
	TournamentRepo repository.TournamentRepository
}

// NewTournamentService creates a new tournament service instance
func NewTournamentService(params TournamentServiceParams) usecase.TournamentUsecase {
	return &tournamentService{
		playerRepo:     params.PlayerRepo,
		tournamentRepo: params.TournamentRepo,
	}
}

// ListUpcoming retrieves tournaments that have not started yet.
func (s *tournamentService) ListUpcoming(ctx context.Context) ([]*entity.Tournament, error) {
	tournaments, err := s.tournamentRepo.FindUpcoming(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find upcoming tournaments")
	}

	return tournaments, nil
}

// GetTournament retrieves a single tournament by ID.
func (s *tournamentService) GetTournament(ctx context.Context, id uuid.UUID) (*entity.Tournament, error) {
	tournament, err := s.tournamentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTournamentNotFound) {
			return nil, domainerrors.ErrTournamentNotFound
		}

		return nil, errors.Wrap(err, "failed to find tournament by ID")
	}

	return tournament, nil
}

// ListEntries retrieves the player's registered entries.
func (s *tournamentService) ListEntries(ctx context.Context, authID, playerID uuid.UUID) ([]*entity.TournamentEntry, error) {
	if _, err := verifyPlayerOwnership(ctx, s.playerRepo, authID, playerID); err != nil {
		return nil, err
	}

	tournamentEntries, err := s.tournamentRepo.FindEntriesByPlayer(ctx, playerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find entries by player")
	}

	return tournamentEntries, nil
}

// Register enters the player into a tournament.
func (s *tournamentService) Register(ctx context.Context, authID, playerID, tournamentID uuid.UUID) (*entity.TournamentEntry, error) {
	if _, err := verifyPlayerOwnership(ctx, s.playerRepo, authID, playerID); err != nil {
		return nil, err
	}

	tournament, err := s.tournamentRepo.FindByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repository.ErrTournamentNotFound) {
			return nil, domainerrors.ErrTournamentNotFound
		}

		return nil, errors.Wrap(err, "failed to find tournament by ID")
	}

	now := time.Now()
	if tournament.RegistrationDeadline != nil && now.After(*tournament.RegistrationDeadline) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("registration deadline has passed")
	}
	if now.After(tournament.StartDate) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("tournament has already started")
	}

	existing, err := s.tournamentRepo.FindEntry(ctx, tournamentID, playerID)
	if err != nil && !errors.Is(err, repository.ErrEntryNotFound) {
		return nil, errors.Wrap(err, "failed to find tournament entry")
	}

	// Re-registering a live entry is an idempotent success.
	if existing != nil && existing.Status == entity.EntryStatusRegistered {
		return existing, nil
	}

	if tournament.MaxParticipants > 0 {
		count, countErr := s.tournamentRepo.CountRegistered(ctx, tournamentID)
		if countErr != nil {
			return nil, errors.Wrap(countErr, "failed to count registered entries")
		}
		if count >= int64(tournament.MaxParticipants) {
			return nil, domainerrors.ErrTournamentFull
		}
	}

	if existing != nil {
		if err := s.tournamentRepo.UpdateEntryStatus(ctx, existing.ID, entity.EntryStatusRegistered); err != nil {
			return nil, errors.Wrap(err, "failed to re-register entry")
		}
		existing.Status = entity.EntryStatusRegistered
		existing.UpdatedAt = now

		return existing, nil
	}

	entry := &entity.TournamentEntry{
		TournamentID:     tournamentID,
		PlayerID:         playerID,
		RegistrationDate: now,
		Status:           entity.EntryStatusRegistered,
	}
	if err := s.tournamentRepo.CreateEntry(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			// Lost a race with a concurrent registration of the same pair.
			return s.tournamentRepo.FindEntry(ctx, tournamentID, playerID)
		}

		return nil, errors.Wrap(err, "failed to create tournament entry")
	}

	return entry, nil
}

// Withdraw withdraws the player's entry.
func (s *tournamentService) Withdraw(ctx context.Context, authID, playerID, tournamentID uuid.UUID) error {
	if _, err := verifyPlayerOwnership(ctx, s.playerRepo, authID, playerID); err != nil {
		return err
	}

	entry, err := s.tournamentRepo.FindEntry(ctx, tournamentID, playerID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			// Nothing to withdraw; success by idempotence.
			return nil
		}

		return errors.Wrap(err, "failed to find tournament entry")
	}

	if entry.Status != entity.EntryStatusRegistered {
		return nil
	}

	if err := s.tournamentRepo.UpdateEntryStatus(ctx, entry.ID, entity.EntryStatusWithdrawn); err != nil {
		return errors.Wrap(err, "failed to withdraw entry")
	}

	return nil
}
