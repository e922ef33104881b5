package usecase

import (
	"context"

	"guildhall/internal/domain/entity"

	"github.com/google/uuid"
)

// TournamentUsecase defines the interface for tournament browsing and
// entry management.
type TournamentUsecase interface {
	// ListUpcoming retrieves tournaments that have not started yet, ordered
	// by start date.
	ListUpcoming(ctx context.Context) ([]*entity.Tournament, error)

	// GetTournament retrieves a single tournament by ID.
	GetTournament(ctx context.Context, id uuid.UUID) (*entity.Tournament, error)

	// ListEntries retrieves the player's registered entries.
	ListEntries(ctx context.Context, authID, playerID uuid.UUID) ([]*entity.TournamentEntry, error)

	// Register enters the player into a tournament, enforcing the capacity
	// limit and registration deadline. Re-registering is an idempotent
	// success.
	Register(ctx context.Context, authID, playerID, tournamentID uuid.UUID) (*entity.TournamentEntry, error)

	// Withdraw withdraws the player's entry. Withdrawing without a
	// registered entry is an idempotent no-op.
	Withdraw(ctx context.Context, authID, playerID, tournamentID uuid.UUID) error
}
