package repository

import (
	"context"
	"errors"

	"guildhall/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for tournament persistence.
var (
	// ErrTournamentNotFound is returned when a tournament is not found.
	ErrTournamentNotFound = errors.New("tournament not found")
	// ErrEntryNotFound is returned when a tournament entry is not found.
	ErrEntryNotFound = errors.New("tournament entry not found")
	// ErrDuplicateEntry is returned when the unique (tournament, player)
	// index rejects an insert.
	ErrDuplicateEntry = errors.New("tournament entry already exists")
)

// TournamentRepository defines operations over tournaments and the
// tournament_entries join table.
type TournamentRepository interface {
	// FindByID retrieves a single tournament by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tournament, error)

	// FindUpcoming retrieves tournaments whose start date is in the future,
	// ordered by start date.
	FindUpcoming(ctx context.Context) ([]*entity.Tournament, error)

	// CreateEntry persists a new tournament entry.
	CreateEntry(ctx context.Context, e *entity.TournamentEntry) error

	// FindEntry retrieves the entry for a (tournament, player) pair
	// regardless of status.
	FindEntry(ctx context.Context, tournamentID, playerID uuid.UUID) (*entity.TournamentEntry, error)

	// FindEntriesByPlayer retrieves the player's registered entries.
	FindEntriesByPlayer(ctx context.Context, playerID uuid.UUID) ([]*entity.TournamentEntry, error)

	// CountRegistered counts registered entries for a tournament.
	CountRegistered(ctx context.Context, tournamentID uuid.UUID) (int64, error)

	// UpdateEntryStatus flips the status of an entry by ID.
	UpdateEntryStatus(ctx context.Context, id uuid.UUID, status string) error
}
