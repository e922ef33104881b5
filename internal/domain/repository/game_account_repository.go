package repository

import (
	"context"
	"errors"

	"guildhall/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGameAccountNotFound is returned when a game account is not found.
var ErrGameAccountNotFound = errors.New("game account not found")

// GameAccountRepository defines operations over player_game_accounts.
type GameAccountRepository interface {
	// FindByID retrieves a single game account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PlayerGameAccount, error)

	// FindByPlayer retrieves all active game accounts for a player.
	FindByPlayer(ctx context.Context, playerID uuid.UUID) ([]*entity.PlayerGameAccount, error)

	// Create persists a new game account.
	Create(ctx context.Context, account *entity.PlayerGameAccount) error

	// Delete removes a game account by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
