package usecase

import (
	"context"

	"guildhall/internal/domain/entity"

	"github.com/google/uuid"
)

// AddGameAccountInput carries the fields for linking a game-system account.
type AddGameAccountInput struct {
	GameSystemID uuid.UUID
	AccountID    string
}

// GameAccountUsecase defines the interface for per-game-system account links.
type GameAccountUsecase interface {
	// ListGameAccounts retrieves the player's active game accounts.
	ListGameAccounts(ctx context.Context, authID, playerID uuid.UUID) ([]*entity.PlayerGameAccount, error)

	// AddGameAccount links a game-system account to the player.
	AddGameAccount(ctx context.Context, authID, playerID uuid.UUID, input AddGameAccountInput) (*entity.PlayerGameAccount, error)

	// RemoveGameAccount removes one of the player's game accounts.
	RemoveGameAccount(ctx context.Context, authID, playerID, gameAccountID uuid.UUID) error
}
