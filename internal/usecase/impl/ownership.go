package impl

import (
	"context"

	"guildhall/internal/domain/entity"
	domainerrors "guildhall/internal/domain/errors"
	"guildhall/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// verifyPlayerOwnership loads the target player and checks it belongs to
// the authenticated subject. Every player-scoped write goes through this
// before touching storage.
func verifyPlayerOwnership(ctx context.Context, playerRepo repository.PlayerRepository, authID, playerID uuid.UUID) (*entity.Player, error) {
	player, err := playerRepo.FindByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			return nil, domainerrors.ErrPlayerNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find player")
	}

	if player.AuthID != authID {
		return nil, domainerrors.ErrOwnershipViolation
	}

	return player, nil
}
