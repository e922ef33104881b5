package impl

import (
	"context"

	"guildhall/internal/domain/entity"
	domainerrors "guildhall/internal/domain/errors"
	"guildhall/internal/domain/repository"
	"guildhall/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type playerService struct {
	playerRepo repository.PlayerRepository
}

// PlayerServiceParams holds dependencies for PlayerService, injected by Fx.
type PlayerServiceParams struct {
	fx.In

	PlayerRepo repository.PlayerRepository
}

// NewPlayerService creates a new player profile service instance
func NewPlayerService(params PlayerServiceParams) usecase.PlayerUsecase {
	return &playerService{
		playerRepo: params.PlayerRepo,
	}
}

// GetProfile retrieves the player profile owned by the auth subject.
func (s *playerService) GetProfile(ctx context.Context, authID uuid.UUID) (*entity.Player, error) {
	player, err := s.playerRepo.FindByAuthID(ctx, authID)
	if err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			return nil, domainerrors.ErrPlayerNotFound
		}

		return nil, errors.Wrap(err, "failed to find player by auth ID")
	}

	return player, nil
}

// UpdateProfile applies partial updates to the caller's own profile.
func (s *playerService) UpdateProfile(ctx context.Context, authID uuid.UUID, input usecase.UpdateProfileInput) (*entity.Player, error) {
	player, err := s.GetProfile(ctx, authID)
	if err != nil {
		return nil, err
	}

	if input.Alias != nil {
		if *input.Alias == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("alias cannot be empty")
		}
		player.Alias = *input.Alias
	}
	if input.City != nil {
		player.City = *input.City
	}
	if input.State != nil {
		player.State = *input.State
	}

	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, errors.Wrap(err, "failed to update player")
	}

	return player, nil
}
