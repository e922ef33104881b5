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

type gameAccountService struct {
	playerRepo      repository.PlayerRepository
	gameAccountRepo repository.GameAccountRepository
}

// GameAccountServiceParams holds dependencies for GameAccountService, injected by Fx.
type GameAccountServiceParams struct {
	fx.In

	PlayerRepo      repository.PlayerRepository
	GameAccountRepo repository.GameAccountRepository
}

// NewGameAccountService creates a new game account service instance
func NewGameAccountService(params GameAccountServiceParams) usecase.GameAccountUsecase {
	return &gameAccountService{
		playerRepo:      params.PlayerRepo,
		gameAccountRepo: params.GameAccountRepo,
	}
}

// ListGameAccounts retrieves the player's active game accounts.
func (s *gameAccountService) ListGameAccounts(ctx context.Context, authID, playerID uuid.UUID) ([]*entity.PlayerGameAccount, error) {
	if _, err := verifyPlayerOwnership(ctx, s.playerRepo, authID, playerID); err != nil {
		return nil, err
	}

	accounts, err := s.gameAccountRepo.FindByPlayer(ctx, playerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find game accounts by player")
	}

	return accounts, nil
}

// AddGameAccount links a game-system account to the player.
func (s *gameAccountService) AddGameAccount(ctx context.Context, authID, playerID uuid.UUID, input usecase.AddGameAccountInput) (*entity.PlayerGameAccount, error) {
	if _, err := verifyPlayerOwnership(ctx, s.playerRepo, authID, playerID); err != nil {
		return nil, err
	}

	if input.AccountID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("account id cannot be empty")
	}

	account := &entity.PlayerGameAccount{
		PlayerID:     playerID,
		GameSystemID: input.GameSystemID,
		AccountID:    input.AccountID,
		Status:       "active",
	}
	if err := s.gameAccountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create game account")
	}

	return account, nil
}

// RemoveGameAccount removes one of the player's game accounts.
func (s *gameAccountService) RemoveGameAccount(ctx context.Context, authID, playerID, gameAccountID uuid.UUID) error {
	if _, err := verifyPlayerOwnership(ctx, s.playerRepo, authID, playerID); err != nil {
		return err
	}

	account, err := s.gameAccountRepo.FindByID(ctx, gameAccountID)
	if err != nil {
		if errors.Is(err, repository.ErrGameAccountNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to find game account by ID")
	}

	// The account must belong to the target player.
	if account.PlayerID != playerID {
		return domainerrors.ErrOwnershipViolation
	}

	if err := s.gameAccountRepo.Delete(ctx, gameAccountID); err != nil {
		return errors.Wrap(err, "failed to delete game account")
	}

	return nil
}
