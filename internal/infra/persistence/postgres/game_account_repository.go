package postgres

import (
	"context"

	"guildhall/internal/domain/entity"
	domainerrors "guildhall/internal/domain/errors"
	"guildhall/internal/domain/repository"
	"guildhall/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gameAccountRepository implements the repository.GameAccountRepository interface.
type gameAccountRepository struct {
	db *gorm.DB
}

// NewGameAccountRepository is the constructor for gameAccountRepository.
func NewGameAccountRepository(db *gorm.DB) repository.GameAccountRepository {
	return &gameAccountRepository{
		db: db,
	}
}

// FindByID retrieves a game account by its unique ID.
func (repo *gameAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PlayerGameAccount, error) {
	var accountM model.PlayerGameAccountModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGameAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find game account by ID")
	}

	return toGameAccountDomain(&accountM), nil
}

// FindByPlayer retrieves all active game accounts for a player.
func (repo *gameAccountRepository) FindByPlayer(ctx context.Context, playerID uuid.UUID) ([]*entity.PlayerGameAccount, error) {
	var accountModels []*model.PlayerGameAccountModel

	if err := repo.db.WithContext(ctx).
		Where("player_id = ? AND status = ?", playerID, "active").
		Order("created_at DESC").
		Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find game accounts by player")
	}

	accounts := make([]*entity.PlayerGameAccount, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toGameAccountDomain(accountM))
	}

	return accounts, nil
}

// Create persists a new game account.
func (repo *gameAccountRepository) Create(ctx context.Context, account *entity.PlayerGameAccount) error {
	accountM := fromGameAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid player or game system reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required game account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create game account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Delete removes a game account by ID.
func (repo *gameAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PlayerGameAccountModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete game account")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGameAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toGameAccountDomain(data *model.PlayerGameAccountModel) *entity.PlayerGameAccount {
	if data == nil {
		return nil
	}

	return &entity.PlayerGameAccount{
		ID:           data.ID,
		PlayerID:     data.PlayerID,
		GameSystemID: data.GameSystemID,
		AccountID:    data.AccountID,
		Status:       data.Status,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromGameAccountDomain(data *entity.PlayerGameAccount) *model.PlayerGameAccountModel {
	if data == nil {
		return nil
	}

	return &model.PlayerGameAccountModel{
		ID:           data.ID,
		PlayerID:     data.PlayerID,
		GameSystemID: data.GameSystemID,
		AccountID:    data.AccountID,
		Status:       data.Status,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
