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

// playerRepository implements the repository.PlayerRepository interface.
type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository is the constructor for playerRepository.
func NewPlayerRepository(db *gorm.DB) repository.PlayerRepository {
	return &playerRepository{
		db: db,
	}
}

// FindByID retrieves a player by their unique ID.
func (repo *playerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Player, error) {
	var playerM model.PlayerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&playerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlayerNotFound
		}

		return nil, errors.Wrap(err, "failed to find player by ID")
	}

	return toPlayerDomain(&playerM), nil
}

// FindByAuthID retrieves the player owned by the given auth subject.
func (repo *playerRepository) FindByAuthID(ctx context.Context, authID uuid.UUID) (*entity.Player, error) {
	var playerM model.PlayerModel

	if err := repo.db.WithContext(ctx).
		Where("auth_id = ?", authID).
		First(&playerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlayerNotFound
		}

		return nil, errors.Wrap(err, "failed to find player by auth ID")
	}

	return toPlayerDomain(&playerM), nil
}

// Create persists a new player.
func (repo *playerRepository) Create(ctx context.Context, player *entity.Player) error {
	playerM := fromPlayerDomain(player)

	if err := repo.db.WithContext(ctx).Create(playerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("player already exists for this account")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid account reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required player information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create player")
	}

	player.ID = playerM.ID
	player.CreatedAt = playerM.CreatedAt
	player.UpdatedAt = playerM.UpdatedAt

	return nil
}

// Update modifies an existing player.
func (repo *playerRepository) Update(ctx context.Context, player *entity.Player) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlayerModel{}).
		Where("id = ?", player.ID).
		Updates(map[string]any{
			"alias":           player.Alias,
			"email":           player.Email,
			"city":            player.City,
			"state":           player.State,
			"status":          player.Status,
			"alias_image_url": player.AliasImageURL,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update player")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlayerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPlayerDomain converts a GORM PlayerModel to a domain Player entity.
func toPlayerDomain(data *model.PlayerModel) *entity.Player {
	if data == nil {
		return nil
	}

	return &entity.Player{
		ID:            data.ID,
		AuthID:        data.AuthID,
		Alias:         data.Alias,
		Email:         data.Email,
		City:          data.City,
		State:         data.State,
		Status:        data.Status,
		AliasImageURL: data.AliasImageURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromPlayerDomain converts a domain Player entity to a GORM PlayerModel.
func fromPlayerDomain(data *entity.Player) *model.PlayerModel {
	if data == nil {
		return nil
	}

	return &model.PlayerModel{
		ID:            data.ID,
		AuthID:        data.AuthID,
		Alias:         data.Alias,
		Email:         data.Email,
		City:          data.City,
		State:         data.State,
		Status:        data.Status,
		AliasImageURL: data.AliasImageURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
