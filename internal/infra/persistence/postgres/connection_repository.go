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

// connectionRepository implements the repository.ConnectionRepository interface.
type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository is the constructor for connectionRepository.
func NewConnectionRepository(db *gorm.DB) repository.ConnectionRepository {
	return &connectionRepository{
		db: db,
	}
}

// CreateConnection persists a new connection edge.
func (repo *connectionRepository) CreateConnection(ctx context.Context, conn *entity.PlayerRetailerConnection) error {
	connM := fromConnectionDomain(conn)

	if err := repo.db.WithContext(ctx).Create(connM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateConnection
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid player or retailer reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required connection information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create connection")
	}

	// Update the entity with generated values
	conn.ID = connM.ID
	conn.CreatedAt = connM.CreatedAt
	conn.UpdatedAt = connM.UpdatedAt

	return nil
}

// FindConnection retrieves the edge for a (player, retailer) pair regardless of status.
func (repo *connectionRepository) FindConnection(ctx context.Context, playerID, retailerID uuid.UUID) (*entity.PlayerRetailerConnection, error) {
	var connM model.PlayerRetailerModel

	if err := repo.db.WithContext(ctx).
		Where("player_id = ? AND retailer_id = ?", playerID, retailerID).
		First(&connM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find connection by player and retailer")
	}

	return toConnectionDomain(&connM), nil
}

// FindConnectedRetailers retrieves the retailers with an active edge to the
// player, ordered by retailer name.
func (repo *connectionRepository) FindConnectedRetailers(ctx context.Context, playerID uuid.UUID) ([]*entity.Retailer, error) {
	var retailerModels []*model.RetailerModel

	if err := repo.db.WithContext(ctx).
		Model(&model.RetailerModel{}).
		Joins("JOIN player_retailers pr ON pr.retailer_id = retailers.id").
		Where("pr.player_id = ? AND pr.status = ?", playerID, entity.ConnectionStatusActive).
		Order("retailers.name ASC").
		Find(&retailerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find connected retailers")
	}

	return toRetailerDomainSlice(retailerModels), nil
}

// UpdateConnectionStatus flips the status of an edge by ID.
func (repo *connectionRepository) UpdateConnectionStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlayerRetailerModel{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update connection status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrConnectionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toConnectionDomain converts a GORM PlayerRetailerModel to a domain PlayerRetailerConnection entity.
func toConnectionDomain(data *model.PlayerRetailerModel) *entity.PlayerRetailerConnection {
	if data == nil {
		return nil
	}

	return &entity.PlayerRetailerConnection{
		ID:         data.ID,
		PlayerID:   data.PlayerID,
		RetailerID: data.RetailerID,
		Status:     data.Status,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromConnectionDomain converts a domain PlayerRetailerConnection entity to a GORM PlayerRetailerModel.
func fromConnectionDomain(data *entity.PlayerRetailerConnection) *model.PlayerRetailerModel {
	if data == nil {
		return nil
	}

	return &model.PlayerRetailerModel{
		ID:         data.ID,
		PlayerID:   data.PlayerID,
		RetailerID: data.RetailerID,
		Status:     data.Status,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
