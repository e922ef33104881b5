package postgres

import (
	"context"

	"guildhall/internal/domain/entity"
	"guildhall/internal/domain/repository"
	"guildhall/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// retailerRepository implements the repository.RetailerRepository interface.
type retailerRepository struct {
	db *gorm.DB
}

// NewRetailerRepository is the constructor for retailerRepository.
func NewRetailerRepository(db *gorm.DB) repository.RetailerRepository {
	return &retailerRepository{
		db: db,
	}
}

// FindByID retrieves a retailer by its unique ID.
func (repo *retailerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Retailer, error) {
	var retailerM model.RetailerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&retailerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRetailerNotFound
		}

		return nil, errors.Wrap(err, "failed to find retailer by ID")
	}

	return toRetailerDomain(&retailerM), nil
}

// FindActive retrieves all active retailers ordered by name.
func (repo *retailerRepository) FindActive(ctx context.Context) ([]*entity.Retailer, error) {
	var retailerModels []*model.RetailerModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.RetailerStatusActive).
		Order("name ASC").
		Find(&retailerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active retailers")
	}

	return toRetailerDomainSlice(retailerModels), nil
}

// FindFeatured retrieves active retailers flagged for featuring.
func (repo *retailerRepository) FindFeatured(ctx context.Context) ([]*entity.Retailer, error) {
	var retailerModels []*model.RetailerModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND is_featured = ?", entity.RetailerStatusActive, true).
		Order("name ASC").
		Find(&retailerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find featured retailers")
	}

	return toRetailerDomainSlice(retailerModels), nil
}

// FindAvailableForPlayer retrieves active retailers without an active
// connection to the player. The NOT EXISTS subquery keeps the filtering in
// one round trip; ILIKE gives the case-insensitive substring match over
// name, city and state.
func (repo *retailerRepository) FindAvailableForPlayer(ctx context.Context, playerID uuid.UUID, filter string, limit int) ([]*entity.Retailer, error) {
	var retailerModels []*model.RetailerModel

	query := repo.db.WithContext(ctx).
		Where("status = ?", entity.RetailerStatusActive).
		Where(`NOT EXISTS (
			SELECT 1 FROM player_retailers pr
			WHERE pr.retailer_id = retailers.id
			  AND pr.player_id = ?
			  AND pr.status = ?
		)`, playerID, entity.ConnectionStatusActive)

	if filter != "" {
		pattern := "%" + filter + "%"
		query = query.Where("name ILIKE ? OR city ILIKE ? OR state ILIKE ?", pattern, pattern, pattern)
	}

	if err := query.
		Order("name ASC").
		Limit(limit).
		Find(&retailerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find available retailers")
	}

	return toRetailerDomainSlice(retailerModels), nil
}

// --- Mapper Functions ---

// toRetailerDomain converts a GORM RetailerModel to a domain Retailer entity.
func toRetailerDomain(data *model.RetailerModel) *entity.Retailer {
	if data == nil {
		return nil
	}

	return &entity.Retailer{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Address:     data.Address,
		City:        data.City,
		State:       data.State,
		Zip:         data.Zip,
		Phone:       data.Phone,
		Email:       data.Email,
		WebsiteURL:  data.WebsiteURL,
		Latitude:    data.Lat,
		Longitude:   data.Lng,
		Status:      data.Status,
		IsFeatured:  data.IsFeatured,
		StorePhoto:  data.StorePhoto,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toRetailerDomainSlice(models []*model.RetailerModel) []*entity.Retailer {
	retailers := make([]*entity.Retailer, 0, len(models))
	for _, retailerM := range models {
		retailers = append(retailers, toRetailerDomain(retailerM))
	}

	return retailers
}
