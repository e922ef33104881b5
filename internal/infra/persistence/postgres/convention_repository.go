package postgres

import (
	"context"
	"time"

	"guildhall/internal/domain/entity"
	"guildhall/internal/domain/repository"
	"guildhall/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// conventionRepository implements the repository.ConventionRepository interface.
type conventionRepository struct {
	db *gorm.DB
}

// NewConventionRepository is the constructor for conventionRepository.
func NewConventionRepository(db *gorm.DB) repository.ConventionRepository {
	return &conventionRepository{
		db: db,
	}
}

// FindUpcoming retrieves conventions whose end date is in the future.
func (repo *conventionRepository) FindUpcoming(ctx context.Context) ([]*entity.Convention, error) {
	var conventionModels []*model.ConventionModel

	if err := repo.db.WithContext(ctx).
		Where("end_date > ?", time.Now()).
		Order("start_date ASC").
		Find(&conventionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find upcoming conventions")
	}

	return toConventionDomainSlice(conventionModels), nil
}

// FindFeatured retrieves conventions flagged for featuring.
func (repo *conventionRepository) FindFeatured(ctx context.Context) ([]*entity.Convention, error) {
	var conventionModels []*model.ConventionModel

	if err := repo.db.WithContext(ctx).
		Where("is_featured = ?", true).
		Order("start_date ASC").
		Find(&conventionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find featured conventions")
	}

	return toConventionDomainSlice(conventionModels), nil
}

// --- Mapper Functions ---

func toConventionDomain(data *model.ConventionModel) *entity.Convention {
	if data == nil {
		return nil
	}

	return &entity.Convention{
		ID:                data.ID,
		Name:              data.Name,
		Description:       data.Description,
		StartDate:         data.StartDate,
		EndDate:           data.EndDate,
		Location:          data.Location,
		Venue:             data.Venue,
		ExpectedAttendees: data.ExpectedAttendees,
		ImageURL:          data.ImageURL,
		WebsiteURL:        data.WebsiteURL,
		Status:            data.Status,
		IsFeatured:        data.IsFeatured,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toConventionDomainSlice(models []*model.ConventionModel) []*entity.Convention {
	conventions := make([]*entity.Convention, 0, len(models))
	for _, conventionM := range models {
		conventions = append(conventions, toConventionDomain(conventionM))
	}

	return conventions
}
