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

// campaignRepository implements the repository.CampaignRepository interface.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(db *gorm.DB) repository.CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

// FindByID retrieves a campaign by its unique ID.
func (repo *campaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	var campaignM model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&campaignM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by ID")
	}

	return toCampaignDomain(&campaignM), nil
}

// FindOpen retrieves campaigns open for joining, ordered by title.
func (repo *campaignRepository) FindOpen(ctx context.Context) ([]*entity.Campaign, error) {
	var campaignModels []*model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", "open").
		Order("title ASC").
		Find(&campaignModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find open campaigns")
	}

	campaigns := make([]*entity.Campaign, 0, len(campaignModels))
	for _, campaignM := range campaignModels {
		campaigns = append(campaigns, toCampaignDomain(campaignM))
	}

	return campaigns, nil
}

// CreateMembership persists a new membership edge.
func (repo *campaignRepository) CreateMembership(ctx context.Context, m *entity.CampaignMembership) error {
	membershipM := fromMembershipDomain(m)

	if err := repo.db.WithContext(ctx).Create(membershipM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMembership
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid campaign or player reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create campaign membership")
	}

	m.ID = membershipM.ID
	m.JoinedAt = membershipM.JoinedAt
	m.UpdatedAt = membershipM.UpdatedAt

	return nil
}

// FindMembership retrieves the edge for a (campaign, player) pair regardless of status.
func (repo *campaignRepository) FindMembership(ctx context.Context, campaignID, playerID uuid.UUID) (*entity.CampaignMembership, error) {
	var membershipM model.CampaignPlayerModel

	if err := repo.db.WithContext(ctx).
		Where("campaign_id = ? AND player_id = ?", campaignID, playerID).
		First(&membershipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign membership")
	}

	return toMembershipDomain(&membershipM), nil
}

// FindMembershipsByPlayer retrieves the player's active memberships.
func (repo *campaignRepository) FindMembershipsByPlayer(ctx context.Context, playerID uuid.UUID) ([]*entity.CampaignMembership, error) {
	var membershipModels []*model.CampaignPlayerModel

	if err := repo.db.WithContext(ctx).
		Where("player_id = ? AND status = ?", playerID, "active").
		Order("joined_at DESC").
		Find(&membershipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find memberships by player")
	}

	memberships := make([]*entity.CampaignMembership, 0, len(membershipModels))
	for _, membershipM := range membershipModels {
		memberships = append(memberships, toMembershipDomain(membershipM))
	}

	return memberships, nil
}

// CountActiveMembers counts active members of a campaign.
func (repo *campaignRepository) CountActiveMembers(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CampaignPlayerModel{}).
		Where("campaign_id = ? AND status = ?", campaignID, "active").
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active campaign members")
	}

	return count, nil
}

// UpdateMembershipStatus flips the status of a membership edge by ID.
func (repo *campaignRepository) UpdateMembershipStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CampaignPlayerModel{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update membership status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMembershipNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCampaignDomain(data *model.CampaignModel) *entity.Campaign {
	if data == nil {
		return nil
	}

	return &entity.Campaign{
		ID:           data.ID,
		GameSystemID: data.GameSystemID,
		Title:        data.Title,
		Description:  data.Description,
		Type:         data.Type,
		MinPlayers:   data.MinPlayers,
		MaxPlayers:   data.MaxPlayers,
		Status:       data.Status,
		Price:        data.Price,
		CreatedAt:    data.CreatedAt,
	}
}

func toMembershipDomain(data *model.CampaignPlayerModel) *entity.CampaignMembership {
	if data == nil {
		return nil
	}

	return &entity.CampaignMembership{
		ID:         data.ID,
		CampaignID: data.CampaignID,
		PlayerID:   data.PlayerID,
		RoleType:   data.RoleType,
		Status:     data.Status,
		JoinedAt:   data.JoinedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromMembershipDomain(data *entity.CampaignMembership) *model.CampaignPlayerModel {
	if data == nil {
		return nil
	}

	return &model.CampaignPlayerModel{
		ID:         data.ID,
		CampaignID: data.CampaignID,
		PlayerID:   data.PlayerID,
		RoleType:   data.RoleType,
		Status:     data.Status,
		JoinedAt:   data.JoinedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
