package postgres

import (
	"context"
	"time"

	"guildhall/internal/domain/entity"
	domainerrors "guildhall/internal/domain/errors"
	"guildhall/internal/domain/repository"
	"guildhall/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new notification row.
func (repo *notificationRepository) Create(ctx context.Context, n *entity.PlayerNotification) error {
	notificationM := fromNotificationDomain(n)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid player reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	n.ID = notificationM.ID
	n.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindByPlayer retrieves a player's notifications, newest first.
func (repo *notificationRepository) FindByPlayer(ctx context.Context, playerID uuid.UUID) ([]*entity.PlayerNotification, error) {
	var notificationModels []*model.PlayerNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by player")
	}

	notifications := make([]*entity.PlayerNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkRead stamps the notification's read time.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlayerNotificationModel{}).
		Where("id = ? AND read_at IS NULL", id).
		Update("read_at", time.Now())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.PlayerNotificationModel) *entity.PlayerNotification {
	if data == nil {
		return nil
	}

	return &entity.PlayerNotification{
		ID:        data.ID,
		PlayerID:  data.PlayerID,
		Type:      data.Type,
		Message:   data.Message,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromNotificationDomain(data *entity.PlayerNotification) *model.PlayerNotificationModel {
	if data == nil {
		return nil
	}

	return &model.PlayerNotificationModel{
		ID:        data.ID,
		PlayerID:  data.PlayerID,
		Type:      data.Type,
		Message:   data.Message,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}
}
