package impl

import (
	"context"
	"fmt"

	"guildhall/internal/domain/entity"
	domainerrors "guildhall/internal/domain/errors"
	"guildhall/internal/domain/repository"
	"guildhall/internal/domain/service"
	"guildhall/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	playerRepo       repository.PlayerRepository
	notificationRepo repository.NotificationRepository
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	PlayerRepo       repository.PlayerRepository
	NotificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		playerRepo:       params.PlayerRepo,
		notificationRepo: params.NotificationRepo,
	}
}

// ListNotifications retrieves the player's notifications, newest first.
func (s *notificationService) ListNotifications(ctx context.Context, authID, playerID uuid.UUID) ([]*entity.PlayerNotification, error) {
	if _, err := verifyPlayerOwnership(ctx, s.playerRepo, authID, playerID); err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.FindByPlayer(ctx, playerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by player")
	}

	return notifications, nil
}

// MarkRead acknowledges one of the player's notifications.
func (s *notificationService) MarkRead(ctx context.Context, authID, playerID, notificationID uuid.UUID) error {
	if _, err := verifyPlayerOwnership(ctx, s.playerRepo, authID, playerID); err != nil {
		return err
	}

	notifications, err := s.notificationRepo.FindByPlayer(ctx, playerID)
	if err != nil {
		return errors.Wrap(err, "failed to find notifications by player")
	}

	for _, n := range notifications {
		if n.ID == notificationID {
			if n.ReadAt != nil {
				return nil
			}

			return s.notificationRepo.MarkRead(ctx, notificationID)
		}
	}

	return domainerrors.ErrNotFound
}

// RecordConnectionEvent persists a notification row for a consumed
// connection event.
func (s *notificationService) RecordConnectionEvent(ctx context.Context, event *service.ConnectionEvent) error {
	playerID, err := uuid.Parse(event.PlayerID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid player id in event")
	}

	var notificationType, verb string
	switch event.Action {
	case service.ConnectionActionConnected:
		notificationType = entity.NotificationTypeRetailerConnected
		verb = "connected to"
	case service.ConnectionActionDisconnected:
		notificationType = entity.NotificationTypeRetailerDisconnected
		verb = "disconnected from"
	default:
		return domainerrors.ErrValidationFailed.WrapMessage("unknown connection action")
	}

	retailerName := event.RetailerName
	if retailerName == "" {
		retailerName = "a retailer"
	}

	notification := &entity.PlayerNotification{
		PlayerID: playerID,
		Type:     notificationType,
		Message:  fmt.Sprintf("You %s %s", verb, retailerName),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to record connection notification")
	}

	return nil
}
