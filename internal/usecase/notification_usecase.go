package usecase

import (
	"context"

	"guildhall/internal/domain/entity"
	"guildhall/internal/domain/service"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for player notifications. The
// worker delivery records rows via RecordConnectionEvent; the HTTP API
// serves them to their owner.
type NotificationUsecase interface {
	// ListNotifications retrieves the player's notifications, newest first.
	ListNotifications(ctx context.Context, authID, playerID uuid.UUID) ([]*entity.PlayerNotification, error)

	// MarkRead acknowledges one of the player's notifications.
	MarkRead(ctx context.Context, authID, playerID, notificationID uuid.UUID) error

	// RecordConnectionEvent persists a notification row for a consumed
	// connection event. Duplicate deliveries of the same event are safe.
	RecordConnectionEvent(ctx context.Context, event *service.ConnectionEvent) error
}
