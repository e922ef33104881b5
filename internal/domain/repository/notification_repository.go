package repository

import (
	"context"
	"errors"

	"guildhall/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines operations over player notifications.
type NotificationRepository interface {
	// Create persists a new notification row.
	Create(ctx context.Context, n *entity.PlayerNotification) error

	// FindByPlayer retrieves a player's notifications, newest first.
	FindByPlayer(ctx context.Context, playerID uuid.UUID) ([]*entity.PlayerNotification, error)

	// MarkRead stamps the notification's read time.
	MarkRead(ctx context.Context, id uuid.UUID) error
}
