package handler

import (
	"net/http"

	"guildhall/internal/delivery/http/response"
	"guildhall/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for player notification handlers.
type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// ListNotifications handles the request for the player's notifications.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	authID, err := authIDFromContext(c)
	if err != nil {
		return err
	}
	playerID, err := pathUUID(c, "playerID")
	if err != nil {
		return err
	}

	notifications, err := h.uc.ListNotifications(c.Request().Context(), authID, playerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// MarkRead handles acknowledging one of the player's notifications.
// Re-reading an already read notification succeeds without change.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	authID, err := authIDFromContext(c)
	if err != nil {
		return err
	}
	playerID, err := pathUUID(c, "playerID")
	if err != nil {
		return err
	}
	notificationID, err := pathUUID(c, "notificationID")
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Request().Context(), authID, playerID, notificationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked read")
}
