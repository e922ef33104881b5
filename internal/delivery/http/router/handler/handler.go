// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"guildhall/internal/delivery/http/middleware"
	"guildhall/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// authIDFromContext extracts the authenticated account id placed on the
// context by AuthMiddleware. The returned error is an echo.HTTPError so the
// central error handler renders the envelope.
func authIDFromContext(c echo.Context) (uuid.UUID, error) {
	authID, ok := c.Get(middleware.ContextKeyAuthID).(uuid.UUID)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid account ID in token")
	}

	return authID, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name+" in path")
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
