package handler

import (
	"net/http"

	"guildhall/internal/delivery/http/response"
	"guildhall/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ConnectionHandler holds dependencies for player-retailer connection handlers.
type ConnectionHandler struct {
	uc usecase.ConnectionUsecase
}

// NewConnectionHandler is the constructor for ConnectionHandler, injected by Fx.
func NewConnectionHandler(uc usecase.ConnectionUsecase) *ConnectionHandler {
	return &ConnectionHandler{uc: uc}
}

// ListConnected handles the request for the player's connected retailers.
func (h *ConnectionHandler) ListConnected(c echo.Context) error {
	authID, err := authIDFromContext(c)
	if err != nil {
		return err
	}
	playerID, err := pathUUID(c, "playerID")
	if err != nil {
		return err
	}

	retailers, err := h.uc.ListConnected(c.Request().Context(), authID, playerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, retailers, "Connected retailers retrieved successfully")
}

// ListAvailable handles the request for retailers the player could connect
// to, optionally filtered by a name/city/state substring.
func (h *ConnectionHandler) ListAvailable(c echo.Context) error {
	authID, err := authIDFromContext(c)
	if err != nil {
		return err
	}
	playerID, err := pathUUID(c, "playerID")
	if err != nil {
		return err
	}

	retailers, err := h.uc.ListAvailable(c.Request().Context(), authID, playerID, c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, retailers, "Available retailers retrieved successfully")
}

// Connect handles the request to link the player to a retailer. Repeating
// an existing connection succeeds without change.
func (h *ConnectionHandler) Connect(c echo.Context) error {
	authID, err := authIDFromContext(c)
	if err != nil {
		return err
	}
	playerID, err := pathUUID(c, "playerID")
	if err != nil {
		return err
	}
	retailerID, err := pathUUID(c, "retailerID")
	if err != nil {
		return err
	}

	connection, err := h.uc.Connect(c.Request().Context(), authID, playerID, retailerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, connection, "Connected successfully")
}

// Disconnect handles the request to unlink the player from a retailer.
// Disconnecting an absent link succeeds without change.
func (h *ConnectionHandler) Disconnect(c echo.Context) error {
	authID, err := authIDFromContext(c)
	if err != nil {
		return err
	}
	playerID, err := pathUUID(c, "playerID")
	if err != nil {
		return err
	}
	retailerID, err := pathUUID(c, "retailerID")
	if err != nil {
		return err
	}

	if err := h.uc.Disconnect(c.Request().Context(), authID, playerID, retailerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Disconnected successfully")
}
