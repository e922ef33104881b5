package handler

import (
	"net/http"

	"guildhall/internal/delivery/http/response"
	"guildhall/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlayerHandler holds dependencies for player profile handlers.
type PlayerHandler struct {
	uc usecase.PlayerUsecase
}

// NewPlayerHandler is the constructor for PlayerHandler, injected by Fx.
func NewPlayerHandler(uc usecase.PlayerUsecase) *PlayerHandler {
	return &PlayerHandler{uc: uc}
}

type updateProfileRequest struct {
	Alias *string `json:"alias"`
	City  *string `json:"city"`
	State *string `json:"state"`
}

// GetProfile handles the request to get the caller's own player profile.
func (h *PlayerHandler) GetProfile(c echo.Context) error {
	authID, err := authIDFromContext(c)
	if err != nil {
		return err
	}

	player, err := h.uc.GetProfile(c.Request().Context(), authID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, player, "Profile retrieved successfully")
}

// UpdateProfile handles partial updates to the caller's own profile.
// Absent fields are left unchanged.
func (h *PlayerHandler) UpdateProfile(c echo.Context) error {
	authID, err := authIDFromContext(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	player, err := h.uc.UpdateProfile(c.Request().Context(), authID, usecase.UpdateProfileInput{
		Alias: req.Alias,
		City:  req.City,
		State: req.State,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, player, "Profile updated successfully")
}
