package handler

import (
	"net/http"

	"guildhall/internal/delivery/http/response"
	"guildhall/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GameAccountHandler holds dependencies for game account handlers.
type GameAccountHandler struct {
	uc usecase.GameAccountUsecase
}

// NewGameAccountHandler is the constructor for GameAccountHandler, injected by Fx.
func NewGameAccountHandler(uc usecase.GameAccountUsecase) *GameAccountHandler {
	return &GameAccountHandler{uc: uc}
}

type addGameAccountRequest struct {
	GameSystemID string `json:"game_system_id" validate:"required,uuid"`
	AccountID    string `json:"account_id" validate:"required"`
}

// ListGameAccounts handles the request for the player's game accounts.
func (h *GameAccountHandler) ListGameAccounts(c echo.Context) error {
	authID, err := authIDFromContext(c)
	if err != nil {
		return err
	}
	playerID, err := pathUUID(c, "playerID")
	if err != nil {
		return err
	}

	accounts, err := h.uc.ListGameAccounts(c.Request().Context(), authID, playerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, accounts, "Game accounts retrieved successfully")
}

// AddGameAccount handles linking a game-system account to the player.
func (h *GameAccountHandler) AddGameAccount(c echo.Context) error {
	authID, err := authIDFromContext(c)
	if err != nil {
		return err
	}
	playerID, err := pathUUID(c, "playerID")
	if err != nil {
		return err
	}

	var req addGameAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid game account input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	gameSystemID, err := uuid.Parse(req.GameSystemID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid game system ID")
	}

	account, err := h.uc.AddGameAccount(c.Request().Context(), authID, playerID, usecase.AddGameAccountInput{
		GameSystemID: gameSystemID,
		AccountID:    req.AccountID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, account, "Game account added successfully")
}

// RemoveGameAccount handles removing one of the player's game accounts.
func (h *GameAccountHandler) RemoveGameAccount(c echo.Context) error {
	authID, err := authIDFromContext(c)
	if err != nil {
		return err
	}
	playerID, err := pathUUID(c, "playerID")
	if err != nil {
		return err
	}
	gameAccountID, err := pathUUID(c, "gameAccountID")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveGameAccount(c.Request().Context(), authID, playerID, gameAccountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Game account removed successfully")
}
