package handler

import (
	"net/http"

	"guildhall/internal/delivery/http/response"
	"guildhall/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TournamentHandler holds dependencies for tournament handlers.
type TournamentHandler struct {
	uc usecase.TournamentUsecase
}

// NewTournamentHandler is the constructor for TournamentHandler, injected by Fx.
func NewTournamentHandler(uc usecase.TournamentUsecase) *TournamentHandler {
	return &TournamentHandler{uc: uc}
}

// ListUpcoming handles the upcoming tournament listing.
func (h *TournamentHandler) ListUpcoming(c echo.Context) error {
	tournaments, err := h.uc.ListUpcoming(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tournaments, "Tournaments retrieved successfully")
}

// GetTournament handles the single-tournament lookup.
func (h *TournamentHandler) GetTournament(c echo.Context) error {
	tournamentID, err := pathUUID(c, "tournamentID")
	if err != nil {
		return err
	}

	tournament, err := h.uc.GetTournament(c.Request().Context(), tournamentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tournament, "Tournament retrieved successfully")
}

// ListEntries handles the request for the player's tournament entries.
func (h *TournamentHandler) ListEntries(c echo.Context) error {
	authID, err := authIDFromContext(c)
	if err != nil {
		return err
	}
	playerID, err := pathUUID(c, "playerID")
	if err != nil {
		return err
	}

	entries, err := h.uc.ListEntries(c.Request().Context(), authID, playerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Entries retrieved successfully")
}

// Register handles the request to enter a tournament. Re-registering
// succeeds without change.
func (h *TournamentHandler) Register(c echo.Context) error {
	authID, err := authIDFromContext(c)
	if err != nil {
		return err
	}
	playerID, err := pathUUID(c, "playerID")
	if err != nil {
		return err
	}
	tournamentID, err := pathUUID(c, "tournamentID")
	if err != nil {
		return err
	}

	entry, err := h.uc.Register(c.Request().Context(), authID, playerID, tournamentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry, "Registered successfully")
}

// Withdraw handles the request to withdraw a tournament entry. Withdrawing
// without a registered entry succeeds without change.
func (h *TournamentHandler) Withdraw(c echo.Context) error {
	authID, err := authIDFromContext(c)
	if err != nil {
		return err
	}
	playerID, err := pathUUID(c, "playerID")
	if err != nil {
		return err
	}
	tournamentID, err := pathUUID(c, "tournamentID")
	if err != nil {
		return err
	}

	if err := h.uc.Withdraw(c.Request().Context(), authID, playerID, tournamentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Withdrawn successfully")
}
