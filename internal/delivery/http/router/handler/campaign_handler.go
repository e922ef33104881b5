package handler

import (
	"net/http"

	"guildhall/internal/delivery/http/response"
	"guildhall/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CampaignHandler holds dependencies for campaign handlers.
type CampaignHandler struct {
	uc usecase.CampaignUsecase
}

// NewCampaignHandler is the constructor for CampaignHandler, injected by Fx.
func NewCampaignHandler(uc usecase.CampaignUsecase) *CampaignHandler {
	return &CampaignHandler{uc: uc}
}

// ListOpen handles the open campaign listing.
func (h *CampaignHandler) ListOpen(c echo.Context) error {
	campaigns, err := h.uc.ListOpen(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, campaigns, "Campaigns retrieved successfully")
}

// GetCampaign handles the single-campaign lookup.
func (h *CampaignHandler) GetCampaign(c echo.Context) error {
	campaignID, err := pathUUID(c, "campaignID")
	if err != nil {
		return err
	}

	campaign, err := h.uc.GetCampaign(c.Request().Context(), campaignID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, campaign, "Campaign retrieved successfully")
}

// ListMemberships handles the request for the player's campaign memberships.
func (h *CampaignHandler) ListMemberships(c echo.Context) error {
	authID, err := authIDFromContext(c)
	if err != nil {
		return err
	}
	playerID, err := pathUUID(c, "playerID")
	if err != nil {
		return err
	}

	memberships, err := h.uc.ListMemberships(c.Request().Context(), authID, playerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, memberships, "Memberships retrieved successfully")
}

// Join handles the request to join a campaign. Joining twice succeeds
// without change.
func (h *CampaignHandler) Join(c echo.Context) error {
	authID, err := authIDFromContext(c)
	if err != nil {
		return err
	}
	playerID, err := pathUUID(c, "playerID")
	if err != nil {
		return err
	}
	campaignID, err := pathUUID(c, "campaignID")
	if err != nil {
		return err
	}

	membership, err := h.uc.Join(c.Request().Context(), authID, playerID, campaignID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, membership, "Joined campaign successfully")
}

// Leave handles the request to leave a campaign. Leaving without an active
// membership succeeds without change.
func (h *CampaignHandler) Leave(c echo.Context) error {
	authID, err := authIDFromContext(c)
	if err != nil {
		return err
	}
	playerID, err := pathUUID(c, "playerID")
	if err != nil {
		return err
	}
	campaignID, err := pathUUID(c, "campaignID")
	if err != nil {
		return err
	}

	if err := h.uc.Leave(c.Request().Context(), authID, playerID, campaignID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Left campaign successfully")
}
