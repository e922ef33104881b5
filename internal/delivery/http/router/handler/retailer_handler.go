package handler

import (
	"net/http"

	"guildhall/internal/delivery/http/response"
	"guildhall/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RetailerHandler holds dependencies for retailer catalog handlers.
type RetailerHandler struct {
	retailerUc  usecase.RetailerUsecase
	proximityUc usecase.ProximityUsecase
}

// NewRetailerHandler is the constructor for RetailerHandler, injected by Fx.
func NewRetailerHandler(retailerUc usecase.RetailerUsecase, proximityUc usecase.ProximityUsecase) *RetailerHandler {
	return &RetailerHandler{
		retailerUc:  retailerUc,
		proximityUc: proximityUc,
	}
}

// ListRetailers handles the retailer catalog listing. The featured query
// parameter narrows the list to the featured set.
func (h *RetailerHandler) ListRetailers(c echo.Context) error {
	featuredOnly := c.QueryParam("featured") == "true"

	retailers, err := h.retailerUc.ListRetailers(c.Request().Context(), featuredOnly)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, retailers, "Retailers retrieved successfully")
}

// GetRetailer handles the single-retailer lookup.
func (h *RetailerHandler) GetRetailer(c echo.Context) error {
	retailerID, err := pathUUID(c, "retailerID")
	if err != nil {
		return err
	}

	retailer, err := h.retailerUc.GetRetailer(c.Request().Context(), retailerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, retailer, "Retailer retrieved successfully")
}

type nearbyRequest struct {
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	PositionError string   `json:"position_error"`
	RadiusMiles   *float64 `json:"radius_miles"`
}

// FindNearby handles the proximity search. Clients either send an origin
// coordinate or, when they could not obtain one, a position_error reason.
// The radius is optional; the service falls back to its configured default.
func (h *RetailerHandler) FindNearby(c echo.Context) error {
	var req nearbyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid nearby search input")
	}

	query := usecase.NearbyQuery{
		PositionError: req.PositionError,
		RadiusMiles:   req.RadiusMiles,
	}
	if req.Latitude != nil && req.Longitude != nil {
		query.Latitude = *req.Latitude
		query.Longitude = *req.Longitude
		query.HasOrigin = true
	}

	matches, err := h.proximityUc.FindNearby(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, matches, "Nearby retailers retrieved successfully")
}

// ConnectQR renders the PNG QR code for a retailer connect link.
func (h *RetailerHandler) ConnectQR(c echo.Context) error {
	retailerID, err := pathUUID(c, "retailerID")
	if err != nil {
		return err
	}

	png, err := h.retailerUc.GenerateConnectQR(c.Request().Context(), retailerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
