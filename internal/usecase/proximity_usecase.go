package usecase

import (
	"context"

	"guildhall/internal/domain/entity"
)

// Position failure reasons reported by clients that could not produce an
// origin coordinate.
const (
	PositionErrorPermissionDenied = "permission_denied"
	PositionErrorUnavailable      = "unavailable"
)

// NearbyQuery is a proximity search request. Either Origin or PositionError
// is set, never both: a client that could not obtain its position reports
// why instead of sending coordinates.
type NearbyQuery struct {
	Latitude      float64
	Longitude     float64
	HasOrigin     bool
	PositionError string
	RadiusMiles   *float64 // nil means the default radius
}

// NearbyRetailer pairs a matched retailer with its distance from the origin.
type NearbyRetailer struct {
	Retailer      *entity.Retailer `json:"retailer"`
	DistanceMiles float64          `json:"distance_miles"`
}

// ProximityUsecase defines the interface for the retailer proximity search
type ProximityUsecase interface {
	// FindNearby returns the active retailers within the query radius of the
	// origin, sorted by distance ascending. Boundary ties are included.
	FindNearby(ctx context.Context, query NearbyQuery) ([]*NearbyRetailer, error)
}
