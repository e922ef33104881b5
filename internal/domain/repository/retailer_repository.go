package repository

import (
	"context"
	"errors"

	"guildhall/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRetailerNotFound is returned when a retailer is not found.
var ErrRetailerNotFound = errors.New("retailer not found")

// RetailerRepository defines read operations over retailer records.
// Retailers are administrative data; this service never writes them.
type RetailerRepository interface {
	// FindByID retrieves a single retailer by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Retailer, error)

	// FindActive retrieves all active retailers ordered by name.
	FindActive(ctx context.Context) ([]*entity.Retailer, error)

	// FindFeatured retrieves active retailers flagged for featuring,
	// ordered by name.
	FindFeatured(ctx context.Context) ([]*entity.Retailer, error)

	// FindAvailableForPlayer retrieves active retailers that do NOT have an
	// active connection with the given player, filtered by a case-insensitive
	// substring match on name/city/state when filter is non-empty, ordered by
	// name and capped at limit rows.
	FindAvailableForPlayer(ctx context.Context, playerID uuid.UUID, filter string, limit int) ([]*entity.Retailer, error)
}
