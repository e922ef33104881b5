package usecase

import (
	"context"

	"guildhall/internal/domain/entity"

	"github.com/google/uuid"
)

// ConnectionUsecase defines the interface for player-retailer connection
// management. Every operation verifies that the target player is owned by
// the authenticated subject before touching storage.
type ConnectionUsecase interface {
	// ListConnected retrieves the retailers the player is actively connected
	// to, ordered by name.
	ListConnected(ctx context.Context, authID, playerID uuid.UUID) ([]*entity.Retailer, error)

	// ListAvailable retrieves active retailers the player is not connected
	// to, filtered by a case-insensitive substring match on name/city/state
	// and capped at the configured page size.
	ListAvailable(ctx context.Context, authID, playerID uuid.UUID, filter string) ([]*entity.Retailer, error)

	// Connect creates or reactivates the link to a retailer. Connecting an
	// already-connected pair is an idempotent success.
	Connect(ctx context.Context, authID, playerID, retailerID uuid.UUID) (*entity.PlayerRetailerConnection, error)

	// Disconnect deactivates the link to a retailer. Disconnecting a pair
	// with no active link is an idempotent no-op.
	Disconnect(ctx context.Context, authID, playerID, retailerID uuid.UUID) error
}
