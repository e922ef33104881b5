package repository

import (
	"context"
	"errors"

	"guildhall/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for connection persistence.
var (
	// ErrConnectionNotFound is returned when a connection edge is not found.
	ErrConnectionNotFound = errors.New("connection not found")
	// ErrDuplicateConnection is returned when the unique (player, retailer)
	// index rejects an insert.
	ErrDuplicateConnection = errors.New("connection already exists")
)

// ConnectionRepository defines the operations over the player_retailers
// join table.
type ConnectionRepository interface {
	// CreateConnection persists a new connection edge.
	CreateConnection(ctx context.Context, conn *entity.PlayerRetailerConnection) error

	// FindConnection retrieves the edge for a (player, retailer) pair
	// regardless of status.
	FindConnection(ctx context.Context, playerID, retailerID uuid.UUID) (*entity.PlayerRetailerConnection, error)

	// FindConnectedRetailers retrieves the retailers with an active edge to
	// the player, ordered by retailer name.
	FindConnectedRetailers(ctx context.Context, playerID uuid.UUID) ([]*entity.Retailer, error)

	// UpdateConnectionStatus flips the status of an edge by ID.
	UpdateConnectionStatus(ctx context.Context, id uuid.UUID, status string) error
}
