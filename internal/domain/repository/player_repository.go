// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"guildhall/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPlayerNotFound is a domain-specific error returned when a player is not found.
var ErrPlayerNotFound = errors.New("player not found")

// PlayerRepository defines the standard operations for player persistence.
// The application layer depends on this interface, not the concrete implementation.
type PlayerRepository interface {
	// FindByID retrieves a single player by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Player, error)

	// FindByAuthID retrieves the player owned by the given auth subject.
	FindByAuthID(ctx context.Context, authID uuid.UUID) (*entity.Player, error)

	// Create persists a new player entity to the storage.
	Create(ctx context.Context, player *entity.Player) error

	// Update modifies an existing player entity in the storage.
	Update(ctx context.Context, player *entity.Player) error
}
