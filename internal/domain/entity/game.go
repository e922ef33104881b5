// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GameSystem is a tabletop game system (e.g. a specific miniatures game)
// that campaigns, tournaments and player accounts reference.
type GameSystem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PlayerGameAccount links a player to their external account id within a
// game system (army tracker ids, ladder handles and the like).
type PlayerGameAccount struct {
	ID           uuid.UUID `json:"id"`
	PlayerID     uuid.UUID `json:"player_id"`
	GameSystemID uuid.UUID `json:"game_system_id"`
	AccountID    string    `json:"account_id"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
