// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Connection statuses. A (player, retailer) pair cycles between the two:
// Connect moves the link to active, Disconnect moves it to inactive.
// Rows are never hard-deleted so the connection history survives.
const (
	ConnectionStatusActive   = "active"
	ConnectionStatusInactive = "inactive"
)

// PlayerRetailerConnection is the join-table edge between a Player and a
// Retailer. At most one row exists per (player, retailer) pair, enforced
// by a unique index; the Status column carries the edge's lifecycle.
type PlayerRetailerConnection struct {
	ID         uuid.UUID `json:"id"`
	PlayerID   uuid.UUID `json:"player_id"`
	RetailerID uuid.UUID `json:"retailer_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Active reports whether the edge currently represents a live connection.
func (c *PlayerRetailerConnection) Active() bool {
	return c.Status == ConnectionStatusActive
}
