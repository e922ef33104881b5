// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification types recorded for players.
const (
	NotificationTypeRetailerConnected    = "retailer_connected"
	NotificationTypeRetailerDisconnected = "retailer_disconnected"
)

// PlayerNotification is an in-app notification row. The worker delivery
// records one for every connection event it consumes; players list and
// acknowledge them through the API.
type PlayerNotification struct {
	ID        uuid.UUID  `json:"id"`
	PlayerID  uuid.UUID  `json:"player_id"`
	Type      string     `json:"type"`
	Message   string     `json:"message"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
