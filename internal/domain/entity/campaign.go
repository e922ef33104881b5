// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Campaign is an organized game campaign run under a game system.
type Campaign struct {
	ID           uuid.UUID `json:"id"`
	GameSystemID uuid.UUID `json:"game_system_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Type         string    `json:"type,omitempty"`
	MinPlayers   int       `json:"min_players"`
	MaxPlayers   int       `json:"max_players"`
	Status       string    `json:"status"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
}

// Campaign membership role types.
const (
	CampaignRolePlayer = "player"
	CampaignRoleOwner  = "owner"
)

// CampaignMembership is the join-table edge between a Player and a
// Campaign. Like retailer connections it is a soft-status edge with a
// unique (campaign, player) pair.
type CampaignMembership struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	PlayerID   uuid.UUID `json:"player_id"`
	RoleType   string    `json:"role_type"`
	Status     string    `json:"status"`
	JoinedAt   time.Time `json:"joined_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
