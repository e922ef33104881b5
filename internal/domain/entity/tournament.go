// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tournament is a competitive event, optionally tied to a game system.
type Tournament struct {
	ID                   uuid.UUID  `json:"id"`
	GameSystemID         *uuid.UUID `json:"game_system_id,omitempty"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              time.Time  `json:"end_date"`
	Location             string     `json:"location"`
	Venue                string     `json:"venue"`
	PrizePool            float64    `json:"prize_pool"`
	MaxParticipants      int        `json:"max_participants"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	ImageURL             string     `json:"image_url,omitempty"`
	IsFeatured           bool       `json:"is_featured"`
	Status               string     `json:"status"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// Tournament entry statuses.
const (
	EntryStatusRegistered = "registered"
	EntryStatusWithdrawn  = "withdrawn"
)

// TournamentEntry is a player's registration in a tournament.
type TournamentEntry struct {
	ID               uuid.UUID `json:"id"`
	TournamentID     uuid.UUID `json:"tournament_id"`
	PlayerID         uuid.UUID `json:"player_id"`
	RegistrationDate time.Time `json:"registration_date"`
	Status           string    `json:"status"`
	FinalRank        *int      `json:"final_rank,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
