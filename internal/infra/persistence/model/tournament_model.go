package model

import (
	"time"

	"github.com/google/uuid"
)

// TournamentModel mirrors the 'tournaments' table.
type TournamentModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	GameSystemID         *uuid.UUID `gorm:"type:uuid;index"`
	Title                string     `gorm:"type:varchar(255);not null"`
	Description          string     `gorm:"type:text"`
	StartDate            time.Time  `gorm:"not null;index"`
	EndDate              time.Time  `gorm:"not null"`
	Location             string     `gorm:"type:varchar(255);not null"`
	Venue                string     `gorm:"type:varchar(255);not null"`
	PrizePool            float64    `gorm:"type:decimal(10,2);not null;default:0"`
	MaxParticipants      int        `gorm:"not null;default:0"`
	RegistrationDeadline *time.Time
	ImageURL             string `gorm:"type:text"`
	IsFeatured           bool   `gorm:"not null;default:false"`
	Status               string `gorm:"type:varchar(20);not null;default:'scheduled';index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Entries []TournamentEntryModel `gorm:"foreignKey:TournamentID"`
}

// TableName explicitly sets the table name for GORM.
func (TournamentModel) TableName() string {
	return "tournaments"
}

// TournamentEntryModel mirrors the 'tournament_entries' join table with a
// unique (tournament_id, player_id) pair.
type TournamentEntryModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TournamentID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tournament_player,priority:1"`
	PlayerID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tournament_player,priority:2"`
	RegistrationDate time.Time
	Status           string `gorm:"type:varchar(20);not null;default:'registered'"`
	FinalRank        *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (TournamentEntryModel) TableName() string {
	return "tournament_entries"
}
