package model

import (
	"time"

	"github.com/google/uuid"
)

// CampaignModel mirrors the 'campaigns' table.
type CampaignModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	GameSystemID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	Type         string    `gorm:"type:varchar(50)"`
	MinPlayers   int       `gorm:"not null;default:1"`
	MaxPlayers   int       `gorm:"not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'open';index"`
	Price        float64   `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt    time.Time

	Members []CampaignPlayerModel `gorm:"foreignKey:CampaignID"`
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaigns"
}

// CampaignPlayerModel mirrors the 'campaign_players' join table with a
// unique (campaign_id, player_id) pair.
type CampaignPlayerModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CampaignID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_campaign_player,priority:1"`
	PlayerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_campaign_player,priority:2"`
	RoleType   string    `gorm:"type:varchar(20);not null;default:'player'"`
	Status     string    `gorm:"type:varchar(20);not null;default:'active'"`
	JoinedAt   time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampaignPlayerModel) TableName() string {
	return "campaign_players"
}
