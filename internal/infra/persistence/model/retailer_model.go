package model

import (
	"time"

	"github.com/google/uuid"
)

// RetailerModel mirrors the 'retailers' table. Coordinates are plain
// decimal degrees; the proximity search computes distances in the
// application, not in SQL.
type RetailerModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	Address     string    `gorm:"type:varchar(255);not null"`
	City        string    `gorm:"type:varchar(100);not null"`
	State       string    `gorm:"type:varchar(50);not null"`
	Zip         string    `gorm:"type:varchar(20);not null"`
	Phone       string    `gorm:"type:varchar(30)"`
	Email       string    `gorm:"type:varchar(255)"`
	WebsiteURL  string    `gorm:"type:text"`
	Lat         float64   `gorm:"type:decimal(9,6);not null"`
	Lng         float64   `gorm:"type:decimal(9,6);not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active';index"`
	IsFeatured  bool      `gorm:"not null;default:false"`
	StorePhoto  string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RetailerModel) TableName() string {
	return "retailers"
}

// PlayerRetailerModel mirrors the 'player_retailers' join table. The unique
// index over (player_id, retailer_id) makes connect race-safe: concurrent
// inserts for the same pair collapse into one row.
type PlayerRetailerModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PlayerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_player_retailer,priority:1"`
	RetailerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_player_retailer,priority:2"`
	Status     string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlayerRetailerModel) TableName() string {
	return "player_retailers"
}
