package model

import (
	"time"

	"github.com/google/uuid"
)

// GameSystemModel mirrors the 'game_systems' table.
type GameSystemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Type        string    `gorm:"type:varchar(50)"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GameSystemModel) TableName() string {
	return "game_systems"
}

// PlayerGameAccountModel mirrors the 'player_game_accounts' table.
type PlayerGameAccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PlayerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	GameSystemID uuid.UUID `gorm:"type:uuid;not null;index"`
	AccountID    string    `gorm:"type:varchar(255);not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlayerGameAccountModel) TableName() string {
	return "player_game_accounts"
}

// ConventionModel mirrors the 'conventions' table.
type ConventionModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Description       string    `gorm:"type:text"`
	StartDate         time.Time `gorm:"not null;index"`
	EndDate           time.Time `gorm:"not null"`
	Location          string    `gorm:"type:varchar(255);not null"`
	Venue             string    `gorm:"type:varchar(255);not null"`
	ExpectedAttendees int       `gorm:"not null;default:0"`
	ImageURL          string    `gorm:"type:text"`
	WebsiteURL        string    `gorm:"type:text"`
	Status            string    `gorm:"type:varchar(20);not null;default:'scheduled'"`
	IsFeatured        bool      `gorm:"not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConventionModel) TableName() string {
	return "conventions"
}

// BlogModel mirrors the 'blogs' table.
type BlogModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title        string     `gorm:"type:varchar(255);not null"`
	Slug         string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Content      string     `gorm:"type:text;not null"`
	Excerpt      string     `gorm:"type:text"`
	BlogImageURL string     `gorm:"type:text"`
	AuthorID     *uuid.UUID `gorm:"type:uuid"`
	Status       string     `gorm:"type:varchar(20);not null;default:'draft';index"`
	PublishedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlogModel) TableName() string {
	return "blogs"
}

// PlayerNotificationModel mirrors the 'player_notifications' table.
type PlayerNotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PlayerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      string    `gorm:"type:varchar(50);not null"`
	Message   string    `gorm:"type:text;not null"`
	ReadAt    *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlayerNotificationModel) TableName() string {
	return "player_notifications"
}
