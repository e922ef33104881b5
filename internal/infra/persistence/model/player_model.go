// Package model holds the GORM-specific structs mirroring database tables.
// They are kept separate from domain entities so persistence concerns never
// leak into the domain layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). The account id is the auth subject embedded in tokens.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	GoogleSub    string    `gorm:"type:varchar(255);uniqueIndex:idx_accounts_google_sub,where:google_sub <> ''"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// PlayerModel mirrors the 'players' table. AuthID references accounts.id and
// is the ownership anchor for all player-scoped writes.
type PlayerModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Alias         string    `gorm:"type:varchar(100);not null"`
	Email         string    `gorm:"type:varchar(255)"`
	City          string    `gorm:"type:varchar(100)"`
	State         string    `gorm:"type:varchar(50)"`
	Status        string    `gorm:"type:varchar(20);not null;default:'active'"`
	AliasImageURL string    `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Connections  []PlayerRetailerModel    `gorm:"foreignKey:PlayerID"`
	GameAccounts []PlayerGameAccountModel `gorm:"foreignKey:PlayerID"`
}

// TableName explicitly sets the table name for GORM.
func (PlayerModel) TableName() string {
	return "players"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table. Only token hashes
// are stored.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	RevokedAt *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
