// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the identity root in the system, representing a unique
// authenticated subject. Players reference an Account; all ownership
// checks compare against the Account ID carried in the caller's token.
type Account struct {
	ID           uuid.UUID // The auth-subject identifier embedded in issued tokens.
	Email        string    // The account's login email.
	PasswordHash string    // Bcrypt hash; empty for accounts created via Google sign-in.
	GoogleSub    string    // Google's stable subject id; empty for password accounts.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Player is the community profile attached to an Account. It is the root
// of ownership for connection, campaign, tournament and game-account
// writes: a caller may only mutate the Player whose AuthID matches the
// caller's authenticated subject.
type Player struct {
	ID            uuid.UUID // The Global Unique Identifier (GUID) for the player.
	AuthID        uuid.UUID // Foreign key to the owning Account (the auth subject).
	Alias         string    // The player's public display alias.
	Email         string    // Contact email shown on the profile.
	City          string    // Optional home city.
	State         string    // Optional home state.
	Status        string    // Lifecycle status, e.g. "active".
	AliasImageURL string    // Object-storage key or URL for the alias image.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PlayerStatusActive is the only status under which a player may hold
// active connections.
const PlayerStatusActive = "active"
