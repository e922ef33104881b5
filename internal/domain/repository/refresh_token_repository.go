package repository

import (
	"context"
	"errors"

	"guildhall/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines operations over stored refresh tokens.
type RefreshTokenRepository interface {
	// Create persists a new refresh token.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a token by its SHA-256 hash.
	FindByHash(ctx context.Context, hash string) (*entity.RefreshToken, error)

	// Revoke stamps the token's revocation time.
	Revoke(ctx context.Context, id uuid.UUID) error

	// RevokeAllForAccount revokes every live token of an account.
	RevokeAllForAccount(ctx context.Context, accountID uuid.UUID) error
}
