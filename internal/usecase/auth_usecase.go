// Package usecase defines the application-layer interfaces. Each interface
// groups the operations of one feature area; the impl package provides the
// concrete services.
package usecase

import (
	"context"
)

// TokenPair carries a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterInput carries the fields needed to create an account and its player profile.
type RegisterInput struct {
	Email    string
	Password string
	Alias    string
	City     string
	State    string
}

// AuthUsecase defines the interface for identity management use cases
type AuthUsecase interface {
	// Register creates an account plus its player profile and issues tokens.
	Register(ctx context.Context, input RegisterInput) (*TokenPair, error)

	// Login verifies email/password credentials and issues tokens.
	Login(ctx context.Context, email, password string) (*TokenPair, error)

	// GoogleSignIn verifies a Google ID token, creating the account and
	// player profile on first sign-in, and issues tokens.
	GoogleSignIn(ctx context.Context, idToken string) (*TokenPair, error)

	// Refresh rotates a refresh token, revoking the presented one.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}
