package service

import "context"

// GoogleUser carries the identity fields extracted from a verified Google
// ID token. Sub is Google's stable subject id and is the durable identity
// key linked to an Account.
type GoogleUser struct {
	Sub           string
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
}

// GoogleVerifier verifies Google ID tokens presented by the client during
// sign-in.
type GoogleVerifier interface {
	// VerifyIDToken checks the token's issuer, audience, expiry and email
	// verification, returning the embedded identity on success.
	VerifyIDToken(ctx context.Context, idToken string) (*GoogleUser, error)
}
