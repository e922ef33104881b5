package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"guildhall/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeToken(t *testing.T, claims idTokenClaims) string {
	t.Helper()

	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	encode := func(b []byte) string {
		return base64.RawURLEncoding.EncodeToString(b)
	}

	// Signature is not checked locally; audience/issuer/expiry are.
	return encode([]byte(`{"alg":"RS256","typ":"JWT"}`)) + "." + encode(payload) + ".sig"
}

func newTestVerifier() *verifier {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "client-123"}}

	return NewVerifier(cfg, slog.Default()).(*verifier)
}

func TestVerifyIDToken_Valid(t *testing.T) {
	v := newTestVerifier()

	token := makeToken(t, idTokenClaims{
		Iss:           "https://accounts.google.com",
		Sub:           "google-sub-1",
		Aud:           "client-123",
		Exp:           time.Now().Add(time.Hour).Unix(),
		Email:         "player@example.com",
		EmailVerified: true,
		Name:          "Player One",
	})

	user, err := v.VerifyIDToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "google-sub-1", user.Sub)
	assert.Equal(t, "player@example.com", user.Email)
}

func TestVerifyIDToken_WrongAudience(t *testing.T) {
	v := newTestVerifier()

	token := makeToken(t, idTokenClaims{
		Iss:           "https://accounts.google.com",
		Sub:           "google-sub-1",
		Aud:           "someone-else",
		Exp:           time.Now().Add(time.Hour).Unix(),
		EmailVerified: true,
	})

	_, err := v.VerifyIDToken(context.Background(), token)
	assert.Error(t, err)
}

func TestVerifyIDToken_Expired(t *testing.T) {
	v := newTestVerifier()

	token := makeToken(t, idTokenClaims{
		Iss:           "https://accounts.google.com",
		Sub:           "google-sub-1",
		Aud:           "client-123",
		Exp:           time.Now().Add(-time.Hour).Unix(),
		EmailVerified: true,
	})

	_, err := v.VerifyIDToken(context.Background(), token)
	assert.Error(t, err)
}

func TestVerifyIDToken_Malformed(t *testing.T) {
	v := newTestVerifier()

	_, err := v.VerifyIDToken(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}
