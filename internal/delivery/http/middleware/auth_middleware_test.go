package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"guildhall/internal/domain/service"
	mockSvc "guildhall/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeAuthenticate(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/players/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	}

	m := NewAuthMiddleware(tokenSvc)
	err := m.Authenticate(next)(c)
	require.NoError(t, err)

	return rec, reached
}

func TestAuthMiddleware_Authenticate_ValidAccessToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	accountID := uuid.New()

	tokenSvc.EXPECT().
		ValidateToken("good-token").
		Return(&service.Claims{AccountID: accountID, Type: "access"}, nil)

	rec, reached := invokeAuthenticate(t, tokenSvc, "Bearer good-token")
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, reached := invokeAuthenticate(t, tokenSvc, "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearerFormat(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, reached := invokeAuthenticate(t, tokenSvc, "Basic abc123")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	tokenSvc.EXPECT().
		ValidateToken("bad-token").
		Return(nil, errors.New("token expired"))

	rec, reached := invokeAuthenticate(t, tokenSvc, "Bearer bad-token")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_RefreshTokenRejected(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	tokenSvc.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{AccountID: uuid.New(), Type: "refresh"}, nil)

	rec, reached := invokeAuthenticate(t, tokenSvc, "Bearer refresh-token")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
