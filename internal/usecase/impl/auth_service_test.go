package impl

import (
	"context"
	"testing"
	"time"

	"guildhall/internal/domain/entity"
	domainerrors "guildhall/internal/domain/errors"
	"guildhall/internal/domain/repository"
	"guildhall/internal/domain/service"
	mockRepo "guildhall/internal/mocks/repository"
	mockSvc "guildhall/internal/mocks/service"
	"guildhall/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	accountRepo      *mockRepo.MockAccountRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	txManager        *mockRepo.MockTransactionManager
	tokenService     *mockSvc.MockTokenService
	passwordHasher   *mockSvc.MockPasswordHasher
	googleVerifier   *mockSvc.MockGoogleVerifier
}

func newAuthServiceForTest(t *testing.T) (usecase.AuthUsecase, *authServiceMocks) {
	t.Helper()

	m := &authServiceMocks{
		accountRepo:      mockRepo.NewMockAccountRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		txManager:        mockRepo.NewMockTransactionManager(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		passwordHasher:   mockSvc.NewMockPasswordHasher(t),
		googleVerifier:   mockSvc.NewMockGoogleVerifier(t),
	}

	authService := NewAuthService(AuthServiceParams{
		AccountRepo:      m.accountRepo,
		RefreshTokenRepo: m.refreshTokenRepo,
		TxManager:        m.txManager,
		TokenService:     m.tokenService,
		PasswordHasher:   m.passwordHasher,
		GoogleVerifier:   m.googleVerifier,
	})

	return authService, m
}

// expectTokenIssue wires the token generation and refresh-token storage
// shared by every successful sign-in path.
func expectTokenIssue(m *authServiceMocks) {
	m.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID")).
		Return("access-token", "refresh-token", nil)

	m.tokenService.EXPECT().
		GetRefreshTokenDuration().
		Return(30 * 24 * time.Hour)

	m.refreshTokenRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)
}

func TestAuthService_Register_Success(t *testing.T) {
	authService, m := newAuthServiceForTest(t)

	ctx := context.Background()

	m.passwordHasher.EXPECT().
		Hash("hunter2!").
		Return("$2a$10$hash", nil)

	accountRepo := mockRepo.NewMockAccountRepository(t)
	playerRepo := mockRepo.NewMockPlayerRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewAccountRepository().Return(accountRepo)
	factory.EXPECT().NewPlayerRepository().Return(playerRepo)

	accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			account.ID = uuid.New()
		}).
		Return(nil)

	playerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Player")).
		Run(func(_ context.Context, player *entity.Player) {
			assert.Equal(t, "grimble", player.Alias)
			assert.Equal(t, entity.PlayerStatusActive, player.Status)
			assert.NotEqual(t, uuid.Nil, player.AuthID)
		}).
		Return(nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	expectTokenIssue(m)

	pair, err := authService.Register(ctx, usecase.RegisterInput{
		Email:    "grimble@example.com",
		Password: "hunter2!",
		Alias:    "grimble",
		City:     "Indianapolis",
		State:    "IN",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", pair.AccessToken)
	assert.Equal(t, "refresh-token", pair.RefreshToken)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	authService, m := newAuthServiceForTest(t)

	ctx := context.Background()

	m.passwordHasher.EXPECT().
		Hash("hunter2!").
		Return("$2a$10$hash", nil)

	accountRepo := mockRepo.NewMockAccountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewAccountRepository().Return(accountRepo)

	accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(repository.ErrDuplicateAccount)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	pair, err := authService.Register(ctx, usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "hunter2!",
		Alias:    "grimble",
	})
	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	authService, m := newAuthServiceForTest(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "grimble@example.com",
		PasswordHash: "$2a$10$hash",
	}

	m.accountRepo.EXPECT().
		FindByEmail(ctx, "grimble@example.com").
		Return(account, nil)

	m.passwordHasher.EXPECT().
		Check("hunter2!", "$2a$10$hash").
		Return(true)

	expectTokenIssue(m)

	pair, err := authService.Login(ctx, "grimble@example.com", "hunter2!")
	require.NoError(t, err)
	assert.Equal(t, "access-token", pair.AccessToken)
	assert.Equal(t, "refresh-token", pair.RefreshToken)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	authService, m := newAuthServiceForTest(t)

	ctx := context.Background()

	m.accountRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAccountNotFound)

	pair, err := authService.Login(ctx, "nobody@example.com", "whatever")
	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	authService, m := newAuthServiceForTest(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "grimble@example.com",
		PasswordHash: "$2a$10$hash",
	}

	m.accountRepo.EXPECT().
		FindByEmail(ctx, "grimble@example.com").
		Return(account, nil)

	m.passwordHasher.EXPECT().
		Check("wrong", "$2a$10$hash").
		Return(false)

	pair, err := authService.Login(ctx, "grimble@example.com", "wrong")
	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_GoogleOnlyAccountRejected(t *testing.T) {
	authService, m := newAuthServiceForTest(t)

	ctx := context.Background()

	// Accounts created via Google sign-in have no password hash and can
	// never pass the credential check.
	account := &entity.Account{
		ID:        uuid.New(),
		Email:     "grimble@example.com",
		GoogleSub: "google-sub-123",
	}

	m.accountRepo.EXPECT().
		FindByEmail(ctx, "grimble@example.com").
		Return(account, nil)

	pair, err := authService.Login(ctx, "grimble@example.com", "anything")
	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_GoogleSignIn_ExistingLinkedAccount(t *testing.T) {
	authService, m := newAuthServiceForTest(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:        uuid.New(),
		Email:     "grimble@example.com",
		GoogleSub: "google-sub-123",
	}

	m.googleVerifier.EXPECT().
		VerifyIDToken(ctx, "id-token").
		Return(&service.GoogleUser{
			Sub:           "google-sub-123",
			Email:         "grimble@example.com",
			EmailVerified: true,
		}, nil)

	m.accountRepo.EXPECT().
		FindByGoogleSub(ctx, "google-sub-123").
		Return(account, nil)

	expectTokenIssue(m)

	pair, err := authService.GoogleSignIn(ctx, "id-token")
	require.NoError(t, err)
	assert.Equal(t, "access-token", pair.AccessToken)
}

func TestAuthService_GoogleSignIn_LinksExistingEmailAccount(t *testing.T) {
	authService, m := newAuthServiceForTest(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "grimble@example.com",
		PasswordHash: "$2a$10$hash",
	}

	m.googleVerifier.EXPECT().
		VerifyIDToken(ctx, "id-token").
		Return(&service.GoogleUser{
			Sub:           "google-sub-123",
			Email:         "grimble@example.com",
			EmailVerified: true,
		}, nil)

	m.accountRepo.EXPECT().
		FindByGoogleSub(ctx, "google-sub-123").
		Return(nil, repository.ErrAccountNotFound)

	m.accountRepo.EXPECT().
		FindByEmail(ctx, "grimble@example.com").
		Return(account, nil)

	m.accountRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, updated *entity.Account) {
			assert.Equal(t, "google-sub-123", updated.GoogleSub)
		}).
		Return(nil)

	expectTokenIssue(m)

	pair, err := authService.GoogleSignIn(ctx, "id-token")
	require.NoError(t, err)
	assert.NotNil(t, pair)
}

func TestAuthService_GoogleSignIn_CreatesNewAccount(t *testing.T) {
	authService, m := newAuthServiceForTest(t)

	ctx := context.Background()

	m.googleVerifier.EXPECT().
		VerifyIDToken(ctx, "id-token").
		Return(&service.GoogleUser{
			Sub:           "google-sub-456",
			Email:         "new@example.com",
			Name:          "New Player",
			Picture:       "https://example.com/avatar.png",
			EmailVerified: true,
		}, nil)

	m.accountRepo.EXPECT().
		FindByGoogleSub(ctx, "google-sub-456").
		Return(nil, repository.ErrAccountNotFound)

	m.accountRepo.EXPECT().
		FindByEmail(ctx, "new@example.com").
		Return(nil, repository.ErrAccountNotFound)

	accountRepo := mockRepo.NewMockAccountRepository(t)
	playerRepo := mockRepo.NewMockPlayerRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewAccountRepository().Return(accountRepo)
	factory.EXPECT().NewPlayerRepository().Return(playerRepo)

	accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			account.ID = uuid.New()
		}).
		Return(nil)

	playerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Player")).
		Run(func(_ context.Context, player *entity.Player) {
			assert.Equal(t, "New Player", player.Alias)
			assert.Equal(t, "https://example.com/avatar.png", player.AliasImageURL)
		}).
		Return(nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	expectTokenIssue(m)

	pair, err := authService.GoogleSignIn(ctx, "id-token")
	require.NoError(t, err)
	assert.NotNil(t, pair)
}

func TestAuthService_GoogleSignIn_InvalidToken(t *testing.T) {
	authService, m := newAuthServiceForTest(t)

	ctx := context.Background()

	m.googleVerifier.EXPECT().
		VerifyIDToken(ctx, "garbage").
		Return(nil, assert.AnError)

	pair, err := authService.GoogleSignIn(ctx, "garbage")
	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	authService, m := newAuthServiceForTest(t)

	ctx := context.Background()
	accountID := uuid.New()
	tokenID := uuid.New()

	stored := &entity.RefreshToken{
		ID:        tokenID,
		AccountID: accountID,
		TokenHash: hashToken("old-refresh"),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	m.refreshTokenRepo.EXPECT().
		FindByHash(ctx, hashToken("old-refresh")).
		Return(stored, nil)

	m.accountRepo.EXPECT().
		FindByID(ctx, accountID).
		Return(&entity.Account{ID: accountID, Email: "grimble@example.com"}, nil)

	m.refreshTokenRepo.EXPECT().
		Revoke(ctx, tokenID).
		Return(nil)

	expectTokenIssue(m)

	pair, err := authService.Refresh(ctx, "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "refresh-token", pair.RefreshToken)
}

func TestAuthService_Refresh_RevokedToken(t *testing.T) {
	authService, m := newAuthServiceForTest(t)

	ctx := context.Background()
	revokedAt := time.Now().Add(-time.Minute)

	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		AccountID: uuid.New(),
		TokenHash: hashToken("revoked-refresh"),
		ExpiresAt: time.Now().Add(time.Hour),
		RevokedAt: &revokedAt,
	}

	m.refreshTokenRepo.EXPECT().
		FindByHash(ctx, hashToken("revoked-refresh")).
		Return(stored, nil)

	pair, err := authService.Refresh(ctx, "revoked-refresh")
	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_ExpiredToken(t *testing.T) {
	authService, m := newAuthServiceForTest(t)

	ctx := context.Background()

	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		AccountID: uuid.New(),
		TokenHash: hashToken("expired-refresh"),
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	m.refreshTokenRepo.EXPECT().
		FindByHash(ctx, hashToken("expired-refresh")).
		Return(stored, nil)

	pair, err := authService.Refresh(ctx, "expired-refresh")
	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_UnknownToken(t *testing.T) {
	authService, m := newAuthServiceForTest(t)

	ctx := context.Background()

	m.refreshTokenRepo.EXPECT().
		FindByHash(ctx, hashToken("unknown")).
		Return(nil, repository.ErrRefreshTokenNotFound)

	pair, err := authService.Refresh(ctx, "unknown")
	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}
