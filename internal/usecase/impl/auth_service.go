package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"guildhall/internal/domain/entity"
	domainerrors "guildhall/internal/domain/errors"
	"guildhall/internal/domain/repository"
	"guildhall/internal/domain/service"
	"guildhall/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type authService struct {
	accountRepo      repository.AccountRepository
	refreshTokenRepo repository.RefreshTokenRepository
	txManager        repository.TransactionManager
	tokenService     service.TokenService
	passwordHasher   service.PasswordHasher
	googleVerifier   service.GoogleVerifier
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo      repository.AccountRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	TxManager        repository.TransactionManager
	TokenService     service.TokenService
	PasswordHasher   service.PasswordHasher
	GoogleVerifier   service.GoogleVerifier
}

// NewAuthService creates a new auth service instance
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo:      params.AccountRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		txManager:        params.TxManager,
		tokenService:     params.TokenService,
		passwordHasher:   params.PasswordHasher,
		googleVerifier:   params.GoogleVerifier,
	}
}

// Register creates an account plus its player profile and issues tokens.
// Account and player are created in one transaction so a half-registered
// identity can never exist.
func (s *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.TokenPair, error) {
	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	account := &entity.Account{
		Email:        input.Email,
		PasswordHash: hash,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if createErr := factory.NewAccountRepository().Create(ctx, account); createErr != nil {
			if errors.Is(createErr, repository.ErrDuplicateAccount) {
				return domainerrors.ErrAccountAlreadyExists
			}

			return createErr
		}

		player := &entity.Player{
			AuthID: account.ID,
			Alias:  input.Alias,
			Email:  input.Email,
			City:   input.City,
			State:  input.State,
			Status: entity.PlayerStatusActive,
		}

		return factory.NewPlayerRepository().Create(ctx, player)
	})
	if err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, account)
}

// Login verifies email/password credentials and issues tokens.
func (s *authService) Login(ctx context.Context, email, password string) (*usecase.TokenPair, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if account.PasswordHash == "" || !s.passwordHasher.Check(password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, account)
}

// GoogleSignIn verifies a Google ID token and signs the account in,
// creating the account and player profile on first use.
func (s *authService) GoogleSignIn(ctx context.Context, idToken string) (*usecase.TokenPair, error) {
	googleUser, err := s.googleVerifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("invalid Google ID token")
	}

	account, err := s.accountRepo.FindByGoogleSub(ctx, googleUser.Sub)
	if err == nil {
		return s.issueTokens(ctx, account)
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find account by Google subject")
	}

	// Link to an existing password account with the same email if present.
	account, err = s.accountRepo.FindByEmail(ctx, googleUser.Email)
	if err == nil {
		account.GoogleSub = googleUser.Sub
		if updateErr := s.accountRepo.Update(ctx, account); updateErr != nil {
			return nil, errors.Wrap(updateErr, "failed to link Google account")
		}

		return s.issueTokens(ctx, account)
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find account by email")
	}

	// First sign-in: create account and player profile together.
	account = &entity.Account{
		Email:     googleUser.Email,
		GoogleSub: googleUser.Sub,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if createErr := factory.NewAccountRepository().Create(ctx, account); createErr != nil {
			if errors.Is(createErr, repository.ErrDuplicateAccount) {
				return domainerrors.ErrAccountAlreadyExists
			}

			return createErr
		}

		player := &entity.Player{
			AuthID:        account.ID,
			Alias:         googleUser.Name,
			Email:         googleUser.Email,
			Status:        entity.PlayerStatusActive,
			AliasImageURL: googleUser.Picture,
		}

		return factory.NewPlayerRepository().Create(ctx, player)
	})
	if err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, account)
}

// Refresh rotates a refresh token, revoking the presented one.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	stored, err := s.refreshTokenRepo.FindByHash(ctx, hashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	if stored.Revoked() || stored.Expired(time.Now()) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	account, err := s.accountRepo.FindByID(ctx, stored.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find account for refresh token")
	}

	if err := s.refreshTokenRepo.Revoke(ctx, stored.ID); err != nil {
		return nil, errors.Wrap(err, "failed to revoke refresh token")
	}

	return s.issueTokens(ctx, account)
}

// issueTokens generates an access/refresh pair and persists the refresh
// token's hash for later rotation.
func (s *authService) issueTokens(ctx context.Context, account *entity.Account) (*usecase.TokenPair, error) {
	accessToken, refreshToken, err := s.tokenService.GenerateTokens(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	stored := &entity.RefreshToken{
		AccountID: account.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(s.tokenService.GetRefreshTokenDuration()),
	}
	if err := s.refreshTokenRepo.Create(ctx, stored); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// hashToken is the storage form of opaque refresh tokens. Only the SHA-256
// hex digest ever touches the database.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
