package commands

import (
	"context"
	"log/slog"

	"foodshare/internal/domain/auth"
	"foodshare/internal/domain/user"
	reqdto "foodshare/internal/handler/dto/request"
	"foodshare/internal/infra"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/pkg/jwt"
	"foodshare/internal/pkg/password"
	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound        = errs.Mark(errs.New("user not found"), errs.ErrUnauthenticated)
	ErrInvalidCredentials  = auth.ErrInvalidCredentials
	ErrUserInactive        = errs.Mark(errs.New("user inactive"), errs.ErrUnauthenticated)
	ErrEmailTaken          = errs.Mark(errs.New("email already registered"), errs.ErrConflict)
	ErrTokenGeneration     = errs.New("token generation failed")
	ErrTokenValidation     = errs.Mark(errs.New("token validation failed"), errs.ErrUnauthenticated)
	ErrPasswordHashFailure = errs.New("password hashing failed")
)

type SignupResult struct {
	UserID uuid.UUID
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Signup(ctx context.Context, req reqdto.SignupRequest) (*SignupResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
	logger     *slog.Logger
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
		logger:     logger,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, req reqdto.SignupRequest) (*SignupResult, error) {
	registration, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	hash, err := password.Hash(registration.Password().Value())
	if err != nil {
		if errs.Is(err, errs.ErrValidation) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrPasswordHashFailure)
	}

	u := user.NewUser(registration.Email(), hash, registration.DisplayName(), registration.Location(), registration.Role(), a.clock.Now())

	var id uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		id, cerr = tx.Users().Create(ctx, tx.DB(), u)
		return cerr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	a.logger.Info("user registered", slog.String("user_id", id.String()))
	return &SignupResult{UserID: id}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	account, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	pair, err := a.issueTokens(account.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), account.ID)
	})
	if err != nil {
		// login already succeeded; only last_login is stale
		a.logger.Warn("failed to update last login",
			slog.String("user_id", account.ID.String()),
			slog.String("error", err.Error()))
	}

	return &LoginResult{UserID: account.ID, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// Role may have changed since the refresh token was issued.
	current, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !current.IsActive() {
		return nil, ErrUserInactive
	}

	return a.issueTokens(current.ID(), current.Role())
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*shared.UserCredentials, error) {
	account, err := a.uow.CommandReads().CredentialsByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same answer as a wrong password so emails cannot be enumerated
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !account.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.Compare(account.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}
