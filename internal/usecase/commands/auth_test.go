//go:build unit

package commands

import (
	"context"
	"strings"
	"testing"
	"time"

	"foodshare/internal/domain/user"
	"foodshare/internal/infra"
	sqlc "foodshare/internal/infra/sqlc/generated"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/pkg/jwt"
	"foodshare/internal/pkg/password"
	"foodshare/internal/usecase/shared"
	"foodshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthFixture(t *testing.T) (*txHarness, *jwt.Service, AuthCommands) {
	t.Helper()
	h := newTxHarness(t)
	jwtService := jwt.NewService("test-secret", 15*time.Minute, time.Hour)
	cmds := NewAuthCommands(h.uow, jwtService, clock.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)), discardLogger())
	return h, jwtService, cmds
}

func TestAuthCommands_Signup(t *testing.T) {
	t.Run("creates user with hashed password", func(t *testing.T) {
		h, _, cmds := newAuthFixture(t)
		req := builder.NewAuthBuilder().BuildSignupDTO()
		newID := uuid.New()

		h.expectWithin(1)
		h.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, u *user.User) (uuid.UUID, error) {
				assert.Equal(t, req.Email, u.Email().Value())
				assert.NotEqual(t, req.Password, u.PasswordHash())
				assert.NoError(t, password.Compare(u.PasswordHash(), req.Password))
				return newID, nil
			})

		result, err := cmds.Signup(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, newID, result.UserID)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		h, _, cmds := newAuthFixture(t)
		h.expectWithin(1)
		h.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create user", &pgconn.PgError{Code: "23505"}))

		_, err := cmds.Signup(context.Background(), builder.NewAuthBuilder().BuildSignupDTO())

		require.ErrorIs(t, err, ErrEmailTaken)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("invalid role is a validation error", func(t *testing.T) {
		_, _, cmds := newAuthFixture(t)
		req := builder.NewAuthBuilder().BuildSignupDTO()
		req.Role = "admin"

		_, err := cmds.Signup(context.Background(), req)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("password over the bcrypt limit is a validation error", func(t *testing.T) {
		_, _, cmds := newAuthFixture(t)
		req := builder.NewAuthBuilder().BuildSignupDTO()
		req.Password = strings.Repeat("p", password.MaxBytes+1)

		_, err := cmds.Signup(context.Background(), req)

		require.Error(t, err)
		assert.True(t, errs.Is(err, password.ErrTooLong))
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.False(t, errs.Is(err, ErrPasswordHashFailure))
	})
}

func TestAuthCommands_Login(t *testing.T) {
	hash, err := password.HashWithCost("password123", 4)
	require.NoError(t, err)

	credentials := func(active bool) *shared.UserCredentials {
		return &shared.UserCredentials{
			ID:           uuid.New(),
			Email:        "test@example.com",
			Role:         "donor",
			PasswordHash: hash,
			IsActive:     active,
		}
	}

	t.Run("issues token pair and records login", func(t *testing.T) {
		h, jwtService, cmds := newAuthFixture(t)
		account := credentials(true)
		h.reads.EXPECT().CredentialsByEmail(gomock.Any(), account.Email).Return(account, nil)
		h.expectWithin(1)
		h.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), account.ID).Return(nil)

		result, err := cmds.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())

		require.NoError(t, err)
		assert.Equal(t, account.ID, result.UserID)
		claims, err := jwtService.ValidateToken(result.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
		assert.Equal(t, "donor", claims.Role)
	})

	t.Run("last login failure does not fail login", func(t *testing.T) {
		h, _, cmds := newAuthFixture(t)
		account := credentials(true)
		h.reads.EXPECT().CredentialsByEmail(gomock.Any(), account.Email).Return(account, nil)
		h.expectWithin(1)
		h.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), account.ID).Return(assert.AnError)

		_, err := cmds.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())

		require.NoError(t, err)
	})

	cases := []struct {
		name    string
		setup   func(h *txHarness)
		request func(b *builder.AuthBuilder)
		errIs   error
	}{
		{
			name: "unknown email",
			setup: func(h *txHarness) {
				h.reads.EXPECT().CredentialsByEmail(gomock.Any(), gomock.Any()).
					Return(nil, infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound))
			},
			errIs: ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(h *txHarness) {
				h.reads.EXPECT().CredentialsByEmail(gomock.Any(), gomock.Any()).Return(credentials(true), nil)
			},
			request: func(b *builder.AuthBuilder) { b.Password = "wrong-password" },
			errIs:   ErrInvalidCredentials,
		},
		{
			name: "inactive user",
			setup: func(h *txHarness) {
				h.reads.EXPECT().CredentialsByEmail(gomock.Any(), gomock.Any()).Return(credentials(false), nil)
			},
			errIs: ErrUserInactive,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, _, cmds := newAuthFixture(t)
			tc.setup(h)
			b := builder.NewAuthBuilder()
			if tc.request != nil {
				tc.request(b)
			}

			_, err := cmds.Login(context.Background(), b.BuildDTO())

			require.ErrorIs(t, err, tc.errIs)
			assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
		})
	}
}

func TestAuthCommands_RefreshToken(t *testing.T) {
	t.Run("reissues with the current role", func(t *testing.T) {
		h, jwtService, cmds := newAuthFixture(t)
		current := builder.NewUserBuilder().WithRole("claimant").BuildReconstructed()
		refresh, err := jwtService.GenerateRefreshToken(current.ID(), user.RoleDonor)
		require.NoError(t, err)
		h.reads.EXPECT().UserByID(gomock.Any(), current.ID()).Return(current, nil)

		pair, err := cmds.RefreshToken(context.Background(), refresh)

		require.NoError(t, err)
		claims, err := jwtService.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "claimant", claims.Role)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		_, jwtService, cmds := newAuthFixture(t)
		access, err := jwtService.GenerateAccessToken(uuid.New(), user.RoleBoth)
		require.NoError(t, err)

		_, err = cmds.RefreshToken(context.Background(), access)

		require.ErrorIs(t, err, ErrTokenValidation)
	})

	t.Run("garbage token is unauthenticated", func(t *testing.T) {
		_, _, cmds := newAuthFixture(t)

		_, err := cmds.RefreshToken(context.Background(), "not-a-token")

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
	})

	t.Run("inactive user", func(t *testing.T) {
		h, jwtService, cmds := newAuthFixture(t)
		current := builder.NewUserBuilder().AsInactive().BuildReconstructed()
		refresh, err := jwtService.GenerateRefreshToken(current.ID(), user.RoleBoth)
		require.NoError(t, err)
		h.reads.EXPECT().UserByID(gomock.Any(), current.ID()).Return(current, nil)

		_, err = cmds.RefreshToken(context.Background(), refresh)

		require.ErrorIs(t, err, ErrUserInactive)
	})
}
