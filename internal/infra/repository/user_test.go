//go:build unit

package repository

import (
	"context"
	"testing"

	"foodshare/internal/infra"
	sqlc "foodshare/internal/infra/sqlc/generated"
	"foodshare/internal/pkg/errs"
	"foodshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockUserWriteQueries) UpdateUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserProfileParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func TestUserRepository_Create(t *testing.T) {
	b := builder.NewUserBuilder()
	u, err := b.BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name     string
		mockRow  sqlc.Users
		mockErr  error
		wantKind infra.RepositoryErrorKind
		wantIs   error
	}{
		{name: "success", mockRow: b.BuildInfra()},
		{
			name:     "duplicate email",
			mockErr:  &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			wantKind: infra.KindDuplicateKey,
			wantIs:   errs.ErrConflict,
		},
		{
			name:     "database error",
			mockErr:  assert.AnError,
			wantKind: infra.KindDBFailure,
			wantIs:   errs.ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateUserParams) bool {
				return p.Email == b.Email && p.DisplayName == b.DisplayName && p.Role == b.Role
			})).Return(tt.mockRow, tt.mockErr)

			repo := NewUserRepository(mockQueries, nil)
			id, err := repo.Create(context.Background(), nil, u)

			if tt.mockErr != nil {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.ErrorIs(t, err, tt.wantIs)
				assert.Equal(t, uuid.Nil, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, b.ID, id)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{name: "success"},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateUserLastLogin", mock.Anything, mock.Anything, testUserID).Return(tt.mockError)

			repo := NewUserRepository(mockQueries, nil)
			err := repo.UpdateLastLogin(context.Background(), nil, testUserID)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	u := builder.NewUserBuilder().WithDisplayName("Renamed").WithRole("donor").BuildReconstructed()

	mockQueries := new(MockUserWriteQueries)
	mockQueries.On("UpdateUserProfile", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateUserProfileParams) bool {
		return p.ID == u.ID() && p.DisplayName == "Renamed" && p.Role == "donor"
	})).Return(nil)

	repo := NewUserRepository(mockQueries, nil)

	require.NoError(t, repo.UpdateProfile(context.Background(), nil, u))
	mockQueries.AssertExpectations(t)
}
