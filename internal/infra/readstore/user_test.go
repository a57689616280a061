//go:build unit

package readstore

import (
	"context"
	"testing"

	"foodshare/internal/infra"
	sqlc "foodshare/internal/infra/sqlc/generated"
	"foodshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.FindUserByIDRow), args.Error(1)
}

func TestFindCredentialsByEmail(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	inactiveUser := builder.NewUserBuilder().WithEmail("inactive@example.com").AsInactive().BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn sqlc.Users
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active user",
			email:      testUser.Email,
			mockReturn: testUser,
		},
		{
			name:       "success - inactive user (for validation)",
			email:      inactiveUser.Email,
			mockReturn: inactiveUser,
		},
		{
			name:      "user not found",
			email:     "notfound@example.com",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			email:     testUser.Email,
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			creds, err := readStore.FindCredentialsByEmail(context.Background(), tt.email)

			if tt.mockError != nil {
				assert.Error(t, err)
				assert.Nil(t, creds)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				if assert.NotNil(t, creds) {
					assert.Equal(t, tt.mockReturn.ID, creds.ID)
					assert.Equal(t, tt.mockReturn.PasswordHash, creds.PasswordHash)
					assert.Equal(t, tt.mockReturn.IsActive, creds.IsActive)
				}
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	activeRow := builder.NewUserBuilder().BuildFindByIDRow()
	inactiveRow := builder.NewUserBuilder().AsInactive().BuildFindByIDRow()

	tests := []struct {
		name       string
		userID     uuid.UUID
		mockReturn sqlc.FindUserByIDRow
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active user",
			userID:     activeRow.ID,
			mockReturn: activeRow,
		},
		{
			name:       "success - inactive user (for validation)",
			userID:     inactiveRow.ID,
			mockReturn: inactiveRow,
		},
		{
			name:      "user not found",
			userID:    uuid.New(),
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			userID:    activeRow.ID,
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.userID)

			if tt.mockError != nil {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				if assert.NotNil(t, view) {
					assert.Equal(t, tt.mockReturn.Email, view.Email)
					assert.Equal(t, tt.mockReturn.DisplayName, view.DisplayName)
					assert.Equal(t, tt.mockReturn.IsActive, view.IsActive)
					assert.Nil(t, view.LastLogin)
				}
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
