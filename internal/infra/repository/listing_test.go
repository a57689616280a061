//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"foodshare/internal/infra"
	sqlc "foodshare/internal/infra/sqlc/generated"
	"foodshare/internal/pkg/errs"
	"foodshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockListingWriteQueries struct {
	mock.Mock
}

func (m *MockListingWriteQueries) CreateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateListingParams) (sqlc.Listings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Listings), args.Error(1)
}

func (m *MockListingWriteQueries) ClaimListing(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimListingParams) (sqlc.Listings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Listings), args.Error(1)
}

func TestListingRepository_Create(t *testing.T) {
	b := builder.NewListingBuilder()
	l, err := b.BuildDomain()
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockListingWriteQueries)
		mockQueries.On("CreateListing", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateListingParams) bool {
			return p.ID == l.ID() && p.Title == b.Title && p.ExpiryTime.Time.Equal(b.ExpiryTime)
		})).Return(sqlc.Listings{}, nil)

		require.NoError(t, NewListingRepository(mockQueries, nil).Create(context.Background(), nil, l))
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockListingWriteQueries)
		mockQueries.On("CreateListing", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.Listings{}, assert.AnError)

		err := NewListingRepository(mockQueries, nil).Create(context.Background(), nil, l)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
	})
}

func TestListingRepository_MarkClaimed(t *testing.T) {
	claimant := uuid.New()
	b := builder.NewListingBuilder()
	at := b.Now.Add(10 * time.Minute)
	claimedRow := builder.NewListingBuilder().With(func(x *builder.ListingBuilder) {
		x.ID = b.ID
		x.OwnerID = b.OwnerID
	}).ClaimedByUser(claimant, at).BuildInfra()

	expectedParams := sqlc.ClaimListingParams{
		ClaimantID:     claimant,
		ClaimedAt:      claimedRow.ClaimedAt,
		ID:             b.ID,
		AllowSelfClaim: false,
	}

	t.Run("success returns the claimed listing", func(t *testing.T) {
		mockQueries := new(MockListingWriteQueries)
		mockQueries.On("ClaimListing", mock.Anything, mock.Anything, expectedParams).Return(claimedRow, nil)

		l, err := NewListingRepository(mockQueries, nil).MarkClaimed(context.Background(), nil, b.ID, claimant, at, false)

		require.NoError(t, err)
		assert.True(t, l.IsClaimed())
		require.NotNil(t, l.ClaimedBy())
		assert.Equal(t, claimant, *l.ClaimedBy())
		mockQueries.AssertExpectations(t)
	})

	t.Run("no row means the guarded update matched nothing", func(t *testing.T) {
		mockQueries := new(MockListingWriteQueries)
		mockQueries.On("ClaimListing", mock.Anything, mock.Anything, expectedParams).Return(sqlc.Listings{}, pgx.ErrNoRows)

		_, err := NewListingRepository(mockQueries, nil).MarkClaimed(context.Background(), nil, b.ID, claimant, at, false)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockListingWriteQueries)
		mockQueries.On("ClaimListing", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.Listings{}, assert.AnError)

		_, err := NewListingRepository(mockQueries, nil).MarkClaimed(context.Background(), nil, b.ID, claimant, at, true)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
