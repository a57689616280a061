//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"foodshare/internal/domain/listing"
	"foodshare/internal/infra"
	"foodshare/internal/infra/events"
	sqlc "foodshare/internal/infra/sqlc/generated"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/config"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/shared"
	"foodshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ListingCommandsTestSuite struct {
	suite.Suite
	h     *txHarness
	cfg   config.Config
	b     *builder.ListingBuilder
	now   time.Time
	owner uuid.UUID
	key   uuid.UUID
	cmds  ListingCommands
}

func TestListingCommandsSuite(t *testing.T) {
	suite.Run(t, new(ListingCommandsTestSuite))
}

func (s *ListingCommandsTestSuite) SetupTest() {
	s.h = newTxHarness(s.T())
	s.cfg = config.NewTestConfig()
	s.b = builder.NewListingBuilder()
	s.now = s.b.Now
	s.owner = s.b.OwnerID
	s.key = uuid.New()
	s.cmds = NewListingCommands(s.h.uow, clock.NewMockClock(s.now), s.cfg, discardLogger())
}

func (s *ListingCommandsTestSuite) expectCreate(withKey bool) {
	s.h.listings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, l *listing.Listing) error {
			assert.Equal(s.T(), s.owner, l.OwnerID())
			assert.True(s.T(), l.IsOpen())
			assert.Equal(s.T(), s.now, l.CreatedAt())
			return nil
		})
	s.h.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, msg shared.OutboxMessage) error {
			assert.Equal(s.T(), events.KindListingCreated, msg.Kind)
			assert.Equal(s.T(), s.now, msg.RunAt)
			return nil
		})
	if withKey {
		s.h.idempotency.EXPECT().MarkCompleted(gomock.Any(), gomock.Any(), s.key, s.owner, gomock.Any()).Return(nil)
	}
}

func (s *ListingCommandsTestSuite) TestCreateListing_WithoutKey() {
	s.h.expectWithin(1)
	s.expectCreate(false)

	result, err := s.cmds.CreateListing(context.Background(), s.b.BuildDTO(), s.owner, nil)

	s.Require().NoError(err)
	s.False(result.Replayed)
	s.Equal(s.b.Title, result.Listing.Title().String())
}

func (s *ListingCommandsTestSuite) TestCreateListing_ValidationFailsBeforeAnyWrite() {
	req := s.b.WithExpiryIn(30 * time.Minute).BuildDTO()

	_, err := s.cmds.CreateListing(context.Background(), req, s.owner, nil)

	s.Require().ErrorIs(err, listing.ErrExpiryTooSoon)
	s.True(errs.Is(err, errs.ErrValidation))
}

func (s *ListingCommandsTestSuite) TestCreateListing_NewKey() {
	s.h.expectWithin(2)
	s.h.idempotency.EXPECT().
		TryInsert(gomock.Any(), gomock.Any(), s.key, s.owner, createListingEndpoint, calculateRequestHash(s.b.BuildDTO()), s.now.Add(s.cfg.Listing.IdempotencyTTL)).
		Return(true, nil)
	s.expectCreate(true)

	result, err := s.cmds.CreateListing(context.Background(), s.b.BuildDTO(), s.owner, &s.key)

	s.Require().NoError(err)
	s.False(result.Replayed)
}

func (s *ListingCommandsTestSuite) TestCreateListing_ReplaysCompletedKey() {
	stored, err := s.b.BuildReconstructed()
	s.Require().NoError(err)
	storedID := stored.ID()

	s.h.expectWithin(1)
	s.h.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), s.key, s.owner, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	s.h.reads.EXPECT().IdempotencyByKey(gomock.Any(), s.key, s.owner).Return(&shared.IdempotencyRecord{
		Key:             s.key,
		UserID:          s.owner,
		Status:          shared.IdempotencyStatusCompleted,
		RequestHash:     calculateRequestHash(s.b.BuildDTO()),
		ResultListingID: &storedID,
		ExpiresAt:       s.now.Add(time.Hour),
	}, nil)
	s.h.reads.EXPECT().ListingByID(gomock.Any(), storedID).Return(stored, nil)

	result, err := s.cmds.CreateListing(context.Background(), s.b.BuildDTO(), s.owner, &s.key)

	s.Require().NoError(err)
	s.True(result.Replayed)
	s.Equal(storedID, result.Listing.ID())
}

func (s *ListingCommandsTestSuite) TestCreateListing_ReplayIgnoresLeadTime() {
	stored, err := s.b.BuildReconstructed()
	s.Require().NoError(err)
	storedID := stored.ID()

	// the stored listing now expires in 30 minutes, which a fresh create would reject
	cmds := NewListingCommands(s.h.uow, clock.NewMockClock(s.b.ExpiryTime.Add(-30*time.Minute)), s.cfg, discardLogger())

	s.h.expectWithin(1)
	s.h.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), s.key, s.owner, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	s.h.reads.EXPECT().IdempotencyByKey(gomock.Any(), s.key, s.owner).Return(&shared.IdempotencyRecord{
		Status:          shared.IdempotencyStatusCompleted,
		RequestHash:     calculateRequestHash(s.b.BuildDTO()),
		ResultListingID: &storedID,
		ExpiresAt:       s.b.ExpiryTime.Add(24 * time.Hour),
	}, nil)
	s.h.reads.EXPECT().ListingByID(gomock.Any(), storedID).Return(stored, nil)

	result, err := cmds.CreateListing(context.Background(), s.b.BuildDTO(), s.owner, &s.key)

	s.Require().NoError(err)
	s.True(result.Replayed)
}

func (s *ListingCommandsTestSuite) TestCreateListing_KeyConflicts() {
	cases := []struct {
		name   string
		record func(hash string) *shared.IdempotencyRecord
		errIs  error
	}{
		{
			name: "same key with a different body",
			record: func(string) *shared.IdempotencyRecord {
				return &shared.IdempotencyRecord{Status: shared.IdempotencyStatusCompleted, RequestHash: "other", ExpiresAt: s.now.Add(time.Hour)}
			},
			errIs: errs.ErrIdempotencyMismatch,
		},
		{
			name: "first request still processing",
			record: func(hash string) *shared.IdempotencyRecord {
				return &shared.IdempotencyRecord{Status: shared.IdempotencyStatusProcessing, RequestHash: hash, ExpiresAt: s.now.Add(time.Hour)}
			},
			errIs: errs.ErrIdempotencyInProgress,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			hash := calculateRequestHash(s.b.BuildDTO())
			s.h.expectWithin(1)
			s.h.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), s.key, s.owner, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			s.h.reads.EXPECT().IdempotencyByKey(gomock.Any(), s.key, s.owner).Return(tc.record(hash), nil)

			_, err := s.cmds.CreateListing(context.Background(), s.b.BuildDTO(), s.owner, &s.key)

			s.Require().Error(err)
			s.True(errs.Is(err, tc.errIs), "got %v", err)
		})
	}
}

func (s *ListingCommandsTestSuite) TestCreateListing_ExpiredKeyIsReclaimed() {
	hash := calculateRequestHash(s.b.BuildDTO())
	s.h.expectWithin(2)
	s.h.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), s.key, s.owner, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	s.h.reads.EXPECT().IdempotencyByKey(gomock.Any(), s.key, s.owner).Return(&shared.IdempotencyRecord{
		Status:      shared.IdempotencyStatusCompleted,
		RequestHash: "stale",
		ExpiresAt:   s.now.Add(-time.Minute),
	}, nil)
	s.h.idempotency.EXPECT().ClaimExpired(gomock.Any(), gomock.Any(), s.key, s.owner, hash, gomock.Any(), s.now).Return(true, nil)
	s.expectCreate(true)

	result, err := s.cmds.CreateListing(context.Background(), s.b.BuildDTO(), s.owner, &s.key)

	s.Require().NoError(err)
	s.False(result.Replayed)
}

func (s *ListingCommandsTestSuite) TestCreateListing_ReleasesKeyOnFailure() {
	s.Run("validation error", func() {
		s.SetupTest()
		req := s.b.WithExpiryIn(time.Minute).BuildDTO()
		s.h.expectWithin(2)
		s.h.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), s.key, s.owner, gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.h.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), s.key, s.owner).Return(nil)

		_, err := s.cmds.CreateListing(context.Background(), req, s.owner, &s.key)

		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("storage error", func() {
		s.SetupTest()
		s.h.expectWithin(3)
		s.h.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), s.key, s.owner, gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.h.listings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create listing", assert.AnError))
		s.h.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), s.key, s.owner).Return(nil)

		_, err := s.cmds.CreateListing(context.Background(), s.b.BuildDTO(), s.owner, &s.key)

		s.True(errs.Is(err, errs.ErrStorageUnavailable))
	})
}

func TestCalculateRequestHash(t *testing.T) {
	b := builder.NewListingBuilder()
	base := calculateRequestHash(b.BuildDTO())

	assert.Equal(t, base, calculateRequestHash(b.BuildDTO()))
	assert.NotEqual(t, base, calculateRequestHash(b.WithTitle("Other title").BuildDTO()))
}
