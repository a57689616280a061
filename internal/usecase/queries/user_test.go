//go:build unit

package queries_test

import (
	"context"
	"testing"

	"foodshare/internal/infra"
	sqlc "foodshare/internal/infra/sqlc/generated"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/queries"
	"foodshare/tests/common/builder"
	queriesmock "foodshare/tests/mock/queries"
	sharedmock "foodshare/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserQueriesTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	uow        *sharedmock.MockUnitOfWork
	readStore  *queriesmock.MockUserReadStore
	statsStore *queriesmock.MockStatsReadStore
	q          queries.UserQueries
}

func (s *UserQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.readStore = queriesmock.NewMockUserReadStore(s.ctrl)
	s.statsStore = queriesmock.NewMockStatsReadStore(s.ctrl)
	s.q = queries.NewUserQueries(s.uow, s.readStore, s.statsStore)
}

func (s *UserQueriesTestSuite) TestGetCurrentUser() {
	s.Run("active user", func() {
		s.SetupTest()
		expected := builder.NewUserBuilder().BuildReadModel()
		s.readStore.EXPECT().FindByID(gomock.Any(), expected.ID).Return(expected, nil)

		actual, err := s.q.GetCurrentUser(context.Background(), expected.ID)

		s.Require().NoError(err)
		s.Equal(expected, actual)
	})

	s.Run("not found", func() {
		s.SetupTest()
		view := builder.NewUserBuilder().BuildReadModel()
		s.readStore.EXPECT().FindByID(gomock.Any(), view.ID).
			Return(nil, infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := s.q.GetCurrentUser(context.Background(), view.ID)

		s.Require().ErrorIs(err, queries.ErrUserNotFound)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("inactive user", func() {
		s.SetupTest()
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		s.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := s.q.GetCurrentUser(context.Background(), view.ID)

		s.Require().ErrorIs(err, queries.ErrUserInactive)
		s.True(errs.Is(err, errs.ErrUnauthenticated))
	})

	s.Run("storage error passes through", func() {
		s.SetupTest()
		view := builder.NewUserBuilder().BuildReadModel()
		s.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(nil, errs.ErrStorageUnavailable)

		_, err := s.q.GetCurrentUser(context.Background(), view.ID)

		s.Require().ErrorIs(err, errs.ErrStorageUnavailable)
		s.False(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *UserQueriesTestSuite) TestGetProfile() {
	view := builder.NewUserBuilder().WithRole("donor").BuildReadModel()
	s.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
	s.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		})
	s.statsStore.EXPECT().CountShared(gomock.Any(), gomock.Any(), view.ID).Return(int64(7), nil)
	s.statsStore.EXPECT().CountClaimed(gomock.Any(), gomock.Any(), view.ID).Return(int64(3), nil)

	actual, err := s.q.GetProfile(context.Background(), view.ID)

	s.Require().NoError(err)
	s.Equal(*view, actual.UserView)
	s.Equal(int64(7), actual.TotalDonations)
	s.Equal(int64(3), actual.TotalClaims)
	s.Equal(int64(41), actual.ImpactScore)
}

func (s *UserQueriesTestSuite) TestGetProfileUnknownUserSkipsStats() {
	view := builder.NewUserBuilder().BuildReadModel()
	s.readStore.EXPECT().FindByID(gomock.Any(), view.ID).
		Return(nil, infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound))

	_, err := s.q.GetProfile(context.Background(), view.ID)

	s.Require().ErrorIs(err, queries.ErrUserNotFound)
}

func TestUserQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(UserQueriesTestSuite))
}
