package queries

import (
	"context"

	"foodshare/internal/domain/stats"
	"foodshare/internal/infra"
	sqlc "foodshare/internal/infra/sqlc/generated"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.Mark(errs.New("user not found"), errs.ErrNotFound)
	ErrUserInactive = errs.Mark(errs.New("user inactive"), errs.ErrUnauthenticated)
)

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
}

type userQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore UserReadStore
	stats     StatsReadStore
}

func NewUserQueries(uow shared.UnitOfWork, readStore UserReadStore, statsStore StatsReadStore) UserQueries {
	return &userQueriesImpl{
		uow:       uow,
		readStore: readStore,
		stats:     statsStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

// GetProfile adds the donation and claim totals to the user view.
func (q *userQueriesImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	user, err := q.GetCurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var donations, claims int64
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		if donations, err = q.stats.CountShared(ctx, db, userID); err != nil {
			return err
		}
		claims, err = q.stats.CountClaimed(ctx, db, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &ProfileView{
		UserView:       *user,
		TotalDonations: donations,
		TotalClaims:    claims,
		ImpactScore:    stats.ImpactScore(donations, claims),
	}, nil
}
