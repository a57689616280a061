package readstore

import (
	"context"
	"time"

	"foodshare/internal/domain/stats"
	"foodshare/internal/infra"
	sqlc "foodshare/internal/infra/sqlc/generated"
	"foodshare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type StatsReadQueries interface {
	CountListingsByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) (int64, error)
	CountClaimsByClaimant(ctx context.Context, db sqlc.DBTX, claimantID uuid.UUID) (int64, error)
	CountListingsByOwnerBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.CountListingsByOwnerBetweenParams) (int64, error)
	CountOwnerListingsClaimedByOthers(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) (int64, error)
	ListContributors(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListContributorsRow, error)
	ListActivitySince(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActivitySinceParams) ([]pgtype.Timestamptz, error)
}

// StatsReadStore takes the db per call so the caller can pin every count of
// one projection to the same read-only snapshot.
type StatsReadStore struct {
	queries StatsReadQueries
}

func NewStatsReadStore(queries StatsReadQueries) *StatsReadStore {
	return &StatsReadStore{queries: queries}
}

func (r *StatsReadStore) CountShared(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error) {
	n, err := r.queries.CountListingsByOwner(ctx, db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count shared listings", err)
	}
	return n, nil
}

func (r *StatsReadStore) CountClaimed(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error) {
	n, err := r.queries.CountClaimsByClaimant(ctx, db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count claims", err)
	}
	return n, nil
}

func (r *StatsReadStore) CountSharedBetween(ctx context.Context, db sqlc.DBTX, userID uuid.UUID, from, to time.Time) (int64, error) {
	n, err := r.queries.CountListingsByOwnerBetween(ctx, db, sqlc.CountListingsByOwnerBetweenParams{
		OwnerID:  userID,
		FromTime: pgconv.TimeToPgtype(from),
		ToTime:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count listings in period", err)
	}
	return n, nil
}

func (r *StatsReadStore) CountClaimedByOthers(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error) {
	n, err := r.queries.CountOwnerListingsClaimedByOthers(ctx, db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count listings claimed by others", err)
	}
	return n, nil
}

func (r *StatsReadStore) Contributors(ctx context.Context, db sqlc.DBTX) ([]stats.Contributor, error) {
	rows, err := r.queries.ListContributors(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contributors", err)
	}

	contributors := make([]stats.Contributor, 0, len(rows))
	for _, row := range rows {
		contributors = append(contributors, stats.Contributor{
			OwnerID:        row.OwnerID,
			Listings:       row.ListingCount,
			FirstListingAt: pgconv.TimeFromPgtype(row.FirstListingAt),
		})
	}
	return contributors, nil
}

func (r *StatsReadStore) ActivitySince(ctx context.Context, db sqlc.DBTX, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	rows, err := r.queries.ListActivitySince(ctx, db, sqlc.ListActivitySinceParams{
		UserID: userID,
		Since:  pgconv.TimeToPgtype(since),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list activity", err)
	}

	activity := make([]time.Time, 0, len(rows))
	for _, ts := range rows {
		activity = append(activity, pgconv.TimeFromPgtype(ts))
	}
	return activity, nil
}
