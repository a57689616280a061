package repository

import (
	"context"

	"foodshare/internal/domain/claim"
	"foodshare/internal/infra"
	sqlc "foodshare/internal/infra/sqlc/generated"
	"foodshare/internal/pkg/pgconv"
)

type ClaimWriteQueries interface {
	CreateClaimRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateClaimRecordParams) (sqlc.ClaimRecords, error)
}

type ClaimRepository struct {
	queries ClaimWriteQueries
	db      sqlc.DBTX
}

func NewClaimRepository(queries ClaimWriteQueries, db sqlc.DBTX) *ClaimRepository {
	return &ClaimRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ClaimRepository) Create(ctx context.Context, tx sqlc.DBTX, rec *claim.Record) error {
	params := sqlc.CreateClaimRecordParams{
		ListingID:  rec.ListingID(),
		ClaimantID: rec.ClaimantID(),
		ClaimedAt:  pgconv.TimeToPgtype(rec.ClaimedAt()),
	}
	if _, err := r.queries.CreateClaimRecord(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to append claim record", err)
	}
	return nil
}
