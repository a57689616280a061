package repository

import (
	"context"
	"time"

	"foodshare/internal/domain/listing"
	"foodshare/internal/infra"
	"foodshare/internal/infra/repository/converter"
	sqlc "foodshare/internal/infra/sqlc/generated"
	"foodshare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ListingWriteQueries interface {
	CreateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateListingParams) (sqlc.Listings, error)
	ClaimListing(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimListingParams) (sqlc.Listings, error)
}

type ListingRepository struct {
	queries ListingWriteQueries
	db      sqlc.DBTX
}

func NewListingRepository(queries ListingWriteQueries, db sqlc.DBTX) *ListingRepository {
	return &ListingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ListingRepository) Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error {
	params := converter.ListingToCreateParams(l)
	if _, err := r.queries.CreateListing(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create listing", err)
	}
	return nil
}

func (r *ListingRepository) MarkClaimed(ctx context.Context, tx sqlc.DBTX, id, claimantID uuid.UUID, at time.Time, allowSelfClaim bool) (*listing.Listing, error) {
	params := sqlc.ClaimListingParams{
		ClaimantID:     claimantID,
		ClaimedAt:      pgconv.TimeToPgtype(at),
		ID:             id,
		AllowSelfClaim: allowSelfClaim,
	}

	row, err := r.queries.ClaimListing(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not claimable", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to claim listing", err)
	}

	claimed, err := converter.ListingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("claimed listing violates invariant", err)
	}
	return claimed, nil
}
