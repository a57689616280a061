package readstore

import (
	"context"
	"time"

	"foodshare/internal/infra"
	"foodshare/internal/infra/repository/converter"
	sqlc "foodshare/internal/infra/sqlc/generated"
	"foodshare/internal/pkg/pgconv"
	"foodshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingReadQueries interface {
	GetListingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Listings, error)
	ListOpenListingsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOpenListingsFirstPageParams) ([]sqlc.Listings, error)
	ListOpenListingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOpenListingsKeysetParams) ([]sqlc.Listings, error)
	ListListingsByOwnerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListListingsByOwnerFirstPageParams) ([]sqlc.Listings, error)
	ListListingsByOwnerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListListingsByOwnerKeysetParams) ([]sqlc.Listings, error)
	ListClaimsByClaimantFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListClaimsByClaimantFirstPageParams) ([]sqlc.Listings, error)
	ListClaimsByClaimantKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListClaimsByClaimantKeysetParams) ([]sqlc.Listings, error)
}

type ListingReadStore struct {
	queries ListingReadQueries
	db      sqlc.DBTX
}

func NewListingReadStore(queries ListingReadQueries, db sqlc.DBTX) *ListingReadStore {
	return &ListingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	row, err := r.queries.GetListingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get listing", err)
	}
	return toListingView(row), nil
}

func (r *ListingReadStore) FindOpenFirstPage(ctx context.Context, now time.Time, category *string, limit int32) ([]*queries.ListingView, error) {
	rows, err := r.queries.ListOpenListingsFirstPage(ctx, r.db, sqlc.ListOpenListingsFirstPageParams{
		Now:      pgconv.TimeToPgtype(now),
		Category: pgconv.StringPtrToPgtype(category),
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open listings", err)
	}
	return toListingViews(rows), nil
}

func (r *ListingReadStore) FindOpenKeyset(ctx context.Context, now time.Time, category *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ListingView, error) {
	rows, err := r.queries.ListOpenListingsKeyset(ctx, r.db, sqlc.ListOpenListingsKeysetParams{
		Now:       pgconv.TimeToPgtype(now),
		Category:  pgconv.StringPtrToPgtype(category),
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		RowLimit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open listings", err)
	}
	return toListingViews(rows), nil
}

func (r *ListingReadStore) FindByOwnerFirstPage(ctx context.Context, ownerID uuid.UUID, limit int32) ([]*queries.ListingView, error) {
	rows, err := r.queries.ListListingsByOwnerFirstPage(ctx, r.db, sqlc.ListListingsByOwnerFirstPageParams{
		OwnerID:  ownerID,
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings by owner", err)
	}
	return toListingViews(rows), nil
}

func (r *ListingReadStore) FindByOwnerKeyset(ctx context.Context, ownerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ListingView, error) {
	rows, err := r.queries.ListListingsByOwnerKeyset(ctx, r.db, sqlc.ListListingsByOwnerKeysetParams{
		OwnerID:   ownerID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		RowLimit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings by owner", err)
	}
	return toListingViews(rows), nil
}

func (r *ListingReadStore) FindClaimedByFirstPage(ctx context.Context, claimantID uuid.UUID, limit int32) ([]*queries.ListingView, error) {
	rows, err := r.queries.ListClaimsByClaimantFirstPage(ctx, r.db, sqlc.ListClaimsByClaimantFirstPageParams{
		ClaimantID: claimantID,
		RowLimit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list claims", err)
	}
	return toListingViews(rows), nil
}

// FindClaimedByKeyset pages on (claimed_at, listing_id).
func (r *ListingReadStore) FindClaimedByKeyset(ctx context.Context, claimantID uuid.UUID, lastClaimedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ListingView, error) {
	rows, err := r.queries.ListClaimsByClaimantKeyset(ctx, r.db, sqlc.ListClaimsByClaimantKeysetParams{
		ClaimantID: claimantID,
		ClaimedAt:  pgconv.TimeToPgtype(lastClaimedAt),
		ListingID:  lastID,
		RowLimit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list claims", err)
	}
	return toListingViews(rows), nil
}

func toListingViews(rows []sqlc.Listings) []*queries.ListingView {
	views := make([]*queries.ListingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toListingView(row))
	}
	return views
}

func toListingView(row sqlc.Listings) *queries.ListingView {
	s := converter.ListingSnapshotFromRow(row)
	return &queries.ListingView{
		ID:                 s.ID,
		OwnerID:            s.OwnerID,
		Title:              s.Title,
		Description:        s.Description,
		Category:           s.Category,
		Quantity:           s.Quantity,
		Location:           s.Location,
		PickupInstructions: s.PickupInstructions,
		ExpiryTime:         s.ExpiryTime,
		CreatedAt:          s.CreatedAt,
		ClaimState:         s.ClaimState,
		ClaimedBy:          s.ClaimedBy,
		ClaimedAt:          s.ClaimedAt,
	}
}
