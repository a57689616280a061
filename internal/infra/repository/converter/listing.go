package converter

import (
	"foodshare/internal/domain/listing"
	sqlc "foodshare/internal/infra/sqlc/generated"
	"foodshare/internal/pkg/pgconv"
)

func ListingToCreateParams(l *listing.Listing) sqlc.CreateListingParams {
	return sqlc.CreateListingParams{
		ID:                 l.ID(),
		OwnerID:            l.OwnerID(),
		Title:              l.Title().String(),
		Description:        l.Description().String(),
		Category:           l.Category().String(),
		Quantity:           l.Quantity().String(),
		Location:           l.Location().String(),
		PickupInstructions: pgconv.StringPtrToPgtype(l.PickupInstructions()),
		ExpiryTime:         pgconv.TimeToPgtype(l.ExpiryTime()),
		CreatedAt:          pgconv.TimeToPgtype(l.CreatedAt()),
	}
}

func ListingSnapshotFromRow(row sqlc.Listings) listing.Snapshot {
	return listing.Snapshot{
		ID:                 row.ID,
		OwnerID:            row.OwnerID,
		Title:              row.Title,
		Description:        row.Description,
		Category:           row.Category,
		Quantity:           row.Quantity,
		Location:           row.Location,
		PickupInstructions: pgconv.StringPtrFromPgtype(row.PickupInstructions),
		ExpiryTime:         pgconv.TimeFromPgtype(row.ExpiryTime),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		ClaimState:         row.ClaimState,
		ClaimedBy:          pgconv.UUIDPtrFromPgtype(row.ClaimedBy),
		ClaimedAt:          pgconv.TimePtrFromPgtype(row.ClaimedAt),
	}
}

func ListingFromRow(row sqlc.Listings) (*listing.Listing, error) {
	return listing.Reconstruct(ListingSnapshotFromRow(row))
}
