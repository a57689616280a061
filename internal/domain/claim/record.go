package claim

import (
	"time"

	"foodshare/internal/domain/listing"
	"foodshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrListingNotClaimed = errs.New("listing is not claimed")

// Record is the append-only audit entry for one successful claim.
type Record struct {
	listingID  uuid.UUID
	claimantID uuid.UUID
	claimedAt  time.Time
}

func NewRecord(l *listing.Listing) (*Record, error) {
	if !l.IsClaimed() {
		return nil, ErrListingNotClaimed
	}
	return &Record{
		listingID:  l.ID(),
		claimantID: *l.ClaimedBy(),
		claimedAt:  *l.ClaimedAt(),
	}, nil
}

func ReconstructRecord(listingID, claimantID uuid.UUID, claimedAt time.Time) *Record {
	return &Record{listingID: listingID, claimantID: claimantID, claimedAt: claimedAt}
}

func (r *Record) ListingID() uuid.UUID  { return r.listingID }
func (r *Record) ClaimantID() uuid.UUID { return r.claimantID }
func (r *Record) ClaimedAt() time.Time  { return r.claimedAt }
