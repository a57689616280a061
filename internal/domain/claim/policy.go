package claim

import (
	"time"

	"foodshare/internal/domain/listing"
	"foodshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type SelfClaimPolicy string

const (
	SelfClaimForbid SelfClaimPolicy = "forbid"
	SelfClaimAllow  SelfClaimPolicy = "allow"
)

var ErrInvalidPolicy = errs.New("self-claim policy must be forbid or allow")

func ParseSelfClaimPolicy(s string) (SelfClaimPolicy, error) {
	switch SelfClaimPolicy(s) {
	case SelfClaimForbid, SelfClaimAllow:
		return SelfClaimPolicy(s), nil
	case "":
		return SelfClaimForbid, nil
	default:
		return "", ErrInvalidPolicy
	}
}

func (p SelfClaimPolicy) AllowsSelfClaim() bool { return p == SelfClaimAllow }

// ClassifyRejection explains a conditional update that matched no row.
// current is the row as read after the update, nil when it does not exist.
func ClassifyRejection(current *listing.Listing, claimantID uuid.UUID, now time.Time, policy SelfClaimPolicy) error {
	if current == nil {
		return listing.ErrListingNotFound
	}
	if err := current.CheckClaimable(claimantID, now, policy.AllowsSelfClaim()); err != nil {
		return err
	}
	// The row looks claimable again only when another writer raced us.
	return listing.ErrAlreadyClaimed
}
