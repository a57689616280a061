package commands

import (
	"context"

	"github.com/google/uuid"
)

// ClaimGuard remembers listings that are known to be claimed. A hit lets the
// claim command reject without touching storage; a miss proves nothing.
type ClaimGuard interface {
	IsClaimed(ctx context.Context, listingID uuid.UUID) bool
	MarkClaimed(ctx context.Context, listingID uuid.UUID) error
}
