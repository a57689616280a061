package shared

import (
	"context"
	"time"

	"foodshare/internal/domain/claim"
	"foodshare/internal/domain/listing"
	"foodshare/internal/domain/user"
	sqlc "foodshare/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Listings() ListingRepository
	Claims() ClaimRepository
	Users() UserRepository
	Idempotency() IdempotencyRepository
	Outbox() OutboxRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ListingByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	CredentialsByEmail(ctx context.Context, email string) (*UserCredentials, error)
}

type ListingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error
	// MarkClaimed is the claim compare-and-set. It fails with a NOT_FOUND
	// repository error when no open, unexpired, claimable row matched.
	MarkClaimed(ctx context.Context, tx sqlc.DBTX, id, claimantID uuid.UUID, at time.Time, allowSelfClaim bool) (*listing.Listing, error)
}

type ClaimRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rec *claim.Record) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt, now time.Time) (bool, error)
	MarkCompleted(ctx context.Context, tx sqlc.DBTX, key, userID, listingID uuid.UUID) error
	Release(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX) (int64, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, msg OutboxMessage) error
	LockDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	MarkRetry(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, runAt time.Time, failed bool) error
}
