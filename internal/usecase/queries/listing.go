package queries

import (
	"context"
	"strings"
	"time"

	"foodshare/internal/infra"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"
)

var (
	ErrListingNotFound = errs.Mark(errs.New("listing not found"), errs.ErrNotFound)
	ErrInvalidCursor   = errs.Mark(errs.New("invalid cursor"), errs.ErrValidation)
)

type ListingFilters struct {
	Category *string
	// Query ranks the page by fuzzy title match and drops rows that do not match.
	Query string
}

type ListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	FindOpenFirstPage(ctx context.Context, now time.Time, category *string, limit int32) ([]*ListingView, error)
	FindOpenKeyset(ctx context.Context, now time.Time, category *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ListingView, error)
	FindByOwnerFirstPage(ctx context.Context, ownerID uuid.UUID, limit int32) ([]*ListingView, error)
	FindByOwnerKeyset(ctx context.Context, ownerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ListingView, error)
	FindClaimedByFirstPage(ctx context.Context, claimantID uuid.UUID, limit int32) ([]*ListingView, error)
	FindClaimedByKeyset(ctx context.Context, claimantID uuid.UUID, lastClaimedAt time.Time, lastID uuid.UUID, limit int32) ([]*ListingView, error)
}

type ListingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	ListOpen(ctx context.Context, filters ListingFilters, cursor *Cursor, limit int) ([]*ListingView, *Cursor, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, cursor *Cursor, limit int) ([]*ListingView, *Cursor, error)
	ListClaimedBy(ctx context.Context, claimantID uuid.UUID, cursor *Cursor, limit int) ([]*ListingView, *Cursor, error)
}

type listingQueriesImpl struct {
	repo  ListingReadStore
	clock clock.Clock
}

func NewListingQueries(repo ListingReadStore, clk clock.Clock) ListingQueries {
	return &listingQueriesImpl{repo: repo, clock: clk}
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	lv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return lv, nil
}

// ListOpen pages open, unexpired listings newest first. The cursor is taken
// from the unfiltered page so a fuzzy query never stalls pagination.
func (q *listingQueriesImpl) ListOpen(ctx context.Context, filters ListingFilters, cursor *Cursor, limit int) ([]*ListingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	now := q.clock.Now()

	var rows []*ListingView
	if cursor == nil || cursor.After == "" {
		var err error
		if rows, err = q.repo.FindOpenFirstPage(ctx, now, filters.Category, int32(limit+1)); err != nil {
			return nil, nil, err
		}
	} else {
		lastCreatedAt, lastID, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidCursor)
		}
		if rows, err = q.repo.FindOpenKeyset(ctx, now, filters.Category, lastCreatedAt, lastID, int32(limit+1)); err != nil {
			return nil, nil, err
		}
	}

	rows, next := paginate(rows, limit, byCreatedAt)
	if query := strings.TrimSpace(filters.Query); query != "" {
		rows = rankByTitle(rows, query)
	}
	return rows, next, nil
}

func (q *listingQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, cursor *Cursor, limit int) ([]*ListingView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*ListingView
	if cursor == nil || cursor.After == "" {
		var err error
		if rows, err = q.repo.FindByOwnerFirstPage(ctx, ownerID, int32(limit+1)); err != nil {
			return nil, nil, err
		}
	} else {
		lastCreatedAt, lastID, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidCursor)
		}
		if rows, err = q.repo.FindByOwnerKeyset(ctx, ownerID, lastCreatedAt, lastID, int32(limit+1)); err != nil {
			return nil, nil, err
		}
	}

	rows, next := paginate(rows, limit, byCreatedAt)
	return rows, next, nil
}

// ListClaimedBy is the claim history, newest claim first.
func (q *listingQueriesImpl) ListClaimedBy(ctx context.Context, claimantID uuid.UUID, cursor *Cursor, limit int) ([]*ListingView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*ListingView
	if cursor == nil || cursor.After == "" {
		var err error
		if rows, err = q.repo.FindClaimedByFirstPage(ctx, claimantID, int32(limit+1)); err != nil {
			return nil, nil, err
		}
	} else {
		lastClaimedAt, lastID, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidCursor)
		}
		if rows, err = q.repo.FindClaimedByKeyset(ctx, claimantID, lastClaimedAt, lastID, int32(limit+1)); err != nil {
			return nil, nil, err
		}
	}

	rows, next := paginate(rows, limit, byClaimedAt)
	return rows, next, nil
}

type listingTitles []*ListingView

func (l listingTitles) Len() int            { return len(l) }
func (l listingTitles) String(i int) string { return strings.ToLower(l[i].Title) }

func rankByTitle(rows []*ListingView, query string) []*ListingView {
	matches := fuzzy.FindFrom(strings.ToLower(query), listingTitles(rows))
	ranked := make([]*ListingView, len(matches))
	for i, m := range matches {
		ranked[i] = rows[m.Index]
	}
	return ranked
}
