//go:build unit || e2e

package builder

import (
	"time"

	"foodshare/internal/domain/listing"
	reqdto "foodshare/internal/handler/dto/request"
	sqlc "foodshare/internal/infra/sqlc/generated"
	"foodshare/internal/pkg/pgconv"
	"foodshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const DefaultMinLeadTime = time.Hour

type ListingBuilder struct {
	ID                 uuid.UUID
	OwnerID            uuid.UUID
	Title              string
	Description        string
	Category           string
	Quantity           string
	Location           string
	PickupInstructions *string
	ExpiryTime         time.Time
	Now                time.Time
	ClaimedBy          *uuid.UUID
	ClaimedAt          *time.Time
}

func NewListingBuilder() *ListingBuilder {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &ListingBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Title:       "Fresh vegetables",
		Description: "Leftover carrots and leeks from the community garden",
		Category:    listing.CategoryVegetables.String(),
		Quantity:    "2 bags",
		Location:    "12 Market Street",
		ExpiryTime:  now.Add(3 * time.Hour),
		Now:         now,
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

func (b *ListingBuilder) WithTitle(title string) *ListingBuilder {
	b.Title = title
	return b
}

func (b *ListingBuilder) WithDescription(description string) *ListingBuilder {
	b.Description = description
	return b
}

func (b *ListingBuilder) WithCategory(category string) *ListingBuilder {
	b.Category = category
	return b
}

func (b *ListingBuilder) WithOwner(ownerID uuid.UUID) *ListingBuilder {
	b.OwnerID = ownerID
	return b
}

// WithExpiryIn sets the expiry relative to the builder's Now.
func (b *ListingBuilder) WithExpiryIn(d time.Duration) *ListingBuilder {
	b.ExpiryTime = b.Now.Add(d)
	return b
}

func (b *ListingBuilder) ClaimedByUser(claimantID uuid.UUID, at time.Time) *ListingBuilder {
	b.ClaimedBy = &claimantID
	b.ClaimedAt = &at
	return b
}

func (b *ListingBuilder) input() listing.NewListingInput {
	return listing.NewListingInput{
		OwnerID:            b.OwnerID,
		Title:              b.Title,
		Description:        b.Description,
		Category:           b.Category,
		Quantity:           b.Quantity,
		Location:           b.Location,
		PickupInstructions: b.PickupInstructions,
		ExpiryTime:         b.ExpiryTime,
	}
}

// Build methods
func (b *ListingBuilder) BuildDomain() (*listing.Listing, error) {
	return listing.NewListing(b.input(), b.Now, DefaultMinLeadTime)
}

// BuildReconstructed keeps the builder's ID and claim fields.
func (b *ListingBuilder) BuildReconstructed() (*listing.Listing, error) {
	return listing.Reconstruct(b.BuildSnapshot())
}

func (b *ListingBuilder) BuildSnapshot() listing.Snapshot {
	state := listing.ClaimStateOpen
	if b.ClaimedBy != nil {
		state = listing.ClaimStateClaimed
	}
	return listing.Snapshot{
		ID:                 b.ID,
		OwnerID:            b.OwnerID,
		Title:              b.Title,
		Description:        b.Description,
		Category:           b.Category,
		Quantity:           b.Quantity,
		Location:           b.Location,
		PickupInstructions: b.PickupInstructions,
		ExpiryTime:         b.ExpiryTime,
		CreatedAt:          b.Now,
		ClaimState:         state.String(),
		ClaimedBy:          b.ClaimedBy,
		ClaimedAt:          b.ClaimedAt,
	}
}

func (b *ListingBuilder) BuildInfra() sqlc.Listings {
	s := b.BuildSnapshot()
	return sqlc.Listings{
		ID:                 s.ID,
		OwnerID:            s.OwnerID,
		Title:              s.Title,
		Description:        s.Description,
		Category:           s.Category,
		Quantity:           s.Quantity,
		Location:           s.Location,
		PickupInstructions: pgconv.StringPtrToPgtype(s.PickupInstructions),
		ExpiryTime:         pgconv.TimeToPgtype(s.ExpiryTime),
		CreatedAt:          pgconv.TimeToPgtype(s.CreatedAt),
		ClaimState:         s.ClaimState,
		ClaimedBy:          pgconv.UUIDPtrToPgtype(s.ClaimedBy),
		ClaimedAt:          claimedAtPgtype(s.ClaimedAt),
	}
}

func (b *ListingBuilder) BuildReadModel() *queries.ListingView {
	s := b.BuildSnapshot()
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

func (b *ListingBuilder) BuildDTO() reqdto.CreateListingRequest {
	return reqdto.CreateListingRequest{
		Title:              b.Title,
		Description:        b.Description,
		Category:           b.Category,
		Quantity:           b.Quantity,
		Location:           b.Location,
		PickupInstructions: b.PickupInstructions,
		ExpiryTime:         b.ExpiryTime,
	}
}

func claimedAtPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgconv.TimeToPgtype(*t)
}
